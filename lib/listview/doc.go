// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package listview implements the selectable list with a slide-in
// detail panel that every console resource page is built from.
//
// The package is split along the data flow:
//
//	Provider.List ──▶ []T ──▶ Visible(entities, FilterState) ──▶ rows
//	                                                              │
//	                              Select / Close ◀── user input ◀─┘
//	                                    │
//	                                    ▼
//	                Controller (Closed, Opening, Open, Closing)
//	                 │ Timer values          │ Snapshot
//	                 ▼                       ▼
//	        host arms timers         Presenter.Offset(now)
//	        (tea.Tick or Session)    slides the panel in and out
//
// Nothing here imports bubbletea. The Controller is a plain state
// machine that returns the timers it needs as values; the terminal UI
// turns them into tea.Tick commands while [Session] arms them on a
// [clock.Clock]. Both feed expired timers back through
// [Controller.Fire], which discards timers that a later transition
// superseded.
package listview
