// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package consoleui is the terminal dashboard for a Scalefield
// project. Built on bubbletea, it shows one page per record kind
// (deployments, logs, webhooks, ...), each a list with a status
// filter, a search box and a detail panel that slides in over the
// right edge when a row is selected. Three read-only pages sit beside
// them: the overview, analytics (metric cards with sparklines for a
// selectable period) and settings (the account and the console's own
// configuration).
//
// Every list page is a [Page] over one entity type. The page keeps a
// [listview.FilterModel] for the status and search inputs and a
// [listview.Controller] for the selection; the controller's timers
// are armed as tea.Tick commands and the slide is drawn by a
// [listview.Presenter] from the same clock. Pages are built fresh
// when they are mounted and disposed when the user navigates away, so
// messages from a previous mount are dropped by their mount id.
//
// Data flow:
//
//	[bundle file / SQLite catalog]
//	        | (provider.BundleSource)
//	    [App] -> active [Page] <- bubbletea event loop
//	        |
//	  [terminal output]
package consoleui
