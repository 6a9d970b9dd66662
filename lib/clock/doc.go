// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// The selection session arms enter and exit timers through a Clock,
// and the bundle watcher debounces file events through one. Tests use
// Fake so that an animation that takes 300ms in production completes
// with a single Advance call:
//
//	fake := clock.Fake(time.Date(2026, 1, 14, 14, 0, 0, 0, time.UTC))
//	session := listview.NewSession(fake, listview.DefaultTiming, nil)
//	session.Select("847")
//	fake.Advance(10 * time.Millisecond) // Opening -> Open
//
// AfterFunc callbacks on a FakeClock run synchronously inside Advance,
// in deadline order.
package clock
