// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package listview

import (
	"sync"

	"github.com/scalefield/console/lib/clock"
)

// Session hosts a [Controller] on a [clock.Clock]. It arms the timers
// the controller asks for, feeds them back when they expire, and stops
// whatever is still pending on Dispose. All methods are safe for
// concurrent use.
//
// The terminal UI drives its controllers through bubbletea commands
// instead; Session serves embedders without an event loop and makes
// the timed behavior testable with a fake clock.
type Session struct {
	mu         sync.Mutex
	clock      clock.Clock
	controller *Controller
	pending    *clock.Timer
	disposed   bool
	onChange   func(Snapshot)
}

// NewSession creates a Closed session. onChange, if non-nil, is called
// after every transition (including timer-driven ones) without the
// session lock held.
func NewSession(source clock.Clock, timing Timing, onChange func(Snapshot)) *Session {
	return &Session{
		clock:      source,
		controller: NewController(timing),
		onChange:   onChange,
	}
}

// Select forwards a row selection to the controller. Ignored after
// Dispose.
func (session *Session) Select(id string) {
	session.mu.Lock()
	if session.disposed {
		session.mu.Unlock()
		return
	}
	timer := session.controller.Select(id, session.clock.Now())
	session.armLocked(timer)
	snapshot := session.controller.Snapshot()
	session.mu.Unlock()

	session.notify(snapshot)
}

// Close dismisses the panel if it is opening or open.
func (session *Session) Close() {
	session.mu.Lock()
	if session.disposed {
		session.mu.Unlock()
		return
	}
	timer, changed := session.controller.Close(session.clock.Now())
	if !changed {
		session.mu.Unlock()
		return
	}
	session.armLocked(timer)
	snapshot := session.controller.Snapshot()
	session.mu.Unlock()

	session.notify(snapshot)
}

// Snapshot returns the current controller state.
func (session *Session) Snapshot() Snapshot {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.controller.Snapshot()
}

// Dispose stops the pending timer and resets the controller. The
// session ignores all further calls.
func (session *Session) Dispose() {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.disposed {
		return
	}
	session.disposed = true
	session.pending.Stop()
	session.pending = nil
	session.controller.Dispose()
}

// armLocked replaces the pending timer. Only the most recent timer can
// still be current, so the previous one is stopped rather than left to
// fire stale.
func (session *Session) armLocked(timer Timer) {
	session.pending.Stop()
	session.pending = session.clock.AfterFunc(timer.Delay, func() {
		session.fire(timer)
	})
}

func (session *Session) fire(timer Timer) {
	session.mu.Lock()
	if session.disposed {
		session.mu.Unlock()
		return
	}
	if !session.controller.Fire(timer, session.clock.Now()) {
		session.mu.Unlock()
		return
	}
	session.pending = nil
	snapshot := session.controller.Snapshot()
	session.mu.Unlock()

	session.notify(snapshot)
}

func (session *Session) notify(snapshot Snapshot) {
	if session.onChange != nil {
		session.onChange(snapshot)
	}
}
