// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock that starts at initial and only moves when
// Advance is called.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for tests. Safe for concurrent
// use. Do not call Advance from inside an AfterFunc callback.
type FakeClock struct {
	mu       sync.Mutex
	current  time.Time
	sequence uint64
	pending  []*pendingCall
}

// pendingCall is one registered After or AfterFunc. Exactly one of
// channel and callback is set.
type pendingCall struct {
	deadline time.Time
	sequence uint64
	channel  chan time.Time
	callback func()
	done     bool
}

// Now returns the current fake time.
func (fake *FakeClock) Now() time.Time {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.current
}

// After returns a channel that receives once the clock has advanced
// by d. Non-positive durations are ready immediately.
func (fake *FakeClock) After(d time.Duration) <-chan time.Time {
	fake.mu.Lock()
	defer fake.mu.Unlock()

	channel := make(chan time.Time, 1)
	if d <= 0 {
		channel <- fake.current
		return channel
	}
	fake.registerLocked(d, &pendingCall{channel: channel})
	return channel
}

// AfterFunc schedules f to run during the Advance call that crosses
// its deadline. Non-positive durations run f before AfterFunc returns.
func (fake *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return &Timer{stopFunc: func() bool { return false }}
	}

	call := &pendingCall{callback: f}
	fake.mu.Lock()
	fake.registerLocked(d, call)
	fake.mu.Unlock()

	return &Timer{stopFunc: func() bool {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		if call.done {
			return false
		}
		call.done = true
		return true
	}}
}

// Advance moves the clock forward by d and fires every pending call
// whose deadline is at or before the new time, earliest first. Calls
// registered by a callback that fall inside the window fire in the
// same Advance.
func (fake *FakeClock) Advance(d time.Duration) {
	fake.mu.Lock()
	target := fake.current.Add(d)
	fake.mu.Unlock()

	for {
		call := fake.nextDue(target)
		if call == nil {
			break
		}
		if call.callback != nil {
			call.callback()
			continue
		}
		select {
		case call.channel <- call.deadline:
		default:
		}
	}

	fake.mu.Lock()
	fake.current = target
	fake.mu.Unlock()
}

// PendingCount returns the number of registered calls that have not
// fired or been stopped.
func (fake *FakeClock) PendingCount() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	count := 0
	for _, call := range fake.pending {
		if !call.done {
			count++
		}
	}
	return count
}

func (fake *FakeClock) registerLocked(d time.Duration, call *pendingCall) {
	fake.sequence++
	call.deadline = fake.current.Add(d)
	call.sequence = fake.sequence
	fake.pending = append(fake.pending, call)
}

// nextDue pops the earliest call due at or before target and moves
// the clock to its deadline, so callbacks observe the time they were
// scheduled for.
func (fake *FakeClock) nextDue(target time.Time) *pendingCall {
	fake.mu.Lock()
	defer fake.mu.Unlock()

	live := fake.pending[:0]
	for _, call := range fake.pending {
		if !call.done {
			live = append(live, call)
		}
	}
	fake.pending = live

	sort.SliceStable(fake.pending, func(i, j int) bool {
		left, right := fake.pending[i], fake.pending[j]
		if left.deadline.Equal(right.deadline) {
			return left.sequence < right.sequence
		}
		return left.deadline.Before(right.deadline)
	})

	if len(fake.pending) == 0 || fake.pending[0].deadline.After(target) {
		return nil
	}
	call := fake.pending[0]
	call.done = true
	fake.pending = fake.pending[1:]
	if call.deadline.After(fake.current) {
		fake.current = call.deadline
	}
	return call
}
