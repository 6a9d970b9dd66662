// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time operations the console's animation hosts
// and file watchers depend on. Production code injects Real(); tests
// inject Fake() and step time explicitly with Advance.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time once
	// duration d has elapsed. If d <= 0 the channel is ready
	// immediately.
	After(d time.Duration) <-chan time.Time

	// AfterFunc calls f once duration d has elapsed and returns a
	// Timer that can cancel the pending call. The real clock runs f
	// in its own goroutine; the fake clock runs it inside Advance.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the pending call. Returns false if the call already
// ran or the timer was already stopped.
func (timer *Timer) Stop() bool {
	if timer == nil || timer.stopFunc == nil {
		return false
	}
	return timer.stopFunc()
}
