// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"time"
)

// TB is the part of testing.TB the channel helpers use.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireReceive returns the next value from ch, failing the test if
// none arrives within timeout or ch is closed first.
//
//	testutil.RequireReceive(t, changed, 5*time.Second, "waiting for reload of %s", path)
func RequireReceive[T any](t TB, ch <-chan T, timeout time.Duration, description ...any) T {
	t.Helper()
	var zero T
	select {
	case value, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed before a value arrived: %s", describe(description))
		}
		return value
	case <-time.After(timeout):
		t.Fatalf("nothing received after %v: %s", timeout, describe(description))
	}
	return zero
}

// RequireClosed fails the test unless ch is closed (or yields a value)
// within timeout. Watchers report that they stopped this way.
//
//	testutil.RequireClosed(t, done, 5*time.Second, "watcher stopped")
func RequireClosed(t TB, ch <-chan struct{}, timeout time.Duration, description ...any) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatalf("channel still open after %v: %s", timeout, describe(description))
	}
}

// RequireQuiet fails the test if ch yields anything within window.
// Used to check that an event is filtered out, such as a write to a
// file next to the watched bundle.
//
//	testutil.RequireQuiet(t, changed, 100*time.Millisecond, "unrelated file")
func RequireQuiet[T any](t TB, ch <-chan T, window time.Duration, description ...any) {
	t.Helper()
	select {
	case value := <-ch:
		t.Fatalf("unexpected %v: %s", value, describe(description))
	case <-time.After(window):
	}
}

// describe renders the optional description: nothing, a plain value,
// or a format string and its arguments.
func describe(description []any) string {
	switch {
	case len(description) == 0:
		return "(no description)"
	case len(description) == 1:
		return fmt.Sprint(description[0])
	}
	if format, ok := description[0].(string); ok {
		return fmt.Sprintf(format, description[1:]...)
	}
	return fmt.Sprint(description...)
}
