// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package listview

import (
	"testing"
	"time"

	"github.com/scalefield/console/lib/clock"
)

func TestSessionDrivesTimersFromClock(t *testing.T) {
	fake := clock.Fake(epoch)
	var phases []Phase
	session := NewSession(fake, DefaultTiming, func(snapshot Snapshot) {
		phases = append(phases, snapshot.Phase)
	})

	session.Select("847")
	if session.Snapshot().Phase != Opening {
		t.Fatalf("phase = %v, want opening", session.Snapshot().Phase)
	}
	fake.Advance(10 * time.Millisecond)
	if session.Snapshot().Phase != Open {
		t.Fatalf("phase = %v after enter delay, want open", session.Snapshot().Phase)
	}

	session.Select("847")
	fake.Advance(299 * time.Millisecond)
	if snapshot := session.Snapshot(); snapshot.Phase != Closing || snapshot.DisplayedID != "847" {
		t.Fatalf("before exit: %+v", snapshot)
	}
	fake.Advance(time.Millisecond)
	if snapshot := session.Snapshot(); snapshot.Phase != Closed || snapshot.DisplayedID != "" {
		t.Fatalf("after exit: %+v", snapshot)
	}

	want := []Phase{Opening, Open, Closing, Closed}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for index := range want {
		if phases[index] != want[index] {
			t.Errorf("phases[%d] = %v, want %v", index, phases[index], want[index])
		}
	}
}

// Switching records while open goes straight from one record to the
// other with no Closed phase between.
func TestSessionSwapNeverCloses(t *testing.T) {
	fake := clock.Fake(epoch)
	var phases []Phase
	session := NewSession(fake, DefaultTiming, func(snapshot Snapshot) {
		phases = append(phases, snapshot.Phase)
	})

	session.Select("847")
	fake.Advance(time.Second)
	session.Select("1203")
	fake.Advance(time.Second)

	for _, phase := range phases {
		if phase == Closed || phase == Closing {
			t.Fatalf("phases = %v, panel closed during swap", phases)
		}
	}
	if snapshot := session.Snapshot(); snapshot.DisplayedID != "1203" || snapshot.Phase != Open {
		t.Errorf("after swap: %+v", snapshot)
	}
}

func TestSessionSupersededTimerNeverFires(t *testing.T) {
	fake := clock.Fake(epoch)
	session := NewSession(fake, DefaultTiming, nil)

	session.Select("847")
	fake.Advance(10 * time.Millisecond)
	session.Close()
	fake.Advance(100 * time.Millisecond)
	session.Select("456")

	if count := fake.PendingCount(); count != 1 {
		t.Fatalf("PendingCount = %d, want only the enter timer", count)
	}
	fake.Advance(time.Second)
	if snapshot := session.Snapshot(); snapshot.Phase != Open || snapshot.DisplayedID != "456" {
		t.Errorf("after reopen: %+v", snapshot)
	}
}

func TestSessionDispose(t *testing.T) {
	fake := clock.Fake(epoch)
	notified := 0
	session := NewSession(fake, DefaultTiming, func(Snapshot) { notified++ })

	session.Select("847")
	session.Dispose()
	if count := fake.PendingCount(); count != 0 {
		t.Errorf("PendingCount after Dispose = %d, want 0", count)
	}
	fake.Advance(time.Second)
	session.Select("456")
	session.Close()
	session.Dispose()

	if notified != 1 {
		t.Errorf("notified %d times, want 1", notified)
	}
	if session.Snapshot().Visible() {
		t.Error("disposed session still shows a panel")
	}
}
