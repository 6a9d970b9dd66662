// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("EaseOutCubic(0) = %v", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("EaseOutCubic(1) = %v", got)
	}
	if got := EaseOutCubic(-1); got != 0 {
		t.Errorf("EaseOutCubic(-1) = %v, want clamped 0", got)
	}
	if got := EaseOutCubic(0.5); got != 0.875 {
		t.Errorf("EaseOutCubic(0.5) = %v, want 0.875", got)
	}
	previous := 0.0
	for step := 1; step <= 10; step++ {
		value := EaseOutCubic(float64(step) / 10)
		if value < previous {
			t.Fatalf("EaseOutCubic is not monotonic at step %d", step)
		}
		previous = value
	}
}

func TestHeatTrackerDecay(t *testing.T) {
	tracker := NewHeatTracker()
	start := time.Date(2026, 1, 14, 14, 0, 0, 0, time.UTC)

	if heat := tracker.Heat("847", start); heat != 0 {
		t.Errorf("heat before ignite = %v", heat)
	}
	tracker.Ignite("847", start)
	if heat := tracker.Heat("847", start); heat != 1 {
		t.Errorf("heat at ignition = %v, want 1", heat)
	}
	half := start.Add(HeatDecayDuration / 2)
	if heat := tracker.Heat("847", half); heat < 0.49 || heat > 0.51 {
		t.Errorf("heat at half decay = %v, want about 0.5", heat)
	}
	if !tracker.HasHot(half) {
		t.Error("HasHot should be true mid-decay")
	}
	end := start.Add(HeatDecayDuration)
	if tracker.HasHot(end) {
		t.Error("HasHot should be false after decay")
	}
	if heat := tracker.Heat("847", end); heat != 0 {
		t.Errorf("heat after decay = %v", heat)
	}
}
