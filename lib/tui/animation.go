// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// FrameInterval is the re-render interval while a panel slides.
// 16ms is roughly one frame at 60Hz.
const FrameInterval = 16 * time.Millisecond

// EaseOutCubic maps linear progress in [0, 1] onto a curve that starts
// fast and settles gently, the shape of a CSS ease-out transition.
// Values outside the range are clamped.
func EaseOutCubic(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	inverse := 1 - progress
	return 1 - inverse*inverse*inverse
}

// HeatDecayDuration is how long a row glows after its record changed
// on reload. Heat starts at 1.0 and decays linearly to 0.0.
const HeatDecayDuration = 3 * time.Second

// HeatTickInterval is the re-render interval while any row is hot.
const HeatTickInterval = 100 * time.Millisecond

// HeatTracker maps record ids to the time they last changed, for
// highlighting rows after the data source reloads. State is computed
// from an explicit now so rendering stays deterministic in tests.
type HeatTracker struct {
	ignitions map[string]time.Time
}

// NewHeatTracker creates an empty heat tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{ignitions: make(map[string]time.Time)}
}

// Ignite marks a record as changed at now.
func (tracker *HeatTracker) Ignite(id string, now time.Time) {
	tracker.ignitions[id] = now
}

// Heat returns 1.0 at ignition, decaying linearly to 0.0 over
// [HeatDecayDuration]. Records never ignited have no heat.
func (tracker *HeatTracker) Heat(id string, now time.Time) float64 {
	ignition, exists := tracker.ignitions[id]
	if !exists {
		return 0
	}
	elapsed := now.Sub(ignition)
	if elapsed >= HeatDecayDuration {
		return 0
	}
	return 1 - float64(elapsed)/float64(HeatDecayDuration)
}

// HasHot reports whether any record still has heat, meaning the tick
// timer should keep running. Fully decayed entries are dropped.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	hot := false
	for id, ignition := range tracker.ignitions {
		if now.Sub(ignition) < HeatDecayDuration {
			hot = true
			continue
		}
		delete(tracker.ignitions, id)
	}
	return hot
}
