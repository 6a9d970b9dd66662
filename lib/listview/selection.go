// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package listview

import (
	"fmt"
	"time"

	"github.com/scalefield/console/lib/tui"
)

// Phase is the animation phase of the detail panel.
type Phase int

const (
	// Closed: no panel. SelectedID and DisplayedID are both empty.
	Closed Phase = iota

	// Opening: the panel is mounted off-screen, waiting for the enter
	// timer before it starts to slide.
	Opening

	// Open: the panel slides in over the slide duration and then
	// stays on-screen.
	Open

	// Closing: the selection was cleared and the panel is sliding
	// out. DisplayedID still names the record being rendered.
	Closing
)

// String returns the phase name.
func (phase Phase) String() string {
	switch phase {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("phase(%d)", int(phase))
	}
}

// TimerKind identifies what an expired timer completes.
type TimerKind int

const (
	// EnterTimer completes Opening -> Open.
	EnterTimer TimerKind = iota

	// ExitTimer completes Closing -> Closed.
	ExitTimer
)

// Timer is a delayed transition requested by the controller. The host
// waits Delay and hands the timer back to [Controller.Fire]. A timer
// whose Generation no longer matches the controller is ignored.
type Timer struct {
	Kind       TimerKind
	Generation uint64
	Delay      time.Duration
}

// Timing holds the panel animation durations.
type Timing struct {
	// EnterDelay lets the panel mount off-screen before it starts
	// sliding in.
	EnterDelay time.Duration

	// ExitDuration is the length of the slide. The exit timer clears
	// the displayed record when it elapses.
	ExitDuration time.Duration
}

// DefaultTiming matches the dashboard's transition: a 10ms mount delay
// and a 300ms slide.
var DefaultTiming = Timing{
	EnterDelay:   10 * time.Millisecond,
	ExitDuration: 300 * time.Millisecond,
}

// Snapshot is a read-only view of the controller state.
type Snapshot struct {
	Phase       Phase
	SelectedID  string
	DisplayedID string

	// Since is when the current phase began. The presenter measures
	// slide progress from it.
	Since time.Time

	// Swapped is true when the current Opening or Open phase began by
	// switching records while the panel was already on-screen. The
	// panel stays in place and only its content changes.
	Swapped bool

	// Shown is the fraction of the panel already on-screen when the
	// current slide-in began. It is zero for a fresh open and positive
	// when a record is selected while the panel is still sliding out,
	// so the slide-in continues from where the slide-out stopped.
	Shown float64
}

// Visible reports whether a panel should be rendered at all.
func (snapshot Snapshot) Visible() bool {
	return snapshot.DisplayedID != ""
}

// Controller is the selection state machine behind a list view. It
// tracks the logically selected record separately from the record the
// panel is rendering so that the panel keeps its content while it
// slides out.
//
// Controller never sleeps or spawns goroutines. Transitions that need
// a delay return a [Timer]; the host arms it and later passes it to
// Fire. Every transition bumps the generation, which makes any timer
// issued before it stale.
//
// The controller does not check ids against a store. Callers select
// ids taken from the visible list.
//
// A Controller must be used from one goroutine at a time; see
// [Session] for a locked host.
type Controller struct {
	timing      Timing
	phase       Phase
	selectedID  string
	displayedID string
	since       time.Time
	swapped     bool
	shown       float64
	generation  uint64
}

// NewController creates a controller in the Closed phase. Zero fields
// in timing fall back to [DefaultTiming].
func NewController(timing Timing) *Controller {
	if timing.EnterDelay <= 0 {
		timing.EnterDelay = DefaultTiming.EnterDelay
	}
	if timing.ExitDuration <= 0 {
		timing.ExitDuration = DefaultTiming.ExitDuration
	}
	return &Controller{timing: timing}
}

// Timing returns the durations the controller schedules with.
func (controller *Controller) Timing() Timing {
	return controller.timing
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:       controller.phase,
		SelectedID:  controller.selectedID,
		DisplayedID: controller.displayedID,
		Since:       controller.since,
		Swapped:     controller.swapped,
		Shown:       controller.shown,
	}
}

// Phase returns the current phase.
func (controller *Controller) Phase() Phase { return controller.phase }

// SelectedID returns the logically selected id, or "".
func (controller *Controller) SelectedID() string { return controller.selectedID }

// DisplayedID returns the id the panel renders, or "".
func (controller *Controller) DisplayedID() string { return controller.displayedID }

// Select handles a click on a row. Selecting the record that is
// already selected toggles the panel closed; selecting another record
// swaps the panel content immediately and restarts the slide-in;
// selecting while the panel slides out reopens it. The returned timer
// must be armed by the host.
func (controller *Controller) Select(id string, now time.Time) Timer {
	switch controller.phase {
	case Open, Opening:
		if id == controller.selectedID {
			return controller.beginClosing(now)
		}
		return controller.beginOpening(id, now)
	default:
		return controller.beginOpening(id, now)
	}
}

// Close dismisses the panel. Returns false (and no timer) when the
// panel is already closed or closing.
func (controller *Controller) Close(now time.Time) (Timer, bool) {
	switch controller.phase {
	case Open, Opening:
		return controller.beginClosing(now), true
	default:
		return Timer{}, false
	}
}

// Fire applies an expired timer. Returns true if the timer was current
// and changed the phase; stale timers and timers that do not match the
// phase are ignored.
func (controller *Controller) Fire(timer Timer, now time.Time) bool {
	if timer.Generation != controller.generation {
		return false
	}
	switch {
	case timer.Kind == EnterTimer && controller.phase == Opening:
		controller.phase = Open
		controller.since = now
		controller.generation++
		return true
	case timer.Kind == ExitTimer && controller.phase == Closing:
		controller.phase = Closed
		controller.displayedID = ""
		controller.swapped = false
		controller.shown = 0
		controller.since = now
		controller.generation++
		return true
	default:
		return false
	}
}

// Dispose tears the controller down when its view unmounts. Pending
// timers become stale and the state returns to Closed.
func (controller *Controller) Dispose() {
	controller.generation++
	controller.phase = Closed
	controller.selectedID = ""
	controller.displayedID = ""
	controller.since = time.Time{}
	controller.swapped = false
	controller.shown = 0
}

// Retain closes the panel immediately, without animation, if the
// displayed record is no longer in the store. Used after a reload
// replaces the entity set. Returns true if the state changed.
func (controller *Controller) Retain(exists func(id string) bool) bool {
	if controller.displayedID == "" || exists(controller.displayedID) {
		return false
	}
	controller.Dispose()
	return true
}

func (controller *Controller) beginOpening(id string, now time.Time) Timer {
	switch {
	case controller.phase == Closing && controller.displayedID != "":
		controller.shown = controller.closingShown(now)
	case controller.phase == Opening:
		// Keep the fraction of an interrupted reopen.
	default:
		controller.shown = 0
	}
	controller.swapped = controller.phase == Open ||
		(controller.phase == Opening && controller.swapped)
	controller.generation++
	controller.phase = Opening
	controller.selectedID = id
	controller.displayedID = id
	controller.since = now
	return Timer{Kind: EnterTimer, Generation: controller.generation, Delay: controller.timing.EnterDelay}
}

func (controller *Controller) beginClosing(now time.Time) Timer {
	controller.generation++
	controller.phase = Closing
	controller.selectedID = ""
	controller.since = now
	return Timer{Kind: ExitTimer, Generation: controller.generation, Delay: controller.timing.ExitDuration}
}

// closingShown is the fraction of the panel still on-screen at now
// while it slides out, following the presenter's ease-out curve over
// ExitDuration.
func (controller *Controller) closingShown(now time.Time) float64 {
	elapsed := now.Sub(controller.since)
	if elapsed <= 0 {
		return 1
	}
	if elapsed >= controller.timing.ExitDuration {
		return 0
	}
	return 1 - tui.EaseOutCubic(float64(elapsed)/float64(controller.timing.ExitDuration))
}
