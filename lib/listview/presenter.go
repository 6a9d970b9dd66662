// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package listview

import (
	"time"

	"github.com/scalefield/console/lib/tui"
)

// Presenter positions the detail panel over the list. Offset is the
// number of panel columns pushed past the right edge of the screen:
// PanelWidth when fully hidden, zero when fully shown.
type Presenter struct {
	// PanelWidth is the panel's width in columns.
	PanelWidth int

	// Duration is the slide length, normally the controller's
	// ExitDuration.
	Duration time.Duration
}

// NewPresenter creates a presenter for a panel of the given width that
// slides over timing.ExitDuration.
func NewPresenter(panelWidth int, timing Timing) Presenter {
	return Presenter{PanelWidth: panelWidth, Duration: timing.ExitDuration}
}

// Offset returns the panel's horizontal offset at now.
//
//   - no displayed record: fully hidden
//   - Opening: hidden, unless the panel was already showing (swap) or
//     was reopened part way through sliding out (Shown)
//   - Open: slides in from Since, starting at Shown, unless swapped
//   - Closing: slides out from Since
func (presenter Presenter) Offset(snapshot Snapshot, now time.Time) int {
	width := presenter.PanelWidth
	if !snapshot.Visible() {
		return width
	}
	switch snapshot.Phase {
	case Opening:
		if snapshot.Swapped {
			return 0
		}
		return scale(width, 1-snapshot.Shown)
	case Open:
		if snapshot.Swapped {
			return 0
		}
		hidden := 1 - snapshot.Shown
		return scale(width, hidden*(1-tui.EaseOutCubic(presenter.progress(snapshot, now))))
	case Closing:
		return scale(width, tui.EaseOutCubic(presenter.progress(snapshot, now)))
	default:
		return width
	}
}

// Animating reports whether the offset is still changing, which is
// when the host needs frame ticks.
func (presenter Presenter) Animating(snapshot Snapshot, now time.Time) bool {
	if !snapshot.Visible() {
		return false
	}
	switch snapshot.Phase {
	case Open:
		return !snapshot.Swapped && presenter.progress(snapshot, now) < 1
	case Closing:
		return presenter.progress(snapshot, now) < 1
	default:
		return false
	}
}

// Compose splices the rendered panel over the right side of view. The
// view is returned unchanged when there is no displayed record. Lines
// of panel that fall past viewWidth are clipped.
func (presenter Presenter) Compose(view string, viewWidth int, panel []string, snapshot Snapshot, now time.Time) string {
	if !snapshot.Visible() || len(panel) == 0 {
		return view
	}
	offset := presenter.Offset(snapshot, now)
	if offset >= presenter.PanelWidth {
		return view
	}
	anchorX := viewWidth - presenter.PanelWidth + offset
	return tui.SpliceOverlayClipped(view, panel, anchorX, 0, viewWidth)
}

func (presenter Presenter) progress(snapshot Snapshot, now time.Time) float64 {
	if presenter.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(snapshot.Since)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= presenter.Duration {
		return 1
	}
	return float64(elapsed) / float64(presenter.Duration)
}

func scale(width int, fraction float64) int {
	if fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return width
	}
	return int(float64(width)*fraction + 0.5)
}
