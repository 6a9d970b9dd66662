// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scalefield/console/lib/tui"
)

// reportView is the scrolling body of a read-only page. The owner
// renders the whole report and the view shows a window of it with a
// scrollbar on the right edge.
type reportView struct {
	viewport viewport.Model
	width    int
	height   int
}

func newReportView() reportView {
	return reportView{viewport: viewport.New(0, 0)}
}

// contentWidth is the width the owner renders at, leaving a column
// for the scrollbar.
func (report *reportView) contentWidth() int {
	return max(report.width-1, 1)
}

func (report *reportView) SetSize(width, height int) {
	report.width = width
	report.height = height
	report.viewport.Width = report.contentWidth()
	report.viewport.Height = max(height, 1)
}

// SetContent replaces the report. The scroll position is kept, clamped
// to the new length, unless reset is set.
func (report *reportView) SetContent(content string, reset bool) {
	offset := report.viewport.YOffset
	report.viewport.SetContent(content)
	if reset {
		report.viewport.GotoTop()
		return
	}
	maxOffset := max(report.viewport.TotalLineCount()-report.viewport.Height, 0)
	report.viewport.SetYOffset(min(offset, maxOffset))
}

// HandleKey scrolls for the movement bindings and reports whether the
// key was one of them.
func (report *reportView) HandleKey(msg tea.KeyMsg, keys KeyMap) bool {
	switch {
	case key.Matches(msg, keys.Up):
		report.viewport.ScrollUp(1)
	case key.Matches(msg, keys.Down):
		report.viewport.ScrollDown(1)
	case key.Matches(msg, keys.PageUp):
		report.viewport.HalfPageUp()
	case key.Matches(msg, keys.PageDown):
		report.viewport.HalfPageDown()
	case key.Matches(msg, keys.Home):
		report.viewport.GotoTop()
	case key.Matches(msg, keys.End):
		report.viewport.GotoBottom()
	default:
		return false
	}
	return true
}

func (report *reportView) Offset() int { return report.viewport.YOffset }

func (report *reportView) View(theme tui.Theme) string {
	if report.width <= 0 || report.height <= 0 {
		return ""
	}
	body := tui.PadLines(report.viewport.View(), report.contentWidth(), report.height)
	total := report.viewport.TotalLineCount()
	if total <= report.height {
		return tui.PadLines(body, report.width, report.height)
	}
	scrollbar := strings.Split(tui.RenderScrollbar(theme, report.height, total, report.height, report.viewport.YOffset, false), "\n")
	lines := strings.Split(body, "\n")
	for index := range lines {
		lines[index] += scrollbar[index]
	}
	return strings.Join(lines, "\n")
}
