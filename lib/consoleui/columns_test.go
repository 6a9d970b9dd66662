// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/scalefield/console/lib/tui"
)

type testRow struct {
	name   string
	status string
}

var testColumns = []Column[testRow]{
	{Title: "Name", Cell: func(row testRow) string { return row.name }, Search: true},
	{Title: "Status", Width: 10, Cell: func(row testRow) string { return row.status }, Status: func(row testRow) string { return row.status }},
	{Title: "Note", Cell: func(testRow) string { return "" }},
}

func TestLayoutColumns(t *testing.T) {
	widths := layoutColumns(testColumns, 61)
	// 61 total minus the marker, the fixed column, and two gaps leaves
	// 46 for the two flexible columns.
	if widths[1] != 10 {
		t.Errorf("fixed width = %d, want 10", widths[1])
	}
	if widths[0]+widths[2] != 46 {
		t.Errorf("flexible widths = %d + %d, want 46 total", widths[0], widths[2])
	}
	if widths[0] != 23 || widths[2] != 23 {
		t.Errorf("widths = %v, want an even split", widths)
	}
}

func TestLayoutColumnsNarrow(t *testing.T) {
	widths := layoutColumns(testColumns, 12)
	if widths[0] != minFlexWidth || widths[2] != minFlexWidth {
		t.Errorf("widths = %v, flexible columns should not shrink below %d", widths, minFlexWidth)
	}
}

func TestRenderRowWidth(t *testing.T) {
	row := testRow{name: "payment-processor", status: "failed"}
	for _, width := range []int{8, 9, 12, 40, 61, 100} {
		widths := layoutColumns(testColumns, width)
		for _, state := range []rowState{{}, {cursor: true}, {displayed: true}, {heat: 0.5, query: "pay"}} {
			line := renderRow(row, testColumns, widths, width, state, tui.DefaultTheme)
			if got := ansi.StringWidth(line); got != width {
				t.Errorf("width %d state %+v: row is %d wide", width, state, got)
			}
		}
	}
}

func TestRenderRowContent(t *testing.T) {
	widths := layoutColumns(testColumns, 61)
	line := ansi.Strip(renderRow(testRow{name: "api-gateway", status: "success"}, testColumns, widths, 61, rowState{displayed: true}, tui.DefaultTheme))
	if !strings.HasPrefix(line, "▌api-gateway") {
		t.Errorf("row = %q", line)
	}
	if !strings.Contains(line, "success") {
		t.Errorf("row = %q, want the status cell", line)
	}
}

func TestRenderHeaderRow(t *testing.T) {
	widths := layoutColumns(testColumns, 61)
	header := ansi.Strip(renderHeaderRow(testColumns, widths, 61, tui.DefaultTheme))
	if ansi.StringWidth(header) != 61 {
		t.Errorf("header width = %d", ansi.StringWidth(header))
	}
	for _, want := range []string{"NAME", "STATUS", "NOTE"} {
		if !strings.Contains(header, want) {
			t.Errorf("header should contain %q: %q", want, header)
		}
	}
}

func TestFit(t *testing.T) {
	if got := fit("abc", 5); got != "abc  " {
		t.Errorf("fit pads: %q", got)
	}
	if got := fit("abcdef", 4); ansi.StringWidth(got) != 4 || !strings.HasSuffix(got, "…") {
		t.Errorf("fit truncates: %q", got)
	}
	if got := fit("abc", 0); got != "" {
		t.Errorf("fit at zero width: %q", got)
	}
}

func TestRenderRowDropsGapPastWidth(t *testing.T) {
	// The first column fills everything after the marker but one
	// column, which is too narrow for a gap and a second cell.
	columns := []Column[testRow]{
		{Title: "Name", Width: 6, Cell: func(row testRow) string { return row.name }},
		{Title: "Status", Width: 6, Cell: func(row testRow) string { return row.status }},
	}
	line := renderRow(testRow{name: "api-gateway", status: "failed"}, columns, []int{6, 6}, 8, rowState{}, tui.DefaultTheme)
	if got := ansi.StringWidth(line); got != 8 {
		t.Errorf("row is %d wide, want 8", got)
	}
	if strings.Contains(ansi.Strip(line), "f") {
		t.Errorf("row = %q, the second cell should be dropped", ansi.Strip(line))
	}
}
