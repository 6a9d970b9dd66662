// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scalefield/console/lib/listview"
	"github.com/scalefield/console/lib/tui"
)

// Column is one column of a list page.
type Column[T any] struct {
	Title string

	// Width is the fixed width in columns. Zero columns share what the
	// fixed ones leave.
	Width int

	Cell func(T) string

	// Status, if set, colors the cell with the tone of the returned
	// status value.
	Status func(T) string

	// Search marks the cell as searchable: the first match of the
	// search query is highlighted.
	Search bool
}

// columnGap separates adjacent columns.
const columnGap = 2

// minFlexWidth is the narrowest a flexible column gets.
const minFlexWidth = 6

// layoutColumns assigns a width to every column so the row fills
// total columns (after the one-column marker).
func layoutColumns[T any](columns []Column[T], total int) []int {
	widths := make([]int, len(columns))
	fixed := 0
	flexCount := 0
	for index, column := range columns {
		if column.Width > 0 {
			widths[index] = column.Width
			fixed += column.Width
		} else {
			flexCount++
		}
	}
	remaining := total - 1 - fixed - columnGap*max(len(columns)-1, 0)
	if flexCount > 0 {
		share := max(remaining/flexCount, minFlexWidth)
		extra := max(remaining-share*flexCount, 0)
		for index, column := range columns {
			if column.Width > 0 {
				continue
			}
			widths[index] = share
			if extra > 0 {
				widths[index]++
				extra--
			}
		}
	}
	return widths
}

// rowState carries what a row's styling depends on besides the record.
type rowState struct {
	cursor    bool
	displayed bool
	heat      float64
	query     string
}

// renderRow draws one record as a row of exactly width columns.
func renderRow[T any](record T, columns []Column[T], widths []int, width int, state rowState, theme tui.Theme) string {
	base := lipgloss.NewStyle().Foreground(theme.NormalText)
	switch {
	case state.cursor:
		base = base.Background(theme.SelectedBackground).Foreground(theme.SelectedForeground)
	case state.heat > 0:
		base = base.Background(theme.HotAccent)
	}

	marker := base.Render(" ")
	if state.displayed {
		marker = base.Foreground(theme.Accent).Render("▌")
	}

	var row strings.Builder
	row.WriteString(marker)
	used := 1
	for index, column := range columns {
		if index > 0 {
			if used+columnGap >= width {
				break
			}
			row.WriteString(base.Render(strings.Repeat(" ", columnGap)))
			used += columnGap
		}
		cellWidth := min(widths[index], width-used)
		if cellWidth <= 0 {
			break
		}
		style := base
		if column.Status != nil {
			style = style.Foreground(theme.StatusColor(column.Status(record)))
		}
		text := fit(column.Cell(record), cellWidth)
		if column.Search && state.query != "" {
			row.WriteString(highlightMatches(text, listview.MatchPositions(text, state.query), style, theme))
		} else {
			row.WriteString(style.Render(text))
		}
		used += cellWidth
	}
	if used < width {
		row.WriteString(base.Render(strings.Repeat(" ", width-used)))
	}
	return row.String()
}

// renderHeaderRow draws the column titles.
func renderHeaderRow[T any](columns []Column[T], widths []int, width int, theme tui.Theme) string {
	parts := make([]string, len(columns))
	for index, column := range columns {
		parts[index] = fit(strings.ToUpper(column.Title), widths[index])
	}
	line := " " + strings.Join(parts, strings.Repeat(" ", columnGap))
	return lipgloss.NewStyle().Bold(true).Foreground(theme.FaintText).Render(fit(line, width))
}

// highlightMatches renders text with the runes at positions on the
// search highlight background.
func highlightMatches(text string, positions []int, style lipgloss.Style, theme tui.Theme) string {
	if len(positions) == 0 {
		return style.Render(text)
	}
	matched := make(map[int]bool, len(positions))
	for _, position := range positions {
		matched[position] = true
	}
	highlighted := style.Background(theme.SearchHighlightBackground).Bold(true)

	var result strings.Builder
	var run []rune
	runMatched := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runMatched {
			result.WriteString(highlighted.Render(string(run)))
		} else {
			result.WriteString(style.Render(string(run)))
		}
		run = run[:0]
	}
	for index, character := range []rune(text) {
		if matched[index] != runMatched {
			flush()
			runMatched = matched[index]
		}
		run = append(run, character)
	}
	flush()
	return result.String()
}
