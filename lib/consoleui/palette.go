// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scalefield/console/lib/tui"
)

// paletteEntry is a route offered by the command palette.
type paletteEntry struct {
	route string
	title string
}

// palette is the ":" route jumper. Typed text is matched fuzzily
// against page titles and route names; enter goes to the best match.
type palette struct {
	entries []paletteEntry
	query   string
	matches []int
	cursor  int
}

func newPalette(entries []paletteEntry) *palette {
	palette := &palette{entries: entries}
	palette.rank()
	return palette
}

func (palette *palette) rank() {
	palette.cursor = 0
	if palette.query == "" {
		palette.matches = make([]int, len(palette.entries))
		for index := range palette.entries {
			palette.matches[index] = index
		}
		return
	}
	candidates := make([]string, len(palette.entries))
	for index, entry := range palette.entries {
		candidates[index] = entry.title + " " + entry.route
	}
	palette.matches = tui.RankFuzzy(candidates, palette.query)
}

// Selected returns the route under the cursor, or "" when nothing
// matches.
func (palette *palette) Selected() string {
	if palette.cursor < 0 || palette.cursor >= len(palette.matches) {
		return ""
	}
	return palette.entries[palette.matches[palette.cursor]].route
}

// paletteResult is what a key did to the palette.
type paletteResult int

const (
	paletteOpen paletteResult = iota
	paletteCancelled
	paletteChosen
)

func (palette *palette) HandleKey(msg tea.KeyMsg) paletteResult {
	switch msg.Type {
	case tea.KeyEsc:
		return paletteCancelled
	case tea.KeyEnter:
		if palette.Selected() == "" {
			return paletteCancelled
		}
		return paletteChosen
	case tea.KeyUp, tea.KeyCtrlP:
		if palette.cursor > 0 {
			palette.cursor--
		}
	case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
		if palette.cursor < len(palette.matches)-1 {
			palette.cursor++
		}
	case tea.KeyBackspace:
		if palette.query == "" {
			return paletteCancelled
		}
		runes := []rune(palette.query)
		palette.query = string(runes[:len(runes)-1])
		palette.rank()
	case tea.KeySpace:
		palette.query += " "
		palette.rank()
	case tea.KeyRunes:
		palette.query += string(msg.Runes)
		palette.rank()
	}
	return paletteOpen
}

// Render draws the palette box as overlay lines of equal width.
func (palette *palette) Render(theme tui.Theme, width int) []string {
	background := lipgloss.NewStyle().Background(theme.TooltipBackground).Foreground(theme.TooltipForeground)
	selected := lipgloss.NewStyle().Background(theme.SelectedBackground).Foreground(theme.SelectedForeground)
	inner := width - 2

	prompt := lipgloss.NewStyle().Background(theme.TooltipBackground).Foreground(theme.HeaderForeground).Bold(true).Render(": ")
	lines := []string{tui.PadOverlayLine(prompt+background.Render(palette.query+"▎"), inner, background)}
	if len(palette.matches) == 0 {
		lines = append(lines, tui.PadOverlayLine(background.Render("no matching page"), inner, background))
	}
	for position, index := range palette.matches {
		entry := palette.entries[index]
		style := background
		if position == palette.cursor {
			style = selected
		}
		label := fit(entry.title, max(inner-len(entry.route)-1, 1)) + " " + entry.route
		lines = append(lines, tui.PadOverlayLine(style.Render(label), inner, style))
	}
	return lines
}
