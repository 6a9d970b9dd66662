// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/tui"
)

// Panel is the content of the detail panel for one record. It is a
// pure projection of the record and the bundle it came from; the
// panel keeps no state of its own.
type Panel struct {
	Title    string
	Subtitle string

	// Status is drawn as a colored badge after the title.
	Status string

	Sections []Section

	// Notes is markdown drawn after the sections.
	Notes string

	// Code is a payload drawn last, highlighted as CodeLanguage.
	Code         string
	CodeLanguage string

	Actions []console.Action
}

// Section is a headed group of label/value fields and free lines.
type Section struct {
	Heading string
	Fields  []Field
	Lines   []Line
}

// Field is one "label  value" row. A non-empty Status colors the value
// with the status tone.
type Field struct {
	Label  string
	Value  string
	Status string
}

// Line is a bulleted line with an optional right-aligned suffix.
type Line struct {
	Text   string
	Status string
	Suffix string
}

// panelHeaderLines is the fixed header: title, subtitle, separator.
const panelHeaderLines = 3

// panelFooterLines is the action bar: separator and buttons. Panels
// without actions have no footer.
const panelFooterLines = 2

// panelFrame is the horizontal chrome: left border, padding on both
// sides, scrollbar.
const panelFrame = 4

// detailPanel renders a [Panel] into a fixed rectangle. The body
// scrolls in a bubbles viewport below the fixed header.
type detailPanel struct {
	theme    tui.Theme
	width    int
	height   int
	viewport viewport.Model

	content  Panel
	recordID string
}

func newDetailPanel(theme tui.Theme) detailPanel {
	return detailPanel{theme: theme, viewport: viewport.New(0, 0)}
}

func (panel *detailPanel) contentWidth() int {
	return max(panel.width-panelFrame, 1)
}

func (panel *detailPanel) bodyHeight() int {
	height := panel.height - panelHeaderLines
	if len(panel.content.Actions) > 0 {
		height -= panelFooterLines
	}
	return max(height, 1)
}

// SetSize changes the panel rectangle and re-renders the body at the
// new width.
func (panel *detailPanel) SetSize(width, height int) {
	if width == panel.width && height == panel.height {
		return
	}
	panel.width = width
	panel.height = height
	panel.refresh(false)
}

// SetContent replaces the panel content. The scroll position is kept
// while the same record is shown and reset when the record changes.
func (panel *detailPanel) SetContent(recordID string, content Panel) {
	reset := recordID != panel.recordID
	panel.recordID = recordID
	panel.content = content
	panel.refresh(reset)
}

// Clear drops the content.
func (panel *detailPanel) Clear() {
	panel.recordID = ""
	panel.content = Panel{}
	panel.viewport.SetContent("")
	panel.viewport.GotoTop()
}

// Scroll moves the body by lines; negative scrolls up.
func (panel *detailPanel) Scroll(lines int) {
	if lines < 0 {
		panel.viewport.ScrollUp(-lines)
	} else {
		panel.viewport.ScrollDown(lines)
	}
}

func (panel *detailPanel) refresh(reset bool) {
	offset := panel.viewport.YOffset
	panel.viewport.Width = panel.contentWidth()
	panel.viewport.Height = panel.bodyHeight()
	panel.viewport.SetContent(renderPanelBody(panel.content, panel.theme, panel.contentWidth()))
	if reset {
		panel.viewport.GotoTop()
		return
	}
	maxOffset := max(panel.viewport.TotalLineCount()-panel.viewport.Height, 0)
	panel.viewport.SetYOffset(min(offset, maxOffset))
}

// Lines renders the panel as exactly height lines of exactly width
// columns. focusedAction is the index of the highlighted action
// button, or -1.
func (panel *detailPanel) Lines(focusedAction int) []string {
	theme := panel.theme
	width := panel.contentWidth()
	background := lipgloss.NewStyle().Background(theme.PanelBackground)
	border := lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")

	var content []string

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render(panel.content.Title)
	if panel.content.Status != "" {
		title += " " + statusBadge(panel.content.Status, theme)
	}
	closeHint := lipgloss.NewStyle().Foreground(theme.HelpText).Render("esc ✕")
	content = append(content, spread(title, closeHint, width))
	content = append(content, lipgloss.NewStyle().Foreground(theme.FaintText).Render(panel.content.Subtitle))
	content = append(content, separatorLine(theme, width))

	body := strings.Split(panel.viewport.View(), "\n")
	bodyHeight := panel.bodyHeight()
	for index := 0; index < bodyHeight; index++ {
		line := ""
		if index < len(body) {
			line = body[index]
		}
		content = append(content, line)
	}

	if len(panel.content.Actions) > 0 {
		content = append(content, separatorLine(theme, width))
		content = append(content, renderActionBar(panel.content.Actions, focusedAction, theme))
	}

	scrollbar := strings.Split(tui.RenderScrollbar(theme, bodyHeight,
		panel.viewport.TotalLineCount(), panel.viewport.Height, panel.viewport.YOffset, false), "\n")

	lines := make([]string, 0, panel.height)
	for index := 0; index < panel.height; index++ {
		line := ""
		if index < len(content) {
			line = content[index]
		}
		right := background.Render(" ")
		if bar := index - panelHeaderLines; bar >= 0 && bar < len(scrollbar) {
			right = scrollbar[bar]
		}
		lines = append(lines, border+tui.PadOverlayLine(line, width, background)+right)
	}
	return lines
}

func renderPanelBody(panel Panel, theme tui.Theme, width int) string {
	var blocks []string
	for _, section := range panel.Sections {
		if rendered := renderSection(section, theme, width); rendered != "" {
			blocks = append(blocks, rendered)
		}
	}
	if notes := renderNotes(panel.Notes, theme, width); notes != "" {
		blocks = append(blocks, sectionHeading("Notes", theme)+"\n"+notes)
	}
	if panel.Code != "" {
		blocks = append(blocks, strings.TrimRight(highlight(panel.Code, panel.CodeLanguage, theme), "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func sectionHeading(heading string, theme tui.Theme) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.FaintText).Render(strings.ToUpper(heading))
}

func renderSection(section Section, theme tui.Theme, width int) string {
	var lines []string
	if section.Heading != "" {
		lines = append(lines, sectionHeading(section.Heading, theme))
	}

	labelWidth := 0
	for _, field := range section.Fields {
		labelWidth = max(labelWidth, ansi.StringWidth(field.Label))
	}
	labelWidth = min(labelWidth, width/2)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	for _, field := range section.Fields {
		valueStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
		if field.Status != "" {
			valueStyle = valueStyle.Foreground(theme.StatusColor(field.Status))
		}
		label := fit(field.Label, labelWidth)
		value := ansi.Truncate(field.Value, max(width-labelWidth-3, 1), "…")
		lines = append(lines, labelStyle.Render(label)+"  "+valueStyle.Render(value))
	}

	for _, line := range section.Lines {
		markerColor := theme.BorderColor
		if line.Status != "" {
			markerColor = theme.StatusColor(line.Status)
		}
		left := lipgloss.NewStyle().Foreground(markerColor).Render("●") + " " +
			lipgloss.NewStyle().Foreground(theme.NormalText).Render(line.Text)
		right := lipgloss.NewStyle().Foreground(theme.FaintText).Render(line.Suffix)
		lines = append(lines, spread(left, right, width))
	}

	if len(lines) == 0 || (section.Heading != "" && len(lines) == 1) {
		return ""
	}
	return strings.Join(lines, "\n")
}

func renderActionBar(actions []console.Action, focused int, theme tui.Theme) string {
	buttons := make([]string, len(actions))
	for index, action := range actions {
		style := lipgloss.NewStyle().Foreground(theme.NormalText).Background(theme.TooltipBackground)
		if action.Destructive {
			style = style.Foreground(theme.Negative)
		}
		if index == focused {
			style = style.Background(theme.SelectedBackground).Bold(true)
			if !action.Destructive {
				style = style.Foreground(theme.SelectedForeground)
			}
		}
		buttons[index] = style.Render(" " + action.Label + " ")
	}
	return strings.Join(buttons, " ")
}

// statusBadge renders a status as the dashboard's colored pill.
func statusBadge(status string, theme tui.Theme) string {
	return lipgloss.NewStyle().
		Foreground(theme.StatusColor(status)).
		Render("● " + console.StatusLabel(status))
}

func separatorLine(theme tui.Theme, width int) string {
	return lipgloss.NewStyle().Foreground(theme.BorderColor).Render(strings.Repeat("─", max(width, 0)))
}

// spread puts left and right at the two ends of width columns. The
// right part is dropped when both do not fit.
func spread(left, right string, width int) string {
	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	if leftWidth+rightWidth+1 > width {
		return ansi.Truncate(left, width, "…")
	}
	return left + strings.Repeat(" ", width-leftWidth-rightWidth) + right
}

// fit truncates or pads plain text to exactly width columns.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	textWidth := ansi.StringWidth(text)
	if textWidth > width {
		return ansi.Truncate(text, width, "…")
	}
	return text + strings.Repeat(" ", width-textWidth)
}

// usageBar draws a horizontal meter for percent (0-100) in width
// columns, followed by the percentage. The tone turns to warning at
// 75% and negative at 90%.
func usageBar(percent float64, width int, theme tui.Theme) string {
	label := fmt.Sprintf(" %5.1f%%", percent)
	track := max(width-len(label), 1)
	filled := int(float64(track)*min(max(percent, 0), 100)/100 + 0.5)

	color := theme.Positive
	switch {
	case percent >= 90:
		color = theme.Negative
	case percent >= 75:
		color = theme.Warning
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.BorderColor).Render(strings.Repeat("░", track-filled)) +
		lipgloss.NewStyle().Foreground(theme.FaintText).Render(label)
}
