// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/provider"
	"github.com/scalefield/console/lib/tui"
)

// analyticsHeaderLines is the blank line and the period bar above the
// scrolling report.
const analyticsHeaderLines = 2

// minCardWidth is the narrowest metric card, border included.
const minCardWidth = 22

// analyticsPage shows the traffic report of one period: a card per
// headline metric with its sparkline, the per-project breakdown and
// the recent capacity events.
type analyticsPage struct {
	env    *pageEnv
	period string
	report reportView
	width  int
	height int
}

func newAnalyticsPage(env *pageEnv) *analyticsPage {
	return &analyticsPage{env: env, period: console.DefaultPeriod, report: newReportView()}
}

func (analytics *analyticsPage) Route() string { return console.RouteAnalytics }
func (analytics *analyticsPage) Title() string { return "Analytics" }

func (analytics *analyticsPage) Mount() tea.Cmd {
	analytics.period = console.DefaultPeriod
	analytics.refresh(true)
	return nil
}

func (analytics *analyticsPage) Unmount() {}

func (analytics *analyticsPage) SetSize(width, height int) {
	analytics.width = width
	analytics.height = height
	analytics.report.SetSize(width, max(height-analyticsHeaderLines, 1))
	analytics.refresh(false)
}

func (analytics *analyticsPage) Capturing() bool { return false }

// ApplyFilter takes a period name as the status. Other values and the
// search text are ignored.
func (analytics *analyticsPage) ApplyFilter(status, _ string) {
	if period, ok := console.ParsePeriod(status); ok {
		analytics.period = period
		analytics.refresh(true)
	}
}

func (analytics *analyticsPage) Reload(provider.Changes) tea.Cmd {
	analytics.refresh(false)
	return nil
}

func (analytics *analyticsPage) Summary() string {
	return "Period: " + analytics.period
}

func (analytics *analyticsPage) Help() string {
	keys := analytics.env.keys
	return helpText([]key.Binding{keys.Period, keys.Down, keys.PageDown})
}

func (analytics *analyticsPage) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, analytics.env.keys.Period) {
		analytics.period = console.NextPeriod(analytics.period)
		analytics.env.logger.Debug("analytics period changed", "period", analytics.period)
		analytics.refresh(true)
		return nil
	}
	analytics.report.HandleKey(keyMsg, analytics.env.keys)
	return nil
}

func (analytics *analyticsPage) refresh(reset bool) {
	if analytics.width <= 0 {
		return
	}
	width := analytics.report.contentWidth()
	content := renderAnalytics(analytics.env.source.Bundle().Analytics, analytics.period, analytics.env.theme, width)
	analytics.report.SetContent(content, reset)
}

func (analytics *analyticsPage) View() string {
	width, height := analytics.width, analytics.height
	if width <= 0 || height <= 0 {
		return ""
	}
	header := "\n" + renderPeriodBar(analytics.period, analytics.env.theme)
	return tui.PadLines(header+"\n"+analytics.report.View(analytics.env.theme), width, height)
}

// renderPeriodBar lists the periods with the current one highlighted.
func renderPeriodBar(current string, theme tui.Theme) string {
	tabs := make([]string, len(console.Periods))
	for index, period := range console.Periods {
		style := lipgloss.NewStyle().Foreground(theme.FaintText)
		if period == current {
			style = lipgloss.NewStyle().Bold(true).Foreground(theme.SelectedForeground).Background(theme.SelectedBackground)
		}
		tabs[index] = style.Render(" " + period + " ")
	}
	return " " + sectionHeading("Period", theme) + "  " + strings.Join(tabs, " ")
}

// renderAnalytics draws the whole report for one period at width
// columns. Every line fits the width.
func renderAnalytics(analytics console.Analytics, period string, theme tui.Theme, width int) string {
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	var blocks []string

	metrics, ok := analytics.Period(period)
	if ok && len(metrics.Cards) > 0 {
		blocks = append(blocks, renderMetricCards(metrics.Cards, theme, width))
	} else {
		blocks = append(blocks, faint.Render(" No metrics for "+period))
	}

	if len(analytics.Projects) > 0 {
		blocks = append(blocks, renderTrafficTable(analytics.Projects, theme, width))
	}
	if len(analytics.Events) > 0 {
		blocks = append(blocks, renderAnalyticsEvents(analytics.Events, theme, width))
	}

	content := strings.Join(blocks, "\n\n")
	return tui.PadLines(content, width, strings.Count(content, "\n")+1)
}

func trendColor(trend console.Trend, theme tui.Theme) lipgloss.Color {
	switch trend {
	case console.TrendGood:
		return theme.Positive
	case console.TrendBad:
		return theme.Negative
	default:
		return theme.FaintText
	}
}

// cardsPerRow fits four cards across, then two, then one.
func cardsPerRow(width int) int {
	switch {
	case width >= 4*minCardWidth+3:
		return 4
	case width >= 2*minCardWidth+1:
		return 2
	default:
		return 1
	}
}

func renderMetricCards(cards []console.MetricCard, theme tui.Theme, width int) string {
	perRow := cardsPerRow(width)
	cardWidth := max((width-(perRow-1))/perRow, 5)
	inner := cardWidth - 4

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1).
		Width(cardWidth - 2)

	rendered := make([]string, len(cards))
	for index, card := range cards {
		lines := []string{
			lipgloss.NewStyle().Foreground(theme.FaintText).Render(fit(card.Name, inner)),
			lipgloss.NewStyle().Bold(true).Foreground(theme.NormalText).Render(fit(card.Value, inner)),
			lipgloss.NewStyle().Foreground(trendColor(card.Trend, theme)).Render(fit(card.Change, inner)),
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fit(tui.Sparkline(card.Series, inner), inner)),
		}
		rendered[index] = box.Render(strings.Join(lines, "\n"))
	}

	var rows []string
	for start := 0; start < len(rendered); start += perRow {
		end := min(start+perRow, len(rendered))
		var parts []string
		for index := start; index < end; index++ {
			if index > start {
				parts = append(parts, " ")
			}
			parts = append(parts, rendered[index])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n")
}

func renderTrafficTable(projects []console.ProjectTraffic, theme tui.Theme, width int) string {
	const (
		requestsWidth = 12
		latencyWidth  = 10
		errorsWidth   = 9
		uptimeWidth   = 9
	)
	nameWidth := max(width-1-requestsWidth-latencyWidth-errorsWidth-uptimeWidth, 8)

	header := " " + fit("PROJECT", nameWidth) + fit("REQUESTS", requestsWidth) +
		fit("LATENCY", latencyWidth) + fit("ERRORS", errorsWidth) + fit("UPTIME", uptimeWidth)
	lines := []string{
		" " + sectionHeading("By Project", theme),
		lipgloss.NewStyle().Bold(true).Foreground(theme.FaintText).Render(fit(header, width)),
	}
	normal := lipgloss.NewStyle().Foreground(theme.NormalText)
	for _, traffic := range projects {
		errorStyle := normal
		if traffic.Flagged() {
			errorStyle = errorStyle.Foreground(theme.Warning)
		}
		line := normal.Render(" "+fit(traffic.Project, nameWidth)+
			fit(formatCount(traffic.Requests), requestsWidth)+
			fit(fmt.Sprintf("%dms", traffic.ResponseTime), latencyWidth)) +
			errorStyle.Render(fit(fmt.Sprintf("%.2f%%", traffic.ErrorRate), errorsWidth)) +
			normal.Render(fit(fmt.Sprintf("%.2f%%", traffic.Uptime), uptimeWidth))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderAnalyticsEvents(events []console.AnalyticsEvent, theme tui.Theme, width int) string {
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	lines := []string{" " + sectionHeading("Recent Events", theme)}
	for _, event := range events {
		title := statusBadgeText(event.Title, string(event.Severity), theme)
		lines = append(lines,
			" "+spread(title, faint.Render(event.Time), width-2),
			"   "+faint.Render(fit(event.Detail, width-3)),
		)
	}
	return strings.Join(lines, "\n")
}
