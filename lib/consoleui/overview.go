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

// overviewPage summarizes every collection: record counts per status,
// then plan usage. Enter opens the collection under the cursor.
type overviewPage struct {
	env    *pageEnv
	cursor int
	width  int
	height int
}

func newOverviewPage(env *pageEnv) *overviewPage {
	return &overviewPage{env: env}
}

func (overview *overviewPage) Route() string { return console.RouteOverview }
func (overview *overviewPage) Title() string { return "Overview" }

func (overview *overviewPage) Mount() tea.Cmd {
	overview.cursor = 0
	return nil
}

func (overview *overviewPage) Unmount() {}

func (overview *overviewPage) SetSize(width, height int) {
	overview.width = width
	overview.height = height
}

func (overview *overviewPage) Capturing() bool { return false }

func (overview *overviewPage) ApplyFilter(string, string) {}

// Reload needs no work: the view reads the bundle on every render.
func (overview *overviewPage) Reload(provider.Changes) tea.Cmd { return nil }

func (overview *overviewPage) Summary() string {
	bundle := overview.env.source.Bundle()
	total := 0
	for _, kind := range console.Kinds {
		total += bundle.Count(kind)
	}
	return fmt.Sprintf("%d records", total)
}

func (overview *overviewPage) Help() string {
	keys := overview.env.keys
	return helpText([]key.Binding{keys.Down, keys.Select})
}

func (overview *overviewPage) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys := overview.env.keys
	switch {
	case key.Matches(keyMsg, keys.Up):
		overview.cursor = max(overview.cursor-1, 0)
	case key.Matches(keyMsg, keys.Down):
		overview.cursor = min(overview.cursor+1, len(console.Kinds)-1)
	case key.Matches(keyMsg, keys.Home):
		overview.cursor = 0
	case key.Matches(keyMsg, keys.End):
		overview.cursor = len(console.Kinds) - 1
	case key.Matches(keyMsg, keys.Select):
		route := string(console.Kinds[overview.cursor])
		return func() tea.Msg { return navigateMsg{route: route} }
	}
	return nil
}

// statusCounts tallies a collection by entity status.
func statusCounts(bundle *console.Bundle, kind console.Kind) map[string]int {
	counts := make(map[string]int)
	add := func(status string) { counts[status]++ }
	switch kind {
	case console.KindTable:
		for _, record := range bundle.Tables {
			add(record.EntityStatus())
		}
	case console.KindProject:
		for _, record := range bundle.Projects {
			add(record.EntityStatus())
		}
	case console.KindDeployment:
		for _, record := range bundle.Deployments {
			add(record.EntityStatus())
		}
	case console.KindService:
		for _, record := range bundle.Services {
			add(record.EntityStatus())
		}
	case console.KindLog:
		for _, record := range bundle.Logs {
			add(record.EntityStatus())
		}
	case console.KindWebhook:
		for _, record := range bundle.Webhooks {
			add(record.EntityStatus())
		}
	case console.KindAPIKey:
		for _, record := range bundle.APIKeys {
			add(record.EntityStatus())
		}
	case console.KindMember:
		for _, record := range bundle.Members {
			add(record.EntityStatus())
		}
	case console.KindInvoice:
		for _, record := range bundle.Invoices {
			add(record.EntityStatus())
		}
	}
	return counts
}

func (overview *overviewPage) View() string {
	width, height := overview.width, overview.height
	if width <= 0 || height <= 0 {
		return ""
	}
	theme := overview.env.theme
	bundle := overview.env.source.Bundle()

	const titleWidth = 14
	const countWidth = 6
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	lines := []string{"", " " + sectionHeading("Collections", theme)}
	for index, kind := range console.Kinds {
		counts := statusCounts(bundle, kind)
		var badges []string
		for _, status := range console.FilterStatuses(kind) {
			if counts[status] > 0 {
				badges = append(badges, statusBadgeText(fmt.Sprintf("%d %s", counts[status], console.StatusLabel(status)), status, theme))
			}
		}
		row := " " + fit(kind.Title(), titleWidth) + fit(fmt.Sprint(bundle.Count(kind)), countWidth) + strings.Join(badges, "  ")
		style := lipgloss.NewStyle().Foreground(theme.NormalText)
		if index == overview.cursor {
			style = style.Background(theme.SelectedBackground).Foreground(theme.SelectedForeground)
		}
		lines = append(lines, style.Width(width).MaxWidth(width).Render(row))
	}

	usage := bundle.Billing.Usage
	if len(usage) > 0 {
		lines = append(lines, "", " "+sectionHeading("Usage", theme)+faint.Render("  "+bundle.Billing.Plan+" plan"))
		barWidth := max(min(width-titleWidth-4, 48), 10)
		for _, metric := range usage {
			lines = append(lines, " "+fit(metric.Name, titleWidth)+" "+usageBar(metric.Percentage(), barWidth, theme))
		}
	}

	open := 0
	for _, incident := range bundle.Incidents {
		if incident.Status != console.IncidentResolved {
			open++
		}
	}
	if open > 0 {
		lines = append(lines, "", " "+statusBadgeText(fmt.Sprintf("%d active incidents", open), string(console.ServiceDegraded), theme))
	}

	return tui.PadLines(strings.Join(lines, "\n"), width, height)
}
