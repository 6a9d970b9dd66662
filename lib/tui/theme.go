// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/scalefield/console/lib/console"
)

// Theme defines the color palette of the console. All colors are ANSI
// 256-color codes for broad terminal compatibility.
//
// Status colors are semantic tones rather than per-status fields:
// every record kind maps its statuses onto positive, progress,
// warning, negative and neutral, the same way the web dashboard used
// green, blue, yellow, red and gray badges.
type Theme struct {
	// Name is "dark" or "light".
	Name string

	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Status tones.
	Positive lipgloss.Color
	Progress lipgloss.Color
	Warning  lipgloss.Color
	Negative lipgloss.Color
	Neutral  lipgloss.Color
	Accent   lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	PanelBackground  lipgloss.Color

	// HotAccent tints rows whose record changed on reload.
	HotAccent lipgloss.Color

	// SearchHighlightBackground marks matched characters.
	SearchHighlightBackground lipgloss.Color

	// Dropdown and tooltip boxes.
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color
}

// StatusColor returns the color for any status value used by the
// console's records. Unknown values are FaintText. Status strings
// shared between kinds ("active", "failed") map to one tone.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case string(console.DeploymentSuccess), string(console.ProjectActive),
		string(console.ServiceOperational), string(console.InvoicePaid),
		string(console.RoleDeveloper), "production":
		return theme.Positive
	case string(console.DeploymentInProgress), string(console.ProjectBuilding),
		string(console.ServiceMaintenance), string(console.LevelInfo),
		string(console.RoleAdmin), "development", "staging":
		return theme.Progress
	case string(console.LevelWarn), string(console.ServiceDegraded),
		string(console.InvoicePending), string(console.MemberInvited),
		string(console.SeverityMajor):
		return theme.Warning
	case string(console.DeploymentFailed), string(console.LevelError),
		string(console.ServiceDown), string(console.SeverityCritical):
		return theme.Negative
	case string(console.DeploymentCancelled), string(console.ProjectPaused),
		string(console.WebhookDisabled), string(console.LevelDebug),
		string(console.RoleViewer), string(console.SeverityMinor):
		return theme.Neutral
	case string(console.RoleOwner):
		return theme.Accent
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the dark-background palette.
var DefaultTheme = Theme{
	Name: "dark",

	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	Positive: lipgloss.Color("114"), // green
	Progress: lipgloss.Color("75"),  // blue
	Warning:  lipgloss.Color("220"), // amber
	Negative: lipgloss.Color("203"), // red
	Neutral:  lipgloss.Color("245"), // gray
	Accent:   lipgloss.Color("141"), // light purple

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	PanelBackground:  lipgloss.Color("235"),

	HotAccent: lipgloss.Color("58"),

	SearchHighlightBackground: lipgloss.Color("58"),

	TooltipForeground: lipgloss.Color("252"),
	TooltipBackground: lipgloss.Color("237"),
}

// LightTheme is the light-background palette.
var LightTheme = Theme{
	Name: "light",

	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("254"),
	SelectedForeground: lipgloss.Color("232"),

	Positive: lipgloss.Color("28"),
	Progress: lipgloss.Color("25"),
	Warning:  lipgloss.Color("136"),
	Negative: lipgloss.Color("160"),
	Neutral:  lipgloss.Color("244"),
	Accent:   lipgloss.Color("91"),

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("250"),
	HelpText:         lipgloss.Color("245"),
	PanelBackground:  lipgloss.Color("255"),

	HotAccent: lipgloss.Color("229"),

	SearchHighlightBackground: lipgloss.Color("229"),

	TooltipForeground: lipgloss.Color("235"),
	TooltipBackground: lipgloss.Color("253"),
}

// ThemeNames are the values accepted by [SelectTheme].
var ThemeNames = []string{"auto", "dark", "light"}

// SelectTheme resolves a theme name. "auto" (or "") asks the terminal
// behind output whether its background is dark; a nil output counts as
// dark. Returns false for unknown names.
func SelectTheme(name string, output *termenv.Output) (Theme, bool) {
	switch strings.ToLower(name) {
	case "dark":
		return DefaultTheme, true
	case "light":
		return LightTheme, true
	case "", "auto":
		if output == nil || output.HasDarkBackground() {
			return DefaultTheme, true
		}
		return LightTheme, true
	default:
		return Theme{}, false
	}
}
