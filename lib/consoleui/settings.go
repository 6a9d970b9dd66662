// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scalefield/console/lib/config"
	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/provider"
	"github.com/scalefield/console/lib/tui"
)

// settingsPage shows the account, its keys and preferences, and the
// console's own configuration. Nothing on it can be changed from the
// terminal.
type settingsPage struct {
	env    *pageEnv
	report reportView
	width  int
	height int
}

func newSettingsPage(env *pageEnv) *settingsPage {
	return &settingsPage{env: env, report: newReportView()}
}

func (settings *settingsPage) Route() string { return console.RouteSettings }
func (settings *settingsPage) Title() string { return "Settings" }

func (settings *settingsPage) Mount() tea.Cmd {
	settings.refresh(true)
	return nil
}

func (settings *settingsPage) Unmount() {}

func (settings *settingsPage) SetSize(width, height int) {
	settings.width = width
	settings.height = height
	settings.report.SetSize(width, height)
	settings.refresh(false)
}

func (settings *settingsPage) Capturing() bool { return false }

func (settings *settingsPage) ApplyFilter(string, string) {}

func (settings *settingsPage) Reload(provider.Changes) tea.Cmd {
	settings.refresh(false)
	return nil
}

func (settings *settingsPage) Summary() string {
	return settings.env.source.Bundle().Account.Email
}

func (settings *settingsPage) Help() string {
	keys := settings.env.keys
	return helpText([]key.Binding{keys.Down, keys.PageDown, keys.End})
}

func (settings *settingsPage) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		settings.report.HandleKey(keyMsg, settings.env.keys)
	}
	return nil
}

func (settings *settingsPage) refresh(reset bool) {
	if settings.width <= 0 {
		return
	}
	sections := settingsSections(settings.env.source.Bundle(), settings.env.config, settings.env.theme.Name)
	settings.report.SetContent(renderReportSections(sections, settings.env.theme, settings.report.contentWidth()), reset)
}

func (settings *settingsPage) View() string {
	if settings.width <= 0 || settings.height <= 0 {
		return ""
	}
	return settings.report.View(settings.env.theme)
}

// settingsSections projects the account data and the configuration
// into panel sections, in page order.
func settingsSections(bundle *console.Bundle, cfg *config.Config, themeName string) []Section {
	if cfg == nil {
		cfg = config.Default()
	}
	account := bundle.Account

	sections := []Section{{
		Heading: "Account",
		Fields: []Field{
			{Label: "Name", Value: account.Name},
			{Label: "Email", Value: account.Email},
			{Label: "Company", Value: account.Company},
		},
	}}

	keys := Section{Heading: "API Keys"}
	for _, apiKey := range bundle.APIKeys {
		keys.Lines = append(keys.Lines, Line{
			Text:   apiKey.Name + "  " + apiKey.Masked(),
			Status: apiKey.Environment,
			Suffix: "last used " + apiKey.LastUsed,
		})
	}
	sections = append(sections, keys)

	notifications := Section{Heading: "Notifications"}
	for _, setting := range account.Notifications {
		state, status := "off", string(console.WebhookDisabled)
		if setting.Enabled {
			state, status = "on", string(console.DeploymentSuccess)
		}
		notifications.Fields = append(notifications.Fields, Field{
			Label:  setting.Label,
			Value:  state + "  " + setting.Description,
			Status: status,
		})
	}
	sections = append(sections, notifications)

	twoFactor := Field{Label: "Two-factor authentication", Value: "Disabled", Status: string(console.LevelWarn)}
	if account.TwoFactor {
		twoFactor = Field{Label: "Two-factor authentication", Value: "Enabled", Status: string(console.DeploymentSuccess)}
	}
	security := Section{Heading: "Security", Fields: []Field{twoFactor}}
	for _, session := range account.Sessions {
		line := Line{Text: session.Device, Suffix: joinNonEmpty(" • ", session.Platform, session.Browser, session.Location)}
		if session.Current {
			line.Status = string(console.DeploymentSuccess)
			line.Suffix += " • current"
		}
		security.Lines = append(security.Lines, line)
	}
	sections = append(sections, security)

	sections = append(sections, Section{
		Heading: "Billing",
		Fields: []Field{
			{Label: "Plan", Value: bundle.Billing.Plan},
			{Label: "Billing cycle", Value: account.BillingCycle},
			{Label: "Next billing date", Value: account.NextBillingDate},
			{Label: "Payment method", Value: paymentMethodLabel(bundle.Billing.PaymentMethod)},
		},
	})

	sections = append(sections, Section{
		Heading: "Console",
		Fields: []Field{
			{Label: "Theme", Value: fmt.Sprintf("%s (%s)", cfg.Theme, themeName)},
			{Label: "Start page", Value: cfg.StartPage},
			{Label: "Panel width", Value: fmt.Sprint(cfg.PanelWidth)},
			{Label: "Enter delay", Value: cfg.EnterDelay.Std().String()},
			{Label: "Slide duration", Value: cfg.ExitDuration.Std().String()},
			{Label: "Bundle", Value: orDefault(cfg.Bundle, "built-in dataset")},
			{Label: "Database", Value: orDefault(cfg.Database, "none")},
			{Label: "Export directory", Value: cfg.ExportDir},
			{Label: "Export compression", Value: cfg.ExportCompression},
			{Label: "Log file", Value: orDefault(cfg.LogFile, "none")},
			{Label: "Watch bundle", Value: onOff(cfg.Watch)},
		},
	})

	sections = append(sections, Section{
		Heading: "Danger Zone",
		Fields: []Field{{
			Label:  "Delete Account",
			Value:  "Permanently delete your account and all associated data",
			Status: string(console.DeploymentFailed),
		}},
	})
	return sections
}

// renderReportSections draws sections one after another, indented by
// a column, with every line fitting width.
func renderReportSections(sections []Section, theme tui.Theme, width int) string {
	var blocks []string
	for _, section := range sections {
		rendered := renderSection(section, theme, max(width-2, 1))
		if rendered == "" {
			continue
		}
		blocks = append(blocks, " "+strings.ReplaceAll(rendered, "\n", "\n "))
	}
	content := "\n" + strings.Join(blocks, "\n\n")
	return tui.PadLines(content, width, strings.Count(content, "\n")+1)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
