// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/tui"
)

// projectFormWidth is the width of the New Project dialog's fields.
const projectFormWidth = 52

// projectForm is the New Project dialog: a huh form embedded in the
// app. The app routes every message to it while it is open, since huh
// advances between fields with its own messages. Escape cancels.
//
// Submitting only reports the request. Records come from the bundle
// and are never created from the console.
type projectForm struct {
	form    *huh.Form
	request *console.NewProjectRequest
	theme   tui.Theme

	cancelled bool
}

func newProjectForm(theme tui.Theme) projectForm {
	request := console.DefaultNewProject
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Description("Use lowercase letters, numbers, and hyphens only").
				Placeholder("my-awesome-project").
				Value(&request.Name).
				Validate(console.ValidateProjectName),
			huh.NewSelect[string]().
				Title("Environment").
				Options(environmentOptions()...).
				Value(&request.Environment),
			huh.NewSelect[string]().
				Title("Region").
				Options(regionOptions()...).
				Value(&request.Region),
		),
	).WithTheme(formTheme(theme)).WithWidth(projectFormWidth).WithShowHelp(true)

	return projectForm{form: form, request: &request, theme: theme}
}

func environmentOptions() []huh.Option[string] {
	options := make([]huh.Option[string], len(console.Environments))
	for index, environment := range console.Environments {
		options[index] = huh.NewOption(console.StatusLabel(environment), environment)
	}
	return options
}

func regionOptions() []huh.Option[string] {
	options := make([]huh.Option[string], len(console.Regions))
	for index, region := range console.Regions {
		options[index] = huh.NewOption(console.RegionLabel(region), region)
	}
	return options
}

func formTheme(theme tui.Theme) *huh.Theme {
	if theme.Name == tui.LightTheme.Name {
		return huh.ThemeBase()
	}
	return huh.ThemeDracula()
}

func (dialog projectForm) Init() tea.Cmd {
	return dialog.form.Init()
}

// Update forwards msg to the form. Escape and an aborted form mark
// the dialog cancelled.
func (dialog projectForm) Update(msg tea.Msg) (projectForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		dialog.cancelled = true
		return dialog, nil
	}
	model, cmd := dialog.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		dialog.form = form
	}
	if dialog.form.State == huh.StateAborted {
		dialog.cancelled = true
	}
	return dialog, cmd
}

// IsCancelRequested reports whether the dialog was dismissed.
func (dialog projectForm) IsCancelRequested() bool {
	return dialog.cancelled
}

// IsSubmitted reports whether every field was filled in and confirmed.
func (dialog projectForm) IsSubmitted() bool {
	return !dialog.cancelled && dialog.form.State == huh.StateCompleted
}

// Request returns the values entered so far.
func (dialog projectForm) Request() console.NewProjectRequest {
	return *dialog.request
}

// View renders the dialog box, for splicing over the page.
func (dialog projectForm) View() string {
	theme := dialog.theme
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render("Create New Project")
	description := lipgloss.NewStyle().Foreground(theme.FaintText).Width(projectFormWidth).
		Render("Deploy a new project to your infrastructure. Configure the basic settings below.")
	hint := lipgloss.NewStyle().Foreground(theme.HelpText).Render("esc cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, description, "", dialog.form.View(), hint))
}
