// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/tui"
)

func TestProjectFormDefaults(t *testing.T) {
	form := newProjectForm(tui.DefaultTheme)
	if form.Request() != console.DefaultNewProject {
		t.Errorf("Request() = %+v, want the defaults", form.Request())
	}
	if form.IsCancelRequested() || form.IsSubmitted() {
		t.Error("a new form is neither cancelled nor submitted")
	}
	form.Init()
	view := form.View()
	for _, want := range []string{"Create New Project", "Project Name", "Environment", "esc cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestProjectFormEscapeCancels(t *testing.T) {
	form := newProjectForm(tui.LightTheme)
	form, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("escape should not produce a command")
	}
	if !form.IsCancelRequested() || form.IsSubmitted() {
		t.Error("escape should cancel the form")
	}
}

func TestProjectFormOptions(t *testing.T) {
	if len(environmentOptions()) != len(console.Environments) {
		t.Errorf("environment options = %d", len(environmentOptions()))
	}
	if len(regionOptions()) != len(console.Regions) {
		t.Errorf("region options = %d", len(regionOptions()))
	}
}

func TestProjectNameValidation(t *testing.T) {
	for name, valid := range map[string]bool{
		"edge-cache": true,
		"api2":       true,
		"":           false,
		"Edge":       false,
		"edge_cache": false,
		"-edge":      false,
	} {
		err := console.ValidateProjectName(name)
		if (err == nil) != valid {
			t.Errorf("ValidateProjectName(%q) = %v", name, err)
		}
	}
	if !errors.Is(console.ValidateProjectName("Bad Name"), console.ErrProjectName) {
		t.Error("a malformed name should wrap ErrProjectName")
	}
}
