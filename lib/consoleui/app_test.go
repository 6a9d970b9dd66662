// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scalefield/console/lib/clock"
	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/provider"
	"github.com/scalefield/console/lib/tui"
)

func testApp(t *testing.T, options Options) App {
	t.Helper()
	if options.Source == nil {
		seed := console.Seed()
		options.Source = provider.NewStaticSource(&seed)
	}
	if options.Clock == nil {
		options.Clock = clock.Fake(testEpoch)
	}
	options.Timing = testTiming
	options.ExportDir = t.TempDir()

	app := NewApp(options)
	app = loadApp(t, app, app.Init())
	app, _ = updateApp(t, app, tea.WindowSizeMsg{Width: 140, Height: 32})
	return app
}

func updateApp(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(msg)
	updated, ok := model.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", model)
	}
	return updated, cmd
}

// loadApp runs cmd and feeds the page loads it yields back to the app.
func loadApp(t *testing.T, app App, cmd tea.Cmd) App {
	t.Helper()
	for _, msg := range collect(cmd, func(msg tea.Msg) bool {
		_, ok := msg.(pageLoadedMsg)
		return ok
	}) {
		app, _ = updateApp(t, app, msg)
	}
	return app
}

func TestAppShowsLoadingBeforeWindowSize(t *testing.T) {
	seed := console.Seed()
	app := NewApp(Options{Source: provider.NewStaticSource(&seed)})
	if app.View() != "Loading..." {
		t.Errorf("View() = %q before the window size is known", app.View())
	}
}

func TestAppStartsOnDeployments(t *testing.T) {
	app := testApp(t, Options{})

	if app.Route() != string(console.KindDeployment) {
		t.Fatalf("Route() = %q, want deployments", app.Route())
	}
	view := app.View()
	for _, want := range []string{"Scalefield", "Deployments", "6 deployments", "api-gateway", "Overview"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestAppStartRouteAndFilter(t *testing.T) {
	app := testApp(t, Options{
		StartRoute:  string(console.KindLog),
		StartStatus: string(console.LevelError),
	})

	if app.Route() != string(console.KindLog) {
		t.Fatalf("Route() = %q, want logs", app.Route())
	}
	if summary := app.pages[app.active].Summary(); summary != "2 of 7 log entries" {
		t.Errorf("Summary() = %q", summary)
	}
}

func TestAppStartOnAnalyticsPeriod(t *testing.T) {
	app := testApp(t, Options{StartRoute: " Analytics", StartStatus: "7d"})

	if app.Route() != console.RouteAnalytics {
		t.Fatalf("Route() = %q, want analytics", app.Route())
	}
	if summary := app.pages[app.active].Summary(); summary != "Period: 7d" {
		t.Errorf("Summary() = %q", summary)
	}
	if !strings.Contains(app.View(), "16.1M") {
		t.Error("view should show the 7d request count")
	}
}

func TestAppUnknownStartRouteFallsBack(t *testing.T) {
	app := testApp(t, Options{StartRoute: "nowhere"})
	if app.Route() != string(console.KindDeployment) {
		t.Errorf("Route() = %q, want deployments", app.Route())
	}
}

func TestAppDigitKeysSwitchPages(t *testing.T) {
	app := testApp(t, Options{})

	app, cmd := updateApp(t, app, keyRunes("0"))
	app = loadApp(t, app, cmd)
	if app.Route() != console.RouteOverview {
		t.Fatalf("0: Route() = %q, want overview", app.Route())
	}
	if !strings.Contains(app.View(), "COLLECTIONS") {
		t.Error("overview should list the collections")
	}

	app, cmd = updateApp(t, app, keyRunes("2"))
	app = loadApp(t, app, cmd)
	if app.Route() != string(console.KindProject) {
		t.Errorf("2: Route() = %q, want projects", app.Route())
	}

	app, _ = updateApp(t, app, keyRunes("4"))
	if app.Route() != console.RouteAnalytics {
		t.Errorf("4: Route() = %q, want analytics", app.Route())
	}
}

func TestAppPagesFollowSidebarOrder(t *testing.T) {
	app := testApp(t, Options{})
	routes := console.Routes()
	if len(app.pages) != len(routes) {
		t.Fatalf("%d pages, want %d", len(app.pages), len(routes))
	}
	for index, route := range routes {
		if app.pages[index].Route() != route {
			t.Errorf("page %d = %q, want %q", index, app.pages[index].Route(), route)
		}
	}
	for _, title := range []string{"Analytics", "Settings"} {
		if !strings.Contains(app.View(), title) {
			t.Errorf("sidebar should list %s", title)
		}
	}
}

func TestAppTabCyclesPages(t *testing.T) {
	app := testApp(t, Options{StartRoute: console.RouteSettings})

	app, cmd := updateApp(t, app, tea.KeyMsg{Type: tea.KeyTab})
	app = loadApp(t, app, cmd)
	if app.Route() != console.RouteOverview {
		t.Errorf("tab from the last page: Route() = %q, want overview", app.Route())
	}

	app, _ = updateApp(t, app, tea.KeyMsg{Type: tea.KeyShiftTab})
	if app.Route() != console.RouteSettings {
		t.Errorf("shift+tab: Route() = %q, want settings", app.Route())
	}

	app, cmd = updateApp(t, app, tea.KeyMsg{Type: tea.KeyShiftTab})
	app = loadApp(t, app, cmd)
	if app.Route() != string(console.KindInvoice) {
		t.Errorf("shift+tab from settings: Route() = %q, want billing", app.Route())
	}
}

func TestAppPaletteJumpsToRoute(t *testing.T) {
	app := testApp(t, Options{})

	app, _ = updateApp(t, app, keyRunes(":"))
	if app.palette == nil {
		t.Fatal(": should open the palette")
	}
	app, _ = updateApp(t, app, keyRunes("webh"))
	if !strings.Contains(app.View(), "Webhooks") {
		t.Error("palette should list the match")
	}
	app, cmd := updateApp(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	app = loadApp(t, app, cmd)

	if app.palette != nil {
		t.Error("enter should close the palette")
	}
	if app.Route() != string(console.KindWebhook) {
		t.Errorf("Route() = %q, want webhooks", app.Route())
	}
}

func TestAppPaletteCancel(t *testing.T) {
	app := testApp(t, Options{})
	app, _ = updateApp(t, app, keyRunes(":"))
	app, _ = updateApp(t, app, tea.KeyMsg{Type: tea.KeyEsc})

	if app.palette != nil {
		t.Error("esc should close the palette")
	}
	if app.Route() != string(console.KindDeployment) {
		t.Errorf("Route() = %q after cancel", app.Route())
	}
}

func TestAppSearchCapturesQuit(t *testing.T) {
	app := testApp(t, Options{})
	app, _ = updateApp(t, app, keyRunes("/"))

	app, cmd := updateApp(t, app, keyRunes("q"))
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q while searching should type, not quit")
		}
	}
	if app.pages[app.active].Summary() != "0 of 6 deployments" {
		t.Errorf("Summary() = %q after searching q", app.pages[app.active].Summary())
	}
}

func TestAppQuit(t *testing.T) {
	app := testApp(t, Options{})
	_, cmd := updateApp(t, app, keyRunes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Error("q should return tea.Quit")
	}
}

func TestAppNavigateAppliesSearch(t *testing.T) {
	app := testApp(t, Options{})

	app, cmd := updateApp(t, app, navigateMsg{route: string(console.KindLog), search: "api-gateway"})
	app = loadApp(t, app, cmd)

	if app.Route() != string(console.KindLog) {
		t.Fatalf("Route() = %q, want logs", app.Route())
	}
	if summary := app.pages[app.active].Summary(); summary != "2 of 7 log entries" {
		t.Errorf("Summary() = %q", summary)
	}
}

func TestAppNoticeFades(t *testing.T) {
	app := testApp(t, Options{})

	app, _ = updateApp(t, app, noticeMsg{text: "Rollback requested for Build #847", level: slog.LevelInfo})
	if !strings.Contains(app.View(), "Rollback requested") {
		t.Fatal("notice should replace the help line")
	}
	first := app.noticeSequence

	app, _ = updateApp(t, app, logRecordMsg{Summary: "loading records failed", Level: slog.LevelWarn})
	app, _ = updateApp(t, app, noticeFadeMsg{sequence: first})
	if !strings.Contains(app.View(), "loading records failed") {
		t.Error("an older fade cleared a newer notice")
	}

	app, _ = updateApp(t, app, noticeFadeMsg{sequence: app.noticeSequence})
	if app.notice != "" {
		t.Errorf("notice = %q after its fade", app.notice)
	}
}

func TestAppReloadFailureShowsWarning(t *testing.T) {
	app := testApp(t, Options{})
	app, _ = updateApp(t, app, bundleReloadedMsg{err: errors.New("parse error")})

	if app.noticeLevel != slog.LevelWarn || !strings.Contains(app.notice, "parse error") {
		t.Errorf("notice = %q (%s)", app.notice, app.noticeLevel)
	}
}

func TestAppReloadRefreshesPage(t *testing.T) {
	seed := console.Seed()
	source := provider.NewStaticSource(&seed)
	app := testApp(t, Options{Source: source})

	bundle := source.Bundle()
	bundle.Deployments = append(bundle.Deployments, console.Deployment{ID: "900", Project: "edge-cache", Status: console.DeploymentInProgress})
	app, cmd := updateApp(t, app, bundleReloadedMsg{changes: provider.Changes{console.KindDeployment: {"900"}}})
	app = loadApp(t, app, cmd)

	if summary := app.pages[app.active].Summary(); summary != "7 deployments" {
		t.Errorf("Summary() = %q after reload", summary)
	}
	if !strings.Contains(app.notice, "1 records changed") {
		t.Errorf("notice = %q", app.notice)
	}
}

func TestAppNewProjectForm(t *testing.T) {
	app := testApp(t, Options{StartRoute: string(console.KindProject)})

	app, _ = updateApp(t, app, keyRunes("n"))
	if app.form == nil {
		t.Fatal("n on the projects page should open the form")
	}
	view := app.View()
	for _, want := range []string{"Create New Project", "Project Name", "Environment"} {
		if !strings.Contains(view, want) {
			t.Errorf("form should be drawn over the page, missing %q", want)
		}
	}

	app, _ = updateApp(t, app, keyRunes("q"))
	if app.form == nil || app.Route() != string(console.KindProject) {
		t.Fatal("keys go to the form while it is open")
	}

	app, _ = updateApp(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.form != nil {
		t.Error("esc should close the form")
	}
}

func TestAppNewProjectOnlyOnProjectsPage(t *testing.T) {
	app := testApp(t, Options{})
	app, _ = updateApp(t, app, keyRunes("n"))
	if app.form != nil {
		t.Error("n outside the projects page should not open the form")
	}
}

func TestAppSubmitProjectLogsRequest(t *testing.T) {
	var records []string
	logger := slog.New(recordingHandler{records: &records})
	app := testApp(t, Options{Logger: logger})

	app.submitProject(console.NewProjectRequest{Name: "edge-cache", Environment: "staging", Region: "eu-west-1"})
	if !strings.Contains(app.notice, "edge-cache") || !strings.Contains(app.notice, "EU West (Ireland)") {
		t.Errorf("notice = %q", app.notice)
	}
	found := false
	for _, record := range records {
		if record == "new project requested" {
			found = true
		}
	}
	if !found {
		t.Errorf("log records = %v", records)
	}
}

func TestAppNarrowScreenHidesSidebar(t *testing.T) {
	app := testApp(t, Options{})
	app, _ = updateApp(t, app, tea.WindowSizeMsg{Width: 60, Height: 20})

	if app.showSidebar() {
		t.Error("sidebar should be hidden on narrow screens")
	}
	width, height := app.pageSize()
	if width != 60 || height != 17 {
		t.Errorf("pageSize() = %d×%d, want 60×17", width, height)
	}
}

func TestAppLightTheme(t *testing.T) {
	app := testApp(t, Options{Theme: tui.LightTheme})
	if app.env.theme.Name != tui.LightTheme.Name {
		t.Errorf("theme = %q", app.env.theme.Name)
	}
}
