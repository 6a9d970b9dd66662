// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scalefield/console/lib/clock"
	"github.com/scalefield/console/lib/config"
	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/listview"
	"github.com/scalefield/console/lib/provider"
	"github.com/scalefield/console/lib/tui"
)

// sidebarWidth is the width of the route list, not counting the
// divider. The sidebar is hidden below minSidebarScreen columns.
const (
	sidebarWidth     = 18
	minSidebarScreen = 70
)

// chromeLines is the rows the app draws around the page: the header
// at the top, the separator and the help line at the bottom.
const chromeLines = 3

// BundleChangedMsg tells the app that the bundle file changed on disk.
// The watcher in main sends it; the app reloads the source and the
// mounted page.
type BundleChangedMsg struct{}

type bundleReloadedMsg struct {
	changes provider.Changes
	err     error
}

// Options configures an App.
type Options struct {
	// Source provides every collection. Required.
	Source *provider.BundleSource

	Theme  tui.Theme
	Keys   *KeyMap
	Timing listview.Timing

	// PanelWidth is the detail panel width in columns.
	PanelWidth int

	// StartRoute is the first page shown: one of [console.Routes].
	// Empty means deployments.
	StartRoute string

	// StartStatus and StartSearch preset the filter of the first page.
	// On the analytics page the status selects the period.
	StartStatus string
	StartSearch string

	// ExportDir receives page exports; CompressExports writes them as
	// zstd.
	ExportDir       string
	CompressExports bool

	// Config is shown on the settings page. Nil shows the defaults.
	Config *config.Config

	// Clock drives the panel animation. Nil means the real clock.
	Clock clock.Clock

	Logger  *slog.Logger
	Context context.Context
}

// App is the root bubbletea model of the console: a header, the route
// sidebar, the mounted page and the help line, with the command
// palette and the New Project dialog drawn over them.
type App struct {
	env    *pageEnv
	pages  []page
	active int

	startStatus string
	startSearch string

	palette *palette
	form    *projectForm

	notice         string
	noticeLevel    slog.Level
	noticeSequence uint64

	width  int
	height int
	ready  bool
}

// NewApp creates the console. Pages follow [console.Routes]: the
// overview, the collections with analytics after deployments, then
// settings.
func NewApp(options Options) App {
	keys := DefaultKeyMap
	if options.Keys != nil {
		keys = *options.Keys
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.Context == nil {
		options.Context = context.Background()
	}
	if options.Theme.Name == "" {
		options.Theme = tui.DefaultTheme
	}
	if options.PanelWidth <= 0 {
		options.PanelWidth = 56
	}
	if options.Source == nil {
		seed := console.Seed()
		options.Source = provider.NewStaticSource(&seed)
	}

	env := &pageEnv{
		ctx:        options.Context,
		source:     options.Source,
		theme:      options.Theme,
		keys:       keys,
		clock:      options.Clock,
		logger:     options.Logger,
		timing:     options.Timing,
		panelWidth: options.PanelWidth,
		exportDir:  options.ExportDir,
		compress:   options.CompressExports,
		config:     options.Config,
	}

	var pages []page
	for _, route := range console.Routes() {
		switch route {
		case console.RouteOverview:
			pages = append(pages, newOverviewPage(env))
		case console.RouteAnalytics:
			pages = append(pages, newAnalyticsPage(env))
		case console.RouteSettings:
			pages = append(pages, newSettingsPage(env))
		default:
			if kindPage, ok := newKindPage(console.Kind(route), env); ok {
				pages = append(pages, kindPage)
			}
		}
	}

	app := App{
		env:         env,
		pages:       pages,
		startStatus: options.StartStatus,
		startSearch: options.StartSearch,
	}
	start := strings.ToLower(strings.TrimSpace(options.StartRoute))
	if start == "" {
		start = string(console.KindDeployment)
	}
	if index := app.routeIndex(start); index >= 0 {
		app.active = index
	} else {
		app.active = app.routeIndex(string(console.KindDeployment))
	}
	return app
}

func (app App) routeIndex(route string) int {
	for index, candidate := range app.pages {
		if candidate.Route() == route {
			return index
		}
	}
	return -1
}

// Route returns the route of the mounted page.
func (app App) Route() string {
	return app.pages[app.active].Route()
}

// Init mounts the start page and applies the start filter.
func (app App) Init() tea.Cmd {
	current := app.pages[app.active]
	cmd := current.Mount()
	if app.startStatus != "" || app.startSearch != "" {
		current.ApplyFilter(app.startStatus, app.startSearch)
	}
	app.env.logger.Debug("console started", "page", current.Route())
	return cmd
}

func (app App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The form gets every message while it is open: huh moves between
	// fields with its own messages. Keys stop here.
	if app.form != nil {
		form, cmd := app.form.Update(msg)
		cmds = append(cmds, cmd)
		switch {
		case form.IsCancelRequested():
			app.form = nil
			app.env.logger.Debug("new project cancelled")
		case form.IsSubmitted():
			app.form = nil
			cmds = append(cmds, app.submitProject(form.Request()))
		default:
			app.form = &form
		}
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return app, tea.Batch(cmds...)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		app.ready = true
		app.resizePages()

	case tea.KeyMsg:
		cmds = append(cmds, app.handleKey(msg))

	case logRecordMsg:
		cmds = append(cmds, app.showNotice(msg.Summary, msg.Level))

	case noticeMsg:
		cmds = append(cmds, app.showNotice(msg.text, msg.level))

	case noticeFadeMsg:
		if msg.sequence == app.noticeSequence {
			app.notice = ""
		}

	case navigateMsg:
		index := app.routeIndex(msg.route)
		if index < 0 {
			break
		}
		cmds = append(cmds, app.switchTo(index))
		app.pages[app.active].ApplyFilter("", msg.search)

	case BundleChangedMsg:
		source := app.env.source
		cmds = append(cmds, func() tea.Msg {
			changes, err := source.Reload()
			return bundleReloadedMsg{changes: changes, err: err}
		})

	case bundleReloadedMsg:
		if msg.err != nil {
			cmds = append(cmds, app.showNotice("Bundle reload failed: "+msg.err.Error(), slog.LevelWarn))
			break
		}
		cmds = append(cmds, app.pages[app.active].Reload(msg.changes))
		cmds = append(cmds, app.showNotice(fmt.Sprintf("Bundle reloaded: %d records changed", msg.changes.Count()), slog.LevelInfo))

	default:
		cmds = append(cmds, app.pages[app.active].Update(msg))
	}
	return app, tea.Batch(cmds...)
}

func (app *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if app.palette != nil {
		switch app.palette.HandleKey(msg) {
		case paletteCancelled:
			app.palette = nil
		case paletteChosen:
			route := app.palette.Selected()
			app.palette = nil
			return app.switchTo(app.routeIndex(route))
		}
		return nil
	}

	current := app.pages[app.active]
	if current.Capturing() {
		return current.Update(msg)
	}

	keys := app.env.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.NextPage):
		return app.switchTo((app.active + 1) % len(app.pages))
	case key.Matches(msg, keys.PreviousPage):
		return app.switchTo((app.active + len(app.pages) - 1) % len(app.pages))
	case key.Matches(msg, keys.Palette):
		entries := make([]paletteEntry, len(app.pages))
		for index, candidate := range app.pages {
			entries[index] = paletteEntry{route: candidate.Route(), title: candidate.Title()}
		}
		app.palette = newPalette(entries)
		return nil
	case key.Matches(msg, keys.NewProject) && current.Route() == string(console.KindProject):
		form := newProjectForm(app.env.theme)
		app.form = &form
		return form.Init()
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9' {
		index := int(msg.Runes[0] - '0')
		if index < len(app.pages) {
			return app.switchTo(index)
		}
		return nil
	}
	return current.Update(msg)
}

// switchTo unmounts the current page and mounts the page at index.
// Switching to the mounted page does nothing.
func (app *App) switchTo(index int) tea.Cmd {
	if index < 0 || index >= len(app.pages) || index == app.active {
		return nil
	}
	previous := app.pages[app.active]
	previous.Unmount()
	app.active = index
	next := app.pages[index]
	next.SetSize(app.pageSize())
	app.env.logger.Debug("route changed", "from", previous.Route(), "page", next.Route())
	return next.Mount()
}

func (app *App) submitProject(request console.NewProjectRequest) tea.Cmd {
	app.env.logger.Info("new project requested",
		"name", request.Name,
		"environment", request.Environment,
		"region", request.Region,
	)
	return app.showNotice(fmt.Sprintf("Project %s requested in %s (%s)",
		request.Name, request.Environment, console.RegionLabel(request.Region)), slog.LevelInfo)
}

func (app *App) showNotice(text string, level slog.Level) tea.Cmd {
	app.notice = text
	app.noticeLevel = level
	app.noticeSequence++
	sequence := app.noticeSequence
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{sequence: sequence}
	})
}

func (app App) showSidebar() bool {
	return app.width >= minSidebarScreen
}

func (app App) pageSize() (int, int) {
	width := app.width
	if app.showSidebar() {
		width -= sidebarWidth + 1
	}
	return max(width, 1), max(app.height-chromeLines, 1)
}

func (app *App) resizePages() {
	width, height := app.pageSize()
	for _, candidate := range app.pages {
		candidate.SetSize(width, height)
	}
}

func (app App) View() string {
	if !app.ready {
		return "Loading..."
	}
	theme := app.env.theme
	current := app.pages[app.active]
	pageWidth, pageHeight := app.pageSize()

	body := current.View()
	if app.showSidebar() {
		divider := strings.TrimSuffix(strings.Repeat(lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")+"\n", pageHeight), "\n")
		body = lipgloss.JoinHorizontal(lipgloss.Top, app.renderSidebar(pageHeight), divider, body)
	}

	separator := lipgloss.NewStyle().Foreground(theme.BorderColor).Render(strings.Repeat("─", app.width))
	output := strings.Join([]string{app.renderHeader(), body, separator, app.renderHelp()}, "\n")

	offsetX := app.width - pageWidth
	if app.palette != nil {
		paletteWidth := min(44, pageWidth)
		lines := app.palette.Render(theme, paletteWidth)
		output = tui.SpliceOverlay(output, lines, offsetX+(pageWidth-paletteWidth)/2, 2)
	}
	if app.form != nil {
		lines := strings.Split(app.form.View(), "\n")
		formWidth := lipgloss.Width(app.form.View())
		anchorX := offsetX + max((pageWidth-formWidth)/2, 0)
		anchorY := 1 + max((pageHeight-len(lines))/2, 0)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	return output
}

// renderHeader draws "── Scalefield ── Page ───── summary ─".
func (app App) renderHeader() string {
	theme := app.env.theme
	current := app.pages[app.active]
	sep := lipgloss.NewStyle().Foreground(theme.BorderColor)
	brand := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render("Scalefield")
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render(current.Title())
	summary := lipgloss.NewStyle().Foreground(theme.FaintText).Render(current.Summary())

	left := sep.Render("── ") + brand + sep.Render(" ── ") + title + " "
	right := ""
	if current.Summary() != "" {
		right = " " + summary + " " + sep.Render("─")
	}
	fill := max(app.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + sep.Render(strings.Repeat("─", fill)) + right
}

// renderSidebar lists the routes with their jump digits. The mounted
// route is highlighted.
func (app App) renderSidebar(height int) string {
	theme := app.env.theme
	lines := make([]string, 0, height)
	lines = append(lines, "")
	for index, candidate := range app.pages {
		digit := " "
		if index < 10 {
			digit = fmt.Sprint(index)
		}
		label := fit(" "+digit+" "+candidate.Title(), sidebarWidth)
		style := lipgloss.NewStyle().Foreground(theme.FaintText)
		if index == app.active {
			style = lipgloss.NewStyle().Bold(true).Foreground(theme.SelectedForeground).Background(theme.SelectedBackground)
		}
		lines = append(lines, style.Render(label))
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", sidebarWidth))
	}
	return strings.Join(lines[:height], "\n")
}

// renderHelp shows the latest notice, or the key hints of the mounted
// page.
func (app App) renderHelp() string {
	theme := app.env.theme
	if app.notice != "" {
		color := theme.NormalText
		switch {
		case app.noticeLevel >= slog.LevelError:
			color = theme.Negative
		case app.noticeLevel >= slog.LevelWarn:
			color = theme.Warning
		}
		return lipgloss.NewStyle().Foreground(color).Render(fit(" "+app.notice, app.width))
	}

	help := app.pages[app.active].Help()
	switch {
	case app.form != nil:
		help = "tab next field  ⏎ confirm  esc cancel"
	case app.palette != nil:
		help = "type a page name  ⏎ go  esc cancel"
	case !app.pages[app.active].Capturing():
		keys := app.env.keys
		help = "q quit  0-9 " + "pages  " + keys.Palette.Help().Key + " " + keys.Palette.Help().Desc + "  " + help
	}
	return lipgloss.NewStyle().Foreground(theme.HelpText).Render(fit(" "+help, app.width))
}
