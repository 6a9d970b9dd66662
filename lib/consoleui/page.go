// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"

	"github.com/scalefield/console/lib/clock"
	"github.com/scalefield/console/lib/config"
	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/listview"
	"github.com/scalefield/console/lib/provider"
	"github.com/scalefield/console/lib/tui"
)

// page is one route of the console. Only the active page is mounted;
// Unmount disposes its selection state so that timers still in flight
// are dropped when they arrive.
type page interface {
	Route() string
	Title() string

	// Mount resets the page and starts loading its records.
	Mount() tea.Cmd
	Unmount()

	SetSize(width, height int)
	Update(msg tea.Msg) tea.Cmd
	View() string

	// Capturing reports whether the page is consuming raw keys (search
	// input or an open dropdown), which suspends the global bindings.
	Capturing() bool

	// ApplyFilter sets the status filter and search text. An unknown
	// status is ignored.
	ApplyFilter(status, search string)

	// Reload re-lists the records after the bundle changed.
	Reload(changes provider.Changes) tea.Cmd

	// Summary is the count shown in the header ("3 of 6 deployments").
	Summary() string

	Help() string
}

// pageEnv is the state shared by every page of one App.
type pageEnv struct {
	ctx        context.Context
	source     *provider.BundleSource
	theme      tui.Theme
	keys       KeyMap
	clock      clock.Clock
	logger     *slog.Logger
	timing     listview.Timing
	panelWidth int
	exportDir  string
	compress   bool
	config     *config.Config

	mounts uint64
}

func (env *pageEnv) nextMount() uint64 {
	env.mounts++
	return env.mounts
}

// Messages addressed to a page carry the mount they were issued for.
// A page drops messages from an earlier mount.
type (
	pageLoadedMsg struct {
		mount   uint64
		items   any
		changed []string
		err     error
	}

	selectionTimerMsg struct {
		mount uint64
		timer listview.Timer
	}

	frameTickMsg struct{ mount uint64 }

	heatTickMsg struct{ mount uint64 }

	exportDoneMsg struct {
		mount uint64
		path  string
		count int
		err   error
	}
)

// noticeMsg asks the app to show a transient line in the status bar.
type noticeMsg struct {
	text  string
	level slog.Level
}

// navigateMsg asks the app to switch routes and search the new page.
type navigateMsg struct {
	route  string
	search string
}

func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text, level: slog.LevelInfo} }
}

func warning(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text, level: slog.LevelWarn} }
}

// Page is the list page of one record kind: a filter bar, an optional
// summary banner, the record list and the sliding detail panel.
type Page[T record] struct {
	spec kindSpec[T]
	env  *pageEnv

	mount   uint64
	loaded  bool
	loadErr error
	items   []T
	visible []T

	filter     listview.FilterModel
	controller *listview.Controller
	presenter  listview.Presenter
	dropdown   *tui.DropdownOverlay
	heat       *tui.HeatTracker
	panel      detailPanel

	// revealed holds the ids of records whose secret is shown.
	revealed map[string]bool

	// pendingStatus is a requested status filter that is not yet an
	// option. It is applied once the records are loaded.
	pendingStatus string

	cursor      int
	scroll      int
	actionFocus int

	width  int
	height int

	frameTicking bool
	heatTicking  bool
}

func newPage[T record](spec kindSpec[T], env *pageEnv) *Page[T] {
	page := &Page[T]{spec: spec, env: env}
	page.reset()
	return page
}

func (page *Page[T]) reset() {
	page.loaded = false
	page.loadErr = nil
	page.items = nil
	page.visible = nil
	page.filter = listview.NewFilterModel(statusOptions(page.spec.kind, nil))
	page.filter.SetStatus(page.spec.initialStatus)
	page.controller = listview.NewController(page.env.timing)
	page.dropdown = nil
	page.heat = tui.NewHeatTracker()
	page.panel = newDetailPanel(page.env.theme)
	page.revealed = make(map[string]bool)
	page.pendingStatus = ""
	page.cursor = 0
	page.scroll = 0
	page.actionFocus = -1
	page.frameTicking = false
	page.heatTicking = false
	page.resizePanel()
}

func (page *Page[T]) Route() string { return string(page.spec.kind) }
func (page *Page[T]) Title() string { return page.spec.kind.Title() }

func (page *Page[T]) Mount() tea.Cmd {
	page.reset()
	page.mount = page.env.nextMount()
	page.env.logger.Debug("page mounted", "page", page.spec.kind)
	return page.load(nil)
}

func (page *Page[T]) Unmount() {
	page.controller.Dispose()
	page.panel.Clear()
	page.mount = 0
}

func (page *Page[T]) Reload(changes provider.Changes) tea.Cmd {
	if page.mount == 0 {
		return nil
	}
	return page.load(changes[page.spec.kind])
}

func (page *Page[T]) load(changed []string) tea.Cmd {
	mount := page.mount
	list := page.spec.list(page.env.source)
	ctx := page.env.ctx
	return func() tea.Msg {
		items, err := list.List(ctx)
		return pageLoadedMsg{mount: mount, items: items, changed: changed, err: err}
	}
}

func (page *Page[T]) Capturing() bool {
	return page.filter.Active || page.dropdown != nil
}

func (page *Page[T]) ApplyFilter(status, search string) {
	if status != "" && !page.filter.SetStatus(status) {
		page.pendingStatus = status
	}
	page.filter.Input = search
	page.filter.Active = false
	page.refilter()
}

func (page *Page[T]) Summary() string {
	if !page.loaded {
		return ""
	}
	if len(page.visible) == len(page.items) {
		return fmt.Sprintf("%d %s", len(page.items), page.spec.kind.Noun())
	}
	return fmt.Sprintf("%d of %d %s", len(page.visible), len(page.items), page.spec.kind.Noun())
}

func (page *Page[T]) Help() string {
	switch {
	case page.dropdown != nil:
		return "↑/↓ choose  ⏎ apply  esc cancel"
	case page.filter.Active:
		return "type to search  ⏎ done  esc clear"
	}
	keys := page.env.keys
	bindings := []key.Binding{keys.Down, keys.Select, keys.Close, keys.Search, keys.Status}
	if page.controller.SelectedID() != "" {
		bindings = append(bindings, keys.Actions, keys.PanelDown)
	}
	bindings = append(bindings, keys.Export)
	if page.spec.kind == console.KindProject {
		bindings = append(bindings, keys.NewProject)
	}
	return helpText(bindings)
}

func (page *Page[T]) SetSize(width, height int) {
	page.width = width
	page.height = height
	page.resizePanel()
	page.ensureCursorVisible()
}

// panelWidthFor keeps at least a sliver of the list visible next to
// the panel on narrow terminals.
func (page *Page[T]) panelWidthFor() int {
	width := page.env.panelWidth
	if page.width > 0 {
		width = min(width, max(page.width-8, 20))
	}
	return width
}

func (page *Page[T]) resizePanel() {
	width := page.panelWidthFor()
	page.presenter = listview.NewPresenter(width, page.controller.Timing())
	page.panel.SetSize(width, max(page.height, 1))
}

func (page *Page[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		if msg.mount != page.mount {
			return nil
		}
		return page.handleLoaded(msg)

	case selectionTimerMsg:
		if msg.mount != page.mount {
			return nil
		}
		if !page.controller.Fire(msg.timer, page.env.clock.Now()) {
			return nil
		}
		page.logTransition()
		page.refreshPanel()
		return page.startFrames()

	case frameTickMsg:
		if msg.mount != page.mount {
			return nil
		}
		page.frameTicking = false
		return page.startFrames()

	case heatTickMsg:
		if msg.mount != page.mount {
			return nil
		}
		page.heatTicking = false
		return page.startHeat()

	case exportDoneMsg:
		if msg.mount != page.mount {
			return nil
		}
		if msg.err != nil {
			page.env.logger.Error("export failed", "page", page.spec.kind, "error", msg.err)
			return warning("Export failed: " + msg.err.Error())
		}
		page.env.logger.Info("export written", "page", page.spec.kind, "path", msg.path, "count", msg.count)
		return notice(fmt.Sprintf("Exported %d %s to %s", msg.count, page.spec.kind.Noun(), msg.path))

	case tea.KeyMsg:
		return page.handleKey(msg)
	}
	return nil
}

func (page *Page[T]) handleLoaded(msg pageLoadedMsg) tea.Cmd {
	if msg.err != nil {
		page.loaded = true
		page.loadErr = msg.err
		page.env.logger.Warn("loading records failed", "page", page.spec.kind, "error", msg.err)
		return nil
	}
	items, _ := msg.items.([]T)
	page.items = items
	page.loaded = true
	page.loadErr = nil

	present := make([]string, 0, len(items))
	for _, item := range items {
		present = append(present, item.EntityStatus())
	}
	page.filter.Options = statusOptions(page.spec.kind, present)
	if page.pendingStatus != "" {
		if !page.filter.SetStatus(page.pendingStatus) {
			page.env.logger.Warn("unknown status filter", "page", page.spec.kind, "status", page.pendingStatus)
		}
		page.pendingStatus = ""
	}
	page.refilter()

	exists := func(id string) bool { return listview.IndexOf(page.items, id) >= 0 }
	if page.controller.Retain(exists) {
		page.env.logger.Info("displayed record removed by reload", "page", page.spec.kind)
		page.actionFocus = -1
	}
	for id := range page.revealed {
		if !exists(id) {
			delete(page.revealed, id)
		}
	}
	page.refreshPanel()

	if len(msg.changed) == 0 {
		return nil
	}
	now := page.env.clock.Now()
	for _, id := range msg.changed {
		page.heat.Ignite(id, now)
	}
	return page.startHeat()
}

// refilter recomputes the visible list, keeping the cursor on the same
// record when it is still visible.
func (page *Page[T]) refilter() {
	var cursorID string
	if page.cursor >= 0 && page.cursor < len(page.visible) {
		cursorID = page.visible[page.cursor].EntityID()
	}
	page.visible = listview.Visible(page.items, page.filter.State())
	if index := listview.IndexOf(page.visible, cursorID); index >= 0 {
		page.cursor = index
	}
	page.clampCursor()
}

func (page *Page[T]) clampCursor() {
	page.cursor = min(page.cursor, len(page.visible)-1)
	page.cursor = max(page.cursor, 0)
	page.ensureCursorVisible()
}

func (page *Page[T]) ensureCursorVisible() {
	height := page.listHeight()
	if page.cursor < page.scroll {
		page.scroll = page.cursor
	}
	if page.cursor >= page.scroll+height {
		page.scroll = page.cursor - height + 1
	}
	maxScroll := max(len(page.visible)-height, 0)
	page.scroll = min(max(page.scroll, 0), maxScroll)
}

// listHeight is the number of record rows that fit under the filter
// bar, the banner and the column header.
func (page *Page[T]) listHeight() int {
	return max(page.height-2-len(page.bannerLines()), 1)
}

func (page *Page[T]) bannerLines() []string {
	if page.spec.banner == nil || !page.loaded || page.loadErr != nil {
		return nil
	}
	return page.spec.banner(page.items, page.env.source.Bundle(), page.env.theme, page.width)
}

// refreshPanel projects the displayed record into the panel. The
// record is looked up in the full store, so a record filtered out of
// the list stays in the panel.
func (page *Page[T]) refreshPanel() {
	displayed := page.controller.DisplayedID()
	if displayed == "" {
		page.panel.Clear()
		return
	}
	item, found := listview.Find(page.items, displayed)
	if !found {
		page.panel.Clear()
		return
	}
	page.panel.SetContent(displayed, page.spec.panel(item, page.panelContext(displayed)))
	if page.actionFocus >= len(page.panel.content.Actions) {
		page.actionFocus = -1
	}
}

func (page *Page[T]) panelContext(id string) panelContext {
	return panelContext{bundle: page.env.source.Bundle(), revealed: page.revealed[id]}
}

func (page *Page[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if page.dropdown != nil {
		return page.handleDropdownKey(msg)
	}
	if page.filter.Active {
		return page.handleSearchKey(msg)
	}

	keys := page.env.keys
	switch {
	case key.Matches(msg, keys.Up):
		page.moveCursor(-1)
	case key.Matches(msg, keys.Down):
		page.moveCursor(1)
	case key.Matches(msg, keys.PageUp):
		page.moveCursor(-page.listHeight())
	case key.Matches(msg, keys.PageDown):
		page.moveCursor(page.listHeight())
	case key.Matches(msg, keys.Home):
		page.moveCursor(-len(page.visible))
	case key.Matches(msg, keys.End):
		page.moveCursor(len(page.visible))

	case key.Matches(msg, keys.Select):
		if page.actionFocus >= 0 && page.controller.SelectedID() != "" {
			return page.activateFocused()
		}
		return page.selectCursor()

	case key.Matches(msg, keys.Close):
		now := page.env.clock.Now()
		if timer, closed := page.controller.Close(now); closed {
			page.actionFocus = -1
			page.logTransition()
			return tea.Batch(page.arm(timer), page.startFrames())
		}
		if page.filter.Input != "" {
			page.filter.Clear()
			page.refilter()
		}

	case key.Matches(msg, keys.Actions):
		actions := len(page.panel.content.Actions)
		if page.controller.SelectedID() != "" && actions > 0 {
			page.actionFocus = (page.actionFocus + 1) % actions
		}

	case key.Matches(msg, keys.PanelUp):
		page.panel.Scroll(-3)
	case key.Matches(msg, keys.PanelDown):
		page.panel.Scroll(3)

	case key.Matches(msg, keys.Search):
		page.filter.Active = true

	case key.Matches(msg, keys.Status):
		options := make([]tui.DropdownOption, len(page.filter.Options))
		for index, option := range page.filter.Options {
			options[index] = tui.DropdownOption{Label: option.Label, Value: option.Value}
		}
		page.dropdown = tui.NewDropdown(options, page.filter.Status, 1, 1)
		theme := page.env.theme
		page.dropdown.Swatch = func(value string) lipgloss.Color {
			if value == listview.StatusAll {
				return theme.HeaderForeground
			}
			return theme.StatusColor(value)
		}

	case key.Matches(msg, keys.Export):
		return page.export()
	}
	return nil
}

func (page *Page[T]) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	keys := page.env.keys
	switch {
	case key.Matches(msg, keys.Up):
		page.dropdown.MoveUp()
	case key.Matches(msg, keys.Down):
		page.dropdown.MoveDown()
	case key.Matches(msg, keys.Select):
		value := page.dropdown.Selected().Value
		page.dropdown = nil
		page.filter.SetStatus(value)
		page.refilter()
		page.env.logger.Debug("status filter changed", "page", page.spec.kind, "status", value)
	case key.Matches(msg, keys.Close), key.Matches(msg, keys.Status):
		page.dropdown = nil
	}
	return nil
}

func (page *Page[T]) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		page.filter.Clear()
	case tea.KeyEnter:
		page.filter.Active = false
		return nil
	case tea.KeyBackspace:
		if !page.filter.HandleBackspace() {
			return nil
		}
	case tea.KeySpace:
		page.filter.HandleRune(' ')
	case tea.KeyRunes:
		for _, character := range msg.Runes {
			page.filter.HandleRune(character)
		}
	default:
		return nil
	}
	page.refilter()
	return nil
}

func (page *Page[T]) moveCursor(delta int) {
	page.cursor += delta
	page.clampCursor()
}

// selectCursor hands the record under the cursor to the controller.
// Selecting the displayed record again closes the panel.
func (page *Page[T]) selectCursor() tea.Cmd {
	if len(page.visible) == 0 {
		return nil
	}
	id := page.visible[page.cursor].EntityID()
	timer := page.controller.Select(id, page.env.clock.Now())
	page.actionFocus = -1
	page.logTransition()
	page.refreshPanel()
	return tea.Batch(page.arm(timer), page.startFrames())
}

func (page *Page[T]) logTransition() {
	snapshot := page.controller.Snapshot()
	entity := snapshot.SelectedID
	if entity == "" {
		entity = snapshot.DisplayedID
	}
	page.env.logger.Debug("panel transition",
		"page", page.spec.kind,
		"entity", entity,
		"phase", snapshot.Phase.String(),
	)
}

func (page *Page[T]) arm(timer listview.Timer) tea.Cmd {
	mount := page.mount
	return tea.Tick(timer.Delay, func(time.Time) tea.Msg {
		return selectionTimerMsg{mount: mount, timer: timer}
	})
}

// startFrames schedules one frame tick while the panel slides. Only
// one tick chain runs at a time.
func (page *Page[T]) startFrames() tea.Cmd {
	if page.frameTicking {
		return nil
	}
	if !page.presenter.Animating(page.controller.Snapshot(), page.env.clock.Now()) {
		return nil
	}
	page.frameTicking = true
	mount := page.mount
	return tea.Tick(tui.FrameInterval, func(time.Time) tea.Msg { return frameTickMsg{mount: mount} })
}

func (page *Page[T]) startHeat() tea.Cmd {
	if page.heatTicking || !page.heat.HasHot(page.env.clock.Now()) {
		return nil
	}
	page.heatTicking = true
	mount := page.mount
	return tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg { return heatTickMsg{mount: mount} })
}

func (page *Page[T]) activateFocused() tea.Cmd {
	actions := page.panel.content.Actions
	if page.actionFocus < 0 || page.actionFocus >= len(actions) {
		return nil
	}
	item, found := listview.Find(page.items, page.controller.DisplayedID())
	if !found {
		return nil
	}
	return page.activate(actions[page.actionFocus], item)
}

// activate performs an action button. Actions never modify the store:
// reveal toggles the masked key, copy actions write to the clipboard,
// log links navigate to the logs page and the rest are recorded.
func (page *Page[T]) activate(action console.Action, item T) tea.Cmd {
	id := item.EntityID()
	logger := page.env.logger.With("page", page.spec.kind, "entity", id, "action", action.ID)

	switch action.ID {
	case console.ActionReveal.ID:
		page.revealed[id] = !page.revealed[id]
		if !page.revealed[id] {
			delete(page.revealed, id)
		}
		page.refreshPanel()
		logger.Debug("key visibility toggled", "revealed", page.revealed[id])
		return nil

	case console.ActionCopy.ID, console.ActionCopyLogEntry.ID:
		text, label := copyPayload(item)
		if text == "" {
			return nil
		}
		logger.Info("copied to clipboard")
		return tea.Batch(copyToClipboard(text), notice(label+" copied to clipboard"))

	case console.ActionViewLogs.ID, console.ActionLogs.ID:
		search := logSearchFor(item)
		logger.Info("navigating to logs", "search", search)
		return func() tea.Msg {
			return navigateMsg{route: string(console.KindLog), search: search}
		}
	}

	logger.Info("action requested")
	return notice(fmt.Sprintf("%s requested for %s", action.Label, page.panel.content.Title))
}

// copyPayload returns the clipboard text for a copy action and a label
// for the confirmation notice.
func copyPayload(item any) (string, string) {
	switch item := item.(type) {
	case console.APIKey:
		return item.Key, "API key"
	case console.LogEntry:
		data, err := json.Marshal(item)
		if err != nil {
			return "", ""
		}
		return string(data), "Log entry"
	}
	return "", ""
}

// logSearchFor returns the logs page search for a record's "logs"
// action: the project the record belongs to.
func logSearchFor(item any) string {
	switch item := item.(type) {
	case console.Deployment:
		return item.Project
	case console.Project:
		return item.Name
	}
	return ""
}

func (page *Page[T]) export() tea.Cmd {
	rows := slices.Clone(page.visible)
	kind := page.spec.kind
	dir := page.env.exportDir
	compress := page.env.compress
	now := page.env.clock.Now()
	mount := page.mount
	return func() tea.Msg {
		path, err := writeExport(dir, kind, rows, compress, now)
		return exportDoneMsg{mount: mount, path: path, count: len(rows), err: err}
	}
}

// View renders exactly height lines: the filter bar, the banner, the
// column header and the rows, with the detail panel and the status
// dropdown spliced over them.
func (page *Page[T]) View() string {
	width, height := page.width, page.height
	if width <= 0 || height <= 0 {
		return ""
	}
	theme := page.env.theme

	lines := []string{page.filter.View(theme, width)}
	lines = append(lines, page.bannerLines()...)

	listWidth := width - 1
	widths := layoutColumns(page.spec.columns, listWidth)
	lines = append(lines, renderHeaderRow(page.spec.columns, widths, width, theme))

	listHeight := page.listHeight()
	switch {
	case !page.loaded:
		lines = append(lines, page.message("Loading "+page.spec.kind.Noun()+"…", theme.FaintText))
	case page.loadErr != nil:
		lines = append(lines, page.message("Could not load "+page.spec.kind.Noun()+": "+page.loadErr.Error(), theme.Negative))
	case len(page.visible) == 0:
		text := "No " + page.spec.kind.Noun() + " match"
		if page.filter.Input != "" {
			text += fmt.Sprintf(" %q", page.filter.Input)
		}
		lines = append(lines, page.message(text, theme.FaintText))
	default:
		lines = append(lines, page.rows(widths, listWidth, listHeight)...)
	}

	view := tui.PadLines(strings.Join(lines, "\n"), width, height)

	snapshot := page.controller.Snapshot()
	if snapshot.Visible() {
		view = page.presenter.Compose(view, width, page.panel.Lines(page.actionFocus), snapshot, page.env.clock.Now())
	}
	if page.dropdown != nil {
		view = tui.SpliceOverlay(view, page.dropdown.Render(theme), page.dropdown.AnchorX, page.dropdown.AnchorY)
	}
	return view
}

func (page *Page[T]) message(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render(fit("  "+text, page.width))
}

func (page *Page[T]) rows(widths []int, listWidth, listHeight int) []string {
	theme := page.env.theme
	now := page.env.clock.Now()
	displayed := page.controller.DisplayedID()
	end := min(page.scroll+listHeight, len(page.visible))

	scrollbar := strings.Split(tui.RenderScrollbar(theme, listHeight, len(page.visible), listHeight, page.scroll, true), "\n")
	lines := make([]string, 0, listHeight)
	for index := page.scroll; index < end; index++ {
		item := page.visible[index]
		state := rowState{
			cursor:    index == page.cursor,
			displayed: item.EntityID() == displayed,
			heat:      page.heat.Heat(item.EntityID(), now),
			query:     page.filter.Input,
		}
		row := renderRow(item, page.spec.columns, widths, listWidth, state, theme)
		if bar := index - page.scroll; bar < len(scrollbar) {
			row += scrollbar[bar]
		}
		lines = append(lines, row)
	}
	return lines
}

// helpText joins the help of bindings as "key desc" pairs.
func helpText(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}
