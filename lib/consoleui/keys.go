// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the console. Digits 0-9 jump to
// a route directly and are not listed here.
type KeyMap struct {
	// List movement.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Selection and the detail panel.
	Select    key.Binding // Select the row, or press the focused action.
	Close     key.Binding // Close the panel, or clear the search.
	Actions   key.Binding // Cycle focus through the panel's actions.
	PanelUp   key.Binding
	PanelDown key.Binding

	// Filters.
	Search key.Binding
	Status key.Binding

	Export     key.Binding
	NewProject key.Binding

	// Period cycles the analytics reporting window.
	Period key.Binding

	// Routing.
	NextPage     key.Binding
	PreviousPage key.Binding
	Palette      key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style movement
// alongside the arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
	Actions: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "actions"),
	),
	PanelUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("K", "scroll panel up"),
	),
	PanelDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("J", "scroll panel down"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Status: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	NewProject: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new project"),
	),
	Period: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "period"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next page"),
	),
	PreviousPage: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous page"),
	),
	Palette: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "go to"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
