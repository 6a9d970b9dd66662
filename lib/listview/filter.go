// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package listview

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/scalefield/console/lib/tui"
)

// StatusAll is the status filter value that passes every entity.
const StatusAll = "all"

// FilterState is the derived input to [Visible]. An empty
// StatusFilter behaves like [StatusAll].
type FilterState struct {
	StatusFilter string
	SearchQuery  string
}

// StatusOption is one choice in a page's status filter.
type StatusOption struct {
	Value string
	Label string
}

// Visible returns the entities that pass the status filter and the
// search query, in their original order. The input slice is never
// modified and the result never aliases it.
func Visible[T Entity](entities []T, state FilterState) []T {
	query := strings.ToLower(state.SearchQuery)
	result := make([]T, 0, len(entities))
	for _, entity := range entities {
		if !matchesStatus(entity, state.StatusFilter) {
			continue
		}
		if query != "" && !matchesQuery(entity, query) {
			continue
		}
		result = append(result, entity)
	}
	return result
}

// Matches reports whether a single entity passes the filter.
func Matches[T Entity](entity T, state FilterState) bool {
	if !matchesStatus(entity, state.StatusFilter) {
		return false
	}
	if state.SearchQuery == "" {
		return true
	}
	return matchesQuery(entity, strings.ToLower(state.SearchQuery))
}

func matchesStatus(entity Entity, statusFilter string) bool {
	if statusFilter == "" || statusFilter == StatusAll {
		return true
	}
	return entity.EntityStatus() == statusFilter
}

// matchesQuery expects an already lowercased query.
func matchesQuery(entity Entity, query string) bool {
	searchable, ok := entity.(Searchable)
	if !ok {
		return strings.Contains(strings.ToLower(entity.EntityID()), query)
	}
	for _, field := range searchable.SearchText() {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// MatchPositions returns the rune offsets in text covered by the first
// case-insensitive occurrence of query, or nil when there is none.
func MatchPositions(text, query string) []int {
	if query == "" {
		return nil
	}
	lowerText := strings.ToLower(text)
	byteOffset := strings.Index(lowerText, strings.ToLower(query))
	if byteOffset < 0 {
		return nil
	}
	start := utf8.RuneCountInString(lowerText[:byteOffset])
	length := utf8.RuneCountInString(query)
	positions := make([]int, length)
	for index := range positions {
		positions[index] = start + index
	}
	return positions
}

// FilterModel holds the interactive filter inputs of one page: the
// search text typed after "/" and the status chosen from the status
// dropdown. It composes with the entity store client-side; providers
// are never re-queried when the filter changes.
type FilterModel struct {
	// Input is the current search text.
	Input string

	// Active is true while the search input has keyboard focus.
	Active bool

	// Status is the selected status filter value.
	Status string

	// Options are the status choices, beginning with "all".
	Options []StatusOption
}

// NewFilterModel creates a filter with the status set to "all".
func NewFilterModel(options []StatusOption) FilterModel {
	return FilterModel{Status: StatusAll, Options: options}
}

// State returns the FilterState for [Visible].
func (filter *FilterModel) State() FilterState {
	return FilterState{StatusFilter: filter.Status, SearchQuery: filter.Input}
}

// SetStatus selects a status filter value. Returns false if the value
// is not one of the options.
func (filter *FilterModel) SetStatus(value string) bool {
	if value == "" {
		value = StatusAll
	}
	for _, option := range filter.Options {
		if option.Value == value {
			filter.Status = value
			return true
		}
	}
	return false
}

// StatusIndex returns the position of the current status in Options.
func (filter *FilterModel) StatusIndex() int {
	for index, option := range filter.Options {
		if option.Value == filter.Status {
			return index
		}
	}
	return 0
}

// StatusLabel returns the display label of the current status.
func (filter *FilterModel) StatusLabel() string {
	if len(filter.Options) == 0 {
		return "All"
	}
	return filter.Options[filter.StatusIndex()].Label
}

// HandleRune appends a typed character to the search input.
func (filter *FilterModel) HandleRune(character rune) bool {
	filter.Input += string(character)
	return true
}

// HandleBackspace removes the last character from the search input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the search input and drops focus. The status filter is
// left alone.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar: the status chip followed by the search
// input (with a cursor while focused).
func (filter *FilterModel) View(theme tui.Theme, width int) string {
	chipStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	if filter.Status != StatusAll && filter.Status != "" {
		chipStyle = chipStyle.Foreground(theme.StatusColor(filter.Status))
	}
	chip := chipStyle.Render("[" + filter.StatusLabel() + "]")

	var search string
	switch {
	case filter.Active:
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		search = lipgloss.NewStyle().Foreground(theme.NormalText).Render(" / " + filter.Input + cursor)
	case filter.Input != "":
		search = lipgloss.NewStyle().Foreground(theme.FaintText).Render(" search: " + filter.Input)
	default:
		search = lipgloss.NewStyle().Foreground(theme.HelpText).Render(" / to search")
	}

	return lipgloss.NewStyle().Width(width).Render(" " + chip + search)
}
