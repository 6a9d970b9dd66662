// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package listview

import (
	"reflect"
	"testing"

	"github.com/scalefield/console/lib/console"
)

// record is a minimal non-searchable entity.
type record struct {
	id     string
	status string
}

func (r record) EntityID() string     { return r.id }
func (r record) EntityStatus() string { return r.status }

func ids[T Entity](entities []T) []string {
	result := make([]string, len(entities))
	for index, entity := range entities {
		result[index] = entity.EntityID()
	}
	return result
}

func TestVisibleAllReturnsEverythingInOrder(t *testing.T) {
	deployments := console.Seed().Deployments
	want := ids(deployments)

	for _, status := range []string{StatusAll, ""} {
		got := ids(Visible(deployments, FilterState{StatusFilter: status}))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Visible(status %q) = %v, want %v", status, got, want)
		}
	}
}

func TestVisibleStatusFilterIsExact(t *testing.T) {
	deployments := console.Seed().Deployments
	got := Visible(deployments, FilterState{StatusFilter: string(console.DeploymentFailed)})
	if len(got) != 1 || got[0].ID != "1198" {
		t.Fatalf("failed filter = %v, want [1198]", ids(got))
	}
	if got := Visible(deployments, FilterState{StatusFilter: "fail"}); len(got) != 0 {
		t.Errorf("partial status value matched %v", ids(got))
	}
}

func TestVisibleSearchIsCaseInsensitive(t *testing.T) {
	projects := console.Seed().Projects
	got := Visible(projects, FilterState{StatusFilter: StatusAll, SearchQuery: "API"})
	if len(got) != 1 || got[0].Name != "api-gateway" {
		t.Fatalf("search API = %v, want api-gateway only", ids(got))
	}
}

func TestVisibleCombinesStatusAndSearch(t *testing.T) {
	deployments := console.Seed().Deployments
	got := ids(Visible(deployments, FilterState{
		StatusFilter: string(console.DeploymentSuccess),
		SearchQuery:  "api-gateway",
	}))
	if want := []string{"847", "845"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Visible = %v, want %v", got, want)
	}
	got = ids(Visible(deployments, FilterState{
		StatusFilter: string(console.DeploymentFailed),
		SearchQuery:  "api-gateway",
	}))
	if len(got) != 0 {
		t.Errorf("Visible = %v, want empty", got)
	}
}

func TestVisibleDoesNotAliasInput(t *testing.T) {
	entities := []record{{"a", "x"}, {"b", "y"}}
	visible := Visible(entities, FilterState{})
	visible[0] = record{"z", "z"}
	if entities[0].id != "a" {
		t.Error("modifying the result changed the input")
	}
}

func TestVisibleSearchesIDWithoutSearchText(t *testing.T) {
	entities := []record{{"alpha", "x"}, {"beta", "x"}}
	got := ids(Visible(entities, FilterState{SearchQuery: "ET"}))
	if want := []string{"beta"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Visible = %v, want %v", got, want)
	}
}

func TestMatches(t *testing.T) {
	entity := record{"alpha", "live"}
	if !Matches(entity, FilterState{StatusFilter: "live", SearchQuery: "ALP"}) {
		t.Error("expected match")
	}
	if Matches(entity, FilterState{StatusFilter: "dead"}) {
		t.Error("status mismatch matched")
	}
}

func TestMatchPositions(t *testing.T) {
	if got := MatchPositions("api-gateway", "GATE"); !reflect.DeepEqual(got, []int{4, 5, 6, 7}) {
		t.Errorf("MatchPositions = %v", got)
	}
	if got := MatchPositions("→ api", "api"); !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Errorf("MatchPositions with multibyte prefix = %v", got)
	}
	if got := MatchPositions("api", "xyz"); got != nil {
		t.Errorf("MatchPositions without match = %v", got)
	}
	if got := MatchPositions("api", ""); got != nil {
		t.Errorf("MatchPositions with empty query = %v", got)
	}
}

func TestFilterModel(t *testing.T) {
	filter := NewFilterModel([]StatusOption{
		{Value: StatusAll, Label: "All"},
		{Value: "failed", Label: "Failed"},
	})
	if filter.StatusLabel() != "All" {
		t.Errorf("initial label = %q", filter.StatusLabel())
	}
	if !filter.SetStatus("failed") || filter.StatusIndex() != 1 {
		t.Error("SetStatus(failed) did not select the option")
	}
	if filter.SetStatus("bogus") {
		t.Error("SetStatus accepted an unknown value")
	}
	if filter.Status != "failed" {
		t.Errorf("status after rejected SetStatus = %q", filter.Status)
	}

	filter.Active = true
	for _, character := range "pay→" {
		filter.HandleRune(character)
	}
	if !filter.HandleBackspace() || filter.Input != "pay" {
		t.Errorf("input after backspace = %q, want pay", filter.Input)
	}
	state := filter.State()
	if state.StatusFilter != "failed" || state.SearchQuery != "pay" {
		t.Errorf("State() = %+v", state)
	}

	filter.Clear()
	if filter.Input != "" || filter.Active || filter.Status != "failed" {
		t.Errorf("after Clear: input %q active %v status %q", filter.Input, filter.Active, filter.Status)
	}
	if filter.HandleBackspace() {
		t.Error("backspace on empty input reported a change")
	}

	if !filter.SetStatus("") || filter.Status != StatusAll {
		t.Error("SetStatus(\"\") should select all")
	}
}
