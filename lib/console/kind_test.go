// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "testing"

func TestStatusLabel(t *testing.T) {
	tests := map[string]string{
		"in_progress": "In Progress",
		"success":     "Success",
		"warn":        "Warn",
		"api-keys":    "Api Keys",
		"":            "",
	}
	for input, want := range tests {
		if got := StatusLabel(input); got != want {
			t.Errorf("StatusLabel(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParseKind(t *testing.T) {
	kind, ok := ParseKind(" Deployments ")
	if !ok || kind != KindDeployment {
		t.Errorf("ParseKind(Deployments) = %q, %v", kind, ok)
	}
	if _, ok := ParseKind("analytics"); ok {
		t.Error("ParseKind(analytics) should fail")
	}
}

func TestRoutesSidebarOrder(t *testing.T) {
	routes := Routes()
	if len(routes) != len(Kinds)+3 {
		t.Fatalf("Routes() has %d entries, want %d", len(routes), len(Kinds)+3)
	}
	if routes[0] != RouteOverview || routes[len(routes)-1] != RouteSettings {
		t.Errorf("Routes() = %v, want overview first and settings last", routes)
	}
	for index, route := range routes {
		if route == RouteAnalytics && routes[index-1] != string(KindDeployment) {
			t.Errorf("analytics follows %q, want deployments", routes[index-1])
		}
	}
}

func TestValidRoute(t *testing.T) {
	for _, name := range []string{"overview", " Analytics", "settings", "logs"} {
		if !ValidRoute(name) {
			t.Errorf("ValidRoute(%q) = false", name)
		}
	}
	if ValidRoute("nowhere") {
		t.Error("ValidRoute(nowhere) = true")
	}
}

func TestDeploymentFilterOmitsCancelled(t *testing.T) {
	for _, status := range FilterStatuses(KindDeployment) {
		if status == string(DeploymentCancelled) {
			t.Error("deployment filter offers cancelled")
		}
	}
}

func TestEveryKindHasTitleAndStatuses(t *testing.T) {
	for _, kind := range Kinds {
		if kind.Title() == string(kind) {
			t.Errorf("%s has no title", kind)
		}
		if len(FilterStatuses(kind)) == 0 {
			t.Errorf("%s has no filter statuses", kind)
		}
	}
}
