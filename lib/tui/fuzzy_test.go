// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "testing"

func TestFuzzyMatchSubsequence(t *testing.T) {
	slab := NewSlab()
	result := FuzzyMatch("deployments", []rune("dpl"), slab)
	if !result.Matched {
		t.Fatal("dpl should match deployments")
	}
	if len(result.Positions) != 3 {
		t.Errorf("positions = %v, want 3 entries", result.Positions)
	}
	if FuzzyMatch("logs", []rune("xyz"), slab).Matched {
		t.Error("xyz should not match logs")
	}
}

func TestFuzzyMatchSmartCase(t *testing.T) {
	slab := NewSlab()
	if !FuzzyMatch("API Keys", []rune("api"), slab).Matched {
		t.Error("lowercase pattern should match case-insensitively")
	}
	if FuzzyMatch("api keys", []rune("API"), slab).Matched {
		t.Error("uppercase pattern should match case-sensitively")
	}
}

func TestRankFuzzy(t *testing.T) {
	candidates := []string{"Table Editor", "Projects", "Deployments", "Logs"}
	ranked := RankFuzzy(candidates, "log")
	if len(ranked) == 0 || candidates[ranked[0]] != "Logs" {
		t.Errorf("RankFuzzy(log) = %v, want Logs first", ranked)
	}
	if all := RankFuzzy(candidates, ""); len(all) != len(candidates) {
		t.Errorf("empty pattern ranked %d candidates, want all", len(all))
	}
}
