// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"sort"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching one candidate.
type FuzzyResult struct {
	Matched   bool
	Score     int
	Positions []int // Rune offsets of matched characters, ascending.
}

// fzf's bonus tables are package state filled in by Init.
var initScheme sync.Once

// NewSlab allocates scratch space for FuzzyMatch. A slab may be reused
// across calls from one goroutine.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// FuzzyMatch runs fzf's V2 algorithm (smart case: case-sensitive only
// when the pattern has upper case) against text.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{Matched: true}
	}
	initScheme.Do(func() { algo.Init("default") })
	caseSensitive := strings.ToLower(string(pattern)) != string(pattern)
	if !caseSensitive {
		pattern = []rune(strings.ToLower(string(pattern)))
	}
	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(caseSensitive, false, true, &chars, pattern, true, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}
	fuzzy := FuzzyResult{Matched: true, Score: result.Score}
	if positions != nil {
		fuzzy.Positions = append([]int(nil), (*positions)...)
		sort.Ints(fuzzy.Positions)
	}
	return fuzzy
}

// RankFuzzy returns the indices of candidates matching pattern, best
// score first. Ties keep candidate order.
func RankFuzzy(candidates []string, pattern string) []int {
	slab := NewSlab()
	runes := []rune(pattern)
	type scored struct {
		index int
		score int
	}
	var matches []scored
	for index, candidate := range candidates {
		result := FuzzyMatch(candidate, runes, slab)
		if result.Matched {
			matches = append(matches, scored{index: index, score: result.Score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	indices := make([]int, len(matches))
	for position, match := range matches {
		indices[position] = match.index
	}
	return indices
}
