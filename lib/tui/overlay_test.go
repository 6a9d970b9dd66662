// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	view := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	result := SpliceOverlay(view, []string{"XX", "YY"}, 4, 1)
	lines := strings.Split(ansi.Strip(result), "\n")
	want := []string{"aaaaaaaaaa", "bbbbXXbbbb", "ccccYYcccc"}
	for index := range want {
		if lines[index] != want[index] {
			t.Errorf("line %d = %q, want %q", index, lines[index], want[index])
		}
	}
}

func TestSpliceOverlayPadsShortLines(t *testing.T) {
	result := SpliceOverlay("ab", []string{"XY"}, 5, 0)
	if got := ansi.Strip(result); got != "ab   XY" {
		t.Errorf("result = %q, want %q", got, "ab   XY")
	}
}

func TestSpliceOverlayClippedRightEdge(t *testing.T) {
	view := "0123456789"
	result := SpliceOverlayClipped(view, []string{"ABCDEF"}, 7, 0, 10)
	if got := ansi.Strip(result); got != "0123456ABC" {
		t.Errorf("result = %q, want %q", got, "0123456ABC")
	}
}

func TestSpliceOverlayClippedLeftEdge(t *testing.T) {
	view := "0123456789"
	result := SpliceOverlayClipped(view, []string{"ABCDEF"}, -2, 0, 10)
	if got := ansi.Strip(result); got != "CDEF456789" {
		t.Errorf("result = %q, want %q", got, "CDEF456789")
	}
}

func TestSpliceOverlayClippedOffScreen(t *testing.T) {
	view := "0123456789"
	if result := SpliceOverlayClipped(view, []string{"ABC"}, 10, 0, 10); result != view {
		t.Errorf("fully off-screen overlay changed the view: %q", result)
	}
}

func TestPadLines(t *testing.T) {
	result := PadLines("abc\nabcdefgh", 5, 3)
	lines := strings.Split(result, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for index, line := range lines {
		if width := ansi.StringWidth(line); width != 5 {
			t.Errorf("line %d width = %d, want 5", index, width)
		}
	}
	if lines[1] != "abcde" {
		t.Errorf("long line = %q, want cut to %q", lines[1], "abcde")
	}
}
