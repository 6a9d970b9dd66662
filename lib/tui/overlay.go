// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the original view are preserved on both sides of the
// overlay. View lines shorter than anchorX are padded with spaces so
// the overlay lands in the requested column.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		var result strings.Builder

		if anchorX > 0 {
			result.WriteString(ansi.Truncate(viewLine, anchorX, ""))
			if viewLineWidth < anchorX {
				result.WriteString(strings.Repeat(" ", anchorX-viewLineWidth))
			}
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// SpliceOverlayClipped is SpliceOverlay for overlays that may extend
// past either screen edge: columns left of zero and at or beyond
// screenWidth are cut from every overlay line before splicing. The
// slide-in panel uses this while it is partly off-screen.
func SpliceOverlayClipped(view string, overlayLines []string, anchorX, anchorY, screenWidth int) string {
	if len(overlayLines) == 0 || anchorX >= screenWidth {
		return view
	}

	clipped := make([]string, len(overlayLines))
	for index, line := range overlayLines {
		if anchorX < 0 {
			line = ansi.TruncateLeft(line, -anchorX, "")
		}
		visibleWidth := screenWidth - max(anchorX, 0)
		if ansi.StringWidth(line) > visibleWidth {
			line = ansi.Truncate(line, visibleWidth, "")
		}
		clipped[index] = line
	}
	return SpliceOverlay(view, clipped, max(anchorX, 0), anchorY)
}

// PadOverlayLine takes styled content for the inner area and pads it
// to the full width with background-colored spaces. Returns
// " content  " with background applied to the padding.
func PadOverlayLine(styledContent string, innerWidth int, backgroundStyle lipgloss.Style) string {
	contentWidth := ansi.StringWidth(styledContent)
	rightPad := innerWidth - contentWidth
	if rightPad < 0 {
		styledContent = ansi.Truncate(styledContent, innerWidth, "…")
		rightPad = 0
	}
	return backgroundStyle.Render(" ") +
		styledContent +
		backgroundStyle.Render(strings.Repeat(" ", rightPad+1))
}

// PadLines pads or cuts every line of view to exactly width columns
// and the view to exactly height lines, so overlays can be spliced at
// fixed screen coordinates.
func PadLines(view string, width, height int) string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for index, line := range lines {
		lineWidth := ansi.StringWidth(line)
		switch {
		case lineWidth > width:
			lines[index] = ansi.Truncate(line, width, "")
		case lineWidth < width:
			lines[index] = line + strings.Repeat(" ", width-lineWidth)
		}
	}
	return strings.Join(lines, "\n")
}
