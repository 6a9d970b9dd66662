// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "strings"

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws values as one row of block characters, scaled
// between the smallest and largest sample. Only the last width samples
// are drawn. A flat series sits at mid height.
func Sparkline(values []float64, width int) string {
	if width <= 0 || len(values) == 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	low, high := values[0], values[0]
	for _, value := range values {
		low = min(low, value)
		high = max(high, value)
	}

	var line strings.Builder
	top := len(sparkLevels) - 1
	for _, value := range values {
		level := top / 2
		if high > low {
			level = int((value-low)/(high-low)*float64(top) + 0.5)
		}
		line.WriteRune(sparkLevels[level])
	}
	return line.String()
}
