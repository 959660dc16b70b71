package ui

import (
	"math"
	"strconv"
)

// ClampPercent bounds a progress value to [0, 100]. NaN counts as 0.
func ClampPercent(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return math.Max(0, math.Min(100, value))
}

// ProgressWidth is the CSS width of a progress bar fill.
func ProgressWidth(value float64) string {
	return strconv.FormatFloat(ClampPercent(value), 'f', -1, 64) + "%"
}
