// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package anim

import "math"

func EaseOutCubic(t float64) float64 {
	t = min(max(t, 0), 1)
	return 1 - math.Pow(1-t, 3)
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpInt interpolates between two integers, rounding to the nearest.
func LerpInt(a, b int, t float64) int {
	return int(math.Round(Lerp(float64(a), float64(b), t)))
}
