// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package anim

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Fade returns a style with fg blended toward bg by opacity (0 = bg, 1 = fg).
// Colours that are not hex fall back to faint rendering below half opacity.
func Fade(fg, bg string, opacity float64) lipgloss.Style {
	opacity = min(max(opacity, 0), 1)
	if c, ok := Blend(bg, fg, opacity); ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	return style.Faint(opacity < 0.5)
}

// Blend mixes two hex colours in Lab space. ok is false if either colour
// does not parse.
func Blend(from, to string, t float64) (string, bool) {
	a, err := colorful.Hex(from)
	if err != nil {
		return "", false
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return "", false
	}
	return a.BlendLab(b, min(max(t, 0), 1)).Clamped().Hex(), true
}
