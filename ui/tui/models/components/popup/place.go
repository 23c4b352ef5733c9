// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Place draws fg over bg with its top left corner at (left, top). Parts of
// fg outside of bg are cut off.
func Place(bg, fg string, left, top int) string {
	bgWidth, bgHeight := lipgloss.Size(bg)
	left = max(0, min(left, bgWidth))
	top = max(0, min(top, bgHeight))

	// limit fg dimensions to the remaining space of bg
	fg = lipgloss.NewStyle().MaxWidth(bgWidth - left).MaxHeight(bgHeight - top).Render(fg)
	fgWidth := lipgloss.Width(fg)

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, line := range fgLines {
		row := i + top
		if row >= len(bgLines) {
			break
		}
		bgLeft := ansi.Truncate(bgLines[row], left, "")
		// pad short background lines so fg keeps its column
		if w := ansi.StringWidth(bgLeft); w < left {
			bgLeft += strings.Repeat(" ", left-w)
		}
		bgRight := ansi.TruncateLeft(bgLines[row], left+fgWidth, "")
		// pad ragged fg lines to the block width
		if w := ansi.StringWidth(line); w < fgWidth {
			line += strings.Repeat(" ", fgWidth-w)
		}
		bgLines[row] = bgLeft + line + bgRight
	}

	return strings.Join(bgLines, "\n")
}

// PlaceCenter draws fg centered over bg.
func PlaceCenter(bg, fg string) string {
	bgWidth, bgHeight := lipgloss.Size(bg)
	fgWidth, fgHeight := lipgloss.Size(fg)
	return Place(bg, fg, (bgWidth-fgWidth)/2, (bgHeight-fgHeight)/2)
}
