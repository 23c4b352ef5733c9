// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package slider

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/widgetkit/ui/tui/anim"
)

type Transition int

const (
	Fade Transition = iota
	Scale
	Wipe
)

// ParseTransition accepts FADE, SCALE and WIPE in any case. ROTATION has no
// terminal rendering and maps to WIPE. Anything else is FADE.
func ParseTransition(s string) Transition {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SCALE":
		return Scale
	case "WIPE", "ROTATION":
		return Wipe
	}
	return Fade
}

func (t Transition) String() string {
	switch t {
	case Scale:
		return "SCALE"
	case Wipe:
		return "WIPE"
	}
	return "FADE"
}

// canvas is a frame split into lines padded to a common width.
type canvas struct {
	lines []string
	width int
}

func newCanvas(frame string, width, height int) canvas {
	lines := strings.Split(frame, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", max(0, width-ansi.StringWidth(l)))
	}
	return canvas{lines: lines, width: width}
}

func frameSize(frames ...string) (width, height int) {
	for _, f := range frames {
		lines := strings.Split(f, "\n")
		height = max(height, len(lines))
		for _, l := range lines {
			width = max(width, ansi.StringWidth(l))
		}
	}
	return width, height
}

// blend renders the transition from old to next at progress p in [0, 1].
func (t Transition) blend(old, next string, p float64, fg, bg string) string {
	if p >= 1 {
		return next
	}
	width, height := frameSize(old, next)
	from, to := newCanvas(old, width, height), newCanvas(next, width, height)
	out := make([]string, height)

	switch t {
	case Wipe:
		cut := int(math.Round(p * float64(width)))
		for i := range out {
			out[i] = ansi.Cut(to.lines[i], 0, cut) + ansi.Cut(from.lines[i], cut, width)
		}

	case Scale:
		w := int(math.Ceil(p * float64(width)))
		h := int(math.Ceil(p * float64(height)))
		top, left := (height-h)/2, (width-w)/2
		blank := strings.Repeat(" ", width)
		for i := range out {
			if i < top || i >= top+h {
				out[i] = blank
				continue
			}
			out[i] = strings.Repeat(" ", left) +
				ansi.Cut(to.lines[i], left, left+w) +
				strings.Repeat(" ", width-left-w)
		}

	default:
		style := anim.Fade(fg, bg, p)
		for i := range out {
			out[i] = style.Render(ansi.Strip(to.lines[i]))
		}
	}
	return strings.Join(out, "\n")
}
