// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package splittext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// Direction is where letters enter from.
type Direction int

const (
	Bottom Direction = iota
	Top
	Left
	Right
)

var directionNames = map[string]Direction{
	"bottom": Bottom,
	"top":    Top,
	"left":   Left,
	"right":  Right,
}

// ParseDirection maps a direction name to a Direction. Unknown names are
// Bottom.
func ParseDirection(s string) Direction {
	if d, ok := directionNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d
	}
	return Bottom
}

func (d Direction) String() string {
	for name, dir := range directionNames {
		if dir == d {
			return name
		}
	}
	return "bottom"
}

func (d Direction) vertical() bool {
	return d == Bottom || d == Top
}

// Reveal shows a text letter by letter. Each letter spends one step on its
// offset position before it settles.
type Reveal struct {
	Direction Direction

	letters  []string
	shown    int
	entering bool
}

func NewReveal(text string, dir Direction) Reveal {
	r := Reveal{Direction: dir}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		r.letters = append(r.letters, g.Str())
	}
	return r
}

// Step advances the reveal by half a letter and reports whether every letter
// has settled.
func (r *Reveal) Step() bool {
	switch {
	case r.entering:
		r.entering = false
	case r.shown < len(r.letters):
		r.shown++
		r.entering = true
	}
	return r.Done()
}

func (r *Reveal) Done() bool {
	return r.shown == len(r.letters) && !r.entering
}

// Reset hides every letter again.
func (r *Reveal) Reset() {
	r.shown, r.entering = 0, false
}

// Finish settles every letter at once.
func (r *Reveal) Finish() {
	r.shown, r.entering = len(r.letters), false
}

func (r *Reveal) Text() string {
	return strings.Join(r.letters, "")
}

// Settled is the part of the text that sits on the baseline.
func (r *Reveal) Settled() string {
	n := r.shown
	if r.entering {
		n--
	}
	return strings.Join(r.letters[:n], "")
}

// Height is the number of rows Render returns.
func (r *Reveal) Height() int {
	if r.Direction.vertical() {
		return 2
	}
	return 1
}

// Render draws the reveal with style. Vertical directions use an extra row
// below (Bottom) or above (Top) the baseline for the entering letter.
func (r *Reveal) Render(style lipgloss.Style) string {
	width := ansi.StringWidth(r.Text())
	settled := r.Settled()
	pad := func(s string) string {
		return s + strings.Repeat(" ", max(0, width-ansi.StringWidth(s)))
	}

	base := style.Render(settled)
	if !r.entering {
		if r.Direction.vertical() {
			return pad(base) + "\n" + strings.Repeat(" ", width)
		}
		return pad(base)
	}

	letter := style.Faint(true).Render(r.letters[r.shown-1])
	col := ansi.StringWidth(settled)
	switch r.Direction {
	case Top:
		return pad(strings.Repeat(" ", col)+letter) + "\n" + pad(base)
	case Right:
		return pad(base + " " + letter)
	case Left:
		if r.shown > 1 {
			prev := r.letters[r.shown-2]
			return pad(style.Render(strings.Join(r.letters[:r.shown-2], "")) + letter + style.Render(prev))
		}
		return pad(letter)
	}
	return pad(base) + "\n" + pad(strings.Repeat(" ", col)+letter)
}
