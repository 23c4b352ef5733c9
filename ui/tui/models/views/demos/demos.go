// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package demos builds one sample page per widget for the gallery.
package demos

import (
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/config"
	"github.com/toeirei/widgetkit/core/tree"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

// Env carries what the demos take from the command line and config.
type Env struct {
	Config config.Config
	// Tree replaces the built-in sample forest of the tree demo.
	Tree []tree.Spec
	// Frames replaces the built-in slides of the slider demo.
	Frames []string
}

func (e Env) Accent() lipgloss.Color {
	if e.Config.Theme.Accent == "" {
		return lipgloss.Color("#8655B1")
	}
	return lipgloss.Color(e.Config.Theme.Accent)
}

func (e Env) Pause() time.Duration {
	if e.Config.Animation.Pause > 0 {
		return e.Config.Animation.Pause
	}
	return time.Second
}

type Entry struct {
	ID   string
	Name string
	New  func(env Env) (util.Model, error)
}

var entries = []Entry{
	{ID: "typewriter", Name: "Typewriter", New: ok(Typewriter)},
	{ID: "textfader", Name: "Text Fader", New: ok(TextFader)},
	{ID: "splittext", Name: "Split Text", New: ok(SplitText)},
	{ID: "rotatingtext", Name: "Rotating Text", New: ok(RotatingText)},
	{ID: "textbubble", Name: "Text Bubble", New: ok(TextBubble)},
	{ID: "slider", Name: "Image Slider", New: Slider},
	{ID: "animlist", Name: "Animated Lists", New: ok(AnimList)},
	{ID: "circlecard", Name: "Circle Card", New: ok(CircleCard)},
	{ID: "button", Name: "Buttons", New: ok(Buttons)},
	{ID: "oauth", Name: "OAuth Buttons", New: ok(OAuth)},
	{ID: "stepper", Name: "Stepper", New: ok(Stepper)},
	{ID: "restrictedinput", Name: "Restricted Input", New: ok(RestrictedInput)},
	{ID: "treeview", Name: "Tree View", New: TreeView},
}

func ok(fn func(Env) util.Model) func(Env) (util.Model, error) {
	return func(env Env) (util.Model, error) { return fn(env), nil }
}

// All lists the demos in menu order.
func All() []Entry {
	return slices.Clone(entries)
}

func IDs() []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func Lookup(id string) (Entry, bool) {
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return Entry{}, false
	}
	return entries[i], true
}
