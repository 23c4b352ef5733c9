// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package stepper

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type NewOpt func(m *Model)

func WithOnEvent(fn func(Event) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnEvent = fn }
}

func WithOnComplete(fn func(Event) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnComplete = fn }
}

func WithColors(active, inactive, completed lipgloss.Color) NewOpt {
	return func(m *Model) {
		m.ActiveColor, m.InactiveColor, m.CompletedColor = active, inactive, completed
	}
}

// WithBackground sets the colour the step card fades in from.
func WithBackground(bg string) NewOpt {
	return func(m *Model) { m.Background = bg }
}
