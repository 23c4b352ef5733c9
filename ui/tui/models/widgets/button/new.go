// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package button

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type NewOpt func(m *Model)

func WithIcon(icon string, color lipgloss.Color) NewOpt {
	return func(m *Model) { m.SetIcon(icon, color) }
}

func WithColors(background, text string) NewOpt {
	return func(m *Model) {
		if background != "" {
			m.Background = background
		}
		if text != "" {
			m.TextColor = text
		}
	}
}

func WithPressDuration(d time.Duration) NewOpt {
	return func(m *Model) {
		if d > 0 {
			m.PressDuration = d
		}
	}
}

func WithOnClick(fn func() tea.Cmd) NewOpt {
	return func(m *Model) { m.OnClick = fn }
}
