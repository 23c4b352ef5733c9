// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package oauth

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type NewOpt func(m *Model)

func WithVariant(v Variant) NewOpt {
	return func(m *Model) { m.Variant = v }
}

func WithLabel(label string) NewOpt {
	return func(m *Model) {
		if label != "" {
			m.Label = label
		}
	}
}

func WithColors(background, text lipgloss.Color) NewOpt {
	return func(m *Model) {
		m.Background = background
		if text != "" {
			m.TextColor = text
		}
	}
}

func WithOnClick(fn func(Provider) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnClick = fn }
}
