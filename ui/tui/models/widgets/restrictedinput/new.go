// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package restrictedinput

import tea "github.com/charmbracelet/bubbletea"

type NewOpt func(m *Model)

func WithLabel(label string) NewOpt {
	return func(m *Model) { m.Label = label }
}

func WithPlaceholder(placeholder string) NewOpt {
	return func(m *Model) { m.input.Placeholder = placeholder }
}

func WithWidth(width int) NewOpt {
	return func(m *Model) {
		if width > 0 {
			m.Width = width
		}
	}
}

func WithValue(value string) NewOpt {
	return func(m *Model) { m.input.SetValue(value) }
}

func WithOnValidate(fn func(ValidateMsg) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnValidate = fn }
}
