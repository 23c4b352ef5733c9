// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package circlecard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type NewOpt func(m *Model)

func WithTitle(title string) NewOpt {
	return func(m *Model) { m.Title = title }
}

func WithIcon(icon string, color lipgloss.Color) NewOpt {
	return func(m *Model) {
		m.Icon = icon
		if color != "" {
			m.IconColor = color
		}
	}
}

func WithContent(content string) NewOpt {
	return func(m *Model) { m.Content = content }
}

func WithCollapsedWidth(width int) NewOpt {
	return func(m *Model) {
		if width > 0 {
			m.CollapsedWidth = width
		}
	}
}

func WithExpandedSize(width, height int) NewOpt {
	return func(m *Model) {
		if width > 0 {
			m.ExpandedWidth = width
		}
		if height > 0 {
			m.ExpandedHeight = height
		}
	}
}

func WithColors(background, border, divider lipgloss.Color) NewOpt {
	return func(m *Model) {
		m.Background, m.BorderColor, m.DividerColor = background, border, divider
	}
}

func WithDuration(d time.Duration) NewOpt {
	return func(m *Model) {
		if d > 0 {
			m.Duration = d
		}
	}
}

func WithOnClick(fn func(open bool) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnClick = fn }
}
