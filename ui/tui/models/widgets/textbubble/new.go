// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package textbubble

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type NewOpt func(m *Model)

func WithTexts(texts ...string) NewOpt {
	return func(m *Model) { m.Texts = append(m.Texts, texts...) }
}

func WithSpeed(charsPerSecond int) NewOpt {
	return func(m *Model) {
		if charsPerSecond > 0 {
			m.Speed = charsPerSecond
		}
	}
}

func WithPause(d time.Duration) NewOpt {
	return func(m *Model) { m.Pause = d }
}

func WithBackground(c lipgloss.Color) NewOpt {
	return func(m *Model) { m.Background = c }
}

func WithWidth(width int) NewOpt {
	return func(m *Model) {
		if width > 0 {
			m.Width = width
		}
	}
}

func WithOnCopied(fn func(clean string) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnCopied = fn }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) NewOpt {
	return func(m *Model) { m.writeClipboard = write }
}
