// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package splittext

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

type NewOpt func(m *Model)

func WithTexts(texts ...string) NewOpt {
	return func(m *Model) { m.Texts = append(m.Texts, texts...) }
}

func WithSpeed(d time.Duration) NewOpt {
	return func(m *Model) {
		if d > 0 {
			m.Speed = d
		}
	}
}

func WithPause(d time.Duration) NewOpt {
	return func(m *Model) { m.Pause = d }
}

func WithLoop(loop bool) NewOpt {
	return func(m *Model) { m.Loop = loop }
}

func WithColor(c lipgloss.Color) NewOpt {
	return func(m *Model) { m.Color = c }
}

func WithBold(bold bool) NewOpt {
	return func(m *Model) { m.Bold = bold }
}

func WithDirection(d Direction) NewOpt {
	return func(m *Model) { m.Direction = d }
}
