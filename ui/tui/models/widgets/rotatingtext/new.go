// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package rotatingtext

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/splittext"
)

type NewOpt func(m *Model)

func WithInterval(d time.Duration) NewOpt {
	return func(m *Model) {
		if d > 0 {
			m.Interval = d
		}
	}
}

func WithLoop(loop bool) NewOpt {
	return func(m *Model) { m.Loop = loop }
}

func WithDirection(d splittext.Direction) NewOpt {
	return func(m *Model) { m.Direction = d }
}

func WithBoxColor(c lipgloss.Color) NewOpt {
	return func(m *Model) { m.BoxColor = c }
}

func WithTextColor(c lipgloss.Color) NewOpt {
	return func(m *Model) { m.TextColor = c }
}

func WithBold(bold bool) NewOpt {
	return func(m *Model) { m.Bold = bold }
}

func WithStaticStyle(s lipgloss.Style) NewOpt {
	return func(m *Model) { m.StaticStyle = s }
}
