// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package animlist

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

type NewOpt func(m *Model)

func WithOrdered(ordered bool) NewOpt {
	return func(m *Model) { m.Ordered = ordered }
}

func WithIcon(icon string) NewOpt {
	return func(m *Model) { m.Icon = icon }
}

func WithColor(c lipgloss.Color) NewOpt {
	return func(m *Model) { m.Color = c }
}

func WithDelay(d time.Duration) NewOpt {
	return func(m *Model) {
		if d > 0 {
			m.Delay = d
		}
	}
}
