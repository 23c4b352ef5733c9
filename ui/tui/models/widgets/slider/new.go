// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package slider

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

type NewOpt func(m *Model)

func WithAutoPlay(on bool) NewOpt {
	return func(m *Model) { m.AutoPlay = on }
}

func WithInterval(d time.Duration) NewOpt {
	return func(m *Model) {
		if d > 0 {
			m.Interval = d
		}
	}
}

func WithTransition(t Transition) NewOpt {
	return func(m *Model) { m.Transition = t }
}

func WithIndicatorColors(normal, selected lipgloss.Color) NewOpt {
	return func(m *Model) {
		m.IndicatorColor, m.SelectedColor = normal, selected
	}
}
