// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package textfader

import "time"

type NewOpt func(m *Model)

func WithColor(fg string) NewOpt {
	return func(m *Model) { m.Color = fg }
}

// WithBackground sets the colour the text fades from and to.
func WithBackground(bg string) NewOpt {
	return func(m *Model) { m.Background = bg }
}

func WithSpeed(d time.Duration) NewOpt {
	return func(m *Model) {
		if d > 0 {
			m.Speed = d
		}
	}
}

func WithStep(step float64) NewOpt {
	return func(m *Model) { m.steps = stepsFor(step) }
}

func WithPause(d time.Duration) NewOpt {
	return func(m *Model) { m.Pause = d }
}

func WithLoop(loop bool) NewOpt {
	return func(m *Model) { m.Loop = loop }
}

func WithPermanent(permanent bool) NewOpt {
	return func(m *Model) { m.Permanent = permanent }
}
