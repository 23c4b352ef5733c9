// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package textfader fades a text in and, unless permanent, out again.
package textfader

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	DefaultSpeed = 50 * time.Millisecond
	DefaultStep  = 0.05
	DefaultPause = time.Second
)

type DoneMsg struct {
	ID int64
}

type phase int

const (
	fadingIn phase = iota
	holding
	fadingOut
	resting
)

type Model struct {
	Text       string
	Color      string
	Background string
	// Speed is the delay between two opacity steps.
	Speed     time.Duration
	Pause     time.Duration
	Loop      bool
	Permanent bool

	loop  anim.Loop
	steps int
	level int
	phase phase
}

func New(text string, opts ...NewOpt) *Model {
	m := &Model{
		Text:  text,
		Color: "#FFFFFF",
		Speed: DefaultSpeed,
		Pause: DefaultPause,
		loop:  anim.NewLoop(),
	}
	m.steps = stepsFor(DefaultStep)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// stepsFor turns an opacity increment into a whole number of steps so that
// repeated additions land exactly on 1.
func stepsFor(step float64) int {
	if step <= 0 || step > 1 {
		step = DefaultStep
	}
	return max(1, int(math.Round(1/step)))
}

// Opacity is the current opacity in [0, 1].
func (m *Model) Opacity() float64 {
	return float64(m.level) / float64(m.steps)
}

func (m *Model) Running() bool {
	return m.loop.Running()
}

func (m *Model) Init() tea.Cmd {
	m.loop.Start()
	m.level, m.phase = 0, fadingIn
	logging.Debugf("textfader %d: start", m.loop.ID())
	return m.loop.After(m.Speed)
}

func (m *Model) Unmount() {
	m.loop.Stop()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.loop.Owns(msg) {
		return nil
	}

	switch m.phase {
	case fadingIn:
		m.level = min(m.level+1, m.steps)
		if m.level < m.steps {
			return m.loop.After(m.Speed)
		}
		m.phase = holding
		return m.loop.After(m.Pause)

	case holding:
		switch {
		case !m.Permanent:
			m.phase = fadingOut
			return m.loop.After(m.Speed)
		case m.Loop:
			m.phase = resting
			return m.loop.After(m.Pause)
		}
		return m.finish()

	case fadingOut:
		m.level = max(m.level-1, 0)
		if m.level > 0 {
			return m.loop.After(m.Speed)
		}
		if !m.Loop {
			return m.finish()
		}
		m.phase = resting
		return m.loop.After(m.Pause)
	}

	// resting
	m.phase = fadingIn
	return m.loop.After(m.Speed)
}

func (m *Model) finish() tea.Cmd {
	m.loop.Stop()
	id := m.loop.ID()
	return func() tea.Msg { return DoneMsg{ID: id} }
}

func (m *Model) View() string {
	if m.level == 0 {
		return strings.Repeat(" ", lipgloss.Width(m.Text))
	}
	return anim.Fade(m.Color, m.Background, m.Opacity()).Render(m.Text)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }

func (m *Model) Blur() {}

var (
	_ util.Model       = (*Model)(nil)
	_ util.Unmountable = (*Model)(nil)
)
