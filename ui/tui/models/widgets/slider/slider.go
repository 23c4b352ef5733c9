// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slider shows one frame at a time with animated transitions,
// indicator dots and optional auto-play.
package slider

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/i18n"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

var ErrNoFrames = errors.New("slider needs at least one frame")

const (
	DefaultInterval    = 3 * time.Second
	transitionDuration = 400 * time.Millisecond
	transitionFrames   = 10
)

type Model struct {
	AutoPlay   bool
	Interval   time.Duration
	Transition Transition
	// IndicatorColor and SelectedColor colour the indicator dots.
	IndicatorColor lipgloss.Color
	SelectedColor  lipgloss.Color
	// FadeFrom is the background a FADE transition starts from.
	FadeFrom string

	frames   []string
	current  int
	previous int
	progress int
	focused  bool

	auto  anim.Loop
	trans anim.Loop
}

func New(frames []string, opts ...NewOpt) (*Model, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	m := &Model{
		Interval:       DefaultInterval,
		IndicatorColor: lipgloss.Color("#424242"),
		SelectedColor:  lipgloss.Color("#FFFFFF"),
		FadeFrom:       "#000000",
		frames:         frames,
		progress:       transitionFrames,
		auto:           anim.NewLoop(),
		trans:          anim.NewLoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Model) Current() int {
	return m.current
}

func (m *Model) Len() int {
	return len(m.frames)
}

// Transitioning reports whether a transition is still animating.
func (m *Model) Transitioning() bool {
	return m.trans.Running()
}

// SetCurrent shows frame i, wrapping around in both directions, and starts
// the transition from the previous frame.
func (m *Model) SetCurrent(i int) tea.Cmd {
	m.previous, m.current = m.current, util.Wrap(i, len(m.frames))
	m.progress = 0
	m.trans.Start()
	return m.trans.After(transitionDuration / transitionFrames)
}

func (m *Model) Next() tea.Cmd { return m.SetCurrent(m.current + 1) }

func (m *Model) Prev() tea.Cmd { return m.SetCurrent(m.current - 1) }

func (m *Model) Init() tea.Cmd {
	m.current, m.previous, m.progress = 0, 0, transitionFrames
	m.trans.Stop()
	if !m.AutoPlay {
		return nil
	}
	logging.Debugf("slider: auto-play every %s", m.Interval)
	m.auto.Start()
	return m.auto.After(m.Interval)
}

func (m *Model) Unmount() {
	m.auto.Stop()
	m.trans.Stop()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch {
	case m.auto.Owns(msg):
		return tea.Batch(m.Next(), m.auto.After(m.Interval))
	case m.trans.Owns(msg):
		m.progress++
		if m.progress >= transitionFrames {
			m.trans.Stop()
			return nil
		}
		return m.trans.After(transitionDuration / transitionFrames)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.focused {
		switch {
		case key.Matches(msg, DefaultKeyMap.Prev):
			return m.Prev()
		case key.Matches(msg, DefaultKeyMap.Next):
			return m.Next()
		case key.Matches(msg, DefaultKeyMap.Jump):
			if n := int(msg.String()[0] - '1'); n < len(m.frames) {
				return m.SetCurrent(n)
			}
		}
	}
	return nil
}

func (m *Model) indicators() string {
	dots := make([]string, len(m.frames))
	for i := range m.frames {
		if i == m.current {
			dots[i] = lipgloss.NewStyle().Foreground(m.SelectedColor).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(m.IndicatorColor).Render("●")
		}
	}
	counter := lipgloss.NewStyle().Faint(true).
		Render(i18n.T("slider.counter", m.current+1, len(m.frames)))
	return strings.Join(dots, " ") + "  " + counter
}

func (m *Model) View() string {
	frame := m.frames[m.current]
	if m.trans.Running() {
		p := float64(m.progress) / transitionFrames
		frame = m.Transition.blend(m.frames[m.previous], frame, p, string(m.SelectedColor), m.FadeFrom)
	}

	arrow := lipgloss.NewStyle().Faint(!m.focused).Padding(0, 1)
	body := lipgloss.JoinHorizontal(lipgloss.Center, arrow.Render("‹"), frame, arrow.Render("›"))
	return lipgloss.JoinVertical(lipgloss.Center, body, m.indicators())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

var (
	_ util.Model       = (*Model)(nil)
	_ util.Unmountable = (*Model)(nil)
)
