// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package splittext reveals texts letter by letter, each letter sliding in
// from one side before it settles.
package splittext

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	DefaultSpeed = 80 * time.Millisecond
	DefaultPause = time.Second
)

type DoneMsg struct {
	ID int64
}

type Model struct {
	Texts []string
	// Speed is the time one letter takes to settle.
	Speed     time.Duration
	Pause     time.Duration
	Loop      bool
	Color     lipgloss.Color
	Bold      bool
	Direction Direction

	loop    anim.Loop
	index   int
	reveal  Reveal
	pausing bool
}

func New(opts ...NewOpt) *Model {
	m := &Model{
		Speed: DefaultSpeed,
		Pause: DefaultPause,
		loop:  anim.NewLoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.load(0)
	return m
}

func (m *Model) load(i int) {
	m.index = i
	text := ""
	if i < len(m.Texts) {
		text = m.Texts[i]
	}
	m.reveal = NewReveal(text, m.Direction)
	m.pausing = false
}

func (m *Model) Running() bool {
	return m.loop.Running()
}

// Value is the settled part of the current text.
func (m *Model) Value() string {
	return m.reveal.Settled()
}

func (m *Model) Init() tea.Cmd {
	m.loop.Start()
	m.load(0)
	if len(m.Texts) == 0 {
		return m.finish()
	}
	logging.Debugf("splittext %d: start", m.loop.ID())
	return m.loop.After(m.Speed / 2)
}

func (m *Model) Unmount() {
	m.loop.Stop()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.loop.Owns(msg) {
		return nil
	}

	if !m.pausing {
		if m.reveal.Step() {
			m.pausing = true
			return m.loop.After(m.Pause)
		}
		return m.loop.After(m.Speed / 2)
	}

	switch {
	case m.index+1 < len(m.Texts):
		m.load(m.index + 1)
	case m.Loop && m.hasLetters():
		m.load(0)
	default:
		return m.finish()
	}
	return m.loop.After(m.Speed / 2)
}

func (m *Model) hasLetters() bool {
	for _, t := range m.Texts {
		if t != "" {
			return true
		}
	}
	return false
}

func (m *Model) finish() tea.Cmd {
	m.loop.Stop()
	id := m.loop.ID()
	return func() tea.Msg { return DoneMsg{ID: id} }
}

func (m *Model) View() string {
	style := lipgloss.NewStyle().Bold(m.Bold)
	if m.Color != "" {
		style = style.Foreground(m.Color)
	}
	return m.reveal.Render(style)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }

func (m *Model) Blur() {}

var (
	_ util.Model       = (*Model)(nil)
	_ util.Unmountable = (*Model)(nil)
)
