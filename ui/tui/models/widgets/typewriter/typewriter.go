// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package typewriter types one or more texts one grapheme cluster at a time.
package typewriter

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	DefaultSpeed = 10
	DefaultPause = time.Second
)

// DoneMsg is emitted once a non looping run has typed every text.
type DoneMsg struct {
	ID int64
}

type Model struct {
	Texts []string
	// Speed is in characters per second.
	Speed int
	Pause time.Duration
	Loop  bool
	Color lipgloss.Color
	Bold  bool

	loop   anim.Loop
	chars  [][]string
	index  int
	pos    int
	buffer string
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
	m.chars = make([][]string, len(m.Texts))
	for i, text := range m.Texts {
		m.chars[i] = graphemes(text)
	}
	return m
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ID identifies the model in DoneMsg.
func (m *Model) ID() int64 {
	return m.loop.ID()
}

// Value is the text typed so far.
func (m *Model) Value() string {
	return m.buffer
}

// Running reports whether the typing loop is active.
func (m *Model) Running() bool {
	return m.loop.Running()
}

func (m *Model) delay() time.Duration {
	return time.Second / time.Duration(max(m.Speed, 1))
}

func (m *Model) total() int {
	n := 0
	for _, c := range m.chars {
		n += len(c)
	}
	return n
}

// Init mounts the model and (re)starts typing from the first text.
func (m *Model) Init() tea.Cmd {
	m.loop.Start()
	m.index, m.pos, m.buffer = 0, 0, ""
	if m.total() == 0 {
		return m.finish()
	}
	logging.Debugf("typewriter %d: start", m.loop.ID())
	return m.loop.After(m.delay())
}

func (m *Model) Unmount() {
	m.loop.Stop()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.loop.Owns(msg) {
		return nil
	}
	return m.step()
}

func (m *Model) step() tea.Cmd {
	chars := m.chars[m.index]
	if m.pos < len(chars) {
		m.buffer += chars[m.pos]
		m.pos++
		if m.pos < len(chars) {
			return m.loop.After(m.delay())
		}
		return m.loop.After(m.Pause)
	}

	// pause after a text is over
	switch {
	case m.index+1 < len(m.chars):
		m.index++
	case m.Loop:
		m.index = 0
	default:
		return m.finish()
	}
	m.pos, m.buffer = 0, ""
	return m.loop.After(m.delay())
}

func (m *Model) finish() tea.Cmd {
	m.loop.Stop()
	logging.Debugf("typewriter %d: done", m.loop.ID())
	id := m.loop.ID()
	return func() tea.Msg { return DoneMsg{ID: id} }
}

func (m *Model) View() string {
	style := lipgloss.NewStyle().Bold(m.Bold)
	if m.Color != "" {
		style = style.Foreground(m.Color)
	}
	return style.Render(m.buffer)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }

func (m *Model) Blur() {}

var (
	_ util.Model       = (*Model)(nil)
	_ util.Unmountable = (*Model)(nil)
)
