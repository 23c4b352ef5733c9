// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package rotatingtext renders a static text followed by a highlighted box
// whose phrase rotates on an interval.
package rotatingtext

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/splittext"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	DefaultInterval = time.Second
	letterDelay     = 40 * time.Millisecond
)

type Model struct {
	Static    string
	Phrases   []string
	Interval  time.Duration
	Loop      bool
	Direction splittext.Direction
	BoxColor  lipgloss.Color
	TextColor lipgloss.Color
	Bold      bool
	// StaticStyle renders the static text.
	StaticStyle lipgloss.Style

	loop    anim.Loop
	index   int
	reveal  splittext.Reveal
	waiting bool
}

func New(static string, phrases []string, opts ...NewOpt) *Model {
	m := &Model{
		Static:      static,
		Phrases:     phrases,
		Interval:    DefaultInterval,
		BoxColor:    lipgloss.Color("#8655B1"),
		TextColor:   lipgloss.Color("#FFFFFF"),
		StaticStyle: lipgloss.NewStyle().Bold(true),
		loop:        anim.NewLoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.show(0)
	return m
}

func (m *Model) show(i int) {
	m.index = i
	phrase := ""
	if i < len(m.Phrases) {
		phrase = m.Phrases[i]
	}
	m.reveal = splittext.NewReveal(phrase, m.Direction)
	m.waiting = false
}

// Phrase is the phrase currently shown or entering.
func (m *Model) Phrase() string {
	return m.reveal.Text()
}

func (m *Model) Running() bool {
	return m.loop.Running()
}

func (m *Model) Init() tea.Cmd {
	m.loop.Start()
	m.show(0)
	if len(m.Phrases) == 0 {
		m.loop.Stop()
		return nil
	}
	logging.Debugf("rotatingtext %d: start", m.loop.ID())
	return m.loop.After(letterDelay)
}

func (m *Model) Unmount() {
	m.loop.Stop()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.loop.Owns(msg) {
		return nil
	}

	if !m.waiting {
		if !m.reveal.Step() {
			return m.loop.After(letterDelay)
		}
		if m.index+1 >= len(m.Phrases) && !m.Loop {
			m.loop.Stop()
			return nil
		}
		m.waiting = true
		return m.loop.After(m.Interval)
	}

	m.show(util.Wrap(m.index+1, len(m.Phrases)))
	return m.loop.After(letterDelay)
}

func (m *Model) View() string {
	style := lipgloss.NewStyle().Foreground(m.TextColor).Bold(m.Bold)
	box := lipgloss.NewStyle().
		Background(m.BoxColor).
		Padding(0, 1).
		Render(m.reveal.Render(style.Background(m.BoxColor)))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, m.StaticStyle.Render(m.Static+" "), box)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }

func (m *Model) Blur() {}

var (
	_ util.Model       = (*Model)(nil)
	_ util.Unmountable = (*Model)(nil)
)
