// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package circlecard is a small round badge that grows into a card showing a
// title and content when clicked.
package circlecard

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	DefaultDuration = 300 * time.Millisecond
	frameDelay      = 30 * time.Millisecond
	collapsedHeight = 1
)

type KeyMap struct {
	Toggle key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Toggle} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Toggle}} }

var DefaultKeyMap = KeyMap{
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open/close"),
	),
}

type Model struct {
	Title          string
	Icon           string
	IconColor      lipgloss.Color
	Content        string
	CollapsedWidth int
	ExpandedWidth  int
	ExpandedHeight int
	Background     lipgloss.Color
	BorderColor    lipgloss.Color
	DividerColor   lipgloss.Color
	Duration       time.Duration
	// OnClick runs after every toggle with the new state.
	OnClick func(open bool) tea.Cmd

	open    bool
	focused bool
	loop    anim.Loop
	frame   int
	frames  int
	from    [2]int
	to      [2]int
	size    [2]int
}

func New(opts ...NewOpt) *Model {
	m := &Model{
		Icon:           "✦",
		IconColor:      lipgloss.Color("#FFFFFF"),
		CollapsedWidth: 3,
		ExpandedWidth:  40,
		ExpandedHeight: 6,
		Background:     lipgloss.Color("#212121"),
		BorderColor:    lipgloss.Color("#FFFFFF"),
		DividerColor:   lipgloss.Color("#FFFFFF"),
		Duration:       DefaultDuration,
		loop:           anim.NewLoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.size = m.target()
	return m
}

func (m *Model) target() [2]int {
	if m.open {
		return [2]int{m.ExpandedWidth, m.ExpandedHeight}
	}
	return [2]int{m.CollapsedWidth, collapsedHeight}
}

func (m *Model) Open() bool {
	return m.open
}

// Width is the current inner width, mid tween included.
func (m *Model) Width() int {
	return m.size[0]
}

func (m *Model) Animating() bool {
	return m.loop.Running()
}

// Toggle flips the card and starts the size tween from wherever the card is.
func (m *Model) Toggle() tea.Cmd {
	m.open = !m.open
	m.from, m.to = m.size, m.target()
	m.frame, m.frames = 0, max(1, int(m.Duration/frameDelay))
	m.loop.Start()

	cmds := []tea.Cmd{m.loop.After(frameDelay)}
	if m.OnClick != nil {
		cmds = append(cmds, m.OnClick(m.open))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Unmount() {
	m.loop.Stop()
	m.size = m.target()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.loop.Owns(msg) {
		m.frame++
		t := anim.EaseOutCubic(float64(m.frame) / float64(m.frames))
		m.size = [2]int{
			anim.LerpInt(m.from[0], m.to[0], t),
			anim.LerpInt(m.from[1], m.to[1], t),
		}
		if m.frame >= m.frames {
			m.loop.Stop()
			return nil
		}
		return m.loop.After(frameDelay)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.focused && key.Matches(msg, DefaultKeyMap.Toggle) {
		return m.Toggle()
	}
	return nil
}

func (m *Model) View() string {
	border := lipgloss.RoundedBorder()
	if m.open {
		border = lipgloss.ThickBorder()
	}
	borderColor := m.BorderColor
	if m.focused {
		borderColor = lipgloss.Color("#8655B1")
	}

	icon := lipgloss.NewStyle().Foreground(m.IconColor).Render(m.Icon)
	body := icon
	if m.open {
		divider := lipgloss.NewStyle().Foreground(m.DividerColor).
			Render(strings.Repeat("─", max(1, m.size[0])))
		header := icon
		if m.Title != "" {
			header += " " + lipgloss.NewStyle().Bold(true).Render(m.Title)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, header, divider, m.Content)
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Background(m.Background).
		Width(m.size[0]).
		Height(m.size[1]).
		MaxHeight(m.size[1] + 2).
		Align(lipgloss.Center).
		Render(body)
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
