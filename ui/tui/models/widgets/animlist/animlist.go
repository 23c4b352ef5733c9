// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package animlist renders ordered and unordered lists whose items pop in one
// after another.
package animlist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	DefaultDelay = 80 * time.Millisecond
	DefaultIcon  = "●"
)

type State int

const (
	Hidden State = iota
	Growing
	Visible
)

type item struct {
	text  string
	state State
}

type Model struct {
	Ordered bool
	Icon    string
	Color   lipgloss.Color
	// Delay staggers the items: item i shows up Delay*i after mount.
	Delay time.Duration

	items []item
	loop  anim.Loop
}

func New(items []string, opts ...NewOpt) *Model {
	m := &Model{
		Icon:  DefaultIcon,
		Color: lipgloss.Color("#FFA000"),
		Delay: DefaultDelay,
		loop:  anim.NewLoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, text := range items {
		m.items = append(m.items, item{text: text})
	}
	return m
}

// NewOrdered is New with numbered items.
func NewOrdered(items []string, opts ...NewOpt) *Model {
	return New(items, append([]NewOpt{WithOrdered(true)}, opts...)...)
}

func (m *Model) Len() int {
	return len(m.items)
}

// State reports the appearance state of item i.
func (m *Model) State(i int) State {
	return m.items[i].state
}

func (m *Model) Running() bool {
	return m.loop.Running()
}

func (m *Model) Init() tea.Cmd {
	for i := range m.items {
		m.items[i].state = Hidden
	}
	return m.start()
}

func (m *Model) start() tea.Cmd {
	if m.loop.Running() {
		return nil
	}
	m.loop.Start()
	return m.loop.After(m.Delay)
}

func (m *Model) Unmount() {
	m.loop.Stop()
}

// AddItem appends text and animates only the new item.
func (m *Model) AddItem(text string) tea.Cmd {
	m.items = append(m.items, item{text: text})
	return m.start()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.loop.Owns(msg) {
		return nil
	}

	pending := false
	for i := range m.items {
		switch m.items[i].state {
		case Growing:
			m.items[i].state = Visible
		case Hidden:
			if !pending {
				m.items[i].state = Growing
				pending = true
			}
		}
	}
	if !pending && !m.anyGrowing() {
		m.loop.Stop()
		return nil
	}
	return m.loop.After(m.Delay)
}

func (m *Model) anyGrowing() bool {
	for _, it := range m.items {
		if it.state == Growing {
			return true
		}
	}
	return false
}

func (m *Model) marker(i int) string {
	if m.Ordered {
		width := len(fmt.Sprint(len(m.items)))
		return fmt.Sprintf("%*d.", width, i+1)
	}
	return m.Icon
}

func (m *Model) View() string {
	markerStyle := lipgloss.NewStyle().Foreground(m.Color)
	lines := make([]string, len(m.items))
	for i, it := range m.items {
		switch it.state {
		case Hidden:
			lines[i] = ""
		case Growing:
			lines[i] = lipgloss.NewStyle().Faint(true).Render(m.marker(i) + " " + it.text)
		default:
			lines[i] = markerStyle.Render(m.marker(i)) + " " + it.text
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }

func (m *Model) Blur() {}

var (
	_ util.Model       = (*Model)(nil)
	_ util.Unmountable = (*Model)(nil)
)
