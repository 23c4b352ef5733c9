// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package button is a clickable button with a pressed state, focus highlight
// and a glow that decays on a spring.
package button

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	DefaultPressDuration = 100 * time.Millisecond
	DefaultGlowDuration  = 300 * time.Millisecond
	DefaultGlowColor     = "#FFEB3B"
)

type KeyMap struct {
	Click key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

var DefaultKeyMap = KeyMap{
	Click: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "press"),
	),
}

type Model struct {
	Text          string
	Icon          string
	IconColor     lipgloss.Color
	Background    string
	TextColor     string
	PressDuration time.Duration
	OnClick       func() tea.Cmd

	focused bool
	pressed bool
	press   anim.Loop

	glow      anim.Loop
	glowColor string
	spring    anim.Spring
}

func New(text string, opts ...NewOpt) *Model {
	m := &Model{
		Text:          text,
		Background:    "#2196F3",
		TextColor:     "#FFFFFF",
		PressDuration: DefaultPressDuration,
		press:         anim.NewLoop(),
		glow:          anim.NewLoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Pressed() bool {
	return m.pressed
}

// Glowing reports whether a glow is still decaying.
func (m *Model) Glowing() bool {
	return m.glow.Running()
}

// Click runs the click callback and shows the pressed state for
// PressDuration.
func (m *Model) Click() tea.Cmd {
	m.pressed = true
	m.press.Start()
	cmds := []tea.Cmd{m.press.After(m.PressDuration)}
	if m.OnClick != nil {
		cmds = append(cmds, m.OnClick())
	}
	return tea.Batch(cmds...)
}

// SetText changes the label. Empty text is ignored.
func (m *Model) SetText(text string) {
	if text != "" {
		m.Text = text
	}
}

// SetIcon changes the icon and, when color is set, its colour.
func (m *Model) SetIcon(icon string, color lipgloss.Color) {
	m.Icon = icon
	if color != "" {
		m.IconColor = color
	}
}

func (m *Model) ToggleIcon(a, b string) {
	m.Icon = toggle(m.Icon, a, b)
}

func (m *Model) ToggleColor(a, b string) {
	m.Background = toggle(m.Background, a, b)
}

func (m *Model) ToggleTextColor(a, b string) {
	m.TextColor = toggle(m.TextColor, a, b)
}

func toggle(current, a, b string) string {
	if current == a {
		return b
	}
	return a
}

// Glow flashes the button in color and lets the flash decay over roughly d.
func (m *Model) Glow(color string, d time.Duration) tea.Cmd {
	if color == "" {
		color = DefaultGlowColor
	}
	if d <= 0 {
		d = DefaultGlowDuration
	}
	m.glowColor = color
	m.spring = anim.NewSpring(6.6 / d.Seconds())
	m.spring.Pos, m.spring.Target = 1, 0
	m.glow.Start()
	logging.Debugf("button %q: glow %s for %s", m.Text, color, d)
	return m.glow.After(m.spring.Interval())
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Unmount() {
	m.press.Stop()
	m.glow.Stop()
	m.pressed = false
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch {
	case m.press.Owns(msg):
		m.press.Stop()
		m.pressed = false
		return nil
	case m.glow.Owns(msg):
		if m.spring.Step() {
			m.glow.Stop()
			return nil
		}
		return m.glow.After(m.spring.Interval())
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.focused && key.Matches(msg, DefaultKeyMap.Click) {
		return m.Click()
	}
	return nil
}

func (m *Model) background() string {
	if m.glow.Running() {
		if c, ok := anim.Blend(m.Background, m.glowColor, m.spring.Pos*0.5); ok {
			return c
		}
	}
	return m.Background
}

func (m *Model) View() string {
	label := m.Text
	if m.Icon != "" {
		icon := m.Icon
		if m.IconColor != "" {
			icon = lipgloss.NewStyle().Foreground(m.IconColor).Background(lipgloss.Color(m.background())).Render(icon)
		}
		label = icon + " " + label
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(m.background())).
		Foreground(lipgloss.Color(m.TextColor)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.Background)).
		Padding(0, 2)
	if m.focused {
		style = style.Bold(true).BorderForeground(lipgloss.Color(m.TextColor))
	}
	if m.pressed {
		// one column less padding on each side reads as a press
		style = style.Padding(0, 1).Margin(0, 1)
	}
	return style.Render(label)
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
