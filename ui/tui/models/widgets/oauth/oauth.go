// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package oauth renders branded "sign in with" buttons. Pressing one only
// emits SignInRequestedMsg; talking to the provider is up to the host.
package oauth

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

type Variant int

const (
	Material Variant = iota
	Cupertino
)

var cupertinoGrey = lipgloss.Color("#424242")

type SignInRequestedMsg struct {
	Provider Provider
}

type KeyMap struct {
	Click key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

var DefaultKeyMap = KeyMap{
	Click: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "sign in"),
	),
}

type Model struct {
	Provider Provider
	Variant  Variant
	Label    string
	// Background overrides the variant's default background.
	Background lipgloss.Color
	TextColor  lipgloss.Color
	OnClick    func(Provider) tea.Cmd

	focused bool
}

func New(p Provider, opts ...NewOpt) *Model {
	m := &Model{
		Provider:  p,
		Label:     p.Label(),
		TextColor: brands[p].text,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) background() lipgloss.Color {
	switch {
	case m.Background != "":
		return m.Background
	case m.Variant == Cupertino:
		return cupertinoGrey
	}
	return m.Provider.Color()
}

// Click emits SignInRequestedMsg and then runs the callback.
func (m *Model) Click() tea.Cmd {
	p := m.Provider
	cmds := []tea.Cmd{func() tea.Msg { return SignInRequestedMsg{Provider: p} }}
	if m.OnClick != nil {
		cmds = append(cmds, m.OnClick(p))
	}
	return tea.Sequence(cmds...)
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && m.focused && key.Matches(msg, DefaultKeyMap.Click) {
		return m.Click()
	}
	return nil
}

func (m *Model) View() string {
	bg := m.background()
	text := m.TextColor
	if m.Variant == Cupertino {
		text = "#FFFFFF"
	}
	glyph := lipgloss.NewStyle().Bold(true).Foreground(text).Background(bg).Render(m.Provider.Glyph())
	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bg).
		Padding(0, 1)

	if m.focused {
		switch m.Variant {
		case Material:
			style = style.Bold(true).BorderForeground(text)
		case Cupertino:
			style = style.Padding(0, 2)
		}
	}
	return style.Render(glyph + lipgloss.NewStyle().Background(bg).Render(" ") + m.Label)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

var _ util.Model = (*Model)(nil)
