// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const logo string = "" +
	"╦ ╦┬┌┬┐┌─┐┌─┐┌┬┐┬┌─┬┌┬┐\n" +
	"║║║│ │││ ┬├┤  │ ├┴┐│ │ \n" +
	"╚╩╝┴─┴┘└─┘└─┘ ┴ ┴ ┴┴ ┴ "

// Model shows the logo and a subtitle centered over the full width.
type Model struct {
	Subtitle string
	Accent   lipgloss.Color
	size     util.Size
}

func New(subtitle string, accent lipgloss.Color) *Model {
	return &Model{Subtitle: subtitle, Accent: accent}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m *Model) View() string {
	content := lipgloss.NewStyle().Foreground(m.Accent).Render(logo)
	if m.Subtitle != "" {
		content = lipgloss.JoinVertical(lipgloss.Center,
			content,
			lipgloss.NewStyle().Faint(true).Render(m.Subtitle),
		)
	}
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			content,
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
