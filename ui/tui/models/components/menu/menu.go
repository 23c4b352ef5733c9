// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/util"
	"github.com/toeirei/widgetkit/util/slicest"
)

type Model struct {
	Items       []Item
	ActiveStack []int
	// OnBack runs when Left is pressed on the top level.
	OnBack  tea.Cmd
	size    util.Size
	focused bool
}

func New(items ...Item) *Model {
	m := &Model{
		Items:       items,
		ActiveStack: []int{0},
	}
	m.skip(m.Items, 1)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)

	if m.focused {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, DefaultKeyMap.Up):
				m.up()
			case key.Matches(msg, DefaultKeyMap.Down):
				m.down()
			case key.Matches(msg, DefaultKeyMap.Left):
				return m.left()
			case key.Matches(msg, DefaultKeyMap.Right):
				return m.right()
			}
		}
	}
	return nil
}

func (m *Model) view() string {
	// Render Menu
	view := renderItems(m.Items, m.ActiveStack)

	// Clip view if too big for viewport
	height := lipgloss.Height(view)
	if m.size.Height > 0 && height > m.size.Height {
		// scroll proportionally to how deep the cursor sits
		align := float64(slicest.Reduce(m.ActiveStack, func(i int, sum int) int { return sum + i + 1 })) / float64(height)
		lines := strings.Split(view, "\n")
		i := min(int(float64(height-m.size.Height)*align), height-m.size.Height)
		view = strings.Join(lines[i:i+m.size.Height], "\n")
	}
	return view
}

func (m *Model) View() string {
	style := lipgloss.NewStyle().Margin(0, 1)
	if m.size.Width > 0 {
		style = style.MaxWidth(m.size.Width)
	}
	if m.size.Height > 0 {
		style = style.MaxHeight(m.size.Height)
	}
	return style.Render(m.view())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the menu reacts to keys.
func (m *Model) Focused() bool {
	return m.focused
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
