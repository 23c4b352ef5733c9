// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/models/helpers/form"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

// Choice picks one of a fixed set of options.
type Choice struct {
	Label   string
	Options []string
	KeyMap  ChoiceKeyMap

	index   int
	initial int
	focused bool
}

type ChoiceKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Done key.Binding
}

func (k ChoiceKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Prev, k.Next} }

func (k ChoiceKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Prev, k.Next, k.Done}} }

func NewChoice(label string, selected int, options ...string) *Choice {
	selected = util.Clamp(0, selected, max(0, len(options)-1))
	return &Choice{
		Label:   label,
		Options: options,
		KeyMap: ChoiceKeyMap{
			Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous option")),
			Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next option")),
			Done: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		},
		index:   selected,
		initial: selected,
	}
}

func (c *Choice) Focus() (tea.Cmd, help.KeyMap) {
	c.focused = true
	return nil, c.KeyMap
}

func (c *Choice) Blur() {
	c.focused = false
}

func (c *Choice) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return nil, form.ActionNone
	}
	switch {
	case key.Matches(kmsg, c.KeyMap.Prev):
		c.index = util.Wrap(c.index-1, len(c.Options))
	case key.Matches(kmsg, c.KeyMap.Next):
		c.index = util.Wrap(c.index+1, len(c.Options))
	case key.Matches(kmsg, c.KeyMap.Done):
		return nil, form.ActionNext
	}
	return nil, form.ActionNone
}

func (c *Choice) View(width int) string {
	parts := make([]string, len(c.Options))
	for i, o := range c.Options {
		if i == c.index {
			style := lipgloss.NewStyle().Bold(true)
			if c.focused {
				style = style.Foreground(lipgloss.Color("205"))
			}
			parts[i] = style.Render("(•) " + o)
		} else {
			parts[i] = labelStyle.Render("( ) " + o)
		}
	}
	label := labelStyle.Render(c.Label)
	if c.focused {
		label = focusedStyle.Render(c.Label)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, label, strings.Join(parts, "  ")),
	)
}

func (c *Choice) Get() any {
	if len(c.Options) == 0 {
		return ""
	}
	return c.Options[c.index]
}

func (c *Choice) Set(value any) {
	s, ok := value.(string)
	if !ok {
		return
	}
	for i, o := range c.Options {
		if o == s {
			c.index = i
			return
		}
	}
}

func (c *Choice) Init() tea.Cmd { return nil }

func (c *Choice) Reset() { c.index = c.initial }

var _ form.FormInput = (*Choice)(nil)
