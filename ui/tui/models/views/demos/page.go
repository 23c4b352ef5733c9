// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package demos

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/util"
	"github.com/toeirei/widgetkit/util/slicest"
)

type pageKeyMap struct {
	Next key.Binding
	Prev key.Binding
}

func (k pageKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k pageKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next, k.Prev}} }

var pageKeys = pageKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next widget"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous widget"),
	),
}

type pageItem struct {
	model       util.Model
	interactive bool
}

func show(m util.Model) pageItem     { return pageItem{model: m} }
func interact(m util.Model) pageItem { return pageItem{model: m, interactive: true} }

// page stacks the widgets of one demo. Tab moves the keyboard focus between
// the interactive ones; every other message reaches all of them.
type page struct {
	Title  string
	Accent lipgloss.Color

	items   []pageItem
	active  int
	focused bool
	size    util.Size
}

func newPage(title string, accent lipgloss.Color, items ...pageItem) *page {
	p := &page{Title: title, Accent: accent, items: items, active: -1}
	p.active = p.next(-1, 1)
	return p
}

// next returns the interactive item after from in direction dir, or -1.
func (p *page) next(from, dir int) int {
	n := len(p.items)
	for step := 1; step <= n; step++ {
		i := util.Wrap(from+dir*step, n)
		if p.items[i].interactive {
			return i
		}
	}
	return -1
}

func (p *page) interactiveCount() int {
	return len(slicest.Filter(p.items, func(it pageItem) bool { return it.interactive }))
}

func (p *page) Init() tea.Cmd {
	return tea.Batch(slicest.Map(p.items, func(it pageItem) tea.Cmd {
		return it.model.Init()
	})...)
}

func (p *page) Unmount() {
	for _, it := range p.items {
		util.TryUnmount(it.model)
	}
}

func (p *page) Update(msg tea.Msg) tea.Cmd {
	if p.size.Update(msg) {
		inner := p.size.Shrink(0, 2).ToMsg()
		return tea.Batch(slicest.Map(p.items, func(it pageItem) tea.Cmd {
			return it.model.Update(inner)
		})...)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && p.focused && p.interactiveCount() > 1 {
		switch {
		case key.Matches(kmsg, pageKeys.Next):
			return p.move(1)
		case key.Matches(kmsg, pageKeys.Prev):
			return p.move(-1)
		}
	}

	return tea.Batch(slicest.Map(p.items, func(it pageItem) tea.Cmd {
		return it.model.Update(msg)
	})...)
}

func (p *page) move(dir int) tea.Cmd {
	next := p.next(p.active, dir)
	if next < 0 || next == p.active {
		return nil
	}
	p.items[p.active].model.Blur()
	p.active = next
	cmd, keyMap := p.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

// Active returns the index of the item holding the keyboard focus, or -1.
func (p *page) Active() int {
	return p.active
}

func (p *page) View() string {
	views := []string{lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(p.Title)}
	for _, it := range p.items {
		views = append(views, "", it.model.View())
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}

func (p *page) Focus() (tea.Cmd, help.KeyMap) {
	p.focused = true
	if p.active < 0 {
		return nil, nil
	}
	cmd, keyMap := p.items[p.active].model.Focus()
	if p.interactiveCount() > 1 {
		keyMap = util.MergeKeyMaps(keyMap, pageKeys)
	}
	return cmd, keyMap
}

func (p *page) Blur() {
	p.focused = false
	if p.active >= 0 {
		p.items[p.active].model.Blur()
	}
}

var (
	_ util.Model       = (*page)(nil)
	_ util.Unmountable = (*page)(nil)
)
