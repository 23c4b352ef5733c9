// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) up() {
	siblings := m.siblings()
	// get pointer to current active stack index
	index := &m.ActiveStack[len(m.ActiveStack)-1]
	for i := *index - 1; i >= 0; i-- {
		if siblings[i].Selectable() {
			*index = i
			return
		}
	}
}

func (m *Model) down() {
	siblings := m.siblings()
	index := &m.ActiveStack[len(m.ActiveStack)-1]
	for i := *index + 1; i < len(siblings); i++ {
		if siblings[i].Selectable() {
			*index = i
			return
		}
	}
}

func (m *Model) left() tea.Cmd {
	if len(m.ActiveStack) > 1 {
		m.ActiveStack = m.ActiveStack[:len(m.ActiveStack)-1]
		return nil
	}
	return m.OnBack
}

func (m *Model) right() tea.Cmd {
	active_stack := m.getActiveItemStack()
	if len(active_stack) == 0 {
		return nil
	}
	active_item := active_stack[len(active_stack)-1]
	switch {
	case !active_item.Selectable():
		return nil
	case len(active_item.SubItems) > 0:
		m.ActiveStack = append(m.ActiveStack, 0)
		m.skip(active_item.SubItems, 1)
		return nil
	case active_item.Cmd != nil:
		return active_item.Cmd
	default:
		return func() tea.Msg { return ItemSelected{Id: active_item.Id} }
	}
}

// skip moves the cursor off a non selectable item in direction dir.
func (m *Model) skip(items []Item, dir int) {
	if len(items) == 0 {
		return
	}
	index := &m.ActiveStack[len(m.ActiveStack)-1]
	for i := *index; i >= 0 && i < len(items); i += dir {
		if items[i].Selectable() {
			*index = i
			return
		}
	}
}

// Active returns the item under the cursor.
func (m *Model) Active() (Item, bool) {
	stack := m.getActiveItemStack()
	if len(stack) == 0 {
		return Item{}, false
	}
	return stack[len(stack)-1], true
}

func (m *Model) siblings() []Item {
	item_stack := m.getActiveItemStack()
	if len(item_stack) > 1 {
		return item_stack[len(item_stack)-2].SubItems
	}
	return m.Items
}

func (m *Model) getActiveItemStack() []Item {
	var stack []Item
	var cursor []Item = m.Items

	for _, i := range m.ActiveStack {
		if i >= len(cursor) {
			break
		}
		item := cursor[i]
		cursor = item.SubItems
		stack = append(stack, item)
	}

	return stack
}
