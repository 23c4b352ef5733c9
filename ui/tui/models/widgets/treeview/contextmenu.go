// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package treeview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/widgetkit/core/tree"
	"github.com/toeirei/widgetkit/i18n"
	"github.com/toeirei/widgetkit/ui/tui/models/components/menu"
	"github.com/toeirei/widgetkit/ui/tui/models/components/popup"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

// ContextItem is one entry of the node context menu.
type ContextItem struct {
	Name string
	Icon string
	// Enabled defaults to always enabled.
	Enabled func(t *tree.Tree, id tree.NodeID) bool
	Action  func(m *Model, id tree.NodeID) tea.Cmd

	separator bool
}

func ContextSeparator() ContextItem {
	return ContextItem{separator: true}
}

func isChild(t *tree.Tree, id tree.NodeID) bool {
	return t.Parent(id) != tree.None
}

// DefaultContextItems are Rename, Delete, Properties and New Item. Roots
// cannot be deleted.
func DefaultContextItems() []ContextItem {
	return []ContextItem{
		{Name: i18n.T("tree.menu.rename"), Icon: "✎", Action: (*Model).Rename},
		{Name: i18n.T("tree.menu.delete"), Icon: "✖", Enabled: isChild, Action: (*Model).Delete},
		{Name: i18n.T("tree.menu.properties"), Icon: "ⓘ", Action: (*Model).Properties},
		ContextSeparator(),
		{Name: i18n.T("tree.menu.new_item"), Icon: "+", Action: (*Model).NewItem},
	}
}

type contextActionMsg struct {
	view int64
	item int
	node tree.NodeID
}

type renameMsg struct {
	view int64
	node tree.NodeID
	name string
}

type deleteMsg struct {
	view int64
	node tree.NodeID
}

type newItemMsg struct {
	view   int64
	parent tree.NodeID
	spec   tree.Spec
}

func (m *Model) emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func openPopup(p util.Model) tea.Cmd {
	return popup.Open(&p)
}

// contextMenu builds the menu for id.
func (m *Model) contextMenu(id tree.NodeID) *menu.Model {
	items := make([]menu.Item, 0, len(m.ContextItems))
	for i, ci := range m.ContextItems {
		if ci.separator {
			items = append(items, menu.Separator())
			continue
		}
		item := menu.WithCmd(fmt.Sprint(i), ci.Name, m.emit(contextActionMsg{view: m.id, item: i, node: id}))
		item.Icon = ci.Icon
		item.Disabled = ci.Enabled != nil && !ci.Enabled(m.tree, id)
		items = append(items, item)
	}
	cm := menu.New(items...)
	cm.OnBack = popup.Close()
	return cm
}

// OpenContextMenu selects id, runs OnContextMenu and shows the context menu
// when it is enabled.
func (m *Model) OpenContextMenu(id tree.NodeID) tea.Cmd {
	if !m.tree.Contains(id) {
		return nil
	}
	var cmds []tea.Cmd
	if m.OnContextMenu != nil {
		cmds = append(cmds, m.OnContextMenu(id))
	}
	if n, _ := m.tree.Get(id); n.Selectable && !m.IsSelected(id) {
		cmds = append(cmds, m.Select(id, false))
	}
	if m.Config.ContextMenu && len(m.ContextItems) > 0 {
		cmds = append(cmds, openPopup(m.contextMenu(id)))
	}
	return tea.Batch(cmds...)
}

func (m *Model) runContextItem(i int, id tree.NodeID) tea.Cmd {
	if i < 0 || i >= len(m.ContextItems) || !m.tree.Contains(id) {
		return popup.Close()
	}
	ci := m.ContextItems[i]
	if ci.Action == nil || (ci.Enabled != nil && !ci.Enabled(m.tree, id)) {
		return popup.Close()
	}
	// the menu has to be gone before a dialog opens
	return tea.Sequence(popup.Close(), ci.Action(m, id))
}
