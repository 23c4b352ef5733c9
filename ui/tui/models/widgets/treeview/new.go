// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package treeview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/widgetkit/core/tree"
)

type NewOpt func(m *Model)

func WithConfig(cfg Config) NewOpt {
	return func(m *Model) {
		if cfg.CustomIcons == nil {
			cfg.CustomIcons = map[string]string{}
		}
		m.Config = cfg
	}
}

func WithMultiSelect(on bool) NewOpt {
	return func(m *Model) { m.Config.MultiSelect = on }
}

func WithDragDrop(on bool) NewOpt {
	return func(m *Model) { m.Config.DragDrop = on }
}

// WithCustomIcon shows icon for nodes tagged tag.
func WithCustomIcon(tag, icon string) NewOpt {
	return func(m *Model) { m.Config.CustomIcons[tag] = icon }
}

func WithIndent(n int) NewOpt {
	return func(m *Model) {
		if n >= 0 {
			m.Config.Indent = n
		}
	}
}

// WithContextItems appends items below the default context menu entries.
func WithContextItems(items ...ContextItem) NewOpt {
	return func(m *Model) {
		m.ContextItems = append(m.ContextItems, ContextSeparator())
		m.ContextItems = append(m.ContextItems, items...)
	}
}

func WithOnSelect(fn func(id tree.NodeID, selected []tree.NodeID) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnSelect = fn }
}

func WithOnExpand(fn func(id tree.NodeID) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnExpand = fn }
}

func WithOnCollapse(fn func(id tree.NodeID) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnCollapse = fn }
}

func WithOnDoubleClick(fn func(id tree.NodeID) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnDoubleClick = fn }
}

func WithOnContextMenu(fn func(id tree.NodeID) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnContextMenu = fn }
}

func WithOnRename(fn func(id tree.NodeID, name string) bool) NewOpt {
	return func(m *Model) { m.OnRename = fn }
}

func WithOnDelete(fn func(id tree.NodeID) bool) NewOpt {
	return func(m *Model) { m.OnDelete = fn }
}

func WithOnProperties(fn func(id tree.NodeID) tea.Cmd) NewOpt {
	return func(m *Model) { m.OnProperties = fn }
}

func WithOnNewItem(fn func(parent tree.NodeID, kind, name string) (tree.Spec, bool)) NewOpt {
	return func(m *Model) { m.OnNewItem = fn }
}

func WithOnDragStart(fn func(id tree.NodeID) bool) NewOpt {
	return func(m *Model) { m.OnDragStart = fn }
}

func WithOnDrop(fn func(id, target tree.NodeID) bool) NewOpt {
	return func(m *Model) { m.OnDrop = fn }
}
