// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package treeview

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Click       key.Binding
	MultiClick  key.Binding
	DoubleClick key.Binding
	Menu        key.Binding
	Drag        key.Binding
	Drop        key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Click, k.DoubleClick, k.Menu}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Click, k.MultiClick, k.DoubleClick, k.Menu},
		{k.Drag, k.Drop},
		{k.ExpandAll, k.CollapseAll},
	}
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Click: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "open/select"),
	),
	MultiClick: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "add to selection"),
	),
	DoubleClick: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "activate"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Drag: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "grab"),
	),
	Drop: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "drop"),
	),
	ExpandAll: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "expand all"),
	),
	CollapseAll: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "collapse all"),
	),
}
