// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package stepper

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Close key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Prev, km.Next}, {km.Close}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// Step content may use plain keys, so navigation sits on page keys.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+n"),
		key.WithHelp("pgdn", "next step"),
	),
	Prev: key.NewBinding(
		key.WithKeys("pgup", "ctrl+b"),
		key.WithHelp("pgup", "previous step"),
	),
	Close: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "close"),
	),
}
