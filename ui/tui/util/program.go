// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var quitBinding = key.NewBinding(key.WithKeys("ctrl+c"))

// Program adapts a Model to tea.Model so it can be handed to tea.NewProgram.
// ctrl+c unmounts the model before quitting.
func Program(m Model) tea.Model {
	return program{model: m}
}

type program struct {
	model Model
}

func (p program) Init() tea.Cmd {
	return p.model.Init()
}

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, quitBinding) {
		TryUnmount(p.model)
		return p, tea.Quit
	}
	return p, p.model.Update(msg)
}

func (p program) View() string {
	return p.model.View()
}
