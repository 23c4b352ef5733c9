// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// Model is the component contract every widget implements. Init doubles as
// the mount hook; Update mutates the receiver and only returns a command.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// Unmountable is implemented by models that own timers or other pending work
// which has to be cancelled once the model leaves the screen.
type Unmountable interface {
	Unmount()
}

// TryUnmount calls Unmount on m if it implements Unmountable.
func TryUnmount(m any) {
	if u, ok := m.(Unmountable); ok {
		u.Unmount()
	}
}

// polyfill: won't be needed as of go 1.26
func new[T any](v T) *T { return &v }

func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	return new(Model(v))
}
