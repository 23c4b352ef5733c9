// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/models/helpers/form"
)

// Label is static text inside a form.
type Label struct {
	Text  string
	Style lipgloss.Style
}

func NewLabel(text string) *Label {
	return &Label{Text: text, Style: lipgloss.NewStyle()}
}

func (l *Label) Static() bool { return true }

func (l *Label) View(width int) string {
	return l.Style.Width(width).Render(l.Text)
}

func (l *Label) Get() any                              { return l.Text }
func (l *Label) Set(any)                               {}
func (l *Label) Init() tea.Cmd                         { return nil }
func (l *Label) Reset()                                {}
func (l *Label) Focus() (tea.Cmd, help.KeyMap)         { return nil, nil }
func (l *Label) Blur()                                 {}
func (l *Label) Update(tea.Msg) (tea.Cmd, form.Action) { return nil, form.ActionNone }

var (
	_ form.FormInput = (*Label)(nil)
	_ form.Static    = (*Label)(nil)
)
