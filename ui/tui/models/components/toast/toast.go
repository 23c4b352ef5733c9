// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package toast shows short lived notifications in the top right corner of
// the model it wraps.
package toast

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/toeirei/widgetkit/ui/tui/models/components/popup"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

type Level string

const (
	Info    Level = "info"
	Success Level = "success"
	Warning Level = "warning"
	Error   Level = "error"
)

const (
	DefaultDuration = 3 * time.Second
	DefaultMax      = 3
)

var levelColors = map[Level]lipgloss.Color{
	Info:    lipgloss.Color("#5DA9E9"),
	Success: lipgloss.Color("#66BB6A"),
	Warning: lipgloss.Color("#FFCA28"),
	Error:   lipgloss.Color("#EF5350"),
}

type Toast struct {
	ID       string
	Level    Level
	Message  string
	Duration time.Duration
}

type showMsg struct{ toast Toast }

type dismissMsg struct{ id string }

// Show raises a toast with the default duration.
func Show(level Level, message string) tea.Cmd {
	return ShowFor(level, message, DefaultDuration)
}

func ShowFor(level Level, message string, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = DefaultDuration
	}
	t := Toast{
		ID:       uuid.NewString(),
		Level:    level,
		Message:  strings.TrimSpace(message),
		Duration: d,
	}
	return func() tea.Msg { return showMsg{toast: t} }
}

// Layer wraps a child model and draws active toasts over it.
type Layer struct {
	child  *util.Model
	toasts []Toast
	max    int
}

func NewLayer(child *util.Model) *Layer {
	return &Layer{child: child, max: DefaultMax}
}

func (l *Layer) Init() tea.Cmd {
	return (*l.child).Init()
}

func (l *Layer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case showMsg:
		l.toasts = append(l.toasts, msg.toast)
		if overflow := len(l.toasts) - l.max; overflow > 0 {
			l.toasts = l.toasts[overflow:]
		}
		id := msg.toast.ID
		return tea.Tick(msg.toast.Duration, func(time.Time) tea.Msg {
			return dismissMsg{id: id}
		})
	case dismissMsg:
		l.Dismiss(msg.id)
		return nil
	}
	return (*l.child).Update(msg)
}

// Dismiss removes the toast with id.
func (l *Layer) Dismiss(id string) {
	for i, t := range l.toasts {
		if t.ID == id {
			l.toasts = append(l.toasts[:i], l.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns the active toasts, oldest first.
func (l *Layer) Toasts() []Toast {
	return append([]Toast(nil), l.toasts...)
}

func (l *Layer) View() string {
	view := (*l.child).View()
	if len(l.toasts) == 0 {
		return view
	}

	rendered := make([]string, len(l.toasts))
	for i, t := range l.toasts {
		rendered[i] = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(levelColors[t.Level]).
			Padding(0, 1).
			Render(t.Message)
	}
	box := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	left := lipgloss.Width(view) - lipgloss.Width(box) - 1
	return popup.Place(view, box, left, 1)
}

func (l *Layer) Focus() (tea.Cmd, help.KeyMap) {
	return (*l.child).Focus()
}

func (l *Layer) Blur() {
	(*l.child).Blur()
}

func (l *Layer) Unmount() {
	util.TryUnmount(*l.child)
}

// *Layer implements util.Model
var _ util.Model = (*Layer)(nil)
