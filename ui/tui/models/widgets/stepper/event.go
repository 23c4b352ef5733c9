// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package stepper

import tea "github.com/charmbracelet/bubbletea"

type EventType string

const (
	EventNext     EventType = "next"
	EventPrev     EventType = "prev"
	EventChange   EventType = "change"
	EventComplete EventType = "complete"
)

// Event describes the stepper right after a navigation.
type Event struct {
	Type      EventType
	Current   int
	Total     int
	IsFirst   bool
	IsLast    bool
	Completed bool
}

// ClosedMsg is emitted by the Close button of the built-in completion view.
type ClosedMsg struct{}

func (m *Model) event(t EventType) Event {
	return Event{
		Type:      t,
		Current:   m.current,
		Total:     len(m.steps),
		IsFirst:   m.current == 0,
		IsLast:    m.current == len(m.steps)-1,
		Completed: m.completed,
	}
}

func (m *Model) dispatch(types ...EventType) tea.Cmd {
	if m.OnEvent == nil {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(types))
	for _, t := range types {
		cmds = append(cmds, m.OnEvent(m.event(t)))
	}
	return tea.Sequence(cmds...)
}
