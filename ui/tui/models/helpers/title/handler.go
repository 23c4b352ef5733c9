// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal window title in sync with the
// active gallery page.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type Handler struct {
	Base      string
	Delimiter string
	current   string
}

func NewHandler(base, delimiter string) *Handler {
	return &Handler{
		Base:      base,
		Delimiter: delimiter,
	}
}

// Title is the full title as last rendered.
func (h *Handler) Title() string {
	if h.current == "" {
		return h.Base
	}
	return h.Base + h.Delimiter + h.current
}

func (h *Handler) Init() tea.Cmd {
	return tea.SetWindowTitle(h.Title())
}

// Handle consumes title messages and reports whether msg was one.
func (h *Handler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	title, ok := msg.(titleMsg)
	if !ok {
		return nil, false
	}
	if h.current == string(title) {
		return nil, true
	}
	h.current = string(title)
	return tea.SetWindowTitle(h.Title()), true
}
