// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package restrictedinput is a single line text input that checks its value
// against a validation pattern on submit and colours its border by the result.
package restrictedinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/core/validate"
	"github.com/toeirei/widgetkit/i18n"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

type Status int

const (
	StatusEmpty Status = iota
	StatusValid
	StatusInvalid
)

var (
	emptyColor   = lipgloss.Color("#9E9E9E")
	validColor   = lipgloss.Color("#4CAF50")
	invalidColor = lipgloss.Color("#F44336")
)

// ValidateMsg is sent after every submit.
type ValidateMsg struct {
	Name        string
	PatternName string
	Value       string
	Valid       bool
	Message     string
}

type KeyMap struct {
	Submit key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Submit} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Submit}} }

var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "validate"),
	),
}

type Model struct {
	Label      string
	Pattern    validate.Pattern
	Registry   *validate.Registry
	Width      int
	OnValidate func(ValidateMsg) tea.Cmd

	input   textinput.Model
	status  Status
	message string
	focused bool
}

// New builds an input checked against pattern. Custom patterns are looked up
// in reg, which may be nil when none are used.
func New(pattern validate.Pattern, reg *validate.Registry, opts ...NewOpt) *Model {
	input := textinput.New()
	input.Prompt = ""
	m := &Model{
		Pattern:  pattern,
		Registry: reg,
		Width:    30,
		input:    input,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Value() string {
	return m.input.Value()
}

func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
}

func (m *Model) Status() Status {
	return m.status
}

// Message is the error text of the last failed check.
func (m *Model) Message() string {
	return m.message
}

// Validate checks the trimmed value and updates the visual state.
func (m *Model) Validate() ValidateMsg {
	value := strings.TrimSpace(m.input.Value())
	res, err := validate.Check(m.Pattern, m.Registry, value)
	if err != nil {
		logging.Warnf("restrictedinput: %v", err)
		res.Valid = false
		res.Message = i18n.T("input.invalid_pattern", res.PatternName)
	}

	switch {
	case value == "":
		m.status, m.message = StatusEmpty, ""
	case res.Valid:
		m.status, m.message = StatusValid, ""
	default:
		m.status, m.message = StatusInvalid, res.Message
		logging.Debugf("restrictedinput: %q rejected by %s", value, res.PatternName)
	}

	return ValidateMsg{
		Name:        "validate",
		PatternName: res.PatternName,
		Value:       value,
		Valid:       res.Valid,
		Message:     res.Message,
	}
}

// Submit validates and reports the result as a message and to OnValidate.
func (m *Model) Submit() tea.Cmd {
	msg := m.Validate()
	cmds := []tea.Cmd{func() tea.Msg { return msg }}
	if m.OnValidate != nil {
		cmds = append(cmds, m.OnValidate(msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, DefaultKeyMap.Submit) {
		return m.Submit()
	}
	return util.UpdateTeaModelInplace(msg, &m.input)
}

func (m *Model) borderColor() lipgloss.Color {
	switch m.status {
	case StatusValid:
		return validColor
	case StatusInvalid:
		return invalidColor
	default:
		return emptyColor
	}
}

func (m *Model) View() string {
	m.input.Width = max(1, m.Width-2)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor()).
		Width(m.Width).
		Render(m.input.View())

	parts := []string{}
	if m.Label != "" {
		parts = append(parts, lipgloss.NewStyle().Bold(m.focused).Render(m.Label))
	}
	parts = append(parts, box)
	if m.status == StatusInvalid {
		parts = append(parts, lipgloss.NewStyle().Foreground(invalidColor).Render(m.message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return m.input.Focus(), DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

var _ util.Model = (*Model)(nil)
