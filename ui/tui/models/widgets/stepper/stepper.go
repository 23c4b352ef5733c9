// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stepper is a multi-step wizard with progress indicators, a fade
// between steps and a completion view.
package stepper

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/widgetkit/i18n"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	fadeFrames = 8
	fadeDelay  = 50 * time.Millisecond
)

type Step struct {
	Title       string
	Subtitle    string
	Description string
	Icon        string
	// Content is shown below the description. Nil shows a placeholder.
	Content util.Model
}

type Model struct {
	ActiveColor    lipgloss.Color
	InactiveColor  lipgloss.Color
	CompletedColor lipgloss.Color
	Background     string
	OnEvent        func(Event) tea.Cmd
	// OnComplete replaces the built-in completion view.
	OnComplete func(Event) tea.Cmd

	steps     []Step
	current   int
	completed bool
	focused   bool
	pending   tea.Cmd

	fade  anim.Loop
	frame int
	size  util.Size
}

func New(steps []Step, opts ...NewOpt) *Model {
	m := &Model{
		ActiveColor:    lipgloss.Color("#2196F3"),
		InactiveColor:  lipgloss.Color("#616161"),
		CompletedColor: lipgloss.Color("#4CAF50"),
		Background:     "#000000",
		steps:          steps,
		frame:          fadeFrames,
		fade:           anim.NewLoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.pending = m.dispatch(EventChange)
	return m
}

func (m *Model) Current() int    { return m.current }
func (m *Model) Total() int      { return len(m.steps) }
func (m *Model) Completed() bool { return m.completed }

func (m *Model) content() util.Model {
	if m.current < len(m.steps) {
		return m.steps[m.current].Content
	}
	return nil
}

// Init returns the change event raised at construction together with the
// first step's content init.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.pending}
	m.pending = nil
	if c := m.content(); c != nil {
		cmds = append(cmds, c.Init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Unmount() {
	m.fade.Stop()
	m.frame = fadeFrames
	for _, s := range m.steps {
		if s.Content != nil {
			util.TryUnmount(s.Content)
		}
	}
}

// Next moves to the following step, or completes the stepper on the last
// one. Once completed it does nothing.
func (m *Model) Next() tea.Cmd {
	if m.completed || len(m.steps) == 0 {
		return nil
	}
	if m.current < len(m.steps)-1 {
		return m.goTo(m.current+1, EventNext)
	}
	return m.complete()
}

// Prev moves to the previous step. It stays on the first step.
func (m *Model) Prev() tea.Cmd {
	if m.completed || m.current == 0 {
		return nil
	}
	return m.goTo(m.current-1, EventPrev)
}

func (m *Model) goTo(i int, t EventType) tea.Cmd {
	var cmds []tea.Cmd
	if c := m.content(); c != nil && m.focused {
		c.Blur()
	}
	m.current = i
	if c := m.content(); c != nil {
		cmds = append(cmds, c.Init(), c.Update(m.contentSize()))
		if m.focused {
			cmd, keyMap := c.Focus()
			cmds = append(cmds, cmd, util.AnnounceKeyMapCmd(util.MergeKeyMaps(keyMap, DefaultKeyMap)))
		}
	}
	m.frame = 0
	m.fade.Start()
	cmds = append(cmds, m.fade.After(fadeDelay), m.dispatch(t, EventChange))
	return tea.Batch(cmds...)
}

func (m *Model) complete() tea.Cmd {
	m.completed = true
	logging.Debugf("stepper: completed after %d steps", len(m.steps))
	cmds := []tea.Cmd{m.dispatch(EventComplete)}
	if m.OnComplete != nil {
		cmds = append(cmds, m.OnComplete(m.event(EventComplete)))
	}
	return tea.Sequence(cmds...)
}

func (m *Model) contentSize() tea.WindowSizeMsg {
	return m.size.Shrink(6, 12).ToMsg()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if c := m.content(); c != nil {
			return c.Update(m.contentSize())
		}
		return nil
	}
	if m.fade.Owns(msg) {
		m.frame++
		if m.frame >= fadeFrames {
			m.fade.Stop()
			return nil
		}
		return m.fade.After(fadeDelay)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if !m.focused {
			return nil
		}
		switch {
		case m.completed && m.OnComplete == nil && key.Matches(kmsg, DefaultKeyMap.Close):
			return func() tea.Msg { return ClosedMsg{} }
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return m.Next()
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return m.Prev()
		}
	}

	if c := m.content(); c != nil && !m.completed {
		return c.Update(msg)
	}
	return nil
}

func (m *Model) indicators() string {
	var dots []string
	for i, s := range m.steps {
		color := m.InactiveColor
		switch {
		case i < m.current || m.completed:
			color = m.CompletedColor
		case i == m.current:
			color = m.ActiveColor
		}
		num := lipgloss.NewStyle().
			Background(color).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1).
			Render(fmt.Sprint(i + 1))
		title := lipgloss.NewStyle().Bold(true).Faint(i > m.current && !m.completed).Render(s.Title)
		if i > 0 {
			dots = append(dots, "   ")
		}
		dots = append(dots, lipgloss.JoinVertical(lipgloss.Center, num, title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, dots...)
}

func (m *Model) card() string {
	s := m.steps[m.current]
	icon := s.Icon
	if icon == "" {
		icon = "●"
	}
	sub := s.Subtitle
	if sub == "" {
		sub = s.Description
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(m.ActiveColor).PaddingRight(1).Render(icon),
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(s.Title),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD")).Render(sub),
		),
	)
	body := i18n.T("stepper.step_placeholder", s.Title)
	if s.Content != nil {
		body = s.Content.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Faint(true).Render(strings.Repeat("─", max(10, lipgloss.Width(header)))),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0")).Render(s.Description),
		body,
	)
}

func (m *Model) navigation() string {
	prev := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).
		Faint(m.current == 0).Render("‹ " + i18n.T("stepper.prev"))
	label := i18n.T("stepper.next")
	if m.current == len(m.steps)-1 {
		label = i18n.T("stepper.finish")
	}
	next := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).
		BorderForeground(m.ActiveColor).Render(label + " ›")
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, "  ", next)
}

func (m *Model) completedView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(m.CompletedColor).Bold(true).Render("✔"),
		lipgloss.NewStyle().Bold(true).Render(i18n.T("stepper.completed_title")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD")).Render(i18n.T("stepper.completed_body")),
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(m.CompletedColor).
			Padding(0, 2).Render(i18n.T("stepper.close")),
	)
}

func (m *Model) View() string {
	if len(m.steps) == 0 {
		return ""
	}
	if m.completed && m.OnComplete == nil {
		return m.completedView()
	}

	card := m.card()
	if m.fade.Running() {
		p := float64(m.frame) / fadeFrames
		style := anim.Fade("#FFFFFF", m.Background, p)
		lines := strings.Split(ansi.Strip(card), "\n")
		for i, l := range lines {
			lines[i] = style.Render(l)
		}
		card = strings.Join(lines, "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.indicators(),
		lipgloss.NewStyle().Faint(true).Render(strings.Repeat("─", max(20, m.size.Width-4))),
		card,
		"",
		m.navigation(),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	if c := m.content(); c != nil && !m.completed {
		cmd, keyMap := c.Focus()
		return cmd, util.MergeKeyMaps(keyMap, DefaultKeyMap)
	}
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
	if c := m.content(); c != nil {
		c.Blur()
	}
}

var (
	_ util.Model       = (*Model)(nil)
	_ util.Unmountable = (*Model)(nil)
)
