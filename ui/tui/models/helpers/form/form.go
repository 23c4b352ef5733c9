// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form composes inputs into a keyboard driven form whose result is
// decoded into a struct. Tree dialogs are built on it.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/widgetkit/ui/tui/util"
	"github.com/toeirei/widgetkit/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// Static inputs are rendered but never focused.
type Static interface {
	Static() bool
}

type Field struct {
	ID    string
	Input FormInput
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	Title            string
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	size        util.Size
}

var titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

func (f *Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f *Form[T]) Update(msg tea.Msg) tea.Cmd {
	if f.size.Update(msg) {
		return nil
	}
	if !f.focused || len(f.items) == 0 {
		return nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return f.changeActiveIndex(-1)
		case key.Matches(kmsg, DefaultKeyMap.Cancel):
			return f.cancel()
		}
	}

	return f.updateActiveInput(msg)
}

func (f *Form[T]) View() string {
	width := f.size.Width
	if width <= 0 {
		width = 40
	}
	rows := slicest.Map(f.rows, func(row formRow) string {
		return lipgloss.JoinHorizontal(
			lipgloss.Center,
			slicest.Map(row.items, func(i int) string {
				return f.items[i].input.View(width / len(row.items))
			})...,
		)
	})
	if f.Title != "" {
		rows = append([]string{titleStyle.Render(f.Title)}, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, DefaultKeyMap
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, DefaultKeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Model
var _ util.Model = (*Form[any])(nil)

// Active returns the index of the focused input in insertion order.
func (f *Form[T]) Active() int {
	return f.activeIndex
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	if len(f.items) == 0 {
		return nil
	}
	f.items[f.activeIndex].input.Blur()
	f.activeIndex = f.nextFocusable(-1, 1)
	if f.focused {
		cmd, _ := f.Focus()
		return cmd
	}
	return nil
}

func (f *Form[T]) Submit() tea.Cmd {
	data, err := f.Get()
	var resetCmd tea.Cmd
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	if f.OnSubmit == nil {
		return resetCmd
	}
	return tea.Batch(resetCmd, f.OnSubmit(data, err))
}

func (f *Form[T]) cancel() tea.Cmd {
	if f.OnCancel == nil {
		return nil
	}
	return f.OnCancel()
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	var actionCmd tea.Cmd
	switch action {
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		actionCmd = f.cancel()
	}

	return tea.Batch(updateCmd, actionCmd)
}

func (f *Form[T]) nextFocusable(from, dir int) int {
	n := len(f.items)
	for step := 1; step <= n; step++ {
		i := util.Wrap(from+dir*step, n)
		if s, ok := f.items[i].input.(Static); !ok || !s.Static() {
			return i
		}
	}
	return max(from, 0)
}

func (f *Form[T]) changeActiveIndex(dir int) tea.Cmd {
	next := f.nextFocusable(f.activeIndex, dir)
	if next == f.activeIndex {
		return nil
	}
	f.items[f.activeIndex].input.Blur()
	f.activeIndex = next
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(util.MergeKeyMaps(keyMap, DefaultKeyMap)))
}

// Get decodes the current input values into T.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))
	for _, item := range f.items {
		if item.id != "" {
			values[item.id] = item.input.Get()
		}
	}
	err := mapstructure.Decode(values, &data)
	return data, err
}

// Set pushes the fields of data into the inputs with matching ids.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}
	for _, item := range f.items {
		if value, ok := values[item.id]; ok && item.id != "" {
			item.input.Set(value)
		}
	}
	return nil
}
