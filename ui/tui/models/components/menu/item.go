// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/util/slicest"
)

// Accent is the highlight colour of the active item.
var Accent = lipgloss.Color("#8655B1")

func WithItem(id string, name string, sub_items ...Item) Item {
	return Item{
		Id:       id,
		Name:     name,
		SubItems: sub_items,
	}
}

// WithCmd is an item that runs cmd when selected.
func WithCmd(id, name string, cmd tea.Cmd) Item {
	return Item{Id: id, Name: name, Cmd: cmd}
}

// Separator is a non selectable divider line.
func Separator() Item {
	return Item{separator: true}
}

type Item struct {
	Id       string
	Name     string
	Icon     string
	SubItems []Item
	Cmd      tea.Cmd
	Disabled bool

	separator bool
}

// Selectable reports whether the cursor may rest on the item.
func (i Item) Selectable() bool {
	return !i.separator && !i.Disabled
}

func (i Item) View(is_active bool, active_stack []int) string {
	if i.separator {
		return lipgloss.NewStyle().Faint(true).Render("────────")
	}

	content := i.Name
	if i.Icon != "" {
		content = i.Icon + " " + content
	}

	item_style := lipgloss.NewStyle()
	if len(i.SubItems) > 0 {
		item_style = item_style.
			Underline(true).
			Italic(true)
	}
	if i.Disabled {
		item_style = item_style.Faint(true).Strikethrough(true)
	}
	if is_active {
		if len(active_stack) > 0 {
			item_style = item_style.Foreground(Accent)
		} else {
			item_style = item_style.Foreground(lipgloss.Color("#000000"))
			item_style = item_style.Background(Accent)
		}
	}

	content = item_style.Render(content)

	// add sub items when active
	if is_active && len(i.SubItems) > 0 && len(active_stack) > 0 {
		style := lipgloss.
			NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			PaddingLeft(1)
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			style.Render(renderItems(i.SubItems, active_stack)),
		)
	}

	return content
}

type ItemSelected struct {
	Id string
}

func renderItems(items []Item, active_stack []int) string {
	active_i := -1
	if len(active_stack) > 0 {
		active_i, active_stack = active_stack[0], active_stack[1:]
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.MapI(items, func(i int, item Item) string {
			return item.View(active_i == i, active_stack)
		})...,
	)
}
