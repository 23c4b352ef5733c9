// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/widgetkit/ui/tui/util"
	"github.com/toeirei/widgetkit/util/slicest"
)

// MsgFilter may rewrite or drop (return nil) a message before it reaches
// model.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msg_filters []MsgFilter) tea.Msg {
	return slicest.ReduceD(msg_filters, msg, func(msg_filter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return msg_filter(model, msg)
	})
}

// KeysOnlyWhenFocused drops key messages for models that are not focused
// according to isFocused.
func KeysOnlyWhenFocused(isFocused func(util.Model) bool) MsgFilter {
	return func(model util.Model, msg tea.Msg) tea.Msg {
		if _, ok := msg.(tea.KeyMsg); ok && !isFocused(model) {
			return nil
		}
		return msg
	}
}
