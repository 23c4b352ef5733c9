// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

// handle PushMsg
func (r *Router) handlePush(msg PushMsg) tea.Cmd {
	// blur recent model, it stays mounted below the new one
	(*r.activeModelGet()).Blur()
	r.model_stack = append(r.model_stack, msg.Model)
	return r.activeModelInit()
}

// handle PopMsg
func (r *Router) handlePop(msg PopMsg) tea.Cmd {
	for range msg.Count {
		if len(r.model_stack) <= 1 {
			break
		}
		old := r.activeModelPop()
		(*old).Blur()
		util.TryUnmount(*old)
	}
	return r.activeModelFocus()
}

// handle ChangeMsg
func (r *Router) handleChange(msg ChangeMsg) tea.Cmd {
	old := r.activeModelGet()
	(*old).Blur()
	util.TryUnmount(*old)
	logging.Debugf("router %d: change %T -> %T", r.id, *old, *msg.Model)
	r.activeModelSet(msg.Model)
	return r.activeModelInit()
}

func (r *Router) activeModelGet() *util.Model {
	return r.model_stack[len(r.model_stack)-1]
}

func (r *Router) activeModelSet(model *util.Model) {
	r.model_stack[len(r.model_stack)-1] = model
}

func (r *Router) activeModelPop() *util.Model {
	model := r.activeModelGet()
	r.model_stack = r.model_stack[:len(r.model_stack)-1]
	return model
}

func (r *Router) activeModelUpdate(msg tea.Msg) tea.Cmd {
	return (*r.activeModelGet()).Update(msg)
}

func (r *Router) activeModelFocus() tea.Cmd {
	if !r.focused {
		return nil
	}
	cmd, keyMap := (*r.activeModelGet()).Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

// activeModelInit mounts the active model: Init, router controll, size and
// focus if the router itself is focused.
func (r *Router) activeModelInit() tea.Cmd {
	return tea.Batch(
		(*r.activeModelGet()).Init(),
		r.activeModelUpdate(InitMsg{Controll: Controll{rid: r.id}}),
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
	)
}
