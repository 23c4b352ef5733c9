// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

var routerId = 0

// Router shows the top of a stack of models. Activating a model mounts it
// (Init); replacing or popping it unmounts it.
type Router struct {
	id          int
	size        util.Size
	focused     bool
	model_stack []*util.Model
}

func New(initial_model *util.Model) (*Router, Controll) {
	routerId++
	return &Router{
			id:          routerId,
			model_stack: []*util.Model{initial_model},
		}, Controll{
			rid: routerId,
		}
}

func (r *Router) Init() tea.Cmd {
	return tea.Batch(
		(*r.activeModelGet()).Init(),
		r.activeModelUpdate(InitMsg{Controll: Controll{rid: r.id}}),
	)
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if r.size.Update(msg) {
		// pass window size messages
		cmd = r.activeModelUpdate(msg)
	} else if r.isMsgOwner(msg) {
		// handle controll messages meant for this router
		switch msg := msg.(type) {
		case PushMsg:
			cmd = r.handlePush(msg)
		case PopMsg:
			cmd = r.handlePop(msg)
		case ChangeMsg:
			cmd = r.handleChange(msg)
		}
	} else if IsRouterMsg(msg) {
		// do not pass init messages, to prevent childs from obtaining parent routers Controll
		if _, ok := msg.(InitMsg); !ok {
			// pass other controll messages for child routers
			cmd = r.activeModelUpdate(msg)
		}
	} else {
		// pass other messages
		cmd = r.activeModelUpdate(msg)
	}

	return cmd
}

func (r *Router) View() string {
	return (*r.activeModelGet()).View()
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	return (*r.activeModelGet()).Focus()
}

func (r *Router) Blur() {
	r.focused = false
	(*r.activeModelGet()).Blur()
}

// Unmount unmounts every model on the stack.
func (r *Router) Unmount() {
	for _, m := range r.model_stack {
		util.TryUnmount(*m)
	}
}

// Active returns the model on top of the stack.
func (r *Router) Active() util.Model {
	return *r.activeModelGet()
}

// Depth is the number of stacked models.
func (r *Router) Depth() int {
	return len(r.model_stack)
}

// *Router implements util.Model
var _ util.Model = (*Router)(nil)

func (r *Router) isMsgOwner(msg tea.Msg) bool {
	rmsg, ok := msg.(RouterMsg)
	return ok && rmsg.routerID() == r.id
}

func IsRouterMsg(msg tea.Msg) bool {
	_, ok := msg.(RouterMsg)
	return ok
}
