// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"github.com/toeirei/widgetkit/ui/tui/util"
)

// Router invoked messages
// Router -> Model

// InitMsg is sent to every model the router activates.
type InitMsg struct {
	Controll Controll
}

// Controll invoked messages
// Model-Controll -> Router

type PushMsg struct {
	rid   int
	Model *util.Model
}
type PopMsg struct {
	rid   int
	Count int
}
type ChangeMsg struct {
	rid   int
	Model *util.Model
}

func (m InitMsg) routerID() int   { return m.Controll.rid }
func (m PushMsg) routerID() int   { return m.rid }
func (m PopMsg) routerID() int    { return m.rid }
func (m ChangeMsg) routerID() int { return m.rid }

type RouterMsg interface {
	routerID() int
}
