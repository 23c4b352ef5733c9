// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package anim provides the cooperative frame loop every animated widget runs
// on, plus colour blending and easing helpers.
//
// A Loop never sleeps: it hands out tea.Tick commands tagged with its id and
// generation. Start and Stop bump the generation, so frames scheduled by an
// earlier run are recognised as stale and dropped by Owns.
package anim

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

// FrameMsg is delivered when a frame scheduled through Loop.After elapses.
type FrameMsg struct {
	ID  int64
	Gen int
}

type Loop struct {
	id      int64
	gen     int
	running bool
}

func NewLoop() Loop {
	return Loop{id: lastID.Add(1)}
}

func (l *Loop) ID() int64 { return l.id }

// Start begins a new run. Frames from previous runs become stale.
func (l *Loop) Start() {
	l.gen++
	l.running = true
}

// Stop ends the current run. Pending frames become stale immediately.
func (l *Loop) Stop() {
	l.gen++
	l.running = false
}

func (l *Loop) Running() bool { return l.running }

// Owns reports whether msg is a live frame of the current run.
func (l *Loop) Owns(msg tea.Msg) bool {
	frame, ok := msg.(FrameMsg)
	return ok && l.running && frame.ID == l.id && frame.Gen == l.gen
}

// After schedules the next frame of the current run.
func (l *Loop) After(d time.Duration) tea.Cmd {
	if !l.running {
		return nil
	}
	id, gen := l.id, l.gen
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen}
	})
}

// Frame returns the message After would deliver for the current run. Tests
// use it to drive a model without waiting on timers.
func (l *Loop) Frame() FrameMsg {
	return FrameMsg{ID: l.id, Gen: l.gen}
}
