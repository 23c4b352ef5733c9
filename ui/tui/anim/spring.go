// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringFPS is the frame rate springs are stepped at.
const SpringFPS = 30

// Spring is a damped spring moving Pos toward Target.
type Spring struct {
	spring harmonica.Spring
	Pos    float64
	Vel    float64
	Target float64
}

// NewSpring creates a critically damped spring.
func NewSpring(frequency float64) Spring {
	return Spring{spring: harmonica.NewSpring(harmonica.FPS(SpringFPS), frequency, 1.0)}
}

// Step advances the spring by one frame and reports whether it settled.
func (s *Spring) Step() bool {
	s.Pos, s.Vel = s.spring.Update(s.Pos, s.Vel, s.Target)
	if math.Abs(s.Pos-s.Target) < 0.01 && math.Abs(s.Vel) < 0.01 {
		s.Pos, s.Vel = s.Target, 0
		return true
	}
	return false
}

// Interval is the delay between two spring frames.
func (s *Spring) Interval() time.Duration {
	return time.Second / SpringFPS
}
