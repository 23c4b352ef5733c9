// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package anim

import (
	"testing"
	"time"
)

func TestLoop_StaleFramesAreDropped(t *testing.T) {
	l := NewLoop()
	if l.Owns(l.Frame()) {
		t.Fatal("idle loop must not own frames")
	}

	l.Start()
	first := l.Frame()
	if !l.Owns(first) {
		t.Fatal("expected current frame to be owned")
	}

	// a second mount restarts the loop; frames from the first run die
	l.Start()
	if l.Owns(first) {
		t.Error("frame from previous run still owned")
	}
	if !l.Owns(l.Frame()) {
		t.Error("frame from current run not owned")
	}

	cur := l.Frame()
	l.Stop()
	if l.Owns(cur) {
		t.Error("stopped loop still owns frames")
	}
	if l.After(time.Millisecond) != nil {
		t.Error("stopped loop must not schedule frames")
	}
}

func TestLoop_DistinctIDs(t *testing.T) {
	a, b := NewLoop(), NewLoop()
	a.Start()
	b.Start()
	if b.Owns(a.Frame()) || a.Owns(b.Frame()) {
		t.Fatal("loops must not own each other's frames")
	}
}

func TestLoop_AfterDelivers(t *testing.T) {
	l := NewLoop()
	l.Start()
	cmd := l.After(time.Millisecond)
	if cmd == nil {
		t.Fatal("expected command")
	}
	if !l.Owns(cmd()) {
		t.Fatal("delivered frame not owned")
	}
}

func TestBlend(t *testing.T) {
	c, ok := Blend("#000000", "#ffffff", 0)
	if !ok || c != "#000000" {
		t.Errorf("t=0: got %q %v", c, ok)
	}
	c, ok = Blend("#000000", "#ffffff", 1)
	if !ok || c != "#ffffff" {
		t.Errorf("t=1: got %q %v", c, ok)
	}
	if _, ok := Blend("red", "#ffffff", 0.5); ok {
		t.Error("expected non-hex colour to fail")
	}
}

func TestFade_Fallback(t *testing.T) {
	if !Fade("212", "", 0.2).GetFaint() {
		t.Error("expected faint below half opacity")
	}
	if Fade("212", "", 0.8).GetFaint() {
		t.Error("expected normal above half opacity")
	}
}

func TestEase(t *testing.T) {
	if EaseOutCubic(0) != 0 || EaseOutCubic(1) != 1 {
		t.Fatal("ease endpoints")
	}
	if EaseOutCubic(0.5) <= 0.5 {
		t.Error("ease-out should lead linear progress")
	}
	if LerpInt(10, 20, 0.5) != 15 {
		t.Error("LerpInt midpoint")
	}
}

func TestSpring_Settles(t *testing.T) {
	s := NewSpring(6)
	s.Pos, s.Target = 1, 0
	for i := 0; i < 10*SpringFPS; i++ {
		if s.Step() {
			if s.Pos != 0 {
				t.Fatalf("settled at %v", s.Pos)
			}
			return
		}
	}
	t.Fatal("spring never settled")
}
