// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package rotatingtext

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func drive(m *Model, frames int) []string {
	var seen []string
	for i := 0; m.Running() && i < frames; i++ {
		m.Update(m.loop.Frame())
		if len(seen) == 0 || seen[len(seen)-1] != m.Phrase() {
			seen = append(seen, m.Phrase())
		}
	}
	return seen
}

func TestRotatingText_StopsOnLastPhrase(t *testing.T) {
	m := New("Hello", []string{"Go", "Tea", "World"})
	m.Init()
	seen := drive(m, 1000)
	if m.Running() {
		t.Fatal("non looping rotation did not stop")
	}
	if strings.Join(seen, ",") != "Go,Tea,World" {
		t.Fatalf("phrases %q", seen)
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Hello") || !strings.Contains(view, "World") {
		t.Errorf("view %q", view)
	}
}

func TestRotatingText_LoopWraps(t *testing.T) {
	m := New("Hello", []string{"Go", "Tea"}, WithLoop(true))
	m.Init()
	seen := drive(m, 40)
	if !m.Running() {
		t.Fatal("looping rotation stopped")
	}
	if len(seen) < 3 || seen[2] != "Go" {
		t.Fatalf("expected wrap back to first phrase, got %q", seen)
	}
}

func TestRotatingText_NoPhrases(t *testing.T) {
	m := New("Hello", nil)
	m.Init()
	if m.Running() {
		t.Fatal("nothing to rotate")
	}
}
