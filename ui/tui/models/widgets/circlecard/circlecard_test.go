// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package circlecard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func settle(m *Model) []int {
	var widths []int
	for i := 0; m.Animating() && i < 100; i++ {
		m.Update(m.loop.Frame())
		widths = append(widths, m.Width())
	}
	return widths
}

func TestCard_ExpandTweensWithEaseOut(t *testing.T) {
	m := New(WithTitle("Stats"), WithContent("42 users"), WithExpandedSize(40, 5))
	m.Toggle()
	widths := settle(m)

	if !m.Open() || m.Width() != 40 {
		t.Fatalf("open=%v width=%d", m.Open(), m.Width())
	}
	for i := 1; i < len(widths); i++ {
		if widths[i] < widths[i-1] {
			t.Fatalf("width shrank while opening: %v", widths)
		}
	}
	// ease-out covers more than half of the distance in the first half
	if mid := widths[len(widths)/2-1]; mid <= (40+3)/2 {
		t.Errorf("midpoint width %d does not lead linear progress", mid)
	}

	view := ansi.Strip(m.View())
	for _, want := range []string{"Stats", "42 users", "─"} {
		if !strings.Contains(view, want) {
			t.Errorf("open card misses %q", want)
		}
	}
}

func TestCard_CollapsedHidesContent(t *testing.T) {
	m := New(WithTitle("Stats"), WithContent("42 users"))
	view := ansi.Strip(m.View())
	if strings.Contains(view, "Stats") || strings.Contains(view, "42") {
		t.Fatalf("collapsed view shows content: %q", view)
	}
}

func TestCard_ClickNeedsFocusAndRunsCallback(t *testing.T) {
	var states []bool
	m := New(WithOnClick(func(open bool) tea.Cmd {
		states = append(states, open)
		return nil
	}))
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m.Update(enter)
	if m.Open() {
		t.Fatal("unfocused card toggled")
	}

	m.Focus()
	m.Update(enter)
	settle(m)
	m.Update(enter)
	settle(m)
	if len(states) != 2 || !states[0] || states[1] {
		t.Fatalf("callback states %v", states)
	}
	if m.Width() != m.CollapsedWidth {
		t.Errorf("collapsed width %d", m.Width())
	}
}
