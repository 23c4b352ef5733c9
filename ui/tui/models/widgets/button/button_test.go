// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package button

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestButton_ClickShowsPressedThenRestores(t *testing.T) {
	clicks := 0
	m := New("Save", WithOnClick(func() tea.Cmd { clicks++; return nil }))
	normal := m.View()

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if clicks != 0 {
		t.Fatal("unfocused button clicked")
	}

	m.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if clicks != 1 || !m.Pressed() {
		t.Fatalf("clicks=%d pressed=%v", clicks, m.Pressed())
	}
	m.Update(m.press.Frame())
	if m.Pressed() {
		t.Fatal("pressed state did not restore")
	}
	m.Blur()
	if m.View() != normal {
		t.Error("view differs after press and blur")
	}
}

func TestButton_Setters(t *testing.T) {
	m := New("Play", WithIcon("▶", ""))
	m.SetText("")
	if m.Text != "Play" {
		t.Error("empty text must be ignored")
	}
	m.SetText("Pause")
	m.ToggleIcon("▶", "⏸")
	if m.Icon != "⏸" {
		t.Errorf("icon %q", m.Icon)
	}
	m.ToggleIcon("▶", "⏸")
	if m.Icon != "▶" {
		t.Errorf("icon %q", m.Icon)
	}

	m.ToggleColor("#2196F3", "#F44336")
	if m.Background != "#F44336" {
		t.Errorf("background %q", m.Background)
	}
	m.ToggleTextColor("#FFFFFF", "#000000")
	if m.TextColor != "#000000" {
		t.Errorf("text colour %q", m.TextColor)
	}
	if !strings.Contains(ansi.Strip(m.View()), "▶ Pause") {
		t.Errorf("view %q", ansi.Strip(m.View()))
	}
}

func TestButton_GlowDecays(t *testing.T) {
	m := New("Ok")
	m.Glow("#FFEB3B", 300*time.Millisecond)
	if !m.Glowing() {
		t.Fatal("expected glow")
	}
	start := m.background()
	if start == m.Background {
		t.Fatal("glow did not tint the button")
	}
	for i := 0; m.Glowing() && i < 200; i++ {
		m.Update(m.glow.Frame())
	}
	if m.Glowing() {
		t.Fatal("glow never settled")
	}
	if m.background() != m.Background {
		t.Errorf("background %q after glow", m.background())
	}
}
