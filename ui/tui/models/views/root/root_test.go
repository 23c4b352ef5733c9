// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/widgetkit/ui/tui/models/components/menu"
	"github.com/toeirei/widgetkit/ui/tui/models/views/demos"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/stepper"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/textfader"
)

func newGallery(t *testing.T, env demos.Env) *Model {
	t.Helper()
	m := New(env)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	t.Cleanup(m.Unmount)
	return m
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestGallery_MenuListsEveryDemo(t *testing.T) {
	m := newGallery(t, demos.Env{})
	view := ansi.Strip(m.View())
	for _, e := range demos.All() {
		if !strings.Contains(view, e.Name) {
			t.Errorf("menu misses %q", e.Name)
		}
	}
	if m.DemoFocused() {
		t.Fatal("demo focused before anything was opened")
	}
}

func TestGallery_EnterOpensSelectedDemo(t *testing.T) {
	m := newGallery(t, demos.Env{})

	var selected *menu.ItemSelected
	for _, msg := range collect(m.Update(tea.KeyMsg{Type: tea.KeyEnter})) {
		if sel, ok := msg.(menu.ItemSelected); ok {
			selected = &sel
		}
	}
	if selected == nil || selected.Id != "typewriter" {
		t.Fatalf("selected %v, want typewriter", selected)
	}

	m.Update(*selected)
	if m.Active() != "typewriter" || !m.DemoFocused() {
		t.Fatalf("active %q focused %v", m.Active(), m.DemoFocused())
	}
}

func TestGallery_KeysOnlyReachFocusedColumn(t *testing.T) {
	m := newGallery(t, demos.Env{})
	m.Open("button")
	before, _ := m.menu.Active()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if after, _ := m.menu.Active(); after.Id != before.Id {
		t.Fatalf("menu moved to %q while the demo had focus", after.Id)
	}
	if !strings.Contains(ansi.Strip(m.View()), "Glow") {
		t.Fatal("button demo not shown")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.DemoFocused() {
		t.Fatal("ctrl+o did not return to the menu")
	}
	if m.keys.Menu.Enabled() {
		t.Error("menu key still advertised on the menu")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if after, _ := m.menu.Active(); after.Id == before.Id {
		t.Fatal("menu ignored keys after regaining focus")
	}
}

func TestGallery_StepperCloseReturnsToMenu(t *testing.T) {
	m := newGallery(t, demos.Env{})
	m.Open("stepper")

	m.Update(stepper.ClosedMsg{})
	if m.Active() != "" || m.DemoFocused() {
		t.Fatalf("active %q focused %v", m.Active(), m.DemoFocused())
	}
	if _, ok := m.router.Active().(*textfader.Model); !ok {
		t.Fatalf("router shows %T, want the placeholder", m.router.Active())
	}
}

func TestGallery_FailedDemoRaisesToast(t *testing.T) {
	m := newGallery(t, demos.Env{Frames: []string{filepath.Join(t.TempDir(), "missing.png")}})

	cmd := m.Open("slider")
	if m.Active() != "" {
		t.Fatal("failed demo became active")
	}
	for _, msg := range collect(cmd) {
		m.Update(msg)
	}
	toasts := m.layer.Toasts()
	if len(toasts) != 1 || !strings.Contains(toasts[0].Message, "Image Slider") {
		t.Fatalf("toasts %+v", toasts)
	}

	if m.Open("nope") != nil {
		t.Error("unknown demo produced a command")
	}
}

func TestGallery_HelpToggle(t *testing.T) {
	m := newGallery(t, demos.Env{})
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if !m.footer.Expanded() {
		t.Fatal("f1 did not expand the help")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if m.footer.Expanded() {
		t.Fatal("f1 did not collapse the help")
	}
}

func TestSingle(t *testing.T) {
	entry, _ := demos.Lookup("stepper")
	s, err := NewSingle(demos.Env{}, entry)
	if err != nil {
		t.Fatal(err)
	}
	s.Init()
	s.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	if !strings.Contains(ansi.Strip(s.View()), "Welcome") {
		t.Fatal("stepper demo not shown")
	}

	cmd := s.Update(stepper.ClosedMsg{})
	if cmd == nil {
		t.Fatal("closing the stepper did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit")
	}

	slider, _ := demos.Lookup("slider")
	if _, err := NewSingle(demos.Env{Frames: []string{"missing.png"}}, slider); err == nil {
		t.Fatal("broken demo accepted")
	}
}
