// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package demos

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/widgetkit/core/tree"
	"github.com/toeirei/widgetkit/core/validate"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/restrictedinput"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

func TestEveryDemoBuilds(t *testing.T) {
	for _, e := range All() {
		t.Run(e.ID, func(t *testing.T) {
			m, err := e.New(Env{})
			if err != nil {
				t.Fatal(err)
			}
			m.Init()
			m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
			if view := ansi.Strip(m.View()); !strings.Contains(view, e.Name) {
				t.Errorf("view misses title %q:\n%s", e.Name, view)
			}
			util.TryUnmount(m)
		})
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("treeview"); !ok {
		t.Fatal("treeview demo missing")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("unknown id found")
	}
	if len(IDs()) != len(All()) {
		t.Fatal("ids and entries differ")
	}
}

func TestTreeDemoUsesGivenForest(t *testing.T) {
	m, err := TreeView(Env{Tree: []tree.Spec{{Name: "custom-root"}}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ansi.Strip(m.View()), "custom-root") {
		t.Fatal("custom forest not shown")
	}
}

func TestSliderDemoRejectsMissingFrames(t *testing.T) {
	if _, err := Slider(Env{Frames: []string{filepath.Join(t.TempDir(), "missing.png")}}); err == nil {
		t.Fatal("missing frame file accepted")
	}
}

func TestSliderDemoLoadsTextFrames(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.txt", "b.txt"} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("frame "+name), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	m, err := Slider(Env{Frames: paths})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ansi.Strip(m.View()), "frame a.txt") {
		t.Fatal("first text frame not shown")
	}
}

func TestPage_TabCyclesInteractiveItems(t *testing.T) {
	a := restrictedinput.New(validate.Builtin("letters"), nil)
	b := restrictedinput.New(validate.Builtin("letters"), nil)
	p := newPage("p", "", show(newPage("static", "")), interact(a), interact(b))
	p.Focus()
	if p.Active() != 1 {
		t.Fatalf("first interactive item %d, want 1", p.Active())
	}

	p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if p.Active() != 2 {
		t.Fatalf("after tab %d, want 2", p.Active())
	}
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if a.Value() != "" || b.Value() != "x" {
		t.Fatalf("keys reached the wrong input: %q %q", a.Value(), b.Value())
	}

	p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if p.Active() != 1 {
		t.Fatalf("tab did not wrap: %d", p.Active())
	}
}
