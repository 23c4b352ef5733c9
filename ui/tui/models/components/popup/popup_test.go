// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

func TestPlace(t *testing.T) {
	bg := "aaaaa\nbbbbb\nccccc"
	got := Place(bg, "XY", 1, 1)
	want := "aaaaa\nbXYbb\nccccc"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	// clipped at the right and bottom edge
	got = Place(bg, "XYZ\nQRS", 3, 2)
	if got != "aaaaa\nbbbbb\ncccXY" {
		t.Fatalf("unexpected clipped result %q", got)
	}
	// short background lines are padded
	got = Place("a\nbbbbb", "X", 3, 0)
	if got != "a  X\nbbbbb" {
		t.Fatalf("unexpected padded result %q", got)
	}
}

func TestPlaceCenter(t *testing.T) {
	got := PlaceCenter("....\n....\n....", "X")
	if strings.Split(got, "\n")[1] != ".X.." {
		t.Fatalf("unexpected %q", got)
	}
}

type fake struct {
	name     string
	keys     int
	ticks    int
	focused  bool
	unmounts int
}

type tick struct{}

func (f *fake) Init() tea.Cmd { return nil }
func (f *fake) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case tea.KeyMsg:
		f.keys++
	case tick:
		f.ticks++
	}
	return nil
}
func (f *fake) View() string                  { return f.name }
func (f *fake) Focus() (tea.Cmd, help.KeyMap) { f.focused = true; return nil, nil }
func (f *fake) Blur()                         { f.focused = false }
func (f *fake) Unmount()                      { f.unmounts++ }

func TestInjector(t *testing.T) {
	child := &fake{name: strings.Repeat(strings.Repeat("#", 20)+"\n", 5) + strings.Repeat("#", 20)}
	dialog := &fake{name: "dialog"}
	inj := NewInjector(util.ModelPointer(child))
	inj.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	inj.Focus()

	var closed bool
	inj.Update(OpenWithCallback(util.ModelPointer(dialog), func(*util.Model) tea.Cmd {
		closed = true
		return nil
	})())
	if !inj.Open() || child.focused || !dialog.focused {
		t.Fatal("popup should take focus")
	}
	if !strings.Contains(ansi.Strip(inj.View()), "dialog") {
		t.Error("popup not drawn")
	}

	inj.Update(tea.KeyMsg{})
	inj.Update(tick{})
	if dialog.keys != 1 || child.keys != 0 {
		t.Error("keys must only reach the popup")
	}
	if dialog.ticks != 1 || child.ticks != 1 {
		t.Error("other messages reach both")
	}

	inj.Update(Close()())
	if inj.Open() || !closed || !child.focused || dialog.unmounts != 1 {
		t.Fatal("close did not restore the child")
	}
}
