// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestClampAndWrap(t *testing.T) {
	if Clamp(0, -3, 5) != 0 || Clamp(0, 9, 5) != 5 || Clamp(0, 3, 5) != 3 {
		t.Fatal("Clamp")
	}
	cases := []struct{ i, n, want int }{
		{0, 3, 0}, {4, 3, 1}, {-1, 3, 2}, {-4, 3, 2}, {5, 0, 0},
	}
	for _, c := range cases {
		if got := Wrap(c.i, c.n); got != c.want {
			t.Errorf("Wrap(%d,%d) = %d, want %d", c.i, c.n, got, c.want)
		}
	}
}

func TestSize(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatal("non size message handled")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 10, Height: 4}) || s.Width != 10 || s.Height != 4 {
		t.Fatalf("unexpected size %+v", s)
	}
	if got := s.Shrink(12, 1); got.Width != 0 || got.Height != 3 {
		t.Errorf("Shrink = %+v", got)
	}
}

type keys struct{ b key.Binding }

func (k keys) ShortHelp() []key.Binding  { return []key.Binding{k.b} }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.b}} }

func TestMergeKeyMaps(t *testing.T) {
	a := keys{key.NewBinding(key.WithKeys("a"))}
	b := keys{key.NewBinding(key.WithKeys("b"))}
	m := MergeKeyMaps(a, nil, b)
	if len(m.ShortHelp()) != 2 || len(m.FullHelp()) != 2 {
		t.Fatalf("unexpected merge result %v", m.ShortHelp())
	}
}

type fakeModel struct {
	inits, unmounts, updates int
}

func (f *fakeModel) Init() tea.Cmd                 { f.inits++; return nil }
func (f *fakeModel) Update(tea.Msg) tea.Cmd        { f.updates++; return nil }
func (f *fakeModel) View() string                  { return "fake" }
func (f *fakeModel) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (f *fakeModel) Blur()                         {}
func (f *fakeModel) Unmount()                      { f.unmounts++ }

func TestProgram(t *testing.T) {
	f := &fakeModel{}
	p := Program(f)
	p.Init()
	if f.inits != 1 {
		t.Fatal("Init not forwarded")
	}
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if f.updates != 1 {
		t.Fatal("Update not forwarded")
	}
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if f.unmounts != 1 {
		t.Fatal("ctrl+c did not unmount")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c did not quit")
	}
	if p.View() != "fake" {
		t.Error("View not forwarded")
	}
}
