// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

type keys []key.Binding

func (k keys) ShortHelp() []key.Binding  { return k }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func binding(k, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
}

func TestFooter_MergesBaseKeyMap(t *testing.T) {
	f := New(keys{binding("ctrl+c", "exit")})
	f.Update(tea.WindowSizeMsg{Width: 60, Height: 3})

	if view := ansi.Strip(f.View()); !strings.Contains(view, "exit") {
		t.Fatalf("base keys missing before any announcement:\n%s", view)
	}

	f.Update(util.AnnounceKeyMapMsg{KeyMap: keys{binding("enter", "select")}})
	view := ansi.Strip(f.View())
	for _, want := range []string{"select", "exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("missing %q in:\n%s", want, view)
		}
	}
}

func TestFooter_SizeGrowsWhenExpanded(t *testing.T) {
	f := New(keys{binding("ctrl+c", "exit"), binding("?", "help")})
	f.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	short := SizeConfig.Calculate(f, 10, 10)
	if short != 2 {
		t.Fatalf("short help height %d, want 2", short)
	}

	f.ToggleExpanded()
	if !f.Expanded() {
		t.Fatal("not expanded")
	}
	if expanded := SizeConfig.Calculate(f, 10, 10); expanded <= short {
		t.Errorf("expanded height %d not above %d", expanded, short)
	}
	if got := SizeConfig.Calculate(f, 1, 10); got != 1 {
		t.Errorf("height %d exceeds remaining space", got)
	}
}
