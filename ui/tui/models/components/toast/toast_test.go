// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package toast

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

type blank struct{ updates int }

func (b *blank) Init() tea.Cmd          { return nil }
func (b *blank) Update(tea.Msg) tea.Cmd { b.updates++; return nil }
func (b *blank) View() string {
	return strings.Repeat(strings.Repeat(".", 40)+"\n", 9) + strings.Repeat(".", 40)
}
func (b *blank) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (b *blank) Blur()                         {}

func TestLayer_ShowAndDismiss(t *testing.T) {
	child := &blank{}
	l := NewLayer(util.ModelPointer(child))

	cmd := l.Update(Show(Success, "Copied")())
	if cmd == nil {
		t.Fatal("expected dismiss timer")
	}
	if len(l.Toasts()) != 1 {
		t.Fatalf("expected one toast, got %d", len(l.Toasts()))
	}
	if !strings.Contains(l.View(), "Copied") {
		t.Error("toast not drawn")
	}

	l.Update(dismissMsg{id: l.Toasts()[0].ID})
	if len(l.Toasts()) != 0 {
		t.Error("toast not dismissed")
	}
	if child.updates != 0 {
		t.Error("toast messages must not reach the child")
	}

	l.Update(tea.KeyMsg{})
	if child.updates != 1 {
		t.Error("other messages must reach the child")
	}
}

func TestLayer_Overflow(t *testing.T) {
	l := NewLayer(util.ModelPointer(&blank{}))
	for _, m := range []string{"a", "b", "c", "d"} {
		l.Update(Show(Info, m)())
	}
	got := l.Toasts()
	if len(got) != DefaultMax || got[0].Message != "b" {
		t.Fatalf("unexpected toasts %+v", got)
	}
}
