// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package textbubble

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const sample = "# Title\nSome **bold** text\n---\n```go\nx := 1\n```\n- item"

func finish(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; m.Running() && i < 10_000; i++ {
		m.Update(m.loop.Frame())
	}
	if m.Running() {
		t.Fatal("bubble never finished typing")
	}
}

func TestBubble_TypesEverything(t *testing.T) {
	m := New(WithTexts(sample), WithWidth(40))
	m.Init()
	finish(t, m)

	view := ansi.Strip(m.View())
	for _, want := range []string{"Title", "bold", "───", "x := 1", "• item"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "**") || strings.Contains(view, "```") {
		t.Errorf("markup leaked into view:\n%s", view)
	}
}

func TestBubble_RevealsOneCharacterPerFrame(t *testing.T) {
	m := New(WithTexts("abc"))
	m.Init()
	m.Update(m.loop.Frame())
	if got := ansi.Strip(strings.Join(m.lines(), "\n")); got != "a" {
		t.Fatalf("after one frame got %q", got)
	}
	m.Update(m.loop.Frame())
	if got := ansi.Strip(strings.Join(m.lines(), "\n")); got != "ab" {
		t.Fatalf("after two frames got %q", got)
	}
}

func TestBubble_NextTextReplacesPrevious(t *testing.T) {
	m := New(WithTexts("first", "second"))
	m.Init()
	finish(t, m)
	view := ansi.Strip(m.View())
	if strings.Contains(view, "first") || !strings.Contains(view, "second") {
		t.Fatalf("view %q", view)
	}
}

func TestBubble_Copy(t *testing.T) {
	var written, copied string
	m := New(
		WithTexts("# Hi", "use `go test` **now**"),
		WithClipboard(func(s string) error { written = s; return nil }),
		WithOnCopied(func(clean string) tea.Cmd {
			copied = clean
			return nil
		}),
	)
	m.Focus()
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if cmd == nil {
		t.Fatal("expected toast command")
	}
	want := " Hi\nuse go test now"
	if written != want {
		t.Errorf("clipboard got %q, want %q", written, want)
	}
	if copied != want {
		t.Errorf("callback got %q, want %q", copied, want)
	}
}

func TestBubble_CopyFailureIsNotFatal(t *testing.T) {
	called := false
	m := New(
		WithTexts("x"),
		WithClipboard(func(string) error { return errors.New("no clipboard") }),
		WithOnCopied(func(string) tea.Cmd { called = true; return nil }),
	)
	if m.Copy() == nil {
		t.Fatal("expected error toast")
	}
	if called {
		t.Error("on-copied ran although the copy failed")
	}
}

func TestBubble_CopyNeedsFocus(t *testing.T) {
	written := false
	m := New(WithTexts("x"), WithClipboard(func(string) error { written = true; return nil }))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if written {
		t.Fatal("unfocused bubble reacted to copy key")
	}
}
