// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package oauth

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestProviders_DefaultLabels(t *testing.T) {
	if len(Providers) != 7 {
		t.Fatalf("expected 7 providers, got %d", len(Providers))
	}
	for _, p := range Providers {
		m := New(p)
		if !strings.HasSuffix(m.Label, "Account") {
			t.Errorf("%v: label %q", p, m.Label)
		}
		if !strings.Contains(ansi.Strip(m.View()), m.Label) {
			t.Errorf("%v: view misses label", p)
		}
	}
	if New(Google).Label != "Google Account" {
		t.Error("google label")
	}
}

func TestClick_RunsCallbackWhenFocused(t *testing.T) {
	var got []Provider
	m := New(GitHub, WithOnClick(func(p Provider) tea.Cmd {
		got = append(got, p)
		return nil
	}))
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m.Update(enter)
	if len(got) != 0 {
		t.Fatal("unfocused button clicked")
	}
	m.Focus()
	if m.Update(enter) == nil {
		t.Fatal("expected sign-in command")
	}
	if len(got) != 1 || got[0] != GitHub {
		t.Fatalf("callback got %v", got)
	}
}

func TestClick_Message(t *testing.T) {
	m := New(Apple)
	msg := m.Click()()
	if req, ok := msg.(SignInRequestedMsg); !ok || req.Provider != Apple {
		t.Fatalf("got %#v", msg)
	}
}

func TestVariants(t *testing.T) {
	material := New(Amazon)
	cupertino := New(Amazon, WithVariant(Cupertino))
	if material.background() != Amazon.Color() {
		t.Errorf("material background %q", material.background())
	}
	if cupertino.background() != cupertinoGrey {
		t.Errorf("cupertino background %q", cupertino.background())
	}

	before := ansi.StringWidth(strings.Split(cupertino.View(), "\n")[0])
	cupertino.Focus()
	after := ansi.StringWidth(strings.Split(cupertino.View(), "\n")[0])
	if after <= before {
		t.Errorf("focused cupertino button should widen: %d -> %d", before, after)
	}
}
