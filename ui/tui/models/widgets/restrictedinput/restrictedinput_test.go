// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package restrictedinput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/widgetkit/core/validate"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestEmail(t *testing.T) {
	m := New(validate.Builtin("email"), nil)
	m.Focus()

	m.SetValue("  a@b.com ")
	cmd := m.Update(enter)
	if cmd == nil {
		t.Fatal("submit returned no command")
	}
	msg, ok := cmd().(ValidateMsg)
	if !ok {
		t.Fatalf("got %T, want ValidateMsg", cmd())
	}
	if !msg.Valid || msg.Value != "a@b.com" || msg.PatternName != "email" || msg.Name != "validate" {
		t.Fatalf("unexpected result %+v", msg)
	}
	if m.Status() != StatusValid {
		t.Errorf("status %v, want valid", m.Status())
	}

	m.SetValue("abc")
	msg = m.Validate()
	if msg.Valid || msg.Message == "" {
		t.Fatalf("abc accepted or without message: %+v", msg)
	}
	if m.Status() != StatusInvalid {
		t.Errorf("status %v, want invalid", m.Status())
	}
	if !strings.Contains(ansi.Strip(m.View()), m.Message()) {
		t.Error("error text not rendered")
	}
}

func TestEmptyValueShowsNoError(t *testing.T) {
	m := New(validate.Builtin("email"), nil)
	m.SetValue("   ")
	m.Validate()
	if m.Status() != StatusEmpty || m.Message() != "" {
		t.Fatalf("status %v message %q", m.Status(), m.Message())
	}
}

func TestCustomValidatorAndCallback(t *testing.T) {
	reg := validate.NewRegistry()
	if err := reg.Register("even", validate.Func{
		Fn:      func(s string) bool { return len(s)%2 == 0 },
		Message: "odd length",
	}); err != nil {
		t.Fatal(err)
	}

	var got []ValidateMsg
	m := New(validate.Parse("even", reg), reg, WithOnValidate(func(msg ValidateMsg) tea.Cmd {
		got = append(got, msg)
		return nil
	}))
	m.SetValue("abc")
	m.Submit()
	m.SetValue("abcd")
	m.Submit()

	if len(got) != 2 || got[0].Valid || !got[1].Valid {
		t.Fatalf("callback results %+v", got)
	}
	if got[0].Message != "odd length" || got[0].PatternName != "even" {
		t.Errorf("first result %+v", got[0])
	}
}

func TestRegistriesAreIsolated(t *testing.T) {
	a := validate.NewRegistry()
	_ = a.Register("yes", validate.Func{Fn: func(string) bool { return true }})
	b := validate.NewRegistry()

	withA := New(validate.Custom("yes"), a, WithValue("x"))
	withB := New(validate.Custom("yes"), b, WithValue("x"))

	if !withA.Validate().Valid {
		t.Error("input with registry a rejected value")
	}
	if withB.Validate().Valid {
		t.Error("input with registry b saw a validator it never registered")
	}
	if withB.Status() != StatusInvalid {
		t.Errorf("unknown pattern status %v", withB.Status())
	}
	if withB.Message() != "Invalid input (yes)" {
		t.Errorf("unknown pattern message %q", withB.Message())
	}
}

func TestUnresolvedPatternMessage(t *testing.T) {
	cases := []struct {
		pattern validate.Pattern
		want    string
	}{
		{validate.Raw("("), "Invalid input (()"},
		{validate.Custom("zip"), "Invalid input (zip)"},
		{validate.Builtin("nope"), "Invalid input (nope)"},
	}
	for _, c := range cases {
		m := New(c.pattern, nil, WithValue("12345"))
		if r := m.Validate(); r.Valid {
			t.Errorf("%s accepted a value", c.pattern.Name())
		}
		if m.Status() != StatusInvalid || m.Message() != c.want {
			t.Errorf("%s: status %v message %q, want %q", c.pattern.Name(), m.Status(), m.Message(), c.want)
		}
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := New(validate.Builtin("number"), nil)
	if cmd := m.Update(enter); cmd != nil {
		t.Fatal("blurred input submitted")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")})
	if m.Value() != "" {
		t.Fatalf("blurred input took text %q", m.Value())
	}
}
