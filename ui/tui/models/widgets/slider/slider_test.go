// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package slider

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newSlider(t *testing.T, opts ...NewOpt) *Model {
	t.Helper()
	m, err := New([]string{"AAAA\nAAAA", "BBBB\nBBBB", "CCCC\nCCCC"}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	m.Init()
	return m
}

func TestNew_NoFrames(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("got %v", err)
	}
}

func TestSetCurrent_Wraps(t *testing.T) {
	m := newSlider(t)
	for _, tt := range []struct{ in, want int }{
		{1, 1}, {3, 0}, {4, 1}, {-1, 2}, {-4, 2},
	} {
		m.SetCurrent(tt.in)
		if m.Current() != tt.want {
			t.Errorf("SetCurrent(%d) -> %d, want %d", tt.in, m.Current(), tt.want)
		}
	}
}

func TestParseTransition(t *testing.T) {
	for in, want := range map[string]Transition{
		"FADE":     Fade,
		"scale":    Scale,
		"WIPE":     Wipe,
		"ROTATION": Wipe,
		"spin":     Fade,
	} {
		if got := ParseTransition(in); got != want {
			t.Errorf("ParseTransition(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTransition_RunsToCompletion(t *testing.T) {
	m := newSlider(t, WithTransition(Wipe))
	m.Next()
	if !m.Transitioning() {
		t.Fatal("expected transition")
	}
	for i := 0; i < transitionFrames; i++ {
		m.Update(m.trans.Frame())
	}
	if m.Transitioning() {
		t.Fatal("transition did not finish")
	}
	if !strings.Contains(m.View(), "BBBB") {
		t.Errorf("view %q", m.View())
	}
}

func TestWipe_Halfway(t *testing.T) {
	got := Wipe.blend("AAAA\nAAAA", "BBBB\nBBBB", 0.5, "", "")
	if got != "BBAA\nBBAA" {
		t.Fatalf("got %q", got)
	}
}

func TestScale_Grows(t *testing.T) {
	got := Scale.blend("AAAA\nAAAA", "BBBB\nBBBB", 0.5, "", "")
	if got != " BB \n    " && got != "    \n BB " {
		t.Fatalf("got %q", got)
	}
}

func TestFade_ShowsNextFramePlain(t *testing.T) {
	got := ansi.Strip(Fade.blend("AAAA", "BBBB", 0.3, "#ffffff", "#000000"))
	if got != "BBBB" {
		t.Fatalf("got %q", got)
	}
}

func TestAutoPlay(t *testing.T) {
	m := newSlider(t, WithAutoPlay(true))
	m.Update(m.auto.Frame())
	m.Update(m.auto.Frame())
	if m.Current() != 2 {
		t.Fatalf("current %d after two auto frames", m.Current())
	}
	frame := m.auto.Frame()
	m.Unmount()
	if m.Update(frame) != nil || m.Current() != 2 {
		t.Fatal("auto-play continued after unmount")
	}
}

func TestKeys(t *testing.T) {
	m := newSlider(t)
	right := tea.KeyMsg{Type: tea.KeyRight}
	m.Update(right)
	if m.Current() != 0 {
		t.Fatal("unfocused slider handled keys")
	}

	m.Focus()
	m.Update(right)
	if m.Current() != 1 {
		t.Fatalf("right: %d", m.Current())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if m.Current() != 2 {
		t.Fatalf("jump: %d", m.Current())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	if m.Current() != 2 {
		t.Fatalf("jump out of range moved to %d", m.Current())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Current() != 1 {
		t.Fatalf("left: %d", m.Current())
	}
}

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestImageFrame(t *testing.T) {
	frame := ImageFrame(testImage(), 4)
	lines := strings.Split(frame, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if ansi.StringWidth(lines[0]) != 4 {
		t.Errorf("row width %d", ansi.StringWidth(lines[0]))
	}
	if ImageFrame(testImage(), 0) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestLoadFrames(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "art.txt")
	if err := os.WriteFile(txt, []byte("/\\_/\\\n( o.o )\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	pic := filepath.Join(dir, "red.png")
	f, err := os.Create(pic)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	frames, err := LoadFrames([]string{txt, pic}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if frames[0] != "/\\_/\\\n( o.o )" {
		t.Errorf("text frame %q", frames[0])
	}
	if !strings.Contains(frames[1], "▀") {
		t.Errorf("image frame %q", frames[1])
	}

	if _, err := LoadFrames([]string{filepath.Join(dir, "missing.png")}, 4); err == nil {
		t.Error("expected error for missing file")
	}
}
