// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import "testing"

func TestHandler(t *testing.T) {
	h := NewHandler("Widgetkit", " - ")
	if h.Title() != "Widgetkit" {
		t.Fatalf("base title: %q", h.Title())
	}

	cmd, ok := h.Handle(Set("Slider")())
	if !ok || cmd == nil {
		t.Fatal("expected title change")
	}
	if h.Title() != "Widgetkit - Slider" {
		t.Errorf("got %q", h.Title())
	}

	if cmd, ok := h.Handle(Set("Slider")()); !ok || cmd != nil {
		t.Error("unchanged title should not re-render")
	}
	if _, ok := h.Handle("other"); ok {
		t.Error("foreign message consumed")
	}

	h.Handle(Set("")())
	if h.Title() != "Widgetkit" {
		t.Errorf("reset title: %q", h.Title())
	}
}
