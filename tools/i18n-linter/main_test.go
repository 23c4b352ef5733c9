// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := map[string]struct{}{}
	flattenYAML("", map[string]any{
		"top":   map[string]any{"sub": "value", "deep": map[string]any{"leaf": "x"}},
		"other": "v",
	}, keys)
	for _, want := range []string{"top.sub", "top.deep.leaf", "other"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("missing %s in %v", want, keys)
		}
	}
	if len(keys) != 3 {
		t.Errorf("got %d keys, want 3", len(keys))
	}
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "widget", "w.go"), `package widget
func f() {
	_ = i18n.T("stepper.next")
	_ = i18n.T("stepper.back", 1)
	_ = i18n.T("copy.done")
}`)
	// test files, tools and underscore dirs are ignored
	write(t, filepath.Join(dir, "widget", "w_test.go"), `_ = i18n.T("only.in.tests")`)
	write(t, filepath.Join(dir, "tools", "x.go"), `_ = i18n.T("only.in.tools")`)
	write(t, filepath.Join(dir, "_scratch", "x.go"), `_ = i18n.T("only.in.scratch")`)

	locales := filepath.Join(dir, "locales")
	write(t, filepath.Join(locales, "en.yaml"), "stepper:\n  next: Next\n  back: Back\n  unused: x\n")
	write(t, filepath.Join(locales, "es.yaml"), "stepper:\n  next: Siguiente\n")

	r, err := lint(dir, locales, "en.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(r.Undefined, []string{"copy.done"}) {
		t.Errorf("undefined %v", r.Undefined)
	}
	if !slices.Equal(r.Orphaned, []string{"stepper.unused"}) {
		t.Errorf("orphaned %v", r.Orphaned)
	}
	if !slices.Equal(r.Missing["es.yaml"], []string{"stepper.back", "stepper.unused"}) {
		t.Errorf("missing %v", r.Missing)
	}
	if !r.Failed() {
		t.Error("report should fail")
	}
}

func TestLint_Consistent(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.go"), `_ = i18n.T("a.b")`)
	locales := filepath.Join(dir, "locales")
	write(t, filepath.Join(locales, "en.yaml"), "a:\n  b: x\n")
	write(t, filepath.Join(locales, "es.yaml"), "a:\n  b: y\n")

	r, err := lint(dir, locales, "en.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if r.Failed() || len(r.Orphaned) > 0 {
		t.Fatalf("unexpected findings %+v", r)
	}

	if _, err := lint(dir, filepath.Join(dir, "nope"), "en.yaml"); err == nil {
		t.Fatal("missing primary locale accepted")
	}
}
