// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every key passed to i18n.T exists in the primary
// locale and that every other locale carries the same keys.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var keyCall = regexp2.MustCompile(`(?<=i18n\.T\(")[^"]+(?=")`, regexp2.None)

type report struct {
	// used in code, absent from the primary locale
	Undefined []string
	// present in the primary locale, absent from another one
	Missing map[string][]string
	// present in the primary locale, never used
	Orphaned []string
}

func (r report) Failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	r, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	printReport(r)
	if r.Failed() {
		os.Exit(1)
	}
}

func printReport(r report) {
	for _, k := range r.Undefined {
		fmt.Printf("undefined: %s\n", k)
	}
	for _, file := range sortedKeys(r.Missing) {
		for _, k := range r.Missing[file] {
			fmt.Printf("missing in %s: %s\n", file, k)
		}
	}
	for _, k := range r.Orphaned {
		fmt.Printf("orphaned: %s\n", k)
	}
	if !r.Failed() {
		fmt.Println("all locales consistent")
	}
}

func lint(root, locales, primary string) (report, error) {
	r := report{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scan sources: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(locales, primary))
	if err != nil {
		return r, fmt.Errorf("load primary locale: %w", err)
	}

	r.Undefined = difference(used, primaryKeys)
	r.Orphaned = difference(primaryKeys, used)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("load %s: %w", file, err)
		}
		if missing := difference(primaryKeys, keys); len(missing) > 0 {
			r.Missing[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

// findUsedKeys collects the literal ids of i18n.T calls in non-test sources.
// Hidden, underscore-prefixed and tools directories are skipped.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		m, err := keyCall.FindStringMatch(string(content))
		for ; m != nil && err == nil; m, err = keyCall.FindNextMatch(m) {
			keys[m.String()] = struct{}{}
		}
		return err
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns its dot joined leaf keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			if prefix != "" {
				k = prefix + "." + k
			}
			flattenYAML(k, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
