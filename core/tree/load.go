// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package tree

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a list of specs.
func LoadYAML(r io.Reader) ([]Spec, error) {
	var specs []Spec
	if err := yaml.NewDecoder(r).Decode(&specs); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return specs, nil
}

func LoadYAMLFile(file string) ([]Spec, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open tree file: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// FromDir builds a spec for root and its entries down to maxDepth levels
// (0 = unlimited). Hidden entries are skipped. Directories are tagged
// "folder" and accept drops; files are tagged with their extension.
func FromDir(fsys fs.FS, root string, maxDepth int) (Spec, error) {
	info, err := fs.Stat(fsys, root)
	if err != nil {
		return Spec{}, fmt.Errorf("stat %s: %w", root, err)
	}
	return fromEntry(fsys, root, info, 1, maxDepth)
}

func fromEntry(fsys fs.FS, p string, info fs.FileInfo, depth, maxDepth int) (Spec, error) {
	name := info.Name()
	spec := Spec{Key: p, Name: name, Draggable: p != "."}
	if !info.IsDir() {
		if ext := strings.TrimPrefix(path.Ext(name), "."); ext != "" {
			spec.Tags = []string{strings.ToLower(ext)}
		}
		return spec, nil
	}
	spec.Tags = []string{"folder"}
	spec.Droppable = true
	if maxDepth > 0 && depth >= maxDepth {
		return spec, nil
	}

	entries, err := fs.ReadDir(fsys, p)
	if err != nil {
		return spec, fmt.Errorf("read %s: %w", p, err)
	}
	// folders first, then by name
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ei, err := e.Info()
		if err != nil {
			return spec, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		child, err := fromEntry(fsys, path.Join(p, e.Name()), ei, depth+1, maxDepth)
		if err != nil {
			return spec, err
		}
		spec.Children = append(spec.Children, child)
	}
	return spec, nil
}
