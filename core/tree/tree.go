// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package tree

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotFound     = errors.New("node not found")
	ErrCycle        = errors.New("node cannot be moved into its own subtree")
	ErrNotDroppable = errors.New("node cannot be dropped there")
)

type Tree struct {
	nodes []Node
	roots []NodeID
	free  []NodeID
	count int
}

func New() *Tree {
	return &Tree{}
}

// Build creates a forest from specs, in order.
func Build(specs []Spec) *Tree {
	t := New()
	for _, s := range specs {
		// parent None never fails
		_, _ = t.Add(None, s, -1)
	}
	return t
}

func (t *Tree) Len() int { return t.count }

func (t *Tree) Roots() []NodeID { return slices.Clone(t.roots) }

func (t *Tree) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].alive
}

// Get returns the node for id. Structural fields can only be changed through
// Tree methods; the exported fields may be edited in place.
func (t *Tree) Get(id NodeID) (*Node, bool) {
	if !t.Contains(id) {
		return nil, false
	}
	return &t.nodes[id], true
}

func (t *Tree) Children(id NodeID) []NodeID {
	if id == None {
		return t.Roots()
	}
	if !t.Contains(id) {
		return nil
	}
	return slices.Clone(t.nodes[id].children)
}

func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Contains(id) {
		return None
	}
	return t.nodes[id].parent
}

// siblings returns a pointer to the slice holding id among its siblings.
func (t *Tree) siblings(parent NodeID) *[]NodeID {
	if parent == None {
		return &t.roots
	}
	return &t.nodes[parent].children
}

func (t *Tree) alloc(n Node) NodeID {
	t.count++
	if l := len(t.free); l > 0 {
		id := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Add inserts spec and its subtree under parent (None for a root) at index.
// An index outside the children range appends. Adding below a node expands
// it.
func (t *Tree) Add(parent NodeID, spec Spec, index int) (NodeID, error) {
	if parent != None && !t.Contains(parent) {
		return None, fmt.Errorf("add %q: %w", spec.Name, ErrNotFound)
	}
	id := t.alloc(spec.node())
	t.link(id, parent, index)
	if parent != None {
		t.nodes[parent].Expanded = true
	}
	t.addChildren(id, spec.Children)
	return id, nil
}

func (t *Tree) addChildren(parent NodeID, specs []Spec) {
	for _, s := range specs {
		id := t.alloc(s.node())
		t.link(id, parent, -1)
		t.addChildren(id, s.Children)
	}
}

func (t *Tree) link(id, parent NodeID, index int) {
	sib := t.siblings(parent)
	if index < 0 || index > len(*sib) {
		index = len(*sib)
	}
	*sib = slices.Insert(*sib, index, id)
	t.nodes[id].parent = parent
}

func (t *Tree) unlink(id NodeID) {
	sib := t.siblings(t.nodes[id].parent)
	if i := slices.Index(*sib, id); i >= 0 {
		*sib = slices.Delete(*sib, i, i+1)
	}
	t.nodes[id].parent = None
}

// Remove deletes id and its whole subtree.
func (t *Tree) Remove(id NodeID) error {
	if !t.Contains(id) {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	t.unlink(id)
	t.release(id)
	return nil
}

func (t *Tree) release(id NodeID) {
	for _, c := range t.nodes[id].children {
		t.release(c)
	}
	t.nodes[id] = Node{parent: None}
	t.free = append(t.free, id)
	t.count--
}

// IsAncestor reports whether a is a strict ancestor of b.
func (t *Tree) IsAncestor(a, b NodeID) bool {
	if !t.Contains(a) || !t.Contains(b) {
		return false
	}
	for p := t.nodes[b].parent; p != None; p = t.nodes[p].parent {
		if p == a {
			return true
		}
	}
	return false
}

// Move detaches id from its parent and appends it to newParent's children
// (None makes it a root). The new parent is expanded.
func (t *Tree) Move(id, newParent NodeID) error {
	if !t.Contains(id) {
		return fmt.Errorf("move %d: %w", id, ErrNotFound)
	}
	if newParent != None && !t.Contains(newParent) {
		return fmt.Errorf("move %d to %d: %w", id, newParent, ErrNotFound)
	}
	if id == newParent || t.IsAncestor(id, newParent) {
		return fmt.Errorf("move %q: %w", t.nodes[id].Name, ErrCycle)
	}
	t.unlink(id)
	t.link(id, newParent, -1)
	if newParent != None {
		t.nodes[newParent].Expanded = true
	}
	return nil
}

// Drop moves id onto target honouring the drag and drop flags.
func (t *Tree) Drop(id, target NodeID) error {
	src, ok := t.Get(id)
	if !ok {
		return fmt.Errorf("drop %d: %w", id, ErrNotFound)
	}
	dst, ok := t.Get(target)
	if !ok {
		return fmt.Errorf("drop onto %d: %w", target, ErrNotFound)
	}
	if !src.Draggable || !dst.Droppable || id == target {
		return fmt.Errorf("drop %q onto %q: %w", src.Name, dst.Name, ErrNotDroppable)
	}
	return t.Move(id, target)
}

func (t *Tree) Rename(id NodeID, name string) error {
	return t.Update(id, func(n *Node) { n.Name = name })
}

// Update applies fn to the node's exported fields.
func (t *Tree) Update(id NodeID, fn func(*Node)) error {
	n, ok := t.Get(id)
	if !ok {
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	fn(n)
	return nil
}

func (t *Tree) SetExpanded(id NodeID, expanded bool) error {
	return t.Update(id, func(n *Node) { n.Expanded = expanded })
}

// Level is the depth of id; roots are level 0.
func (t *Tree) Level(id NodeID) int {
	if !t.Contains(id) {
		return -1
	}
	level := 0
	for p := t.nodes[id].parent; p != None; p = t.nodes[p].parent {
		level++
	}
	return level
}

// Walk visits every node depth first in display order. Returning false from
// fn skips the node's children.
func (t *Tree) Walk(fn func(id NodeID, level int) bool) {
	var walk func(ids []NodeID, level int)
	walk = func(ids []NodeID, level int) {
		for _, id := range ids {
			if fn(id, level) {
				walk(t.nodes[id].children, level+1)
			}
		}
	}
	walk(t.roots, 0)
}

// FindByKey returns the first node with key in display order.
func (t *Tree) FindByKey(key string) (NodeID, bool) {
	found := None
	t.Walk(func(id NodeID, _ int) bool {
		if found != None {
			return false
		}
		if t.nodes[id].Key == key {
			found = id
			return false
		}
		return true
	})
	return found, found != None
}

func (t *Tree) FindByTag(tag string) []NodeID {
	var ids []NodeID
	t.Walk(func(id NodeID, _ int) bool {
		if t.nodes[id].HasTag(tag) {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// ExpandAll expands every node that has children.
func (t *Tree) ExpandAll() {
	t.Walk(func(id NodeID, _ int) bool {
		if t.nodes[id].HasChildren() {
			t.nodes[id].Expanded = true
		}
		return true
	})
}

// CollapseAll clears the expansion flag of every node.
func (t *Tree) CollapseAll() {
	t.Walk(func(id NodeID, _ int) bool {
		t.nodes[id].Expanded = false
		return true
	})
}

type Row struct {
	ID    NodeID
	Level int
}

// Visible flattens the forest into the rows currently on screen.
func (t *Tree) Visible() []Row {
	var rows []Row
	t.Walk(func(id NodeID, level int) bool {
		rows = append(rows, Row{ID: id, Level: level})
		return t.nodes[id].Expanded
	})
	return rows
}

// Specs converts the forest back into specs, e.g. to save it.
func (t *Tree) Specs() []Spec {
	var conv func(ids []NodeID) []Spec
	conv = func(ids []NodeID) []Spec {
		specs := make([]Spec, 0, len(ids))
		for _, id := range ids {
			n := t.nodes[id]
			selectable := n.Selectable
			specs = append(specs, Spec{
				Key:        n.Key,
				Name:       n.Name,
				Expanded:   n.Expanded,
				Icon:       n.Icon,
				Content:    n.Content,
				Tags:       slices.Clone(n.Tags),
				Metadata:   n.Metadata,
				Selectable: &selectable,
				Draggable:  n.Draggable,
				Droppable:  n.Droppable,
				Children:   conv(n.children),
				Data:       n.Data,
			})
		}
		return specs
	}
	return conv(t.roots)
}

// Verify checks the parent/children invariant over the whole arena.
func (t *Tree) Verify() error {
	seen := 0
	var check func(parent NodeID, ids []NodeID) error
	check = func(parent NodeID, ids []NodeID) error {
		for _, id := range ids {
			if !t.Contains(id) {
				return fmt.Errorf("dead node %d linked under %d", id, parent)
			}
			if t.nodes[id].parent != parent {
				return fmt.Errorf("node %d: parent %d, listed under %d", id, t.nodes[id].parent, parent)
			}
			seen++
			if seen > t.count {
				return fmt.Errorf("cycle through node %d", id)
			}
			if err := check(id, t.nodes[id].children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(None, t.roots); err != nil {
		return err
	}
	if seen != t.count {
		return fmt.Errorf("reached %d of %d nodes", seen, t.count)
	}
	return nil
}
