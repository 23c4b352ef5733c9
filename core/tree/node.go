// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package tree

import "slices"

// NodeID indexes a node in its Tree.
type NodeID int

// None is the parent of root nodes and the result of failed lookups.
const None NodeID = -1

type Node struct {
	// Key identifies the node; it defaults to Name.
	Key      string
	Name     string
	Expanded bool
	Data     any
	Icon     string
	Content  string
	Tags     []string
	Metadata map[string]any

	Selectable bool
	Draggable  bool
	Droppable  bool

	parent   NodeID
	children []NodeID
	alive    bool
}

func (n *Node) Parent() NodeID { return n.parent }

func (n *Node) Children() []NodeID { return slices.Clone(n.children) }

func (n *Node) HasChildren() bool { return len(n.children) > 0 }

func (n *Node) HasTag(tag string) bool { return slices.Contains(n.Tags, tag) }

// Spec describes a node and its subtree before it is inserted.
type Spec struct {
	Key        string         `yaml:"key,omitempty"`
	Name       string         `yaml:"name"`
	Expanded   bool           `yaml:"expanded,omitempty"`
	Icon       string         `yaml:"icon,omitempty"`
	Content    string         `yaml:"content,omitempty"`
	Tags       []string       `yaml:"tags,omitempty"`
	Metadata   map[string]any `yaml:"metadata,omitempty"`
	Selectable *bool          `yaml:"selectable,omitempty"`
	Draggable  bool           `yaml:"draggable,omitempty"`
	Droppable  bool           `yaml:"droppable,omitempty"`
	Children   []Spec         `yaml:"children,omitempty"`
	Data       any            `yaml:"-"`
}

func (s Spec) node() Node {
	key := s.Key
	if key == "" {
		key = s.Name
	}
	selectable := true
	if s.Selectable != nil {
		selectable = *s.Selectable
	}
	return Node{
		Key:        key,
		Name:       s.Name,
		Expanded:   s.Expanded,
		Data:       s.Data,
		Icon:       s.Icon,
		Content:    s.Content,
		Tags:       slices.Clone(s.Tags),
		Metadata:   s.Metadata,
		Selectable: selectable,
		Draggable:  s.Draggable,
		Droppable:  s.Droppable,
		parent:     None,
		alive:      true,
	}
}
