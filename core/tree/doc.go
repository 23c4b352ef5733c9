// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tree implements the forest behind the tree view widget.
//
// Nodes live in a flat arena and reference each other by NodeID, so moving
// or deleting a subtree never leaves a dangling parent pointer behind. Freed
// slots are recycled by later insertions; a NodeID is only meaningful while
// the node it names is alive.
//
// Every exported mutation keeps the following invariant: a node's parent id
// appears exactly once in that parent's children, and the forest is acyclic.
package tree
