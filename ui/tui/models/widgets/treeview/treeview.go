// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package treeview renders a core/tree forest as an interactive list with
// expansion, selection, a context menu, edit dialogs and drag and drop.
//
// Node dialogs and the context menu are opened through the popup package, so
// the view has to live below a popup.Injector to show them.
package treeview

import (
	"slices"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/core/tree"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

var lastID atomic.Int64

type Config struct {
	Indent          int
	ShowExpandIcons bool
	ShowIcons       bool
	FolderIcon      string
	FileIcon        string
	// CustomIcons maps a tag to the icon of nodes carrying it.
	CustomIcons        map[string]string
	ContextMenu        bool
	MultiSelect        bool
	DragDrop           bool
	SelectionColor     lipgloss.Color
	SelectionTextColor lipgloss.Color
}

func DefaultConfig() Config {
	return Config{
		Indent:             2,
		ShowExpandIcons:    true,
		ShowIcons:          true,
		FolderIcon:         "📁",
		FileIcon:           "📄",
		CustomIcons:        map[string]string{},
		ContextMenu:        true,
		SelectionColor:     lipgloss.Color("#90CAF9"),
		SelectionTextColor: lipgloss.Color("#FFFFFF"),
	}
}

type Model struct {
	Config       Config
	ContextItems []ContextItem

	OnSelect      func(id tree.NodeID, selected []tree.NodeID) tea.Cmd
	OnExpand      func(id tree.NodeID) tea.Cmd
	OnCollapse    func(id tree.NodeID) tea.Cmd
	OnDoubleClick func(id tree.NodeID) tea.Cmd
	OnContextMenu func(id tree.NodeID) tea.Cmd
	// OnRename may veto a rename by returning false.
	OnRename func(id tree.NodeID, name string) bool
	// OnDelete replaces the confirmation dialog; true removes the node.
	OnDelete func(id tree.NodeID) bool
	// OnProperties replaces the properties dialog.
	OnProperties func(id tree.NodeID) tea.Cmd
	// OnNewItem replaces the new item dialog. It gets the default kind
	// ("item") and name; ok adds spec below parent.
	OnNewItem   func(parent tree.NodeID, kind, name string) (spec tree.Spec, ok bool)
	OnDragStart func(id tree.NodeID) bool
	OnDrop      func(id, target tree.NodeID) bool

	id       int64
	tree     *tree.Tree
	cursor   int
	selected []tree.NodeID
	dragging tree.NodeID
	size     util.Size
	focused  bool
}

func New(t *tree.Tree, opts ...NewOpt) *Model {
	if t == nil {
		t = tree.New()
	}
	m := &Model{
		Config:       DefaultConfig(),
		ContextItems: DefaultContextItems(),
		id:           lastID.Add(1),
		tree:         t,
		dragging:     tree.None,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Tree() *tree.Tree {
	return m.tree
}

// Cursor returns the node under the cursor, or tree.None for an empty tree.
func (m *Model) Cursor() tree.NodeID {
	rows := m.tree.Visible()
	if len(rows) == 0 {
		return tree.None
	}
	return rows[util.Clamp(0, m.cursor, len(rows)-1)].ID
}

// SetCursor moves the cursor onto id when it is visible.
func (m *Model) SetCursor(id tree.NodeID) bool {
	for i, r := range m.tree.Visible() {
		if r.ID == id {
			m.cursor = i
			return true
		}
	}
	return false
}

func (m *Model) Selected() []tree.NodeID {
	return slices.Clone(m.selected)
}

func (m *Model) IsSelected(id tree.NodeID) bool {
	return slices.Contains(m.selected, id)
}

// SetMultiSelect switches the selection mode and clears the selection.
func (m *Model) SetMultiSelect(on bool) {
	m.Config.MultiSelect = on
	m.selected = nil
}

// Dragging returns the node picked up for a move, or tree.None.
func (m *Model) Dragging() tree.NodeID {
	return m.dragging
}

// Click toggles the expansion of a node with children and then selects it.
// multi adds or removes the node from the selection instead of replacing it.
func (m *Model) Click(id tree.NodeID, multi bool) tea.Cmd {
	n, ok := m.tree.Get(id)
	if !ok {
		return nil
	}
	var cmds []tea.Cmd
	if n.HasChildren() {
		n.Expanded = !n.Expanded
		switch {
		case n.Expanded && m.OnExpand != nil:
			cmds = append(cmds, m.OnExpand(id))
		case !n.Expanded && m.OnCollapse != nil:
			cmds = append(cmds, m.OnCollapse(id))
		}
	}
	cmds = append(cmds, m.Select(id, multi))
	return tea.Batch(cmds...)
}

// Select applies the selection rules to id. Unselectable nodes are ignored.
func (m *Model) Select(id tree.NodeID, multi bool) tea.Cmd {
	n, ok := m.tree.Get(id)
	if !ok || !n.Selectable {
		return nil
	}
	if m.Config.MultiSelect || multi {
		if i := slices.Index(m.selected, id); i >= 0 {
			m.selected = slices.Delete(m.selected, i, i+1)
		} else {
			m.selected = append(m.selected, id)
		}
	} else {
		m.selected = []tree.NodeID{id}
	}
	if m.OnSelect == nil {
		return nil
	}
	return m.OnSelect(id, m.Selected())
}

func (m *Model) DoubleClick(id tree.NodeID) tea.Cmd {
	if !m.tree.Contains(id) || m.OnDoubleClick == nil {
		return nil
	}
	return m.OnDoubleClick(id)
}

// ExpandAll keeps the cursor on the node it was on.
func (m *Model) ExpandAll() {
	cur := m.Cursor()
	m.tree.ExpandAll()
	m.SetCursor(cur)
}

// CollapseAll moves the cursor to the nearest ancestor that stays visible.
func (m *Model) CollapseAll() {
	cur := m.Cursor()
	m.tree.CollapseAll()
	for id := cur; id != tree.None; id = m.tree.Parent(id) {
		if m.SetCursor(id) {
			return
		}
	}
	m.clampCursor()
}

// StartDrag picks id up for a later Drop. Picking the same node again
// cancels the drag.
func (m *Model) StartDrag(id tree.NodeID) bool {
	n, ok := m.tree.Get(id)
	if !m.Config.DragDrop || !ok || !n.Draggable {
		return false
	}
	if m.dragging == id {
		m.dragging = tree.None
		return false
	}
	if m.OnDragStart != nil && !m.OnDragStart(id) {
		return false
	}
	m.dragging = id
	return true
}

// Drop moves the dragged node below target. The target has to accept drops
// and OnDrop may veto the move.
func (m *Model) Drop(target tree.NodeID) bool {
	id := m.dragging
	if !m.Config.DragDrop || id == tree.None {
		return false
	}
	dst, ok := m.tree.Get(target)
	if !ok || !dst.Droppable || target == id {
		return false
	}
	if m.OnDrop != nil && !m.OnDrop(id, target) {
		logging.Debugf("treeview: drop of %d onto %d vetoed", id, target)
		return false
	}
	if err := m.tree.Drop(id, target); err != nil {
		logging.Warnf("treeview: %v", err)
		return false
	}
	m.dragging = tree.None
	m.SetCursor(id)
	return true
}

// Add inserts spec below parent and expands the parent.
func (m *Model) Add(parent tree.NodeID, spec tree.Spec) (tree.NodeID, error) {
	return m.tree.Add(parent, spec, -1)
}

// Remove deletes id with its subtree and forgets it in the selection.
func (m *Model) Remove(id tree.NodeID) error {
	if err := m.tree.Remove(id); err != nil {
		return err
	}
	m.selected = slices.DeleteFunc(m.selected, func(s tree.NodeID) bool {
		return !m.tree.Contains(s)
	})
	if !m.tree.Contains(m.dragging) {
		m.dragging = tree.None
	}
	m.clampCursor()
	return nil
}

// SetName renames id unless OnRename vetoes it. Blank names are rejected.
func (m *Model) SetName(id tree.NodeID, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || !m.tree.Contains(id) {
		return false
	}
	if m.OnRename != nil && !m.OnRename(id, name) {
		return false
	}
	return m.tree.Rename(id, name) == nil
}

func (m *Model) clampCursor() {
	m.cursor = util.Clamp(0, m.cursor, max(0, len(m.tree.Visible())-1))
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)

	switch msg := msg.(type) {
	case contextActionMsg:
		if msg.view == m.id {
			return m.runContextItem(msg.item, msg.node)
		}
	case renameMsg:
		if msg.view == m.id {
			m.SetName(msg.node, msg.name)
		}
	case deleteMsg:
		if msg.view == m.id {
			if err := m.Remove(msg.node); err != nil {
				logging.Warnf("treeview: %v", err)
			}
		}
	case newItemMsg:
		if msg.view == m.id {
			if _, err := m.Add(msg.parent, msg.spec); err != nil {
				logging.Warnf("treeview: %v", err)
			}
		}
	case tea.KeyMsg:
		if m.focused {
			return m.handleKey(msg)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	rows := m.tree.Visible()
	if len(rows) == 0 {
		return nil
	}
	cur := m.Cursor()

	switch {
	case key.Matches(msg, DefaultKeyMap.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, DefaultKeyMap.Down):
		m.cursor = min(len(rows)-1, m.cursor+1)
	case key.Matches(msg, DefaultKeyMap.Click):
		return m.Click(cur, false)
	case key.Matches(msg, DefaultKeyMap.MultiClick):
		return m.Click(cur, true)
	case key.Matches(msg, DefaultKeyMap.DoubleClick):
		return m.DoubleClick(cur)
	case key.Matches(msg, DefaultKeyMap.Menu):
		return m.OpenContextMenu(cur)
	case key.Matches(msg, DefaultKeyMap.Drag):
		m.StartDrag(cur)
	case key.Matches(msg, DefaultKeyMap.Drop):
		m.Drop(cur)
	case key.Matches(msg, DefaultKeyMap.ExpandAll):
		m.ExpandAll()
	case key.Matches(msg, DefaultKeyMap.CollapseAll):
		m.CollapseAll()
	}
	return nil
}

// Icon picks the explicit icon, then a custom icon by tag, then the folder
// or file default.
func (m *Model) Icon(id tree.NodeID) string {
	n, ok := m.tree.Get(id)
	if !ok {
		return ""
	}
	if n.Icon != "" {
		return n.Icon
	}
	for _, tag := range n.Tags {
		if icon, ok := m.Config.CustomIcons[tag]; ok {
			return icon
		}
	}
	if n.HasChildren() {
		return m.Config.FolderIcon
	}
	return m.Config.FileIcon
}

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8655B1")).Bold(true)
	dragStyle   = lipgloss.NewStyle().Italic(true).Faint(true)
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
)

func (m *Model) row(r tree.Row, isCursor bool) string {
	n, _ := m.tree.Get(r.ID)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", r.Level*m.Config.Indent))
	if m.Config.ShowExpandIcons {
		switch {
		case !n.HasChildren():
			b.WriteString("· ")
		case n.Expanded:
			b.WriteString("▾ ")
		default:
			b.WriteString("▸ ")
		}
	}
	if m.Config.ShowIcons {
		if icon := m.Icon(r.ID); icon != "" {
			b.WriteString(icon + " ")
		}
	}

	name := n.Name
	style := lipgloss.NewStyle()
	switch {
	case r.ID == m.dragging:
		style = dragStyle
	case m.IsSelected(r.ID):
		style = style.Bold(true).
			Foreground(m.Config.SelectionTextColor).
			Background(m.Config.SelectionColor)
	}
	name = style.Render(name)
	if m.dragging != tree.None && isCursor && n.Droppable && r.ID != m.dragging {
		name += targetStyle.Render(" ⇣")
	}

	marker := "  "
	if isCursor && m.focused {
		marker = cursorStyle.Render("› ")
	}
	return marker + b.String() + name
}

func (m *Model) View() string {
	rows := m.tree.Visible()
	if len(rows) == 0 {
		return ""
	}
	m.clampCursor()

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = m.row(r, i == m.cursor)
	}

	// keep the cursor on screen
	if h := m.size.Height; h > 0 && len(lines) > h {
		start := util.Clamp(0, m.cursor-h/2, len(lines)-h)
		lines = lines[start : start+h]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

var _ util.Model = (*Model)(nil)
