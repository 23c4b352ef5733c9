// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package treeview

import (
	"bytes"
	"io"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/toeirei/widgetkit/core/tree"
	"github.com/toeirei/widgetkit/internal/logging"
)

func sample() *tree.Tree {
	return tree.Build([]tree.Spec{{
		Name:      "root",
		Expanded:  true,
		Droppable: true,
		Tags:      []string{"folder"},
		Children: []tree.Spec{
			{
				Name:      "docs",
				Droppable: true,
				Tags:      []string{"folder"},
				Children:  []tree.Spec{{Name: "a.md", Tags: []string{"md"}, Draggable: true}},
			},
			{Name: "main.go", Tags: []string{"go"}, Draggable: true},
		},
	}})
}

func mustFind(t *testing.T, tr *tree.Tree, key string) tree.NodeID {
	t.Helper()
	id, ok := tr.FindByKey(key)
	if !ok {
		t.Fatalf("node %q not found", key)
	}
	return id
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func press(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_RowsShowLevelGlyphAndIcon(t *testing.T) {
	m := New(sample(), WithCustomIcon("go", "🐹"))
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 3 {
		t.Fatalf("visible rows %d, want 3: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "▾ 📁 root") {
		t.Errorf("root row %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "    ▸ 📁 docs") {
		t.Errorf("collapsed folder row %q", lines[1])
	}
	if !strings.Contains(lines[2], "· 🐹 main.go") {
		t.Errorf("custom icon row %q", lines[2])
	}
}

func TestIcon_ExplicitWins(t *testing.T) {
	tr := tree.Build([]tree.Spec{{Name: "x", Icon: "★", Tags: []string{"go"}}})
	m := New(tr, WithCustomIcon("go", "🐹"))
	if got := m.Icon(tr.Roots()[0]); got != "★" {
		t.Fatalf("icon %q", got)
	}
}

func TestClick_TogglesExpansionAndSelects(t *testing.T) {
	var expanded, collapsed []tree.NodeID
	tr := sample()
	m := New(tr,
		WithOnExpand(func(id tree.NodeID) tea.Cmd { expanded = append(expanded, id); return nil }),
		WithOnCollapse(func(id tree.NodeID) tea.Cmd { collapsed = append(collapsed, id); return nil }),
	)
	m.Focus()
	docs := mustFind(t, tr, "docs")

	m.Update(press("j"))
	if m.Cursor() != docs {
		t.Fatalf("cursor on %d, want docs", m.Cursor())
	}
	m.Update(press(" "))
	if n, _ := tr.Get(docs); !n.Expanded {
		t.Fatal("docs not expanded")
	}
	if len(tr.Visible()) != 4 {
		t.Errorf("visible rows %d after expand", len(tr.Visible()))
	}
	if !slices.Equal(m.Selected(), []tree.NodeID{docs}) {
		t.Errorf("selection %v", m.Selected())
	}

	m.Update(press(" "))
	if len(expanded) != 1 || len(collapsed) != 1 || collapsed[0] != docs {
		t.Fatalf("expanded %v collapsed %v", expanded, collapsed)
	}
}

func TestSelection_SingleReplacesMultiToggles(t *testing.T) {
	tr := sample()
	root, mainGo := mustFind(t, tr, "root"), mustFind(t, tr, "main.go")
	var reported [][]tree.NodeID
	m := New(tr, WithOnSelect(func(_ tree.NodeID, sel []tree.NodeID) tea.Cmd {
		reported = append(reported, sel)
		return nil
	}))

	m.Select(root, false)
	m.Select(mainGo, false)
	if !slices.Equal(m.Selected(), []tree.NodeID{mainGo}) {
		t.Fatalf("single selection %v", m.Selected())
	}

	m.Select(root, true)
	if !slices.Equal(m.Selected(), []tree.NodeID{mainGo, root}) {
		t.Fatalf("modifier selection %v", m.Selected())
	}
	m.Select(root, true)
	if !slices.Equal(m.Selected(), []tree.NodeID{mainGo}) {
		t.Fatalf("modifier deselect %v", m.Selected())
	}
	if len(reported) != 4 {
		t.Errorf("OnSelect ran %d times", len(reported))
	}

	m.SetMultiSelect(true)
	if len(m.Selected()) != 0 {
		t.Fatalf("mode switch kept %v", m.Selected())
	}
	m.Select(root, false)
	m.Select(mainGo, false)
	if len(m.Selected()) != 2 {
		t.Errorf("multi mode selection %v", m.Selected())
	}
}

func TestSelect_IgnoresUnselectable(t *testing.T) {
	no := false
	tr := tree.Build([]tree.Spec{{Name: "locked", Selectable: &no}})
	m := New(tr)
	m.Select(tr.Roots()[0], false)
	if len(m.Selected()) != 0 {
		t.Fatalf("unselectable node selected")
	}
}

func TestExpandCollapseAllKeys(t *testing.T) {
	tr := sample()
	m := New(tr)
	m.Focus()

	m.Update(press("E"))
	if len(tr.Visible()) != 4 {
		t.Fatalf("visible rows %d after expand all", len(tr.Visible()))
	}
	for range 3 {
		m.Update(press("j"))
	}
	m.Update(press("C"))
	tr.Walk(func(id tree.NodeID, _ int) bool {
		if n, _ := tr.Get(id); n.Expanded {
			t.Errorf("%s still expanded", n.Name)
		}
		return true
	})
	if m.Cursor() != tr.Roots()[0] {
		t.Errorf("cursor not clamped to remaining row")
	}
}

func TestExpandCollapseAll_CursorStaysOnNode(t *testing.T) {
	tr := sample()
	mainGo, a := mustFind(t, tr, "main.go"), mustFind(t, tr, "a.md")
	m := New(tr)

	m.SetCursor(mainGo)
	m.ExpandAll()
	if m.Cursor() != mainGo {
		t.Fatalf("cursor moved off main.go after expand all")
	}

	m.SetCursor(a)
	m.CollapseAll()
	if m.Cursor() != tr.Roots()[0] {
		t.Fatalf("cursor not on the visible ancestor of a.md")
	}
}

func TestDragDrop(t *testing.T) {
	tr := sample()
	docs, mainGo := mustFind(t, tr, "docs"), mustFind(t, tr, "main.go")
	total := tr.Len()

	m := New(tr)
	if m.StartDrag(mainGo) {
		t.Fatal("drag started with drag and drop disabled")
	}

	veto := true
	m = New(tr, WithDragDrop(true), WithOnDrop(func(_, _ tree.NodeID) bool { return !veto }))
	if !m.StartDrag(mainGo) {
		t.Fatal("drag refused")
	}
	if m.Drop(mainGo) {
		t.Fatal("dropped onto itself")
	}
	if m.Drop(mustFind(t, tr, "a.md")) {
		t.Fatal("dropped onto a node that refuses drops")
	}
	if m.Drop(docs) || tr.Parent(mainGo) == docs {
		t.Fatal("vetoed drop moved the node")
	}

	veto = false
	if !m.Drop(docs) {
		t.Fatal("drop failed")
	}
	if tr.Parent(mainGo) != docs || tr.Len() != total {
		t.Fatalf("parent %d len %d", tr.Parent(mainGo), tr.Len())
	}
	if n, _ := tr.Get(docs); !n.Expanded {
		t.Error("new parent not expanded")
	}
	if err := tr.Verify(); err != nil {
		t.Fatal(err)
	}
	if m.Dragging() != tree.None {
		t.Error("drag state kept after drop")
	}
}

func TestDragKeys(t *testing.T) {
	tr := sample()
	docs, mainGo := mustFind(t, tr, "docs"), mustFind(t, tr, "main.go")
	m := New(tr, WithDragDrop(true))
	m.Focus()

	m.Update(press("j"))
	m.Update(press("j"))
	m.Update(press("g"))
	if m.Dragging() != mainGo {
		t.Fatalf("dragging %d", m.Dragging())
	}
	m.Update(press("k"))
	m.Update(press("p"))
	if tr.Parent(mainGo) != docs {
		t.Fatal("drop key did not move the node")
	}
}

func TestRename(t *testing.T) {
	tr := sample()
	docs := mustFind(t, tr, "docs")
	allow := false
	m := New(tr, WithOnRename(func(_ tree.NodeID, _ string) bool { return allow }))

	m.Update(renameMsg{view: m.id, node: docs, name: "Guides"})
	if n, _ := tr.Get(docs); n.Name != "docs" {
		t.Fatal("vetoed rename applied")
	}

	allow = true
	f := m.renameDialog(docs)
	if err := f.Set(renameResult{Name: " Guides "}); err != nil {
		t.Fatal(err)
	}
	for _, msg := range collect(f.Submit()) {
		m.Update(msg)
	}
	if n, _ := tr.Get(docs); n.Name != "Guides" {
		t.Fatalf("name %q", n.Name)
	}
}

func TestRenameIgnoresOtherViews(t *testing.T) {
	tr := sample()
	docs := mustFind(t, tr, "docs")
	m := New(tr)
	m.Update(renameMsg{view: m.id + 1, node: docs, name: "x"})
	if n, _ := tr.Get(docs); n.Name != "docs" {
		t.Fatal("message for another view applied")
	}
}

func TestDelete(t *testing.T) {
	tr := sample()
	docs, mainGo := mustFind(t, tr, "docs"), mustFind(t, tr, "main.go")

	m := New(tr, WithOnDelete(func(id tree.NodeID) bool { return id == mainGo }))
	m.Select(mainGo, false)
	m.Delete(docs)
	if !tr.Contains(docs) {
		t.Fatal("refused delete removed the node")
	}
	m.Delete(mainGo)
	if tr.Contains(mainGo) || len(m.Selected()) != 0 {
		t.Fatalf("delete left node or selection %v", m.Selected())
	}
}

func TestDelete_ConfirmsWithoutCallback(t *testing.T) {
	tr := sample()
	docs := mustFind(t, tr, "docs")
	m := New(tr)

	if cmd := m.Delete(docs); cmd == nil {
		t.Fatal("no confirmation dialog")
	}
	if !tr.Contains(docs) {
		t.Fatal("removed before confirmation")
	}
	for _, msg := range collect(m.deleteDialog(docs).Submit()) {
		m.Update(msg)
	}
	if tr.Contains(docs) || tr.Len() != 2 {
		t.Fatalf("confirmed delete kept the subtree, len %d", tr.Len())
	}
}

func TestNewItemDialog(t *testing.T) {
	tr := sample()
	root := mustFind(t, tr, "root")
	m := New(tr)

	f := m.newItemDialog(root)
	if cmd := f.Submit(); cmd != nil {
		t.Fatal("blank name submitted")
	}
	if err := f.Set(newItemResult{Name: "Notes", Type: typeFolder}); err != nil {
		t.Fatal(err)
	}
	for _, msg := range collect(f.Submit()) {
		m.Update(msg)
	}

	children := tr.Children(root)
	n, _ := tr.Get(children[len(children)-1])
	if n.Name != "Notes" || !n.Droppable || !n.HasTag(typeFolder) {
		t.Fatalf("new node %+v", n)
	}
	if _, err := uuid.Parse(n.Key); err != nil {
		t.Errorf("key %q is not a uuid: %v", n.Key, err)
	}
}

func TestNewItemCallback(t *testing.T) {
	tr := sample()
	docs := mustFind(t, tr, "docs")
	var gotParent tree.NodeID
	var gotKind, gotName string
	m := New(tr, WithOnNewItem(func(parent tree.NodeID, kind, name string) (tree.Spec, bool) {
		gotParent, gotKind, gotName = parent, kind, name
		return tree.Spec{Name: "b.md"}, true
	}))
	if cmd := m.NewItem(docs); cmd != nil {
		t.Fatal("callback path opened a dialog")
	}
	if gotParent != docs || gotKind != "item" || gotName != "Item" {
		t.Errorf("callback got (%v, %q, %q)", gotParent, gotKind, gotName)
	}
	if len(tr.Children(docs)) != 2 {
		t.Fatalf("children %d", len(tr.Children(docs)))
	}
}

func TestCallbackMutationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	if err := logging.Setup(&buf, "warn"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = logging.Setup(io.Discard, "") })

	tr := sample()
	docs := mustFind(t, tr, "docs")
	m := New(tr,
		WithOnDelete(func(id tree.NodeID) bool {
			_ = tr.Remove(id)
			return true
		}),
		WithOnNewItem(func(parent tree.NodeID, _, name string) (tree.Spec, bool) {
			_ = tr.Remove(parent)
			return tree.Spec{Name: name}, true
		}),
	)

	m.Delete(mustFind(t, tr, "a.md"))
	if n := strings.Count(buf.String(), "treeview:"); n != 1 {
		t.Fatalf("failed remove logged %d times: %q", n, buf.String())
	}
	m.NewItem(docs)
	if n := strings.Count(buf.String(), "treeview:"); n != 2 {
		t.Fatalf("failed add logged %d times: %q", n, buf.String())
	}
}

func TestContextMenu(t *testing.T) {
	tr := sample()
	root, docs := mustFind(t, tr, "root"), mustFind(t, tr, "docs")
	var opened []tree.NodeID
	m := New(tr, WithOnContextMenu(func(id tree.NodeID) tea.Cmd {
		opened = append(opened, id)
		return nil
	}))

	if !m.contextMenu(root).Items[1].Disabled {
		t.Error("delete enabled for a root")
	}
	if m.contextMenu(docs).Items[1].Disabled {
		t.Error("delete disabled for a child")
	}

	if cmd := m.OpenContextMenu(docs); cmd == nil {
		t.Fatal("menu not opened")
	}
	if len(opened) != 1 || !m.IsSelected(docs) {
		t.Fatalf("callback %v selection %v", opened, m.Selected())
	}

	m.Update(contextActionMsg{view: m.id, item: 1, node: root})
	if !tr.Contains(root) {
		t.Fatal("disabled delete removed a root")
	}
}

func TestContextItems_CustomEntryRuns(t *testing.T) {
	tr := sample()
	docs := mustFind(t, tr, "docs")
	var ran tree.NodeID = tree.None
	m := New(tr, WithContextItems(ContextItem{
		Name:   "Open",
		Action: func(_ *Model, id tree.NodeID) tea.Cmd { ran = id; return nil },
	}))

	last := len(m.ContextItems) - 1
	m.Update(contextActionMsg{view: m.id, item: last, node: docs})
	if ran != docs {
		t.Fatalf("custom action ran on %d", ran)
	}
}

func TestPropertyLines(t *testing.T) {
	tr := sample()
	m := New(tr)
	got := strings.Join(m.PropertyLines(mustFind(t, tr, "root")), "\n")
	for _, want := range []string{"Name: root", "Type: Folder", "Children: 2", "Tags: folder", "Expanded: Yes", "Level: 0"} {
		if !strings.Contains(got, want) {
			t.Errorf("properties miss %q:\n%s", want, got)
		}
	}
}
