// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package treeview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/toeirei/widgetkit/core/tree"
	"github.com/toeirei/widgetkit/i18n"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/models/components/popup"
	"github.com/toeirei/widgetkit/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/widgetkit/ui/tui/models/helpers/form/input"
)

type renameResult struct {
	Name string `mapstructure:"name"`
}

type newItemResult struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

const (
	typeFolder = "folder"
	typeFile   = "file"
	typeItem   = "item"
)

func closeOnCancel() tea.Cmd { return popup.Close() }

func (m *Model) renameDialog(id tree.NodeID) *form.Form[renameResult] {
	n, _ := m.tree.Get(id)
	name := forminput.NewText(i18n.T("tree.dialog.new_name"), "")
	name.Set(n.Name)
	return form.New(
		form.WithTitle[renameResult](i18n.T("tree.dialog.rename_title")),
		form.WithInput[renameResult]("name", name),
		form.WithRow[renameResult](
			form.Field{Input: forminput.NewButton(i18n.T("tree.dialog.cancel"), form.ActionCancel)},
			form.Field{Input: forminput.NewButton(i18n.T("tree.dialog.accept"), form.ActionSubmit)},
		),
		form.WithOnCancel[renameResult](closeOnCancel),
		form.WithOnSubmit(func(r renameResult, err error) tea.Cmd {
			if err != nil || strings.TrimSpace(r.Name) == "" {
				return nil
			}
			return tea.Batch(popup.Close(), m.emit(renameMsg{view: m.id, node: id, name: r.Name}))
		}),
	)
}

func (m *Model) deleteDialog(id tree.NodeID) *form.Form[struct{}] {
	n, _ := m.tree.Get(id)
	return form.New(
		form.WithTitle[struct{}](i18n.T("tree.dialog.delete_title")),
		form.WithInput[struct{}]("", forminput.NewLabel(i18n.T("tree.dialog.delete_body", n.Name))),
		form.WithRow[struct{}](
			form.Field{Input: forminput.NewButton(i18n.T("tree.dialog.cancel"), form.ActionCancel)},
			form.Field{Input: forminput.NewButton(i18n.T("tree.dialog.delete"), form.ActionSubmit)},
		),
		form.WithOnCancel[struct{}](closeOnCancel),
		form.WithOnSubmit(func(struct{}, error) tea.Cmd {
			return tea.Batch(popup.Close(), m.emit(deleteMsg{view: m.id, node: id}))
		}),
	)
}

func (m *Model) newItemDialog(parent tree.NodeID) *form.Form[newItemResult] {
	n, _ := m.tree.Get(parent)
	return form.New(
		form.WithTitle[newItemResult](i18n.T("tree.dialog.new_item_title")),
		form.WithInput[newItemResult]("", forminput.NewLabel(i18n.T("tree.dialog.create_on", n.Name))),
		form.WithInput[newItemResult]("name", forminput.NewText(i18n.T("tree.dialog.name"), i18n.T("tree.dialog.name_placeholder"))),
		form.WithInput[newItemResult]("type", forminput.NewChoice(i18n.T("tree.dialog.type"), 2, typeFolder, typeFile, typeItem)),
		form.WithRow[newItemResult](
			form.Field{Input: forminput.NewButton(i18n.T("tree.dialog.cancel"), form.ActionCancel)},
			form.Field{Input: forminput.NewButton(i18n.T("tree.dialog.create"), form.ActionSubmit)},
		),
		form.WithOnCancel[newItemResult](closeOnCancel),
		form.WithOnSubmit(func(r newItemResult, err error) tea.Cmd {
			name := strings.TrimSpace(r.Name)
			if err != nil || name == "" {
				return nil
			}
			return tea.Batch(popup.Close(), m.emit(newItemMsg{view: m.id, parent: parent, spec: m.newSpec(name, r.Type)}))
		}),
	)
}

// newSpec builds a node of kind folder, file or item with a fresh key.
func (m *Model) newSpec(name, kind string) tree.Spec {
	spec := tree.Spec{
		Key:       uuid.NewString(),
		Name:      name,
		Draggable: true,
	}
	switch kind {
	case typeFolder:
		spec.Icon = m.Config.FolderIcon
		spec.Tags = []string{typeFolder}
		spec.Droppable = true
	case typeFile:
		spec.Icon = m.Config.FileIcon
		spec.Tags = []string{typeFile}
	}
	return spec
}

func yesNo(b bool) string {
	if b {
		return i18n.T("tree.props.yes")
	}
	return i18n.T("tree.props.no")
}

// PropertyLines describes id the way the properties dialog shows it.
func (m *Model) PropertyLines(id tree.NodeID) []string {
	n, ok := m.tree.Get(id)
	if !ok {
		return nil
	}
	kind := i18n.T("tree.props.file")
	if n.HasChildren() {
		kind = i18n.T("tree.props.folder")
	}
	tags := i18n.T("tree.props.none")
	if len(n.Tags) > 0 {
		tags = strings.Join(n.Tags, ", ")
	}
	return []string{
		i18n.T("tree.props.name", n.Name),
		i18n.T("tree.props.key", n.Key),
		i18n.T("tree.props.type", kind),
		i18n.T("tree.props.children", len(n.Children())),
		i18n.T("tree.props.tags", tags),
		i18n.T("tree.props.expanded", yesNo(n.Expanded)),
		i18n.T("tree.props.level", m.tree.Level(id)),
	}
}

func (m *Model) propertiesDialog(id tree.NodeID) *form.Form[struct{}] {
	opts := []form.NewOpt[struct{}]{form.WithTitle[struct{}](i18n.T("tree.dialog.properties_title"))}
	for _, line := range m.PropertyLines(id) {
		opts = append(opts, form.WithInput[struct{}]("", forminput.NewLabel(line)))
	}
	opts = append(opts,
		form.WithInput[struct{}]("", forminput.NewButton(i18n.T("tree.dialog.close"), form.ActionCancel)),
		form.WithOnCancel[struct{}](closeOnCancel),
	)
	return form.New(opts...)
}

// Rename opens the rename dialog for id.
func (m *Model) Rename(id tree.NodeID) tea.Cmd {
	if !m.tree.Contains(id) {
		return nil
	}
	return openPopup(m.renameDialog(id))
}

// Delete asks OnDelete when set and removes the node on approval, otherwise
// it opens a confirmation dialog.
func (m *Model) Delete(id tree.NodeID) tea.Cmd {
	if !m.tree.Contains(id) {
		return nil
	}
	if m.OnDelete != nil {
		if m.OnDelete(id) {
			if err := m.Remove(id); err != nil {
				logging.Warnf("treeview: %v", err)
			}
		}
		return nil
	}
	return openPopup(m.deleteDialog(id))
}

func (m *Model) Properties(id tree.NodeID) tea.Cmd {
	if !m.tree.Contains(id) {
		return nil
	}
	if m.OnProperties != nil {
		return m.OnProperties(id)
	}
	return openPopup(m.propertiesDialog(id))
}

// NewItem asks OnNewItem for a spec when set, otherwise it opens the new
// item dialog.
func (m *Model) NewItem(parent tree.NodeID) tea.Cmd {
	if !m.tree.Contains(parent) {
		return nil
	}
	if m.OnNewItem != nil {
		if spec, ok := m.OnNewItem(parent, typeItem, i18n.T("tree.dialog.default_name")); ok {
			if _, err := m.Add(parent, spec); err != nil {
				logging.Warnf("treeview: %v", err)
			}
		}
		return nil
	}
	return openPopup(m.newItemDialog(parent))
}
