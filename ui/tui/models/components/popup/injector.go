// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

// Injector hosts a child model and any number of stacked popups. Only the
// topmost popup receives input; the child keeps receiving everything else.
type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

func (m *Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	case tea.KeyMsg, tea.MouseMsg:
		return (*m.activeModel()).Update(msg)
	}

	// non input messages (frames, results) reach the child as well
	if len(m.popups) > 0 {
		return tea.Batch(
			(*m.activeModel()).Update(msg),
			(*m.child).Update(msg),
		)
	}
	return (*m.child).Update(msg)
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(0, m.size.Width-reservedWidth),
		Height: max(0, m.size.Height-reservedHeight),
	}
}

func (m *Injector) View() string {
	childView := (*m.child).View()

	if len(m.popups) > 0 {
		popupView := lipgloss.
			NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			Margin(0, 1).
			Render((*m.activeModel()).View())

		childView = lipgloss.
			NewStyle().
			Foreground(lipgloss.AdaptiveColor{
				Light: "#DDDADA",
				Dark:  "#3C3C3C",
			}).
			Render(ansi.Strip(childView))

		return PlaceCenter(childView, popupView)
	}
	return childView
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// Unmount unmounts open popups and the child.
func (m *Injector) Unmount() {
	for _, p := range m.popups {
		util.TryUnmount(*p.model)
	}
	util.TryUnmount(*m.child)
}

// Open reports whether a popup is shown.
func (m *Injector) Open() bool {
	return len(m.popups) > 0
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) open(popup popup) tea.Cmd {
	logging.Debugf("popup: open %T", *popup.model)
	// blur active view
	m.Blur()
	m.popups = append(m.popups, popup)
	// init and focus new popup
	return tea.Batch(
		(*popup.model).Init(),
		(*popup.model).Update(m.popupSize()),
		m.focusActiveModel(),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}
	m.Blur()
	closed := m.popups[len(m.popups)-1]
	m.popups = m.popups[:len(m.popups)-1]
	util.TryUnmount(*closed.model)
	logging.Debugf("popup: close %T", *closed.model)

	var onCloseCmd tea.Cmd
	if closed.onClose != nil {
		onCloseCmd = closed.onClose(closed.model)
	}
	// focus underlying view
	return tea.Batch(
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}
