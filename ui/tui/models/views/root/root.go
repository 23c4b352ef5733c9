// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the gallery: a menu listing every widget next to the
// selected demo, framed by header and key help.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/widgetkit/buildvars"
	"github.com/toeirei/widgetkit/i18n"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/models/components/header"
	"github.com/toeirei/widgetkit/ui/tui/models/components/menu"
	"github.com/toeirei/widgetkit/ui/tui/models/components/popup"
	"github.com/toeirei/widgetkit/ui/tui/models/components/router"
	"github.com/toeirei/widgetkit/ui/tui/models/components/stack"
	"github.com/toeirei/widgetkit/ui/tui/models/components/toast"
	windowtitle "github.com/toeirei/widgetkit/ui/tui/models/helpers/title"
	"github.com/toeirei/widgetkit/ui/tui/models/views/demos"
	"github.com/toeirei/widgetkit/ui/tui/models/views/footer"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/stepper"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/textfader"
	"github.com/toeirei/widgetkit/ui/tui/util"
	"github.com/toeirei/widgetkit/util/slicest"
)

const (
	focusMenu stack.Focus = 0
	focusDemo stack.Focus = 1
)

type Model struct {
	env          demos.Env
	keys         *KeyMap
	layer        *toast.Layer
	popups       *popup.Injector
	content      *stack.Model
	menu         *menu.Model
	router       *router.Router
	routes       router.Controll
	footer       *footer.Model
	titleHandler *windowtitle.Handler
	active       string
}

func New(env demos.Env) *Model {
	keys := BaseKeyMap
	m := &Model{
		env:  env,
		keys: &keys,
		menu: menu.New(slicest.Map(demos.All(), func(e demos.Entry) menu.Item {
			return menu.WithItem(e.ID, e.Name)
		})...),
		titleHandler: windowtitle.NewHandler(
			fmt.Sprintf("%s %s", i18n.T("gallery.title"), buildvars.VersionOrDefault("dev")), " | ",
		),
	}
	m.router, m.routes = router.New(util.ModelPointer(m.placeholder()))
	m.footer = footer.New(m.keys)

	// keys only reach the column holding the focus
	m.content = stack.New(
		stack.WithOrientation(stack.Horizontal),
		stack.WithFocus(focusMenu),
		stack.WithGap(1),
		stack.WithItem(util.ModelPointer(m.menu), menu.SizeConfig),
		stack.WithItem(util.ModelPointer(m.router), stack.VariableSize(1)),
		stack.WithMsgFilter(stack.KeysOnlyWhenFocused(m.isFocused)),
	)
	m.popups = popup.NewInjector(util.ModelPointer(m.content))

	m.layer = toast.NewLayer(util.ModelPointer(stack.New(
		stack.WithOrientation(stack.Vertical),
		stack.WithFocus(stack.Focus(1)),
		stack.WithItem(
			util.ModelPointer(header.New(i18n.T("gallery.subtitle"), env.Accent())),
			header.SizeConfig,
		),
		stack.WithItem(util.ModelPointer(m.popups), stack.VariableSize(1)),
		stack.WithItem(util.ModelPointer(m.footer), footer.SizeConfig),
	)))
	return m
}

func (m *Model) placeholder() *textfader.Model {
	return textfader.New(i18n.T("gallery.select_widget"),
		textfader.WithColor(string(m.env.Accent())),
		textfader.WithSpeed(m.env.Config.Animation.FadeStep),
		textfader.WithPermanent(true),
	)
}

func (m *Model) isFocused(model util.Model) bool {
	switch m.content.Focused() {
	case focusMenu:
		return model == util.Model(m.menu)
	case focusDemo:
		return model == util.Model(m.router)
	}
	return true
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.layer.Init()
	focusCmd, keyMap := m.layer.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// handle keys messages, dialogs keep every key
	if msg, ok := msg.(tea.KeyMsg); ok && !m.popups.Open() {
		switch {
		case key.Matches(msg, m.keys.Help):
			m.footer.ToggleExpanded()
		case key.Matches(msg, m.keys.Menu):
			return m.setFocus(focusMenu)
		}
		return m.layer.Update(msg)
	}

	switch msg := msg.(type) {
	case menu.ItemSelected:
		return m.Open(msg.Id)
	case stepper.ClosedMsg:
		return m.Close()
	}

	// handle window title messages
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return cmd
	}
	// handle other messages
	return m.layer.Update(msg)
}

// Open builds the demo with id, shows it and hands it the keyboard.
func (m *Model) Open(id string) tea.Cmd {
	entry, ok := demos.Lookup(id)
	if !ok {
		logging.Warnf("gallery: no demo %q", id)
		return nil
	}
	model, err := entry.New(m.env)
	if err != nil {
		logging.Errorf("gallery: open %s: %v", id, err)
		return toast.Show(toast.Error, i18n.T("gallery.demo_failed", entry.Name, err))
	}

	logging.Infof("gallery: open %s", id)
	m.active = id
	return tea.Batch(
		m.change(model),
		m.setFocus(focusDemo),
		windowtitle.Set(entry.Name),
	)
}

// Close unmounts the active demo and returns to the menu.
func (m *Model) Close() tea.Cmd {
	if m.active == "" {
		return m.setFocus(focusMenu)
	}
	logging.Infof("gallery: close %s", m.active)
	m.active = ""
	return tea.Batch(
		m.change(m.placeholder()),
		m.setFocus(focusMenu),
		windowtitle.Set(""),
	)
}

func (m *Model) change(model util.Model) tea.Cmd {
	return m.router.Update(m.routes.Change(&model)())
}

func (m *Model) setFocus(focus stack.Focus) tea.Cmd {
	m.keys.Menu.SetEnabled(focus == focusDemo)
	cmd, keyMap := m.content.SetFocus(focus)
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

// Active returns the id of the open demo, or "".
func (m *Model) Active() string {
	return m.active
}

func (m *Model) DemoFocused() bool {
	return m.content.Focused() == focusDemo
}

func (m *Model) View() string {
	return m.layer.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.layer.Focus()
}

func (m *Model) Blur() {
	m.layer.Blur()
}

func (m *Model) Unmount() {
	m.layer.Unmount()
}

// *Model implements util.Model
var (
	_ util.Model       = (*Model)(nil)
	_ util.Unmountable = (*Model)(nil)
)
