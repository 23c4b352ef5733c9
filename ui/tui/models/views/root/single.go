// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/widgetkit/i18n"
	"github.com/toeirei/widgetkit/ui/tui/models/components/popup"
	"github.com/toeirei/widgetkit/ui/tui/models/components/stack"
	"github.com/toeirei/widgetkit/ui/tui/models/components/toast"
	windowtitle "github.com/toeirei/widgetkit/ui/tui/models/helpers/title"
	"github.com/toeirei/widgetkit/ui/tui/models/views/demos"
	"github.com/toeirei/widgetkit/ui/tui/models/views/footer"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/stepper"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

// Single runs one demo full screen with key help below it.
type Single struct {
	name         string
	demo         util.Model
	keys         *KeyMap
	layer        *toast.Layer
	popups       *popup.Injector
	footer       *footer.Model
	titleHandler *windowtitle.Handler
}

func NewSingle(env demos.Env, entry demos.Entry) (*Single, error) {
	demo, err := entry.New(env)
	if err != nil {
		return nil, fmt.Errorf("could not open demo %s: %w", entry.ID, err)
	}

	keys := BaseKeyMap
	s := &Single{
		name:         entry.Name,
		demo:         demo,
		keys:         &keys,
		titleHandler: windowtitle.NewHandler(i18n.T("gallery.title"), " | "),
	}
	s.footer = footer.New(s.keys)
	s.popups = popup.NewInjector(&demo)
	s.layer = toast.NewLayer(util.ModelPointer(stack.New(
		stack.WithOrientation(stack.Vertical),
		stack.WithFocus(stack.Focus(0)),
		stack.WithItem(util.ModelPointer(s.popups), stack.VariableSize(1)),
		stack.WithItem(util.ModelPointer(s.footer), footer.SizeConfig),
	)))
	return s, nil
}

func (s *Single) Init() tea.Cmd {
	focusCmd, keyMap := s.layer.Focus()
	return tea.Sequence(
		s.titleHandler.Init(),
		s.layer.Init(),
		focusCmd,
		util.AnnounceKeyMapCmd(keyMap),
		windowtitle.Set(s.name),
	)
}

func (s *Single) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && !s.popups.Open() && key.Matches(msg, s.keys.Help) {
		s.footer.ToggleExpanded()
	}
	if _, ok := msg.(stepper.ClosedMsg); ok {
		s.Unmount()
		return tea.Quit
	}
	if cmd, ok := s.titleHandler.Handle(msg); ok {
		return cmd
	}
	return s.layer.Update(msg)
}

func (s *Single) View() string {
	return s.layer.View()
}

func (s *Single) Focus() (tea.Cmd, help.KeyMap) {
	return s.layer.Focus()
}

func (s *Single) Blur() {
	s.layer.Blur()
}

func (s *Single) Unmount() {
	s.layer.Unmount()
}

// Demo returns the hosted demo model.
func (s *Single) Demo() util.Model {
	return s.demo
}

// *Single implements util.Model
var (
	_ util.Model       = (*Single)(nil)
	_ util.Unmountable = (*Single)(nil)
)
