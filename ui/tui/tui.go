// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/models/views/demos"
	"github.com/toeirei/widgetkit/ui/tui/models/views/root"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

var ErrUnknownDemo = errors.New("unknown demo")

// Run starts the gallery in the alternate screen and blocks until it quits.
func Run(env demos.Env) error {
	return run(root.New(env))
}

// RunDemo runs the demo registered under id on its own.
func RunDemo(id string, env demos.Env) error {
	entry, ok := demos.Lookup(id)
	if !ok {
		return fmt.Errorf("%w %q, available: %s", ErrUnknownDemo, id, strings.Join(demos.IDs(), ", "))
	}
	single, err := root.NewSingle(env, entry)
	if err != nil {
		return err
	}
	return run(single)
}

func run(m util.Model) error {
	logging.Debugf("tui: start %T", m)
	_, err := tea.NewProgram(
		util.Program(m),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
