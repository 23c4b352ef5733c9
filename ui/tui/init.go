// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/toeirei/widgetkit/config"
	"github.com/toeirei/widgetkit/i18n"
)

// InitializeDefaults applies the process wide settings the widgets read:
// the translation language and, with noColor, a colourless renderer.
func InitializeDefaults(cfg config.Config, noColor bool) {
	i18n.Init(cfg.Language)
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
