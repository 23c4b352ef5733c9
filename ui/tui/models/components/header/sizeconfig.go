// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/models/components/stack"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate hides the header on short terminals.
func (s *sizeConfig) Calculate(model util.Model, _ int, total_size int) int {
	height := lipgloss.Height(logo) + 1
	if h, ok := model.(*Model); ok && h.Subtitle != "" {
		height++
	}
	if total_size >= 10+height {
		return height
	}
	return 0
}
