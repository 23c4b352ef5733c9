// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/models/components/stack"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

// Calculate reserves the help lines plus the top border.
func (s *sizeConfig) Calculate(model util.Model, remaining_size int, _ int) int {
	if footer, ok := model.(*Model); ok {
		return min(lipgloss.Height(footer.view())+1, remaining_size)
	}
	return 2
}
