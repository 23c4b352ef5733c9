// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders bindings on one line. Unlike help.Model it skips
// disabled bindings before placing separators and only adds the ellipsis
// when something was actually cut.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	bindings = slices.DeleteFunc(slices.Clone(bindings), func(kb key.Binding) bool {
		return !kb.Enabled()
	})
	if len(bindings) == 0 {
		return ""
	}

	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	items := make([]string, len(bindings))
	for i, kb := range bindings {
		var sep string
		if i > 0 {
			sep = separator
		}
		items[i] = sep +
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)
	}

	return strings.Join(fit(items, m.Width, tail(m)), "")
}

// FullHelpView renders one column per group; groups without any enabled
// binding are dropped.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	var cols []string
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}
	if len(cols) == 0 {
		return ""
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, m.Width, tail(m))...)
}

func tail(m help.Model) string {
	return " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
}

// fit keeps items while they fit into width and ends with tail once they
// stop fitting. A width of 0 means unlimited.
func fit(items []string, width int, tail string) []string {
	tailLen := lipgloss.Width(tail)
	var out []string
	used := 0
	for i, item := range items {
		itemLen := lipgloss.Width(item)
		need := itemLen
		if i < len(items)-1 {
			// leave room for the tail after every item but the last
			need += tailLen
		}
		if width <= 0 || used+need <= width {
			used += itemLen
			out = append(out, item)
			continue
		}
		if used+tailLen <= width {
			out = append(out, tail)
		}
		break
	}
	return out
}
