// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package oauth

import "github.com/charmbracelet/lipgloss"

type Provider int

const (
	Google Provider = iota
	Microsoft
	LinkedIn
	GitHub
	Amazon
	Apple
	Instagram
)

// Providers lists every supported provider in display order.
var Providers = []Provider{Google, Microsoft, LinkedIn, GitHub, Amazon, Apple, Instagram}

type brand struct {
	name  string
	label string
	glyph string
	color lipgloss.Color
	text  lipgloss.Color
}

var brands = map[Provider]brand{
	Google:    {"Google", "Google Account", "G", "#4285F4", "#FFFFFF"},
	Microsoft: {"Microsoft", "Microsoft Account", "⊞", "#2F2F2F", "#FFFFFF"},
	LinkedIn:  {"LinkedIn", "Linkedin Account", "in", "#0A66C2", "#FFFFFF"},
	GitHub:    {"GitHub", "GitHub Account", "gh", "#24292F", "#FFFFFF"},
	Amazon:    {"Amazon", "Amazon Account", "a", "#FF9900", "#000000"},
	Apple:     {"Apple", "Apple Account", "⌘", "#000000", "#FFFFFF"},
	Instagram: {"Instagram", "Instagram Account", "◎", "#E1306C", "#FFFFFF"},
}

func (p Provider) String() string {
	return brands[p].name
}

// Label is the default button text.
func (p Provider) Label() string {
	return brands[p].label
}

func (p Provider) Glyph() string {
	return brands[p].glyph
}

// Color is the brand colour used as Material background.
func (p Provider) Color() lipgloss.Color {
	return brands[p].color
}
