// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package textbubble

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/toeirei/widgetkit/core/mdlite"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107"))
	linkStyle    = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#90CAF9"))
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE082")).Background(lipgloss.Color("#424242"))
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#757575")).Faint(true)
	codeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#03A9F4")).
			Padding(0, 1)

	// CodeTheme is the chroma style used for fenced code blocks.
	CodeTheme = "monokai"
)

func renderLine(text string, fg lipgloss.Color) string {
	line := mdlite.ParseLine(text)
	body := renderSpans(line.Spans, fg)
	switch line.Kind {
	case mdlite.LineHeading:
		return headingStyle.Render(mdlite.Clean(plain(line.Spans)))
	case mdlite.LineBullet:
		return lipgloss.NewStyle().Foreground(fg).Render("• ") + body
	}
	return body
}

func plain(spans []mdlite.Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func renderSpans(spans []mdlite.Span, fg lipgloss.Color) string {
	text := lipgloss.NewStyle().Foreground(fg)
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case mdlite.SpanLink:
			b.WriteString(linkStyle.Render(termenv.Hyperlink(s.URL, s.Text)))
		case mdlite.SpanCode:
			b.WriteString(codeStyle.Render(s.Text))
		case mdlite.SpanBold:
			b.WriteString(text.Bold(true).Render(s.Text))
		case mdlite.SpanItalic:
			b.WriteString(text.Italic(true).Render(s.Text))
		default:
			b.WriteString(text.Render(s.Text))
		}
	}
	return b.String()
}

func renderDivider(width int) string {
	return dividerStyle.Render(strings.Repeat("─", max(width, 3)))
}

// highlight colours code for the terminal. Any failure falls back to the
// plain code.
func highlight(code, lang string) string {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iter, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var b strings.Builder
	if err := formatters.Get("terminal256").Format(&b, styles.Get(CodeTheme), iter); err != nil {
		return code
	}
	return b.String()
}

func renderCode(code, lang string, width int) string {
	code = strings.TrimSuffix(code, "\n")
	style := codeBoxStyle
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.TrimSuffix(highlight(code, lang), "\n"))
}
