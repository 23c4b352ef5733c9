// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mdlite tokenizes the small markdown subset the text bubble
// understands: headings, bullets, links, inline code, bold and italic on a
// single line, plus dividers and fenced code blocks across lines.
package mdlite

import (
	"strings"

	"github.com/dlclark/regexp2"
)

type SpanKind int

const (
	SpanText SpanKind = iota
	SpanLink
	SpanCode
	SpanBold
	SpanItalic
)

type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

type LineKind int

const (
	LineText LineKind = iota
	LineHeading
	LineBullet
)

type Line struct {
	Kind LineKind
	// Level is 1..3 for headings.
	Level int
	Spans []Span
}

// inline patterns in priority order; on equal start the earlier one wins.
var inline = []struct {
	kind SpanKind
	re   *regexp2.Regexp
}{
	{SpanLink, regexp2.MustCompile(`\[(.*?)\]\((https?://[^\s]+)\)`, regexp2.None)},
	{SpanLink, regexp2.MustCompile(`https?://[^\s]+`, regexp2.None)},
	{SpanCode, regexp2.MustCompile("`(.*?)`", regexp2.None)},
	{SpanBold, regexp2.MustCompile(`\*\*(.*?)\*\*`, regexp2.None)},
	{SpanItalic, regexp2.MustCompile(`_(.*?)_`, regexp2.None)},
}

var headings = []struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// ParseLine classifies a single line. Headings and bullets are plain text;
// inline formatting only applies to ordinary lines.
func ParseLine(text string) Line {
	s := strings.TrimSpace(text)
	for _, h := range headings {
		if rest, ok := strings.CutPrefix(s, h.prefix); ok {
			return Line{Kind: LineHeading, Level: h.level, Spans: []Span{{Kind: SpanText, Text: rest}}}
		}
	}
	if rest, ok := strings.CutPrefix(s, "- "); ok {
		return Line{Kind: LineBullet, Spans: []Span{{Kind: SpanText, Text: rest}}}
	}
	return Line{Kind: LineText, Spans: Spans(text)}
}

// Spans splits text into inline spans. At every position the match that
// starts first wins.
func Spans(text string) []Span {
	runes := []rune(text)
	var spans []Span
	idx := 0
	for idx < len(runes) {
		var best *regexp2.Match
		var bestKind SpanKind
		bestRank := -1
		for rank, p := range inline {
			m, err := p.re.FindRunesMatchStartingAt(runes, idx)
			if err != nil || m == nil {
				continue
			}
			if best == nil || m.Index < best.Index {
				best, bestKind, bestRank = m, p.kind, rank
			}
		}
		if best == nil {
			spans = append(spans, Span{Kind: SpanText, Text: string(runes[idx:])})
			break
		}
		if best.Index > idx {
			spans = append(spans, Span{Kind: SpanText, Text: string(runes[idx:best.Index])})
		}
		switch {
		case bestRank == 0:
			url := best.GroupByNumber(2).String()
			spans = append(spans, Span{Kind: SpanLink, Text: best.GroupByNumber(1).String(), URL: url})
		case bestKind == SpanLink:
			spans = append(spans, Span{Kind: SpanLink, Text: best.String(), URL: best.String()})
		default:
			spans = append(spans, Span{Kind: bestKind, Text: best.GroupByNumber(1).String()})
		}
		end := best.Index + best.Length
		if end == idx {
			// empty match guard
			end++
		}
		idx = end
	}
	return spans
}

var copyStrip = strings.NewReplacer("*", "", "#", "", "`", "")

// Clean removes the markup characters (asterisk, hash, backtick) so the text
// can be copied as plain prose.
func Clean(text string) string {
	return copyStrip.Replace(text)
}
