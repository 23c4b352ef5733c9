// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package mdlite

import "strings"

type BlockKind int

const (
	BlockLine BlockKind = iota
	BlockDivider
	BlockCode
)

// Block is one visual unit of a multi-line text.
type Block struct {
	Kind BlockKind
	// Text is the raw line for BlockLine and the code (one trailing newline
	// per source line) for BlockCode.
	Text string
	// Lang is the info string of a fenced code block.
	Lang string
}

// Runes is the number of characters typed to reveal the block.
func (b Block) Runes() int {
	if b.Kind == BlockDivider {
		return 0
	}
	return len([]rune(b.Text))
}

// ParseBlocks splits text into lines, dividers and fenced code blocks. An
// unterminated fence runs to the end of the text.
func ParseBlocks(text string) []Block {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var blocks []Block
	var code *Block
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if info, ok := strings.CutPrefix(stripped, "```"); ok {
			if code == nil {
				code = &Block{Kind: BlockCode, Lang: strings.TrimSpace(info)}
			} else {
				blocks = append(blocks, *code)
				code = nil
			}
			continue
		}
		if code != nil {
			code.Text += line + "\n"
			continue
		}
		if stripped == "---" {
			blocks = append(blocks, Block{Kind: BlockDivider})
			continue
		}
		blocks = append(blocks, Block{Kind: BlockLine, Text: line})
	}
	if code != nil {
		blocks = append(blocks, *code)
	}
	return blocks
}
