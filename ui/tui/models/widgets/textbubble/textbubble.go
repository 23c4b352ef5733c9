// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package textbubble types markdown-lite texts into a chat style bubble.
// Fenced code blocks are highlighted, links become terminal hyperlinks and
// the whole text can be copied to the clipboard.
package textbubble

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/core/mdlite"
	"github.com/toeirei/widgetkit/i18n"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/anim"
	"github.com/toeirei/widgetkit/ui/tui/models/components/toast"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const (
	DefaultSpeed = 20
	DefaultWidth = 60
)

type KeyMap struct {
	Copy key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Copy} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Copy}} }

var DefaultKeyMap = KeyMap{
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
}

type Model struct {
	Texts []string
	// Speed is in characters per second.
	Speed      int
	Pause      time.Duration
	Background lipgloss.Color
	Foreground lipgloss.Color
	Width      int
	OnCopied   func(clean string) tea.Cmd

	writeClipboard func(string) error
	loop           anim.Loop
	focused        bool

	text    int
	blocks  []mdlite.Block
	block   int
	typed   int
	pausing bool
}

func New(opts ...NewOpt) *Model {
	m := &Model{
		Speed:          DefaultSpeed,
		Background:     lipgloss.Color("#424242"),
		Foreground:     lipgloss.Color("#FFFFFF"),
		Width:          DefaultWidth,
		writeClipboard: clipboard.WriteAll,
		loop:           anim.NewLoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Running() bool {
	return m.loop.Running()
}

func (m *Model) delay() time.Duration {
	return time.Second / time.Duration(max(m.Speed, 1))
}

func (m *Model) load(i int) {
	m.text, m.block, m.typed, m.pausing = i, 0, 0, false
	m.blocks = nil
	if i < len(m.Texts) {
		m.blocks = mdlite.ParseBlocks(m.Texts[i])
	}
}

func (m *Model) Init() tea.Cmd {
	m.loop.Start()
	m.load(0)
	if len(m.Texts) == 0 {
		m.loop.Stop()
		return nil
	}
	logging.Debugf("textbubble %d: start", m.loop.ID())
	return m.loop.After(m.delay())
}

func (m *Model) Unmount() {
	m.loop.Stop()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.focused {
		if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, DefaultKeyMap.Copy) {
			return m.Copy()
		}
	}
	if !m.loop.Owns(msg) {
		return nil
	}
	return m.step()
}

// step reveals one more character. Blocks without characters appear at once.
func (m *Model) step() tea.Cmd {
	if !m.pausing {
		for m.block < len(m.blocks) && m.blocks[m.block].Runes() == 0 {
			m.block++
		}
		if m.block < len(m.blocks) {
			m.typed++
			if m.typed >= m.blocks[m.block].Runes() {
				m.block, m.typed = m.block+1, 0
			}
			return m.loop.After(m.delay())
		}
		if m.Pause > 0 {
			m.pausing = true
			return m.loop.After(m.Pause)
		}
	}

	if m.text+1 < len(m.Texts) {
		m.load(m.text + 1)
		return m.loop.After(m.delay())
	}
	m.loop.Stop()
	logging.Debugf("textbubble %d: done", m.loop.ID())
	return nil
}

// Source is the full source of all texts.
func (m *Model) Source() string {
	return strings.Join(m.Texts, "\n")
}

// Copy writes the source without markup characters to the clipboard.
func (m *Model) Copy() tea.Cmd {
	clean := mdlite.Clean(m.Source())
	if err := m.writeClipboard(clean); err != nil {
		logging.Warnf("textbubble: clipboard: %v", err)
		return toast.Show(toast.Error, i18n.T("bubble.copy_failed", err))
	}
	cmds := []tea.Cmd{toast.Show(toast.Success, "📋 "+i18n.T("bubble.copied"))}
	if m.OnCopied != nil {
		cmds = append(cmds, m.OnCopied(clean))
	}
	return tea.Batch(cmds...)
}

func (m *Model) innerWidth() int {
	return max(m.Width-4, 10)
}

// lines renders every block revealed so far.
func (m *Model) lines() []string {
	var out []string
	for i, b := range m.blocks {
		if i > m.block || (i == m.block && m.typed == 0) {
			break
		}
		text := b.Text
		if i == m.block {
			text = string([]rune(text)[:m.typed])
		}
		switch b.Kind {
		case mdlite.BlockDivider:
			out = append(out, renderDivider(m.innerWidth()))
		case mdlite.BlockCode:
			out = append(out, renderCode(text, b.Lang, m.innerWidth()))
		default:
			out = append(out, renderLine(text, m.Foreground))
		}
	}
	return out
}

func (m *Model) View() string {
	border := m.Background
	if c, ok := anim.Blend(string(m.Background), "#FFFFFF", 0.3); ok {
		border = lipgloss.Color(c)
	}
	if m.focused {
		border = lipgloss.Color("#8655B1")
	}
	return lipgloss.NewStyle().
		Width(m.Width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(m.Background).
		Render(strings.Join(m.lines(), "\n"))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

var (
	_ util.Model       = (*Model)(nil)
	_ util.Unmountable = (*Model)(nil)
)
