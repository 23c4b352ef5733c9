// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package demos

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/rotatingtext"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/splittext"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/textbubble"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/textfader"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/typewriter"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

func Typewriter(env Env) util.Model {
	speed := env.Config.Animation.TypewriterSpeed
	return newPage("Typewriter", env.Accent(),
		show(typewriter.New(
			typewriter.WithTexts("Hello there!", "Widgets for the terminal.", "Typed one letter at a time."),
			typewriter.WithSpeed(speed),
			typewriter.WithPause(env.Pause()),
			typewriter.WithLoop(true),
		)),
		show(typewriter.New(
			typewriter.WithTexts("Runs once and stops."),
			typewriter.WithSpeed(speed*2),
			typewriter.WithColor(env.Accent()),
			typewriter.WithBold(true),
		)),
	)
}

func TextFader(env Env) util.Model {
	speed := env.Config.Animation.FadeStep
	return newPage("Text Fader", env.Accent(),
		show(textfader.New("Fading in and out forever",
			textfader.WithSpeed(speed),
			textfader.WithPause(env.Pause()),
			textfader.WithLoop(true),
		)),
		show(textfader.New("Fades in and stays",
			textfader.WithSpeed(speed),
			textfader.WithColor(string(env.Accent())),
			textfader.WithPermanent(true),
		)),
		show(textfader.New("Coarse steps, once",
			textfader.WithSpeed(speed),
			textfader.WithStep(0.25),
		)),
	)
}

func SplitText(env Env) util.Model {
	texts := []string{"Split text", "Letter by letter"}
	items := make([]pageItem, 0, 4)
	for _, dir := range []splittext.Direction{splittext.Bottom, splittext.Top, splittext.Left, splittext.Right} {
		items = append(items, show(splittext.New(
			splittext.WithTexts(texts...),
			splittext.WithDirection(dir),
			splittext.WithPause(env.Pause()),
			splittext.WithLoop(true),
			splittext.WithColor(env.Accent()),
		)))
	}
	return newPage("Split Text", env.Accent(), items...)
}

func RotatingText(env Env) util.Model {
	return newPage("Rotating Text", env.Accent(),
		show(rotatingtext.New("Build", []string{"fast apps", "clean code", "great UIs"},
			rotatingtext.WithInterval(2*env.Pause()),
			rotatingtext.WithLoop(true),
			rotatingtext.WithBoxColor(env.Accent()),
			rotatingtext.WithStaticStyle(lipgloss.NewStyle().Bold(true)),
		)),
		show(rotatingtext.New("Stops on", []string{"one", "two", "three"},
			rotatingtext.WithDirection(splittext.Top),
		)),
	)
}

const bubbleText = "# Text Bubble\n" +
	"Typed like a chat message with **bold**, *italic* and `code`.\n" +
	"- links such as [bubbletea](https://github.com/charmbracelet/bubbletea)\n" +
	"- fenced code below\n" +
	"---\n" +
	"```go\n" +
	"func main() {\n" +
	"\tfmt.Println(\"hi\")\n" +
	"}\n" +
	"```"

func TextBubble(env Env) util.Model {
	return newPage("Text Bubble", env.Accent(),
		interact(textbubble.New(
			textbubble.WithTexts(bubbleText, "Press **y** to copy the text."),
			textbubble.WithSpeed(2*max(1, env.Config.Animation.TypewriterSpeed)),
			textbubble.WithPause(2*env.Pause()),
			textbubble.WithWidth(56),
		)),
	)
}
