// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package demos

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/animlist"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/circlecard"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/slider"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

const frameWidth = 40

// slide draws a framed placeholder picture.
func slide(title, art string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(frameWidth - 2).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, art, "", title))
}

var builtinSlides = []string{
	slide("Mountains", "      /\\\n  /\\ /  \\\n /  \\/    \\\n/    \\     \\"),
	slide("Sea", "~  ~   ~  ~\n  ~  ~   ~\n~   ~  ~   ~\n  ~   ~  ~"),
	slide("Night", " *    .   *\n   .   (\n *   .   *\n.    *    ."),
}

func Slider(env Env) (util.Model, error) {
	frames := builtinSlides
	if len(env.Frames) > 0 {
		loaded, err := slider.LoadFrames(env.Frames, frameWidth)
		if err != nil {
			return nil, fmt.Errorf("slider demo: %w", err)
		}
		frames = loaded
	}

	items := make([]pageItem, 0, 3)
	for i, t := range []slider.Transition{slider.Fade, slider.Wipe, slider.Scale} {
		s, err := slider.New(frames,
			slider.WithTransition(t),
			slider.WithInterval(env.Config.Slider.Interval),
			slider.WithAutoPlay(i == 0),
			slider.WithIndicatorColors(lipgloss.Color("#616161"), env.Accent()),
		)
		if err != nil {
			return nil, fmt.Errorf("slider demo: %w", err)
		}
		items = append(items, interact(s))
	}
	return newPage("Image Slider", env.Accent(), items...), nil
}

func AnimList(env Env) util.Model {
	return newPage("Animated Lists", env.Accent(),
		show(animlist.NewOrdered([]string{"Install", "Configure", "Run"},
			animlist.WithColor(env.Accent()),
		)),
		show(animlist.New([]string{"Fast", "Small", "Composable"},
			animlist.WithIcon("◆"),
		)),
	)
}

func CircleCard(env Env) util.Model {
	stats := strings.Join([]string{"Users   1,204", "Uptime  99.9%"}, "\n")
	return newPage("Circle Card", env.Accent(),
		interact(circlecard.New(
			circlecard.WithTitle("Stats"),
			circlecard.WithIcon("◉", env.Accent()),
			circlecard.WithContent(stats),
		)),
		interact(circlecard.New(
			circlecard.WithTitle("Notes"),
			circlecard.WithContent("Cards grow from a badge."),
			circlecard.WithExpandedSize(30, 4),
		)),
	)
}
