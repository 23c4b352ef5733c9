// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package demos

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/widgetkit/core/tree"
	"github.com/toeirei/widgetkit/core/validate"
	"github.com/toeirei/widgetkit/i18n"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui/models/components/toast"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/animlist"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/button"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/oauth"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/restrictedinput"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/stepper"
	"github.com/toeirei/widgetkit/ui/tui/models/widgets/treeview"
	"github.com/toeirei/widgetkit/ui/tui/util"
)

func Buttons(env Env) util.Model {
	plain := button.New("Save", button.WithOnClick(func() tea.Cmd {
		return toast.Show(toast.Info, "Saved")
	}))

	like := button.New("Like", button.WithIcon("♡", lipgloss.Color("#FFFFFF")))
	like.OnClick = func() tea.Cmd {
		like.ToggleIcon("♡", "♥")
		like.ToggleColor("#2196F3", "#E91E63")
		return nil
	}

	glow := button.New("Glow", button.WithColors("#424242", "#FFFFFF"))
	glow.OnClick = func() tea.Cmd {
		return glow.Glow(string(env.Accent()), 0)
	}

	return newPage("Buttons", env.Accent(), interact(plain), interact(like), interact(glow))
}

func OAuth(env Env) util.Model {
	signIn := func(p oauth.Provider) tea.Cmd {
		return toast.Show(toast.Info, i18n.T("gallery.signin_requested", p))
	}
	items := make([]pageItem, 0, len(oauth.Providers)+2)
	for _, p := range oauth.Providers {
		items = append(items, interact(oauth.New(p, oauth.WithOnClick(signIn))))
	}
	for _, p := range []oauth.Provider{oauth.Google, oauth.Apple} {
		items = append(items, interact(oauth.New(p,
			oauth.WithVariant(oauth.Cupertino),
			oauth.WithOnClick(signIn),
		)))
	}
	return newPage("OAuth Buttons", env.Accent(), items...)
}

func Stepper(env Env) util.Model {
	name := restrictedinput.New(validate.Builtin("letters"), nil,
		restrictedinput.WithLabel("Your name"),
		restrictedinput.WithPlaceholder("Ada Lovelace"),
	)
	steps := []stepper.Step{
		{
			Title:       "Welcome",
			Subtitle:    "Getting started",
			Description: "This wizard walks through three steps.",
			Icon:        "★",
			Content:     animlist.NewOrdered([]string{"Read", "Fill in", "Finish"}),
		},
		{
			Title:       "Profile",
			Subtitle:    "Tell us who you are",
			Description: "Letters only, press enter to check.",
			Icon:        "☺",
			Content:     name,
		},
		{
			Title:       "Done",
			Subtitle:    "Review",
			Description: "Press the next key to complete.",
			Icon:        "✓",
		},
	}
	s := stepper.New(steps,
		stepper.WithColors(env.Accent(), lipgloss.Color("#616161"), lipgloss.Color("#4CAF50")),
		stepper.WithOnEvent(func(e stepper.Event) tea.Cmd {
			logging.Debugf("stepper demo: %s %d/%d", e.Type, e.Current+1, e.Total)
			if e.Type == stepper.EventComplete {
				return toast.Show(toast.Success, i18n.T("gallery.stepper_done"))
			}
			return nil
		}),
	)
	return newPage("Stepper", env.Accent(), interact(s))
}

func RestrictedInput(env Env) util.Model {
	reg := validate.NewRegistry()
	if err := reg.Register("even", validate.Func{
		Fn:      func(s string) bool { return len(s)%2 == 0 },
		Message: "Needs an even number of characters",
	}); err != nil {
		logging.Warnf("restrictedinput demo: %v", err)
	}

	report := func(msg restrictedinput.ValidateMsg) tea.Cmd {
		verdict, level := i18n.T("gallery.valid"), toast.Success
		if !msg.Valid {
			verdict, level = i18n.T("gallery.invalid"), toast.Error
		}
		return toast.Show(level, i18n.T("gallery.validation", msg.PatternName, msg.Value, verdict))
	}

	input := func(pattern validate.Pattern, label, placeholder string) pageItem {
		return interact(restrictedinput.New(pattern, reg,
			restrictedinput.WithLabel(label),
			restrictedinput.WithPlaceholder(placeholder),
			restrictedinput.WithOnValidate(report),
		))
	}
	return newPage("Restricted Input", env.Accent(),
		input(validate.Builtin("email"), "Email", "name@example.com"),
		input(validate.Builtin("phone"), "Phone", "+15551234567"),
		input(validate.Builtin("password"), "Password", "letters and digits, 6+"),
		input(validate.Parse("even", reg), "Custom validator", "even length"),
		input(validate.Raw(`[A-Z]{3}-\d{3}`), "Raw pattern", "ABC-123"),
	)
}

var sampleTree = []tree.Spec{
	{
		Name:      "Project",
		Expanded:  true,
		Droppable: true,
		Tags:      []string{"folder"},
		Children: []tree.Spec{
			{
				Name:      "src",
				Expanded:  true,
				Droppable: true,
				Draggable: true,
				Tags:      []string{"folder"},
				Children: []tree.Spec{
					{Name: "main.go", Tags: []string{"go"}, Draggable: true},
					{Name: "widgets.go", Tags: []string{"go"}, Draggable: true},
				},
			},
			{
				Name:      "docs",
				Droppable: true,
				Draggable: true,
				Tags:      []string{"folder"},
				Children: []tree.Spec{
					{Name: "README.md", Tags: []string{"md"}, Draggable: true},
				},
			},
			{Name: "go.mod", Draggable: true},
		},
	},
	{
		Name:      "Archive",
		Droppable: true,
		Tags:      []string{"folder"},
	},
}

func TreeView(env Env) (util.Model, error) {
	specs := sampleTree
	if len(env.Tree) > 0 {
		specs = env.Tree
	}
	t := tree.Build(specs)
	if err := t.Verify(); err != nil {
		return nil, fmt.Errorf("tree demo: %w", err)
	}

	tv := treeview.New(t,
		treeview.WithMultiSelect(env.Config.Tree.MultiSelect),
		treeview.WithDragDrop(env.Config.Tree.DragDrop),
		treeview.WithCustomIcon("go", "◇"),
		treeview.WithCustomIcon("md", "¶"),
	)
	tv.OnDoubleClick = func(id tree.NodeID) tea.Cmd {
		n, _ := t.Get(id)
		return toast.Show(toast.Info, n.Name)
	}
	tv.OnSelect = func(_ tree.NodeID, selected []tree.NodeID) tea.Cmd {
		names := make([]string, 0, len(selected))
		for _, id := range selected {
			if n, ok := t.Get(id); ok {
				names = append(names, n.Name)
			}
		}
		logging.Debugf("tree demo: selected %s", strings.Join(names, ", "))
		return nil
	}
	return newPage("Tree View", env.Accent(), interact(tv)), nil
}
