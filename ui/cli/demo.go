// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/widgetkit/ui/tui/models/views/demos"
)

func newDemoCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "demo <widget>",
		Short:     "Run a single widget demo full screen",
		Args:      cobra.ExactArgs(1),
		ValidArgs: demos.IDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()
			return runDemo(args[0], s.env)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, e := range demos.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", e.ID, e.Name)
			}
		},
	})
	return cmd
}
