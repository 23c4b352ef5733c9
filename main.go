// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Widgetkit.
//
// Usage:
//
//	go run . [flags]
//	./widgetkit [flags]
//	./widgetkit demo treeview
//
// This launches the widget gallery. See --help for options.
package main

import (
	"fmt"
	"os"

	"github.com/toeirei/widgetkit/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "widgetkit: %v\n", err)
		os.Exit(1)
	}
}
