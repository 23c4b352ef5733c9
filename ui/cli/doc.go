// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the widgetkit command line using Cobra. It loads the
// configuration, points logging at a file and hands a demos.Env to the TUI.
package cli
