// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
// Package util holds the small contracts shared by every TUI model: the
// Model and Focusable interfaces, size tracking, key map plumbing and the
// adapter that hands a Model to a bubbletea program.
package util
