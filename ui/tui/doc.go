// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui starts the terminal UI: the widget gallery or a single demo.
// Widgets live under models/widgets, the layout components they are hosted
// in under models/components.
package tui
