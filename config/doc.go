// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading and persistence helpers for
// the widget gallery. It uses Viper for file/env/flag parsing and exposes
// utility functions to read/write configuration files.
package config
