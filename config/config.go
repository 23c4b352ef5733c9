// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the gallery configuration. Widgets themselves take options at
// construction; the gallery feeds them from here.
type Config struct {
	Language  string          `mapstructure:"language" yaml:"language"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Theme     ThemeConfig     `mapstructure:"theme" yaml:"theme"`
	Animation AnimationConfig `mapstructure:"animation" yaml:"animation"`
	Slider    SliderConfig    `mapstructure:"slider" yaml:"slider"`
	Tree      TreeConfig      `mapstructure:"tree" yaml:"tree"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

type ThemeConfig struct {
	Accent string `mapstructure:"accent" yaml:"accent"`
}

type AnimationConfig struct {
	TypewriterSpeed int           `mapstructure:"typewriter_speed" yaml:"typewriter_speed"`
	FadeStep        time.Duration `mapstructure:"fade_step" yaml:"fade_step"`
	Pause           time.Duration `mapstructure:"pause" yaml:"pause"`
}

type SliderConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

type TreeConfig struct {
	MultiSelect bool `mapstructure:"multi_select" yaml:"multi_select"`
	DragDrop    bool `mapstructure:"drag_drop" yaml:"drag_drop"`
}

// Defaults returns the viper defaults keyed by their dotted config path.
func Defaults() map[string]any {
	return map[string]any{
		"language":                   "en",
		"log.level":                  "info",
		"log.file":                   "",
		"theme.accent":               "#8655B1",
		"animation.typewriter_speed": 10,
		"animation.fade_step":        50 * time.Millisecond,
		"animation.pause":            time.Second,
		"slider.interval":            3 * time.Second,
		"tree.multi_select":          false,
		"tree.drag_drop":             true,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Widgetkit")
		default: // Linux, macOS, etc.
			configDir = "/etc/widgetkit"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "widgetkit")
	}

	return filepath.Join(configDir, "widgetkit.yaml"), nil
}

// LoadConfig layers defaults, config files, WIDGETKIT_* environment variables
// and the flags of cmd (highest precedence) and decodes the result into T.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("widgetkit")
	v.SetConfigType("yaml")

	// 3. An explicit config file (--config) wins over the search paths.
	if additionalConfigFilePath != nil && *additionalConfigFilePath != "" {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if the file is not found, but other errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("could not read config: %w", err)
		}
	}

	// 6. Read from environment variables
	v.SetEnvPrefix("widgetkit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 7. Flags
	if cmd != nil {
		if err := bindFlags(v, cmd); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("could not decode config: %w", err)
	}

	return c, nil
}

// flagKeys maps CLI flag names to config keys where they differ.
var flagKeys = map[string]string{
	"lang":      "language",
	"log-level": "log.level",
	"log-file":  "log.file",
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("could not bind flag %s: %w", flag, err)
			}
		}
	}
	return nil
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}
