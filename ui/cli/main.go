// Copyright (c) 2026 Keymaster Team
// Widgetkit - animated terminal UI widgets
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go defines the root command, its persistent flags and the shared
// setup every subcommand runs before it starts.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/toeirei/widgetkit/config"
	"github.com/toeirei/widgetkit/core/tree"
	"github.com/toeirei/widgetkit/internal/logging"
	"github.com/toeirei/widgetkit/ui/tui"
	"github.com/toeirei/widgetkit/ui/tui/models/views/demos"
)

// overridden in tests, the TUI needs a terminal
var (
	runGallery = tui.Run
	runDemo    = tui.RunDemo
)

type options struct {
	treeFile  string
	treeDir   string
	treeDepth int
	frames    []string
	noColor   bool
}

// session is what setup hands to the commands.
type session struct {
	cfg     config.Config
	env     demos.Env
	closeFn func()
}

func (s *session) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// Execute runs the CLI entrypoint. The root main package calls this and
// handles the process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "widgetkit",
		Short: "Widgetkit is a gallery of animated terminal UI widgets.",
		Long: `Widgetkit shows typewriters, faders, sliders, steppers, tree views
and more, each with sample content and live key help.

Running without a subcommand launches the gallery.`,
		Version:       compositeVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer s.Close()
			return runGallery(s.env)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file")
	flags.String("lang", "", `UI language ("en", "es")`)
	flags.String("log-file", "", "write logs to this file (default: discard)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.treeFile, "tree-file", "", "YAML forest for the tree demo")
	flags.StringVar(&opts.treeDir, "tree-dir", "", "build the tree demo from this directory")
	flags.IntVar(&opts.treeDepth, "tree-depth", 3, "levels read by --tree-dir (0 = unlimited)")
	flags.StringSliceVar(&opts.frames, "frames", nil, "image or .txt files for the slider demo")
	flags.BoolVar(&opts.noColor, "no-color", os.Getenv("NO_COLOR") != "", "disable colours")

	cmd.AddCommand(
		newDemoCmd(opts),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	if err != nil {
		return cfg, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// setup loads the config, configures logging and i18n, and assembles the
// demo environment from the flags.
func setup(cmd *cobra.Command, opts *options) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg}

	// the TUI owns the terminal, so logs go to a file or nowhere
	var w io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		w = f
		s.closeFn = func() { _ = f.Close() }
	}
	if err := logging.Setup(w, cfg.Log.Level); err != nil {
		s.Close()
		return nil, err
	}
	tui.InitializeDefaults(cfg, opts.noColor)

	env, err := buildEnv(cfg, opts)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.env = env
	logging.Infof("cli: language %s, %d custom tree roots, %d frames", cfg.Language, len(env.Tree), len(env.Frames))
	return s, nil
}

func buildEnv(cfg config.Config, opts *options) (demos.Env, error) {
	env := demos.Env{Config: cfg, Frames: opts.frames}

	if opts.treeFile != "" {
		specs, err := tree.LoadYAMLFile(opts.treeFile)
		if err != nil {
			return env, err
		}
		env.Tree = append(env.Tree, specs...)
	}

	if opts.treeDir != "" {
		abs, err := filepath.Abs(opts.treeDir)
		if err != nil {
			return env, fmt.Errorf("could not resolve --tree-dir: %w", err)
		}
		spec, err := tree.FromDir(os.DirFS(abs), ".", opts.treeDepth)
		if err != nil {
			return env, fmt.Errorf("could not read --tree-dir: %w", err)
		}
		spec.Name = filepath.Base(abs)
		spec.Expanded = true
		env.Tree = append(env.Tree, spec)
	}

	return env, nil
}
