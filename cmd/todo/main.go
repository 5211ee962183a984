// Command todo is an in-memory to-do list with #/ fragment views.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todomvc/internal/cli"
	"github.com/idilsaglam/todomvc/internal/config"
	"github.com/idilsaglam/todomvc/internal/location"
	"github.com/idilsaglam/todomvc/internal/logging"
	"github.com/idilsaglam/todomvc/internal/router"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/tui"
	"github.com/idilsaglam/todomvc/internal/ui"
)

const (
	Version = "0.1.0"
	appName = "todo"
)

// flags shared by every subcommand
type rootFlags struct {
	configPath string
	route      string
	theme      string
	logLevel   string
	group      bool
}

func main() {
	os.Exit(execute(rootCmd(), os.Stderr))
}

// execute runs cmd and turns errors and panics into an exit code.
func execute(cmd *cobra.Command, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			fmt.Fprintf(stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			code = 1
		}
	}()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func rootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "In-memory to-do list",
		Long: `todo keeps a to-do list for the lifetime of the process.

Views are selected with location fragments:
  #/           every item
  #/active     items not yet completed
  #/completed  completed items

Nothing is written to disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Config file path (TOML)")
	pf.StringVar(&f.route, "route", "", "Initial view fragment (#/, #/active, #/completed)")
	pf.StringVar(&f.theme, "theme", "", "Theme (classic, neon, mono)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&f.group, "group", false, "group shell listings by active/completed")

	cmd.AddCommand(&cobra.Command{
		Use:   "shell",
		Short: "Line-oriented shell over the list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, f)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// loadConfig merges the config file with explicitly set flags.
func loadConfig(cmd *cobra.Command, f rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("route") {
		cfg.Router.Initial = f.route
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = strings.ToLower(f.theme)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(f.logLevel)
	}
	if flags.Changed("group") {
		cfg.UI.Group = f.group
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, f rootFlags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	// the terminal belongs to the program; only log when a file is given
	logger, closeLog, err := logging.Open(cfg.Log.Level, cfg.Log.File, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	tui.SetTheme(cfg.UI.Theme)
	ui.SetColorMode(cfg.UI.Color)
	s := store.New(logger)
	loc := location.New(cfg.Router.Initial, logger)

	logger.Info("starting", "version", Version, "route", loc.Hash())
	return tui.Run(s, loc, tui.Options{CharLimit: cfg.UI.CharLimit}, logger)
}

func runShell(cmd *cobra.Command, f rootFlags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(cfg.Log.Level, cfg.Log.File, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorMode(cfg.UI.Color)

	s := store.New(logger)
	loc := location.New(cfg.Router.Initial, logger)
	r := router.New(loc, s.SetFilter, logger)
	defer r.Close()

	in, err := cli.NewLineReader(os.Stdin, os.Stdout)
	if err != nil {
		logger.Debug("readline unavailable, using plain input", "error", err)
	}
	defer in.Close()

	sh := cli.New(s, loc, cli.Options{Group: cfg.UI.Group}, os.Stdout, os.Stderr, logger)
	sh.PrintHelp()
	if code := sh.Loop(in); code != 0 {
		return fmt.Errorf("last command exited with code %d", code)
	}
	return nil
}
