// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/bookmycook/bookmycook/internal/config"
	"github.com/bookmycook/bookmycook/internal/i18n"
	"github.com/bookmycook/bookmycook/internal/logging"
	"github.com/bookmycook/bookmycook/ui/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the TUI would start without a terminal.
var ErrNotTerminal = errors.New("bookmycook needs an interactive terminal")

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// runTUI is swapped in tests.
var runTUI = tui.Run

type options struct {
	configFile string
	verbose    bool
	configUsed string
	cfg        config.Config
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bookmycook",
		Short: "Sign in to Bookmycook from your terminal.",
		Long: `Bookmycook walks you through signing in: a home screen, the login form
and the one-time code sent to your email or phone.

Settings are read from bookmycook.yaml (user config dir, /etc/bookmycook or
the current directory), BOOKMYCOOK_* environment variables and the flags
below, the latter taking precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return ErrNotTerminal
			}
			return runTUI(opts.cfg, compositeVersion())
		},
	}

	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is bookmycook.yaml in the standard locations)")
	cmd.PersistentFlags().String("language", "en", `TUI language ("en", "de")`)
	cmd.PersistentFlags().Int("code.length", 6, "Number of characters in the one-time code")
	cmd.PersistentFlags().String("code.charset", "digits", `Characters accepted in the code ("digits", "alphanumeric")`)
	cmd.PersistentFlags().String("log.level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.file", "", "Write logs to this file while the TUI runs")
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")

	cmd.AddCommand(newDebugCmd(opts))
	return cmd
}

// setup loads the configuration and prepares logging and translations. On a
// first run without any config file, the effective settings are written to
// the user config dir.
func setup(cmd *cobra.Command, opts *options) error {
	cfg, used, err := config.LoadConfig(cmd, opts.configFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if used == "" && opts.configFile == "" {
		if path, writeErr := config.WriteConfigFile(&cfg, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Infof("wrote default config to %s", path)
			used = path
		}
	}

	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	if err := i18n.Init(cfg.Language); err != nil {
		return fmt.Errorf("could not load translations: %w", err)
	}

	opts.cfg = cfg
	opts.configUsed = used
	return nil
}
