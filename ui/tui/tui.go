// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"os"

	"github.com/bookmycook/bookmycook/internal/config"
	"github.com/bookmycook/bookmycook/internal/logging"
	"github.com/bookmycook/bookmycook/ui/tui/models/views/root"
	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks until the user quits. Log output goes to cfg.Log.File while the
// program owns the terminal.
func Run(cfg config.Config, version string) error {
	if cfg.Log.Level != "" {
		if err := logging.SetLevel(cfg.Log.Level); err != nil {
			return err
		}
	}
	closer, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		closer.Close()
		logging.SetOutput(os.Stderr)
	}()

	logging.Infof("starting tui, code length %d (%s)", cfg.Code.Length, cfg.Code.Charset)
	_, err = tea.NewProgram(
		root.New(cfg, version),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		logging.Errorf("tui: %v", err)
	}
	return err
}
