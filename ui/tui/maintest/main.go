// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

// Command maintest starts the TUI on built-in defaults, skipping config
// files and flags. Useful while working on screens.
package main

import (
	"fmt"
	"os"

	"github.com/bookmycook/bookmycook/internal/config"
	tui "github.com/bookmycook/bookmycook/ui/tui"
)

func main() {
	cfg := config.Config{
		Language: "en",
		Code:     config.CodeConfig{Length: 6, Charset: "digits"},
		Log:      config.LogConfig{Level: "debug", File: os.Getenv("BOOKMYCOOK_LOG_FILE")},
	}
	if err := tui.Run(cfg, "dev"); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
