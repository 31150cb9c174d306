// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Bookmycook.
//
// Usage:
//
//	go run . [flags]
//	./bookmycook [flags]
//
// This launches the sign-in TUI. See --help for options.
package main

import (
	"os"

	"github.com/bookmycook/bookmycook/internal/logging"
	"github.com/bookmycook/bookmycook/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("bookmycook: %v", err)
		os.Exit(1)
	}
}
