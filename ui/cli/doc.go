// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface using Cobra. It loads the
// configuration, sets up logging and translations, and starts the TUI.
package cli
