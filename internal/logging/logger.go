// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the application wide logger. While the TUI owns the
// terminal it writes to a file or nowhere at all.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger.
var L = clog.New(os.Stderr)

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}

// SetLevel accepts the names understood by charmbracelet/log ("debug",
// "info", "warn", "error", "fatal").
func SetLevel(name string) error {
	level, err := clog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	L.SetLevel(level)
	return nil
}

func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// OpenFile redirects the logger to path, appending. An empty path discards
// all output. The returned closer must be called on shutdown.
func OpenFile(path string) (io.Closer, error) {
	if path == "" {
		L.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	L.SetOutput(f)
	L.SetReportTimestamp(true)
	return f, nil
}
