// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

// Package codeinput implements the state of a segmented code entry (one
// character per cell, as used for one-time passcodes) independent of any UI
// toolkit. Typing advances focus to the next cell, clearing a cell moves it
// back, and a backspace on an already empty cell jumps to the previous one.
// Every operation returns the resulting Snapshot plus the events the host
// should act on.
package codeinput
