// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the contract every screen and component of the TUI implements.
// Unlike tea.Model, Update mutates in place, so models are shared through
// *Model pointers.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// polyfill: won't be needed as of go 1.26
func ref[T any](v T) *T { return &v }

func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	return ref(Model(v))
}

func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	t := (*m).(PT)
	fn(t)
	*m = Model(t)
}

// BorrowModelSafe is BorrowModelFunc without the panic on a type mismatch.
func BorrowModelSafe[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) bool {
	t, ok := (*m).(PT)
	if !ok {
		return false
	}
	fn(t)
	*m = Model(t)
	return true
}
