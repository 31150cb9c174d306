// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"github.com/bookmycook/bookmycook/ui/tui/util"
	tea "github.com/charmbracelet/bubbletea"
)

// openMsg asks the nearest Injector to show Model on top of its content.
// OnClose, if set, runs once the popup is gone.
type openMsg struct {
	Model   *util.Model
	OnClose func(*util.Model) tea.Cmd
}

type closeMsg struct{}

// Open shows m as a popup.
func Open(m *util.Model) tea.Cmd {
	return OpenWithCallback(m, nil)
}

// OpenWithCallback shows m as a popup and runs onClose with it after it is
// closed.
func OpenWithCallback(m *util.Model, onClose func(*util.Model) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m, OnClose: onClose} }
}

// Close dismisses the current popup.
func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}
