// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeys are handled by the root model whatever screen is focused.
type GlobalKeys struct {
	Quit       key.Binding
	ToggleHelp key.Binding
}

func (g GlobalKeys) ShortHelp() []key.Binding {
	return []key.Binding{g.ToggleHelp, g.Quit}
}

func (g GlobalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{g.ShortHelp()}
}

var _ help.KeyMap = GlobalKeys{}

// DefaultGlobalKeys stay off printable characters so every screen can still
// receive them as input.
var DefaultGlobalKeys = GlobalKeys{
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	ToggleHelp: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
}
