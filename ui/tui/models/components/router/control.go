// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"github.com/bookmycook/bookmycook/ui/tui/util"
	tea "github.com/charmbracelet/bubbletea"
)

// Control is handed to every routed model through InitMsg and is the only
// way for a screen to navigate.
type Control struct {
	rid int
}

func (c Control) Push(model *util.Model) tea.Cmd {
	return func() tea.Msg { return PushMsg{rid: c.rid, Model: model} }
}

func (c Control) Pop(count int) tea.Cmd {
	return func() tea.Msg { return PopMsg{rid: c.rid, Count: count} }
}

func (c Control) Change(model *util.Model) tea.Cmd {
	return func() tea.Msg { return ChangeMsg{rid: c.rid, Model: model} }
}

// Valid reports whether c was issued by a router.
func (c Control) Valid() bool {
	return c.rid != 0
}
