// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"github.com/bookmycook/bookmycook/ui/tui/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (r *Router) activeModelGet() *util.Model {
	return r.modelStack[len(r.modelStack)-1]
}

func (r *Router) activeModelSet(model *util.Model) {
	r.modelStack[len(r.modelStack)-1] = model
}

func (r *Router) activeModelPop() *util.Model {
	model := r.activeModelGet()
	r.modelStack = r.modelStack[:len(r.modelStack)-1]
	return model
}

func (r *Router) activeModelUpdate(msg tea.Msg) tea.Cmd {
	return (*r.activeModelGet()).Update(msg)
}

func (r *Router) activeModelFocus() tea.Cmd {
	return util.FocusCmd(*r.activeModelGet())
}

func (r *Router) navigated() tea.Cmd {
	depth := len(r.modelStack)
	return func() tea.Msg { return NavigatedMsg{rid: r.id, Depth: depth} }
}

func (r *Router) activeModelInit() tea.Cmd {
	return tea.Batch(
		(*r.activeModelGet()).Init(),
		r.activeModelUpdate(InitMsg{Control: Control{rid: r.id}}),
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
		r.navigated(),
	)
}
