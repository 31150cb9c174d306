// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var routerID = 1

// Router keeps a stack of screens. Only the top one is rendered and receives
// messages.
type Router struct {
	id         int
	size       util.Size
	modelStack []*util.Model
}

func New(initialModel *util.Model) (*Router, Control) {
	routerID++
	return &Router{
			id:         routerID - 1,
			modelStack: []*util.Model{initialModel},
		}, Control{
			rid: routerID - 1,
		}
}

func (r *Router) Init() tea.Cmd {
	return tea.Batch(
		(*r.activeModelGet()).Init(),
		r.activeModelUpdate(InitMsg{Control: Control{rid: r.id}}),
	)
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if r.size.Update(msg) {
		// pass window size messages
		cmd = r.activeModelUpdate(msg)
	} else if r.isMsgOwner(msg) {
		// handle control messages meant for this router
		switch msg := msg.(type) {
		case PushMsg:
			cmd = r.handlePush(msg)
		case PopMsg:
			cmd = r.handlePop(msg)
		case ChangeMsg:
			cmd = r.handleChange(msg)
		}
	} else if IsRouterMsg(msg) {
		// do not pass init messages, to prevent childs from obtaining parent routers Control
		if _, ok := msg.(InitMsg); !ok {
			// pass other control messages for child routers
			cmd = r.activeModelUpdate(msg)
		}
	} else {
		// pass other messages
		cmd = r.activeModelUpdate(msg)
	}

	return cmd
}

func (r *Router) View() string {
	return (*r.activeModelGet()).View()
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	return (*r.activeModelGet()).Focus()
}

func (r *Router) Blur() {
	(*r.activeModelGet()).Blur()
}

// *Router implements util.Model
var _ util.Model = (*Router)(nil)

// Depth is the number of stacked screens, at least 1.
func (r *Router) Depth() int {
	return len(r.modelStack)
}

// Active returns the model currently on top.
func (r *Router) Active() *util.Model {
	return r.activeModelGet()
}

func (r *Router) handlePush(msg PushMsg) tea.Cmd {
	(*r.activeModelGet()).Blur()
	r.modelStack = append(r.modelStack, msg.Model)
	return r.activeModelInit()
}

func (r *Router) handlePop(msg PopMsg) tea.Cmd {
	for range msg.Count {
		if len(r.modelStack) <= 1 {
			break
		}
		(*r.activeModelPop()).Blur()
	}
	return tea.Batch(r.activeModelFocus(), r.navigated())
}

func (r *Router) handleChange(msg ChangeMsg) tea.Cmd {
	(*r.activeModelGet()).Blur()
	r.activeModelSet(msg.Model)
	return r.activeModelInit()
}

func (r *Router) isMsgOwner(msg tea.Msg) bool {
	rmsg, ok := msg.(RouterMsg)
	return ok && rmsg.routerID() == r.id
}

func IsRouterMsg(msg tea.Msg) bool {
	_, ok := msg.(RouterMsg)
	return ok
}
