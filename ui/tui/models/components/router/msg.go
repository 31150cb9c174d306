// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"github.com/bookmycook/bookmycook/ui/tui/util"
)

// Router invoked messages
// Router -> Model

type InitMsg struct {
	Control Control
}

// Control invoked messages
// Model-Control -> Router

type PushMsg struct {
	rid   int
	Model *util.Model
}
type PopMsg struct {
	rid   int
	Count int
}
type ChangeMsg struct {
	rid   int
	Model *util.Model
}

// NavigatedMsg is sent to the new active model's parents after the router
// changed screens.
type NavigatedMsg struct {
	rid   int
	Depth int
}

func (m InitMsg) routerID() int      { return m.Control.rid }
func (m PushMsg) routerID() int      { return m.rid }
func (m PopMsg) routerID() int       { return m.rid }
func (m ChangeMsg) routerID() int    { return m.rid }
func (m NavigatedMsg) routerID() int { return m.rid }

type RouterMsg interface {
	routerID() int
}
