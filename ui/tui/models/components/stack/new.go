// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/lipgloss"
)

type NewOpt = func(stack *Model)

// New builds a stack. Items keep the order of their WithItem options and the
// initial focus is clamped to the items present.
func New(opts ...NewOpt) *Model {
	s := &Model{Orientation: Horizontal, Align: lipgloss.Top}
	for _, opt := range opts {
		opt(s)
	}
	s.focussedIndex = util.Clamp(FocusAll(), s.focussedIndex, Focus(len(s.items)-1))
	return s
}

func WithOrientation(orientation Orientation) NewOpt {
	return func(s *Model) { s.Orientation = orientation }
}

func WithItem(model *util.Model, size SizeConfig, filters ...MsgFilter) NewOpt {
	return func(s *Model) {
		s.items = append(s.items, Item{Model: model, SizeConfig: size, MsgFilters: filters})
	}
}

// WithMsgFilter registers a filter applied to every item. The filter is
// built from the finished stack so it can look at its focus.
func WithMsgFilter(build func(*Model) MsgFilter) NewOpt {
	return func(s *Model) { s.MsgFilters = append(s.MsgFilters, build(s)) }
}

func WithFocus(focus Focus) NewOpt {
	return func(s *Model) { s.focussedIndex = focus }
}
