// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/bookmycook/bookmycook/util/slicest"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgFilter may rewrite or drop (return nil) a message before it reaches an
// item.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msgFilters []MsgFilter) tea.Msg {
	return slicest.ReduceD(msgFilters, msg, func(msgFilter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return msgFilter(model, msg)
	})
}

// KeysOnlyWhenFocused drops key presses for items other than the focused one.
func KeysOnlyWhenFocused(s *Model) MsgFilter {
	return func(model util.Model, msg tea.Msg) tea.Msg {
		if _, ok := msg.(tea.KeyMsg); !ok || s.focussedIndex == FocusAll() {
			return msg
		}
		if s.items[s.focussedIndex].Model != nil && *s.items[s.focussedIndex].Model == model {
			return msg
		}
		return nil
	}
}
