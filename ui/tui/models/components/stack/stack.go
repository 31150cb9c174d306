// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/bookmycook/bookmycook/util/slicest"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

// Model lays out its items along one axis and splits the available size
// between them according to their SizeConfig.
type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

func (s *Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			// apply message filters
			itemMsg := applyMessageFilters(*item.Model, msg, item.MsgFilters)
			itemMsg = applyMessageFilters(*item.Model, itemMsg, s.MsgFilters)
			if itemMsg == nil {
				return nil
			}

			// update model
			return (*item.Model).Update(itemMsg)
		})...)

		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s *Model) View() string {
	// prepare based on orientation
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	// join rendered items
	return joiner(
		s.Align,
		slicest.MapI(s.items, func(i int, item Item) string {
			if item.size == 0 {
				return ""
			}
			// no gap on first item
			margin := s.Gap * min(i, 1)
			return styler(item.size, margin).Render((*item.Model).View())
		})...,
	)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if s.focussedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))

		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}

		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focussedIndex].Model).Focus()
}

func (s *Model) Blur() {
	if s.focussedIndex == FocusAll() {
		for _, item := range s.items {
			(*item.Model).Blur()
		}
	} else {
		(*s.items[s.focussedIndex].Model).Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}
