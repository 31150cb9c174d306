// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"cmp"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func Clamp[T cmp.Ordered](lo, wanted, hi T) T {
	return min(max(lo, wanted), hi)
}

// Size tracks the area a model was last given.
type Size struct {
	Width  int
	Height int
}

// Update records msg if it is a tea.WindowSizeMsg and reports whether it was.
func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

func (s *Size) ToMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: s.Width, Height: s.Height}
}

// Column is the size message for a centered column at most width cells wide.
func (s *Size) Column(width int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: Clamp(0, s.Width, width), Height: s.Height}
}

// Center places the given blocks, stacked and centered, in the middle of s.
func (s *Size) Center(blocks ...string) string {
	return lipgloss.Place(
		s.Width, s.Height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, blocks...),
	)
}
