// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme holds the brand palette and the styles shared by screens.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	Accent     = lipgloss.Color("#DB3B00")
	AccentSoft = lipgloss.AdaptiveColor{Light: "#F0A07F", Dark: "#7A2A0B"}
	Muted      = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#7C7C7C"}
	Border     = lipgloss.AdaptiveColor{Light: "#B9B9B9", Dark: "#5A5A5A"}
	Text       = lipgloss.AdaptiveColor{Light: "#303030", Dark: "#E4E4E4"}
	Success    = lipgloss.Color("#1AFF00")
)

var (
	Title = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Subtitle = lipgloss.NewStyle().
			Foreground(Text)

	Link = lipgloss.NewStyle().
		Foreground(Accent)

	Hint = lipgloss.NewStyle().
		Foreground(Muted)

	Alert = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Accent).
		Padding(0, 1)

	Notice = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)
)

// Separator renders "──── label ────" across width cells.
func Separator(label string, width int) string {
	line := lipgloss.NewStyle().Foreground(AccentSoft)
	side := max((width-lipgloss.Width(label)-2)/2, 1)
	bar := make([]rune, side)
	for i := range bar {
		bar[i] = '─'
	}
	return line.Render(string(bar)) + " " + label + " " + line.Render(string(bar))
}
