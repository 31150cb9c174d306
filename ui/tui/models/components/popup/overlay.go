// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlay draws top over the middle of base. top is cut to the size of base;
// the lines of base around it keep their styling.
func overlay(base, top string) string {
	width, height := lipgloss.Size(base)
	top = lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(top)
	topWidth, topHeight := lipgloss.Size(top)

	left := (width - topWidth) / 2
	first := (height - topHeight) / 2

	lines := strings.Split(base, "\n")
	for i, over := range strings.Split(top, "\n") {
		line := lines[first+i]
		if w := ansi.StringWidth(line); w < left {
			line += strings.Repeat(" ", left-w)
		}
		lines[first+i] = ansi.Truncate(line, left, "") + over + ansi.TruncateLeft(line, left+topWidth, "")
	}
	return strings.Join(lines, "\n")
}
