// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// help.Model truncates without room for the ellipsis and renders disabled
// groups as empty columns. These replacements do neither.

// ShortHelpView renders enabled bindings on one line, ending in an ellipsis
// when they do not fit m.Width.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range enabled(bindings) {
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	return strings.Join(fit(m, items), "")
}

// FullHelpView renders one column per group with at least one enabled
// binding.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		group = enabled(group)
		if len(group) == 0 {
			continue
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		keys := make([]string, len(group))
		descriptions := make([]string, len(group))
		for i, binding := range group {
			keys[i], descriptions[i] = binding.Help().Key, binding.Help().Desc
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

// fit keeps as many leading parts as fit m.Width, leaving room for the
// ellipsis whenever something had to be cut.
func fit(m help.Model, parts []string) []string {
	if m.Width <= 0 {
		return parts
	}
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var used int
	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+partLen <= m.Width) || used+partLen+tailLen <= m.Width {
			used += partLen
			continue
		}
		if used+tailLen <= m.Width {
			return append(slices.Clone(parts[:i]), tail)
		}
		return parts[:i]
	}
	return parts
}

// enabled drops disabled and duplicate bindings. Merged key maps often
// announce the same key twice.
func enabled(bindings []key.Binding) []key.Binding {
	var out []key.Binding
	seen := map[string]bool{}
	for _, b := range bindings {
		h := b.Help()
		id := h.Key + "\x00" + h.Desc
		if !b.Enabled() || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, b)
	}
	return out
}
