// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const logo string = "Bookmycook"

type Model struct {
	size    util.Size
	version string
}

func New(version string) *Model {
	return &Model{version: version}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m *Model) View() string {
	brand := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(theme.Accent).
		Bold(true).
		Padding(0, 2).
		Render(logo)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, brand),
		lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Right, theme.Hint.Render(m.version)),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
