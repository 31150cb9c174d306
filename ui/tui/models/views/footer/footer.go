// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/bookmycook/bookmycook/ui/tui/models/components/keyhelp"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/stack"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var rule = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(theme.Border).
	BorderTop(true)

// Model shows the key help of the focused screen followed by the global
// keys.
type Model struct {
	global help.KeyMap
	size   util.Size
	help   *keyhelp.Model
}

func New(global help.KeyMap) *Model {
	return &Model{
		global: global,
		help:   keyhelp.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.global),
		})
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m *Model) View() string {
	align := lipgloss.Left
	if m.help.Expanded {
		align = lipgloss.Center
	}
	return rule.Render(lipgloss.Place(
		m.size.Width, max(m.size.Height-1, 1),
		align, lipgloss.Top,
		m.help.View(),
	))
}

// The footer never takes focus.
func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur()                         {}

var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

func (m *Model) Expanded() bool {
	return m.help.Expanded
}

// SizeConfig sizes the footer to its help text plus the top rule.
var SizeConfig stack.SizeConfig = sizeConfig{}

type sizeConfig struct{}

func (sizeConfig) Priority() int { return 20 }

func (sizeConfig) Calculate(model util.Model, _ int, _ int) int {
	if m, ok := model.(*Model); ok {
		return lipgloss.Height(m.help.View()) + rule.GetVerticalFrameSize()
	}
	return 2
}
