// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type NoticeKeyMap struct {
	Close key.Binding
}

func (km NoticeKeyMap) ShortHelp() []key.Binding  { return []key.Binding{km.Close} }
func (km NoticeKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{km.Close}} }

var DefaultNoticeKeyMap = NoticeKeyMap{
	Close: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter", "close"),
	),
}

// Notice is a popup showing a short message until it is dismissed.
type Notice struct {
	Title string
	Body  string
	size  util.Size
}

func NewNotice(title, body string) *Notice {
	return &Notice{Title: title, Body: body}
}

func (n *Notice) Init() tea.Cmd { return nil }

func (n *Notice) Update(msg tea.Msg) tea.Cmd {
	if n.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, DefaultNoticeKeyMap.Close) {
		return Close()
	}
	return nil
}

func (n *Notice) View() string {
	width := util.Clamp(20, n.size.Width, 44)
	return lipgloss.JoinVertical(
		lipgloss.Center,
		theme.Title.Render(n.Title),
		"",
		lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(n.Body),
	)
}

func (n *Notice) Focus() (tea.Cmd, help.KeyMap) { return nil, DefaultNoticeKeyMap }
func (n *Notice) Blur()                         {}

// *Notice implements util.Model
var _ util.Model = (*Notice)(nil)
