// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/form"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Checkbox struct {
	Label   string
	Checked bool
	KeyMap  CheckboxKeyMap

	focused bool
}

type CheckboxKeyMap struct {
	Toggle key.Binding
}

func (k CheckboxKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Toggle} }
func (k CheckboxKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Toggle}} }

func NewCheckbox(label string) *Checkbox {
	return &Checkbox{
		Label: label,
		KeyMap: CheckboxKeyMap{
			Toggle: key.NewBinding(
				key.WithKeys(" ", "enter"),
				key.WithHelp("space", "toggle"),
			),
		},
	}
}

func (c *Checkbox) Focus() (tea.Cmd, help.KeyMap) {
	c.focused = true
	return nil, c.KeyMap
}

func (c *Checkbox) Blur() {
	c.focused = false
}

func (c *Checkbox) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, c.KeyMap.Toggle) {
		c.Checked = !c.Checked
	}
	return nil, form.ActionNone
}

func (c *Checkbox) View(int) string {
	box := lipgloss.NewStyle().Foreground(theme.Text).Render("[ ]")
	if c.Checked {
		box = "[" + lipgloss.NewStyle().Foreground(theme.Success).Render("✓") + "]"
	}
	label := lipgloss.NewStyle().Foreground(theme.Text)
	if c.focused {
		label = label.Foreground(theme.Accent).Bold(true)
	}
	return box + " " + label.Render(c.Label)
}

func (c *Checkbox) Get() any      { return c.Checked }
func (c *Checkbox) Init() tea.Cmd { return nil }
func (c *Checkbox) Reset()        { c.Checked = false }

func (c *Checkbox) Set(value any) {
	if value, ok := value.(bool); ok {
		c.Checked = value
	}
}

var _ form.FormInput = (*Checkbox)(nil)
