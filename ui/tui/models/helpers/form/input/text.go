// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/form"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	input   textinput.Model
	secret  bool
	focused bool
}

type TextKeyMap struct {
	Next   key.Binding
	Reveal key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next, k.Reveal} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next, k.Reveal}} }

func NewText(label, placeholder string) *Text {
	reveal := key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "show/hide"),
	)
	reveal.SetEnabled(false)

	input := textinput.New()
	input.Prompt = ""
	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "next"),
			),
			Reveal: reveal,
		},
		input: input,
	}
}

// NewPassword is a Text that masks its value until ctrl+t is pressed.
func NewPassword(label, placeholder string) *Text {
	t := NewText(label, placeholder)
	t.secret = true
	t.KeyMap.Reveal.SetEnabled(true)
	t.input.EchoMode = textinput.EchoPassword
	t.input.EchoCharacter = '•'
	return t
}

// Revealed reports whether a password field currently shows its value.
func (t *Text) Revealed() bool {
	return !t.secret || t.input.EchoMode == textinput.EchoNormal
}

func (t *Text) ToggleReveal() {
	if !t.secret {
		return
	}
	if t.input.EchoMode == textinput.EchoPassword {
		t.input.EchoMode = textinput.EchoNormal
	} else {
		t.input.EchoMode = textinput.EchoPassword
	}
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
	if t.secret {
		t.input.EchoMode = textinput.EchoPassword
	}
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, t.KeyMap.Next):
			return nil, form.ActionNext
		case key.Matches(msg, t.KeyMap.Reveal):
			t.ToggleReveal()
			return nil, form.ActionNone
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	width = max(width, 12)

	label := lipgloss.NewStyle().Foreground(theme.Muted).Render(t.Label)
	var border lipgloss.TerminalColor = theme.Border
	if t.focused {
		label = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(t.Label)
		border = theme.Accent
	}

	t.input.Width = width - 4
	t.input.Placeholder = t.Placeholder

	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Render(t.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, label, field)
}

var _ form.FormInput = (*Text)(nil)
