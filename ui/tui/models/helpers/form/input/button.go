// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/form"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button submits its form on enter unless OnClick is set, in which case the
// command returned by OnClick runs instead.
type Button struct {
	Label    string
	Disabled bool
	KeyMap   ButtonKeyMap
	OnClick  func() tea.Cmd

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

func NewButton(label string, disabled bool) *Button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())

	return &Button{
		Label:    label,
		Disabled: disabled,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		DisabledStyle: base.
			BorderForeground(theme.Border).
			Foreground(theme.Muted),
		BlurredStyle: base.
			BorderForeground(theme.Accent).
			Foreground(theme.Accent),
		FocusedStyle: base.
			BorderForeground(theme.Accent).
			Background(theme.Accent).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
	}
}

// NewLink is a borderless Button running onClick, used for inline actions
// like "Resend".
func NewLink(label string, onClick func() tea.Cmd) *Button {
	b := NewButton(label, false)
	b.OnClick = onClick
	b.BlurredStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	b.FocusedStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Underline(true)
	b.DisabledStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	return b
}

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return nil, b.KeyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
		if b.OnClick != nil {
			return b.OnClick(), form.ActionNone
		}
		return nil, form.ActionSubmit
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	if b.Disabled {
		style = b.DisabledStyle
	} else if b.focused {
		style = b.FocusedStyle
	}
	if width > 2 {
		style = style.MaxWidth(width)
	}
	return style.Render(b.Label)
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var _ form.FormInput = (*Button)(nil)
