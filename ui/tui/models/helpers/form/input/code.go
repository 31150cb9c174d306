// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bookmycook/bookmycook/core/codeinput"
	"github.com/bookmycook/bookmycook/internal/logging"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/form"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CellChangedMsg and CodeCompleteMsg re-raise the code input events to the
// screen hosting the form.
type CellChangedMsg struct {
	Index int
	Value string
}

type CodeCompleteMsg struct {
	Code string
}

// Code renders a codeinput.Input as a row of single character boxes and
// feeds it key presses. The highlighted box only moves when the Input asks
// for it.
type Code struct {
	KeyMap CodeKeyMap
	// ReadClipboard backs the paste key. Defaults to the system clipboard.
	ReadClipboard func() (string, error)

	input   *codeinput.Input
	cursor  int
	focused bool
}

type CodeKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Delete key.Binding
	Paste  key.Binding
	Clear  key.Binding
	Submit key.Binding
}

func (k CodeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Paste, k.Clear}
}

func (k CodeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Delete}, {k.Submit, k.Paste, k.Clear}}
}

var DefaultCodeKeyMap = CodeKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous digit"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next digit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "delete"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "paste"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "verify"),
	),
}

func NewCode(n int, class codeinput.CharClass) (*Code, error) {
	input, err := codeinput.New(n, class)
	if err != nil {
		return nil, err
	}
	return &Code{
		KeyMap:        DefaultCodeKeyMap,
		ReadClipboard: clipboard.ReadAll,
		input:         input,
	}, nil
}

func (c *Code) Len() int { return c.input.Len() }

// Cursor is the index of the highlighted box.
func (c *Code) Cursor() int { return c.cursor }

func (c *Code) Complete() bool { return c.input.Complete() }

func (c *Code) Focus() (tea.Cmd, help.KeyMap) {
	c.focused = true
	return nil, c.KeyMap
}

func (c *Code) Blur() {
	c.focused = false
}

func (c *Code) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, form.ActionNone
	}

	switch {
	case key.Matches(kmsg, c.KeyMap.Submit):
		return nil, form.ActionSubmit
	case key.Matches(kmsg, c.KeyMap.Left):
		c.moveCursor(c.cursor - 1)
	case key.Matches(kmsg, c.KeyMap.Right):
		c.moveCursor(c.cursor + 1)
	case key.Matches(kmsg, c.KeyMap.Delete):
		if c.input.Value(c.cursor) != "" {
			return c.apply(c.input.SetCell(c.cursor, "")), form.ActionNone
		}
		return c.apply(c.input.HandleEdgeDelete(c.cursor, codeinput.KeyBackspace)), form.ActionNone
	case key.Matches(kmsg, c.KeyMap.Clear):
		return c.apply(c.input.Reset()), form.ActionNone
	case key.Matches(kmsg, c.KeyMap.Paste):
		text, err := c.ReadClipboard()
		if err != nil {
			logging.Warnf("code input: reading clipboard: %v", err)
			return nil, form.ActionNone
		}
		return c.apply(c.input.Paste(c.cursor, strings.TrimSpace(text))), form.ActionNone
	case kmsg.Type == tea.KeyRunes && (kmsg.Paste || len(kmsg.Runes) > 1):
		// bracketed paste arrives as a single message
		return c.apply(c.input.Paste(c.cursor, string(kmsg.Runes))), form.ActionNone
	case kmsg.Type == tea.KeyRunes:
		// the cell's new text is its old value plus the typed rune
		raw := c.input.Value(c.cursor) + string(kmsg.Runes)
		return c.apply(c.input.SetCell(c.cursor, raw)), form.ActionNone
	}
	return nil, form.ActionNone
}

func (c *Code) moveCursor(index int) {
	if index < 0 || index >= c.input.Len() {
		return
	}
	c.input.SetFocus(index)
	c.cursor = index
}

// apply carries out focus requests and turns the remaining events into
// messages for the hosting screen.
func (c *Code) apply(_ codeinput.Snapshot, events []codeinput.Event) tea.Cmd {
	var cmds []tea.Cmd
	codeinput.Dispatch(codeinput.HandlerFuncs{
		FocusRequested: func(index int) {
			c.cursor = index
		},
		CellChanged: func(index int, value string) {
			cmds = append(cmds, func() tea.Msg { return CellChangedMsg{Index: index, Value: value} })
		},
		CodeComplete: func(code string) {
			logging.Debugf("code input: complete (%d characters)", len(code))
			cmds = append(cmds, func() tea.Msg { return CodeCompleteMsg{Code: code} })
		},
	}, events)
	return tea.Batch(cmds...)
}

func (c *Code) View(int) string {
	boxes := make([]string, c.input.Len())
	for i := range boxes {
		value := c.input.Value(i)
		var border lipgloss.TerminalColor = theme.Border
		if c.focused && i == c.cursor {
			border = theme.Accent
			if value == "" {
				value = "_"
			}
		}
		if value == "" {
			value = " "
		}
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Bold(true)
		if i > 0 {
			style = style.MarginLeft(1)
		}
		boxes[i] = style.Render(value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (c *Code) Get() any      { return c.input.Code() }
func (c *Code) Init() tea.Cmd { return nil }

func (c *Code) Reset() {
	c.input.Reset()
	c.cursor = 0
}

func (c *Code) Set(value any) {
	if value, ok := value.(string); ok {
		c.Reset()
		c.apply(c.input.Paste(0, value))
	}
}

var _ form.FormInput = (*Code)(nil)
