// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

// TitleHandler owns the terminal window title, "<Base><Delimiter><screen>".
type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

func (t *TitleHandler) Title() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t *TitleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

// Handle consumes messages created by Set. It reports false for all others.
func (t *TitleHandler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	title, ok := msg.(titleMsg)
	if !ok {
		return nil, false
	}
	if t.current == string(title) {
		return nil, true
	}
	t.current = string(title)
	return tea.SetWindowTitle(t.Title()), true
}
