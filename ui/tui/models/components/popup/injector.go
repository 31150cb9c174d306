// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1).
		Margin(0, 1)

	dimmed = lipgloss.NewStyle().Foreground(theme.Border)
)

type entry struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

// Injector renders its child and, while popups are open, the newest popup
// centered on a dimmed copy of the child. Only the newest popup receives
// messages and focus; the child gets them back once all are closed.
type Injector struct {
	child *util.Model
	open  []entry
	size  util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{child: child}
}

// Open reports whether a popup is currently shown.
func (m *Injector) Open() bool {
	return len(m.open) > 0
}

// top is the model currently receiving input.
func (m *Injector) top() *util.Model {
	if n := len(m.open); n > 0 {
		return m.open[n-1].model
	}
	return m.child
}

// inner is the area left for a popup once its frame is drawn.
func (m *Injector) inner() tea.WindowSizeMsg {
	w, h := frame.GetFrameSize()
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-w, 0),
		Height: max(m.size.Height-h, 0),
	}
}

func (m *Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		cmd := (*m.child).Update(msg)
		if m.Open() {
			cmd = tea.Batch(cmd, (*m.top()).Update(m.inner()))
		}
		return cmd
	case openMsg:
		return m.push(entry{model: msg.Model, onClose: msg.OnClose})
	case closeMsg:
		return m.pop()
	}
	return (*m.top()).Update(msg)
}

func (m *Injector) push(e entry) tea.Cmd {
	m.Blur()
	m.open = append(m.open, e)
	return tea.Batch(
		(*e.model).Init(),
		util.FocusCmd(m),
		(*e.model).Update(m.inner()),
	)
}

func (m *Injector) pop() tea.Cmd {
	n := len(m.open)
	if n == 0 {
		return nil
	}
	m.Blur()
	closed := m.open[n-1]
	m.open = m.open[:n-1]

	var cmd tea.Cmd
	if closed.onClose != nil {
		cmd = closed.onClose(closed.model)
	}
	return tea.Batch(util.FocusCmd(m), cmd)
}

func (m *Injector) View() string {
	base := (*m.child).View()
	if !m.Open() {
		return base
	}
	return overlay(dimmed.Render(ansi.Strip(base)), frame.Render((*m.top()).View()))
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.top()).Focus()
}

func (m *Injector) Blur() {
	(*m.top()).Blur()
}

var _ util.Model = (*Injector)(nil)
