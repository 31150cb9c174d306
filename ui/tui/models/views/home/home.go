// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package home

import (
	"github.com/bookmycook/bookmycook/internal/config"
	"github.com/bookmycook/bookmycook/internal/i18n"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/router"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/form"
	forminput "github.com/bookmycook/bookmycook/ui/tui/models/helpers/form/input"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	windowtitle "github.com/bookmycook/bookmycook/ui/tui/models/helpers/title"
	"github.com/bookmycook/bookmycook/ui/tui/models/views/login"
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const contentWidth = 40

// Model is the landing screen. Its only action opens the login screen.
type Model struct {
	code    config.CodeConfig
	control router.Control
	form    form.Form[struct{}]
	size    util.Size
}

func New(code config.CodeConfig) *Model {
	m := &Model{code: code}
	toLogin := forminput.NewButton(i18n.T("home.login"), false)
	toLogin.OnClick = m.openLogin
	m.form = form.New(form.WithInput[struct{}]("", toLogin))
	return m
}

func (m *Model) openLogin() tea.Cmd {
	return m.control.Push(util.ModelPointer(login.New(m.code)))
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case router.InitMsg:
		m.control = msg.Control
		return nil
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		m.form, _ = m.form.Update(m.size.Column(contentWidth))
		return nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model) View() string {
	return m.size.Center(
		theme.Title.Render(i18n.T("home.title")),
		theme.Subtitle.Render(i18n.T("app.tagline")),
		"",
		m.form.View(),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, keyMap := m.form.Focus()
	return tea.Batch(cmd, windowtitle.Set(i18n.T("home.title"))), keyMap
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
