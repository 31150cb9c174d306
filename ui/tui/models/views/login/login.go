// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package login

import (
	"strings"

	"github.com/bookmycook/bookmycook/internal/config"
	"github.com/bookmycook/bookmycook/internal/i18n"
	"github.com/bookmycook/bookmycook/internal/logging"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/router"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/form"
	forminput "github.com/bookmycook/bookmycook/ui/tui/models/helpers/form/input"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	windowtitle "github.com/bookmycook/bookmycook/ui/tui/models/helpers/title"
	"github.com/bookmycook/bookmycook/ui/tui/models/views/otp"
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const contentWidth = 48

type Credentials struct {
	Identifier string `mapstructure:"identifier"`
	Password   string `mapstructure:"password"`
	Remember   bool   `mapstructure:"remember"`
}

type Model struct {
	code    config.CodeConfig
	control router.Control
	form    form.Form[Credentials]
	size    util.Size

	// alert is a validation problem, notice an informational line
	alert  string
	notice string
}

func New(code config.CodeConfig) *Model {
	m := &Model{code: code}

	// none of these flows exist yet
	notAvailable := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			m.notice = i18n.T("login.unavailable", label)
			m.alert = ""
			return nil
		}
	}
	unavailable := func(label string) *forminput.Button {
		return forminput.NewLink(label, notAvailable(label))
	}
	social := func(label string) *forminput.Button {
		b := forminput.NewButton(label, false)
		b.OnClick = notAvailable(label)
		return b
	}

	m.form = form.New(
		form.WithGap[Credentials](1),
		form.WithInput[Credentials]("identifier", forminput.NewText(i18n.T("login.identifier"), i18n.T("login.identifier.placeholder"))),
		form.WithInput[Credentials]("password", forminput.NewPassword(i18n.T("login.password"), "")),
		form.WithRow[Credentials](
			form.Field{ID: "remember", Input: forminput.NewCheckbox(i18n.T("login.remember"))},
			form.Field{Input: unavailable(i18n.T("login.forgot"))},
		),
		form.WithInput[Credentials]("", forminput.NewButton(i18n.T("login.submit"), false)),
		form.WithText[Credentials](func(width int) string {
			return theme.Separator(i18n.T("login.or"), width-4)
		}),
		form.WithRow[Credentials](
			form.Field{Input: social(i18n.T("login.google"))},
			form.Field{Input: social(i18n.T("login.facebook"))},
		),
		form.WithText[Credentials](func(int) string {
			return theme.Hint.Render(i18n.T("login.signup.prompt"))
		}),
		form.WithInput[Credentials]("", unavailable(i18n.T("login.signup"))),
		form.WithOnSubmit(func(c Credentials, err error) tea.Cmd {
			if err != nil {
				logging.Errorf("login: decoding form: %v", err)
				return nil
			}
			return m.submit(c)
		}),
	)
	return m
}

func (m *Model) submit(c Credentials) tea.Cmd {
	m.notice = ""
	if id := validate(c); id != "" {
		logging.Debugf("login: rejected submit: %s", id)
		m.alert = i18n.T(id)
		return nil
	}
	m.alert = ""

	class, err := m.code.CharClass()
	if err != nil {
		logging.Errorf("login: %v", err)
		return nil
	}
	next, err := otp.New(m.code.Length, class, strings.TrimSpace(c.Identifier))
	if err != nil {
		logging.Errorf("login: opening verification: %v", err)
		return nil
	}
	logging.Infof("login: credentials accepted, remember=%t", c.Remember)
	return m.control.Push(util.ModelPointer(next))
}

// Alert returns the validation message currently shown, if any.
func (m *Model) Alert() string { return m.alert }

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
	parts := []string{
		theme.Title.Render(i18n.T("login.title")),
		theme.Subtitle.Render(i18n.T("login.subtitle")),
		"",
	}
	if m.alert != "" {
		parts = append(parts, theme.Alert.Render(m.alert), "")
	}
	parts = append(parts, m.form.View())
	if m.notice != "" {
		parts = append(parts, "", theme.Notice.Render(m.notice))
	}

	return m.size.Center(parts...)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, keyMap := m.form.Focus()
	return tea.Batch(cmd, windowtitle.Set(i18n.T("login.title"))), keyMap
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
