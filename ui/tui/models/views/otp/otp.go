// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package otp

import (
	"github.com/bookmycook/bookmycook/core/codeinput"
	"github.com/bookmycook/bookmycook/internal/i18n"
	"github.com/bookmycook/bookmycook/internal/logging"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/popup"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/router"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/form"
	forminput "github.com/bookmycook/bookmycook/ui/tui/models/helpers/form/input"
	"github.com/bookmycook/bookmycook/ui/tui/models/helpers/theme"
	windowtitle "github.com/bookmycook/bookmycook/ui/tui/models/helpers/title"
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const contentWidth = 48

// returnDepth is how many screens a verified code pops: this one and login.
const returnDepth = 2

type Verification struct {
	Code string `mapstructure:"code"`
}

// Model asks for the one-time code sent to identifier. Every code sent gets
// a fresh challenge id so log lines of one attempt can be told apart.
type Model struct {
	identifier string
	challenge  string
	control    router.Control
	code       *forminput.Code
	form       form.Form[Verification]
	size       util.Size
	alert      string
	verified   bool
}

func New(length int, class codeinput.CharClass, identifier string) (*Model, error) {
	code, err := forminput.NewCode(length, class)
	if err != nil {
		return nil, err
	}

	m := &Model{identifier: identifier, challenge: uuid.NewString(), code: code}
	m.form = form.New(
		form.WithGap[Verification](1),
		form.WithInput[Verification]("code", code),
		form.WithInput[Verification]("", forminput.NewButton(i18n.T("otp.verify"), false)),
		form.WithText[Verification](func(int) string {
			return theme.Hint.Render(i18n.T("otp.resend.prompt"))
		}),
		form.WithInput[Verification]("", forminput.NewLink(i18n.T("otp.resend"), m.resend)),
		form.WithOnSubmit(func(v Verification, err error) tea.Cmd {
			if err != nil {
				logging.Errorf("otp: decoding form: %v", err)
				return nil
			}
			return m.verify()
		}),
	)
	return m, nil
}

// verify leaves the flow once every cell is filled.
func (m *Model) verify() tea.Cmd {
	if m.verified {
		return nil
	}
	if !m.code.Complete() {
		m.alert = i18n.T("otp.error.incomplete")
		logging.Debugf("otp[%s]: verify with incomplete code", m.challenge)
		return nil
	}
	m.alert = ""
	m.verified = true
	logging.Infof("otp[%s]: code entered for %s", m.challenge, m.identifier)
	return m.control.Pop(returnDepth)
}

type resendMsg struct{}

// resend runs from inside the form update, so the form itself is only reset
// once resendMsg comes back.
func (m *Model) resend() tea.Cmd {
	return func() tea.Msg { return resendMsg{} }
}

func (m *Model) handleResend() tea.Cmd {
	m.alert = ""
	m.challenge = uuid.NewString()
	logging.Infof("otp[%s]: resending code to %s", m.challenge, m.identifier)
	return tea.Batch(
		m.form.Reset(),
		popup.Open(util.ModelPointer(popup.NewNotice(i18n.T("otp.resent.title"), i18n.T("otp.resent.body")))),
	)
}

// Alert returns the validation message currently shown, if any.
func (m *Model) Alert() string { return m.alert }

// Challenge identifies the code currently expected.
func (m *Model) Challenge() string { return m.challenge }

// Code exposes the code input.
func (m *Model) Code() *forminput.Code { return m.code }

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
	case forminput.CodeCompleteMsg:
		return m.verify()
	case forminput.CellChangedMsg:
		m.alert = ""
		return nil
	case resendMsg:
		return m.handleResend()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m *Model) View() string {
	parts := []string{
		theme.Title.Render(i18n.T("otp.title")),
		lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(
			theme.Subtitle.Render(i18n.T("otp.subtitle", map[string]any{
				"Length":     m.code.Len(),
				"Identifier": m.identifier,
			})),
		),
		"",
	}
	if m.alert != "" {
		parts = append(parts, theme.Alert.Render(m.alert), "")
	}
	parts = append(parts, m.form.View())

	return m.size.Center(parts...)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, keyMap := m.form.Focus()
	return tea.Batch(cmd, windowtitle.Set(i18n.T("otp.title"))), keyMap
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
