// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package otp

import (
	"strings"
	"testing"

	"github.com/bookmycook/bookmycook/core/codeinput"
	"github.com/bookmycook/bookmycook/internal/testutil"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/popup"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/router"
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// placeholder stands in for the screens below the verification screen.
type placeholder struct{}

func (placeholder) Init() tea.Cmd                 { return nil }
func (placeholder) Update(tea.Msg) tea.Cmd        { return nil }
func (placeholder) View() string                  { return "placeholder" }
func (placeholder) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (placeholder) Blur()                         {}

// start puts the verification screen on top of two placeholder screens,
// inside a popup injector.
func start(t *testing.T) (*popup.Injector, *router.Router, *Model) {
	t.Helper()
	m, err := New(6, codeinput.Digits, "ann@example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r, ctl := router.New(util.ModelPointer(&placeholder{}))
	inj := popup.NewInjector(util.ModelPointer(r))
	testutil.DriveCmd(inj, inj.Init())
	testutil.DriveCmd(inj, util.FocusCmd(inj))
	testutil.Drive(inj, tea.WindowSizeMsg{Width: 100, Height: 40})
	testutil.DriveCmd(inj, ctl.Push(util.ModelPointer(&placeholder{})))
	testutil.DriveCmd(inj, ctl.Push(util.ModelPointer(m)))
	if r.Depth() != 3 {
		t.Fatalf("setup depth = %d", r.Depth())
	}
	return inj, r, m
}

func TestCompleteCodeReturnsHome(t *testing.T) {
	inj, r, m := start(t)

	testutil.Drive(inj, testutil.Keys("42019")...)
	if r.Depth() != 3 {
		t.Fatalf("left before the code was complete, depth %d", r.Depth())
	}
	if m.Code().Cursor() != 5 {
		t.Fatalf("cursor = %d, want 5", m.Code().Cursor())
	}

	testutil.Drive(inj, testutil.Keys("7")...)
	if r.Depth() != 1 {
		t.Fatalf("depth = %d after complete code, want 1", r.Depth())
	}
}

func TestVerifyIncompleteShowsAlert(t *testing.T) {
	inj, r, m := start(t)

	testutil.Drive(inj, testutil.Keys("42", "tab", "enter")...)
	if m.Alert() != "Please enter the full code" {
		t.Fatalf("alert = %q", m.Alert())
	}
	if r.Depth() != 3 {
		t.Fatalf("depth = %d", r.Depth())
	}
	if !strings.Contains(inj.View(), "Please enter the full code") {
		t.Fatalf("alert not rendered:\n%s", inj.View())
	}

	// editing the code clears the alert
	testutil.Drive(inj, testutil.Keys("shift+tab", "0")...)
	if m.Alert() != "" {
		t.Fatalf("alert not cleared: %q", m.Alert())
	}
}

func TestVerifyButtonWithCompleteCode(t *testing.T) {
	inj, r, m := start(t)

	// a paste completes the code at once; verify pops exactly once
	testutil.Drive(inj, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("420197"), Paste: true})
	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if m.Alert() != "" {
		t.Fatalf("alert = %q", m.Alert())
	}
}

func TestBackspaceWalksBack(t *testing.T) {
	inj, _, m := start(t)

	testutil.Drive(inj, testutil.Keys("420")...)
	testutil.Drive(inj, testutil.Keys("backspace")...)
	if m.Code().Cursor() != 2 {
		t.Fatalf("edge delete: cursor = %d, want 2", m.Code().Cursor())
	}
	testutil.Drive(inj, testutil.Keys("backspace")...)
	if m.Code().Cursor() != 1 || m.Code().Get() != "42" {
		t.Fatalf("clear: cursor %d code %q", m.Code().Cursor(), m.Code().Get())
	}
}

func TestResendResetsCodeAndShowsNotice(t *testing.T) {
	inj, r, m := start(t)
	first := m.Challenge()

	testutil.Drive(inj, testutil.Keys("420", "tab", "tab", "enter")...)
	if !inj.Open() {
		t.Fatal("resend did not open a notice")
	}
	if m.Code().Cursor() != 0 || m.Code().Complete() {
		t.Fatalf("code not reset, cursor %d", m.Code().Cursor())
	}
	if m.Challenge() == "" || m.Challenge() == first {
		t.Fatalf("challenge not renewed: %q", m.Challenge())
	}
	if !strings.Contains(inj.View(), "Code sent") {
		t.Fatalf("notice not rendered:\n%s", inj.View())
	}

	testutil.Drive(inj, testutil.Keys("enter")...)
	if inj.Open() {
		t.Fatal("notice not closed")
	}
	if r.Depth() != 3 {
		t.Fatalf("depth = %d", r.Depth())
	}

	// focus is back on the code
	testutil.Drive(inj, testutil.Keys("420197")...)
	if r.Depth() != 1 {
		t.Fatalf("depth = %d after entering the code", r.Depth())
	}
}

func TestNewRejectsInvalidLength(t *testing.T) {
	if _, err := New(0, codeinput.Digits, "x"); err == nil {
		t.Fatal("New accepted length 0")
	}
}
