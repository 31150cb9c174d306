// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"strings"
	"testing"

	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keys []key.Binding

func (k keys) ShortHelp() []key.Binding  { return k }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func binding(k, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
}

func TestShortHelpView_DropsDuplicatesAndDisabled(t *testing.T) {
	disabled := binding("x", "hidden")
	disabled.SetEnabled(false)

	m := help.New()
	m.Width = 200
	out := ShortHelpView(m, []key.Binding{binding("tab", "next"), binding("tab", "next"), disabled})
	if strings.Count(out, "tab") != 1 || strings.Contains(out, "hidden") {
		t.Fatalf("unexpected help line %q", out)
	}
}

func TestShortHelpView_TruncatesWithEllipsis(t *testing.T) {
	m := help.New()
	m.Width = 20
	out := ShortHelpView(m, []key.Binding{
		binding("tab", "next"),
		binding("shift+tab", "previous"),
		binding("enter", "submit"),
	})
	if !strings.Contains(out, m.Ellipsis) {
		t.Fatalf("expected ellipsis in %q", out)
	}
	if strings.Contains(out, "submit") {
		t.Fatalf("overflowing binding rendered: %q", out)
	}
}

func TestModel_FollowsAnnouncedKeyMap(t *testing.T) {
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 1})
	if m.View() != "" {
		t.Fatalf("expected empty help before any announcement")
	}
	m.Update(util.AnnounceKeyMapMsg{KeyMap: keys{binding("enter", "verify")}})
	if !strings.Contains(m.View(), "verify") {
		t.Fatalf("announced key map not rendered: %q", m.View())
	}
	m.ToggleExpanded()
	if !strings.Contains(m.View(), "verify") {
		t.Fatalf("full help missing binding: %q", m.View())
	}
}
