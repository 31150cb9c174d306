// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"testing"

	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type box struct {
	size    util.Size
	keys    int
	focused bool
}

func (b *box) Init() tea.Cmd { return nil }

func (b *box) Update(msg tea.Msg) tea.Cmd {
	if b.size.Update(msg) {
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		b.keys++
	}
	return nil
}

func (b *box) View() string { return "x" }
func (b *box) Blur()        { b.focused = false }

func (b *box) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return nil, nil
}

func TestStack_SplitsHeight(t *testing.T) {
	header, body, footer := &box{}, &box{}, &box{}
	s := New(
		WithOrientation(Vertical),
		WithItem(util.ModelPointer(header), StaticSize(3)),
		WithItem(util.ModelPointer(body), VariableSize(1)),
		WithItem(util.ModelPointer(footer), StaticSize(2)),
	)
	s.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	if header.size.Height != 3 || footer.size.Height != 2 {
		t.Fatalf("static sizes not applied: header=%d footer=%d", header.size.Height, footer.size.Height)
	}
	if body.size.Height != 15 {
		t.Fatalf("variable item should take the rest, got %d", body.size.Height)
	}
	if body.size.Width != 40 {
		t.Fatalf("vertical stack must pass full width, got %d", body.size.Width)
	}
}

func TestStack_VariableWeights(t *testing.T) {
	a, b := &box{}, &box{}
	s := New(
		WithItem(util.ModelPointer(a), VariableSize(1)),
		WithItem(util.ModelPointer(b), VariableSize(3)),
	)
	s.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if a.size.Width != 10 || b.size.Width != 30 {
		t.Fatalf("weights not honoured: a=%d b=%d", a.size.Width, b.size.Width)
	}
}

func TestStack_FocusAndKeyFilter(t *testing.T) {
	a, b := &box{}, &box{}
	s := New(
		WithFocus(FocusIndex(1)),
		WithMsgFilter(KeysOnlyWhenFocused),
		WithItem(util.ModelPointer(a), VariableSize(1)),
		WithItem(util.ModelPointer(b), VariableSize(1)),
	)
	s.Focus()
	if a.focused || !b.focused {
		t.Fatalf("expected only item 1 focused")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if a.keys != 0 || b.keys != 1 {
		t.Fatalf("keys must only reach the focused item: a=%d b=%d", a.keys, b.keys)
	}

	s.SetFocus(FocusAll())
	if !a.focused || !b.focused {
		t.Fatalf("FocusAll must focus every item")
	}
}
