// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/bookmycook/bookmycook/util/slicest"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
	// text rows hold no inputs and are skipped by focus
	text func(width int) string
}

// Form drives a list of inputs laid out in rows. Focus moves through the
// inputs in declaration order; values are decoded into T by input id.
type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool
	Gap              int

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	// handle key updates for form
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	// pass msg to active input
	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	rows := slicest.Map(f.rows, func(row formRow) string {
		if row.text != nil {
			return lipgloss.PlaceHorizontal(f.size.Width, lipgloss.Center, row.text(f.size.Width))
		}
		width := f.size.Width / len(row.items)
		return lipgloss.JoinHorizontal(
			lipgloss.Center,
			slicest.Map(row.items, func(itemIndex int) string {
				return lipgloss.PlaceHorizontal(width, lipgloss.Center, f.items[itemIndex].input.View(width))
			})...,
		)
	})
	if f.Gap > 0 {
		rows = slicest.MapI(rows, func(i int, row string) string {
			if i == 0 {
				return row
			}
			return lipgloss.NewStyle().MarginTop(f.Gap).Render(row)
		})
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, DefaultKeyMap
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, DefaultKeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// ActiveID returns the id of the focused input.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

// Input looks up an input by id.
func (f *Form[T]) Input(id string) FormInput {
	for _, item := range f.items {
		if item.id == id {
			return item.input
		}
	}
	return nil
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}

	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	var submitCmd tea.Cmd
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	return tea.Batch(resetCmd, submitCmd)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	}

	return tea.Batch(updateCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	delta = delta % len(f.items)

	if delta != 0 {
		f.items[f.activeIndex].input.Blur()
		f.activeIndex = (f.activeIndex + delta + len(f.items)) % len(f.items)
	}

	if !f.focused {
		return nil
	}
	return util.FocusCmd(f)
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if item.id == "" {
			continue
		}
		values[item.id] = item.input.Get()
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
