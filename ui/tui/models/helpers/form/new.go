// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

func WithGap[T any](gap int) NewOpt[T] {
	return func(form *Form[T]) {
		form.Gap = gap
	}
}

// WithInput adds an input on a row of its own. Inputs with an empty id are
// left out of the decoded result.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return WithRow[T](Field{ID: id, Input: input})
}

type Field struct {
	ID    string
	Input FormInput
}

// WithRow adds several inputs side by side.
func WithRow[T any](fields ...Field) NewOpt[T] {
	return func(form *Form[T]) {
		var row formRow
		for _, field := range fields {
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{
				id:    field.ID,
				input: field.Input,
			})
		}
		if len(row.items) > 0 {
			form.rows = append(form.rows, row)
		}
	}
}

// WithText adds a row rendered by render, e.g. a separator or a caption.
func WithText[T any](render func(width int) string) NewOpt[T] {
	return func(form *Form[T]) {
		form.rows = append(form.rows, formRow{text: render})
	}
}
