// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

package codeinput

// Handler receives the events of an Input on the host side.
type Handler interface {
	OnCellChanged(index int, value string)
	OnFocusRequested(index int)
	OnCodeComplete(code string)
}

// HandlerFuncs adapts plain functions to Handler. Nil fields are skipped.
type HandlerFuncs struct {
	CellChanged    func(index int, value string)
	FocusRequested func(index int)
	CodeComplete   func(code string)
}

func (h HandlerFuncs) OnCellChanged(index int, value string) {
	if h.CellChanged != nil {
		h.CellChanged(index, value)
	}
}

func (h HandlerFuncs) OnFocusRequested(index int) {
	if h.FocusRequested != nil {
		h.FocusRequested(index)
	}
}

func (h HandlerFuncs) OnCodeComplete(code string) {
	if h.CodeComplete != nil {
		h.CodeComplete(code)
	}
}

var _ Handler = HandlerFuncs{}

// Dispatch delivers events to h in order.
func Dispatch(h Handler, events []Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case CellChanged:
			h.OnCellChanged(ev.Index, ev.Value)
		case FocusRequested:
			h.OnFocusRequested(ev.Index)
		case CodeComplete:
			h.OnCodeComplete(ev.Code)
		}
	}
}
