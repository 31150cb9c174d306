// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

package codeinput

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidLength is returned by New when the cell count is below one.
var ErrInvalidLength = errors.New("code input needs at least one cell")

// Input owns the cell values of a segmented code and decides where keyboard
// focus goes after every edit. It never touches a UI; focus moves are
// reported as FocusRequested events for the host to carry out.
type Input struct {
	cells []string
	class CharClass
	focus int
}

// New creates an Input with n empty cells and focus on the first cell.
// A nil class accepts Digits.
func New(n int, class CharClass) (*Input, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	if class == nil {
		class = Digits
	}
	return &Input{
		cells: make([]string, n),
		class: class,
	}, nil
}

// SetCell applies the new full text of cell index after one edit event.
// Multi-character input keeps only its last character. Characters outside
// the character class are dropped without any event.
func (in *Input) SetCell(index int, raw string) (Snapshot, []Event) {
	in.mustIndex(index)

	value := ""
	if raw != "" {
		r, _ := utf8.DecodeLastRuneInString(raw)
		if r == utf8.RuneError || !in.class(r) {
			return in.Snapshot(), nil
		}
		value = string(r)
	}

	var events []Event
	changed := in.cells[index] != value
	if changed {
		in.cells[index] = value
		events = append(events, CellChanged{Index: index, Value: value})
	}

	target := index
	switch {
	case value != "" && index < len(in.cells)-1:
		target = index + 1
	case value == "" && index > 0:
		target = index - 1
	}
	events = in.moveFocus(target, events)

	if changed && in.Complete() {
		events = append(events, CodeComplete{Code: in.Code()})
	}
	return in.Snapshot(), events
}

// HandleEdgeDelete covers a backspace on a cell that is already empty, where
// no value change reaches SetCell. It only ever moves focus.
func (in *Input) HandleEdgeDelete(index int, key Key) (Snapshot, []Event) {
	in.mustIndex(index)

	if !key.IsBackspace() || in.cells[index] != "" || index == 0 {
		return in.Snapshot(), nil
	}
	return in.Snapshot(), in.snapFocus(index - 1)
}

// Reset clears every cell and returns focus to the first one.
func (in *Input) Reset() (Snapshot, []Event) {
	var events []Event
	for i, v := range in.cells {
		if v != "" {
			in.cells[i] = ""
			events = append(events, CellChanged{Index: i})
		}
	}
	events = in.moveFocus(0, events)
	return in.Snapshot(), events
}

// SetFocus records a focus move the host made on its own, e.g. arrow keys
// or a click.
func (in *Input) SetFocus(index int) {
	in.mustIndex(index)
	in.focus = index
}

// Paste feeds text through SetCell one character at a time, starting at
// index and following the focus cursor. Rejected characters are skipped.
// Moving the cursor to index is reported like any other focus move.
func (in *Input) Paste(index int, text string) (Snapshot, []Event) {
	in.mustIndex(index)
	events := in.snapFocus(index)
	for _, r := range text {
		if !in.class(r) {
			continue
		}
		at := in.focus
		_, evs := in.SetCell(at, string(r))
		events = append(events, evs...)
		if at == len(in.cells)-1 {
			break
		}
	}
	return in.Snapshot(), events
}

func (in *Input) Len() int   { return len(in.cells) }
func (in *Input) Focus() int { return in.focus }

func (in *Input) Value(index int) string {
	in.mustIndex(index)
	return in.cells[index]
}

// Code concatenates the cell values left to right.
func (in *Input) Code() string {
	return strings.Join(in.cells, "")
}

// Complete reports whether every cell holds a character.
func (in *Input) Complete() bool {
	for _, v := range in.cells {
		if v == "" {
			return false
		}
	}
	return true
}

func (in *Input) Snapshot() Snapshot {
	cells := make([]string, len(in.cells))
	copy(cells, in.cells)
	complete := in.Complete()
	s := Snapshot{Cells: cells, Focus: in.focus, Complete: complete}
	if complete {
		s.Code = in.Code()
	}
	return s
}

func (in *Input) moveFocus(target int, events []Event) []Event {
	return append(events, in.snapFocus(target)...)
}

func (in *Input) snapFocus(target int) []Event {
	if target == in.focus {
		return nil
	}
	in.focus = target
	return []Event{FocusRequested{Index: target}}
}

func (in *Input) mustIndex(index int) {
	if index < 0 || index >= len(in.cells) {
		panic(fmt.Sprintf("codeinput: cell index %d out of range [0, %d)", index, len(in.cells)))
	}
}
