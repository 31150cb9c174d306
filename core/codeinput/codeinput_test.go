// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

package codeinput

import (
	"errors"
	"reflect"
	"testing"
)

func newDigits(t *testing.T, n int) *Input {
	t.Helper()
	in, err := New(n, Digits)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	return in
}

func countComplete(events []Event) (int, string) {
	var n int
	var code string
	for _, ev := range events {
		if c, ok := ev.(CodeComplete); ok {
			n++
			code = c.Code
		}
	}
	return n, code
}

func TestNew_RejectsZeroCells(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		if _, err := New(n, Digits); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("New(%d): expected ErrInvalidLength, got %v", n, err)
		}
	}
}

func TestNew_StartsEmptyWithFocusOnFirstCell(t *testing.T) {
	for _, n := range []int{1, 2, 6, 12} {
		in := newDigits(t, n)
		s := in.Snapshot()
		if len(s.Cells) != n {
			t.Fatalf("n=%d: expected %d cells, got %d", n, n, len(s.Cells))
		}
		for i, v := range s.Cells {
			if v != "" {
				t.Fatalf("n=%d: cell %d not empty: %q", n, i, v)
			}
		}
		if s.Focus != 0 || s.Complete || s.Code != "" {
			t.Fatalf("n=%d: unexpected initial snapshot %+v", n, s)
		}
	}
}

func TestNew_NilClassDefaultsToDigits(t *testing.T) {
	in, err := New(2, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, evs := in.SetCell(0, "x"); evs != nil {
		t.Fatalf("expected letter to be rejected, got %v", evs)
	}
	if s, _ := in.SetCell(0, "3"); s.Cells[0] != "3" {
		t.Fatalf("expected digit to be accepted, got %+v", s)
	}
}

func TestSetCell_TypingAdvancesFocus(t *testing.T) {
	const n = 6
	for i := 0; i < n-1; i++ {
		in := newDigits(t, n)
		in.SetFocus(i)
		s, evs := in.SetCell(i, "5")
		if s.Focus != i+1 {
			t.Fatalf("i=%d: expected focus %d, got %d", i, i+1, s.Focus)
		}
		for j, v := range s.Cells {
			if j == i && v != "5" {
				t.Fatalf("i=%d: cell not set: %q", i, v)
			}
			if j != i && v != "" {
				t.Fatalf("i=%d: cell %d changed to %q", i, j, v)
			}
		}
		want := []Event{CellChanged{Index: i, Value: "5"}, FocusRequested{Index: i + 1}}
		if !reflect.DeepEqual(evs, want) {
			t.Fatalf("i=%d: events %#v, want %#v", i, evs, want)
		}
	}
}

func TestSetCell_LastCellKeepsFocus(t *testing.T) {
	in := newDigits(t, 3)
	in.SetFocus(2)
	s, evs := in.SetCell(2, "9")
	if s.Focus != 2 {
		t.Fatalf("expected focus to stay at 2, got %d", s.Focus)
	}
	for _, ev := range evs {
		if _, ok := ev.(FocusRequested); ok {
			t.Fatalf("unexpected focus request %v", ev)
		}
	}
	if n, _ := countComplete(evs); n != 0 {
		t.Fatalf("code is not complete yet, got %d completions", n)
	}
}

func TestSetCell_ClearingMovesFocusBack(t *testing.T) {
	const n = 6
	for i := 1; i < n; i++ {
		in := newDigits(t, n)
		in.SetCell(i, "1")
		in.SetFocus(i)
		s, evs := in.SetCell(i, "")
		if s.Focus != i-1 {
			t.Fatalf("i=%d: expected focus %d, got %d", i, i-1, s.Focus)
		}
		if s.Cells[i] != "" {
			t.Fatalf("i=%d: cell not cleared", i)
		}
		want := []Event{CellChanged{Index: i, Value: ""}, FocusRequested{Index: i - 1}}
		if !reflect.DeepEqual(evs, want) {
			t.Fatalf("i=%d: events %#v, want %#v", i, evs, want)
		}
	}
}

func TestSetCell_ClearingFirstCellKeepsFocus(t *testing.T) {
	in := newDigits(t, 4)
	in.SetCell(0, "8")
	in.SetFocus(0)
	s, evs := in.SetCell(0, "")
	if s.Focus != 0 {
		t.Fatalf("expected focus 0, got %d", s.Focus)
	}
	want := []Event{CellChanged{Index: 0, Value: ""}}
	if !reflect.DeepEqual(evs, want) {
		t.Fatalf("events %#v, want %#v", evs, want)
	}
}

func TestSetCell_RejectsCharacterOutsideClass(t *testing.T) {
	in := newDigits(t, 6)
	in.SetCell(0, "4")
	in.SetCell(1, "2")
	before := in.Snapshot()

	for _, raw := range []string{"a", "-", " ", "é", "4a"} {
		s, evs := in.SetCell(2, raw)
		if evs != nil {
			t.Fatalf("raw %q: expected no events, got %v", raw, evs)
		}
		if !reflect.DeepEqual(s, before) {
			t.Fatalf("raw %q: state changed: %+v -> %+v", raw, before, s)
		}
	}
}

func TestSetCell_MultiCharacterKeepsLast(t *testing.T) {
	in := newDigits(t, 6)
	s, _ := in.SetCell(0, "123")
	if s.Cells[0] != "3" {
		t.Fatalf("expected last character, got %q", s.Cells[0])
	}
	// Typing over a filled cell delivers old+new text.
	in.SetFocus(0)
	s, _ = in.SetCell(0, "37")
	if s.Cells[0] != "7" || s.Focus != 1 {
		t.Fatalf("unexpected snapshot %+v", s)
	}
}

func TestSetCell_SameValueOnlyMovesFocus(t *testing.T) {
	in := newDigits(t, 3)
	in.SetCell(0, "1")
	in.SetFocus(0)
	_, evs := in.SetCell(0, "1")
	want := []Event{FocusRequested{Index: 1}}
	if !reflect.DeepEqual(evs, want) {
		t.Fatalf("events %#v, want %#v", evs, want)
	}
}

func TestSetCell_OutOfRangePanics(t *testing.T) {
	in := newDigits(t, 6)
	for _, idx := range []int{-1, 6, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("index %d: expected panic", idx)
				}
			}()
			in.SetCell(idx, "1")
		}()
	}
}

func TestScenario_SixDigitCode(t *testing.T) {
	in := newDigits(t, 6)

	s, _ := in.SetCell(0, "4")
	if s.Focus != 1 || !reflect.DeepEqual(s.Cells, []string{"4", "", "", "", "", ""}) {
		t.Fatalf("after first digit: %+v", s)
	}
	s, _ = in.SetCell(1, "2")
	if s.Focus != 2 {
		t.Fatalf("expected focus 2, got %d", s.Focus)
	}

	var completions int
	var code string
	for i, d := range []string{"0", "1", "9", "7"} {
		var evs []Event
		s, evs = in.SetCell(i+2, d)
		n, c := countComplete(evs)
		completions += n
		if n > 0 {
			code = c
		}
	}
	if completions != 1 {
		t.Fatalf("expected exactly one completion, got %d", completions)
	}
	if code != "420197" || s.Code != "420197" || !s.Complete {
		t.Fatalf("unexpected code %q / snapshot %+v", code, s)
	}
	if s.Focus != 5 {
		t.Fatalf("expected focus to stay on the last cell, got %d", s.Focus)
	}
}

func TestSetCell_EditingCompleteCodeRefires(t *testing.T) {
	in := newDigits(t, 2)
	in.SetCell(0, "1")
	in.SetCell(1, "2")

	_, evs := in.SetCell(1, "23")
	if n, code := countComplete(evs); n != 1 || code != "13" {
		t.Fatalf("expected one completion with 13, got %d %q", n, code)
	}
	_, evs = in.SetCell(1, "3")
	if n, _ := countComplete(evs); n != 0 {
		t.Fatalf("unchanged value must not complete again, got %d", n)
	}
}

func TestHandleEdgeDelete(t *testing.T) {
	tests := []struct {
		name      string
		filled    map[int]string
		index     int
		key       Key
		wantFocus int
		wantEvent bool
	}{
		{name: "empty cell jumps back", index: 3, key: KeyBackspace, wantFocus: 2, wantEvent: true},
		{name: "browser style key name", index: 1, key: "Backspace", wantFocus: 0, wantEvent: true},
		{name: "first cell is a no-op", index: 0, key: KeyBackspace, wantFocus: 0},
		{name: "filled cell is left to SetCell", filled: map[int]string{3: "5"}, index: 3, key: KeyBackspace, wantFocus: 3},
		{name: "other keys are ignored", index: 3, key: "delete", wantFocus: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newDigits(t, 6)
			for i, v := range tt.filled {
				in.SetCell(i, v)
			}
			in.SetFocus(tt.index)
			before := in.Snapshot().Cells

			s, evs := in.HandleEdgeDelete(tt.index, tt.key)
			if s.Focus != tt.wantFocus {
				t.Fatalf("focus %d, want %d", s.Focus, tt.wantFocus)
			}
			if !reflect.DeepEqual(s.Cells, before) {
				t.Fatalf("cells changed: %v -> %v", before, s.Cells)
			}
			if got := len(evs) > 0; got != tt.wantEvent {
				t.Fatalf("events %v, wantEvent %v", evs, tt.wantEvent)
			}
			if tt.wantEvent && !reflect.DeepEqual(evs, []Event{FocusRequested{Index: tt.wantFocus}}) {
				t.Fatalf("unexpected events %#v", evs)
			}
		})
	}
}

func TestReset(t *testing.T) {
	in := newDigits(t, 6)
	in.SetCell(0, "4")
	in.SetCell(1, "2")
	in.SetCell(4, "1")

	s, evs := in.Reset()
	if s.Focus != 0 || s.Complete {
		t.Fatalf("unexpected snapshot %+v", s)
	}
	for i, v := range s.Cells {
		if v != "" {
			t.Fatalf("cell %d not cleared", i)
		}
	}
	want := []Event{
		CellChanged{Index: 0},
		CellChanged{Index: 1},
		CellChanged{Index: 4},
		FocusRequested{Index: 0},
	}
	if !reflect.DeepEqual(evs, want) {
		t.Fatalf("events %#v, want %#v", evs, want)
	}
}

func TestPaste(t *testing.T) {
	in := newDigits(t, 6)
	s, evs := in.Paste(0, "12-34 56789")
	if !reflect.DeepEqual(s.Cells, []string{"1", "2", "3", "4", "5", "6"}) {
		t.Fatalf("unexpected cells %v", s.Cells)
	}
	if s.Focus != 5 {
		t.Fatalf("expected focus on last cell, got %d", s.Focus)
	}
	if n, code := countComplete(evs); n != 1 || code != "123456" {
		t.Fatalf("expected one completion, got %d %q", n, code)
	}
}

func TestPaste_FromMiddle(t *testing.T) {
	in := newDigits(t, 4)
	s, _ := in.Paste(2, "9")
	if !reflect.DeepEqual(s.Cells, []string{"", "", "9", ""}) || s.Focus != 3 {
		t.Fatalf("unexpected snapshot %+v", s)
	}
}

func TestPaste_ReportsCursorMove(t *testing.T) {
	in := newDigits(t, 6)
	in.Paste(0, "123")
	if in.Focus() != 3 {
		t.Fatalf("setup focus %d", in.Focus())
	}

	s, evs := in.Paste(5, "xyz")
	if s.Focus != 5 {
		t.Fatalf("expected focus 5, got %d", s.Focus)
	}
	if !reflect.DeepEqual(evs, []Event{FocusRequested{Index: 5}}) {
		t.Fatalf("unexpected events %#v", evs)
	}

	// pasting where the cursor already is reports no move
	if _, evs := in.Paste(5, "x"); len(evs) != 0 {
		t.Fatalf("unexpected events %#v", evs)
	}
}

func TestDispatch(t *testing.T) {
	var got []string
	h := HandlerFuncs{
		CellChanged:  func(i int, v string) { got = append(got, "cell") },
		CodeComplete: func(code string) { got = append(got, "done:"+code) },
	}
	Dispatch(h, []Event{CellChanged{Index: 0, Value: "1"}, FocusRequested{Index: 1}, CodeComplete{Code: "1"}})
	if !reflect.DeepEqual(got, []string{"cell", "done:1"}) {
		t.Fatalf("unexpected dispatch order %v", got)
	}
}

func TestCharClassByName(t *testing.T) {
	if c, err := CharClassByName("digits"); err != nil || !c('1') || c('a') {
		t.Fatalf("digits class broken: %v", err)
	}
	if c, err := CharClassByName("Alphanumeric"); err != nil || !c('a') || !c('Z') || c('!') {
		t.Fatalf("alphanumeric class broken: %v", err)
	}
	if _, err := CharClassByName("emoji"); err == nil {
		t.Fatalf("expected error for unknown class")
	}
}
