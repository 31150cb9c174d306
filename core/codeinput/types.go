// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

package codeinput

import (
	"fmt"
	"strings"
)

// CharClass decides which single characters a cell may hold.
type CharClass func(r rune) bool

// Digits accepts ASCII 0-9.
func Digits(r rune) bool {
	return r >= '0' && r <= '9'
}

// Alphanumeric accepts ASCII letters and digits.
func Alphanumeric(r rune) bool {
	return Digits(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// CharClassByName resolves a configured charset name.
func CharClassByName(name string) (CharClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "digits", "numeric":
		return Digits, nil
	case "alphanumeric", "alnum":
		return Alphanumeric, nil
	}
	return nil, fmt.Errorf("unknown character class %q", name)
}

// Key names a physical key. Only backspace matters to the Input.
type Key string

const KeyBackspace Key = "backspace"

func (k Key) IsBackspace() bool {
	return strings.EqualFold(string(k), string(KeyBackspace))
}

// Snapshot is a copy of the Input state taken after an operation.
type Snapshot struct {
	Cells    []string
	Focus    int
	Complete bool
	// Code is only set once every cell is filled.
	Code string
}

type Event interface {
	event()
}

type CellChanged struct {
	Index int
	Value string
}

type FocusRequested struct {
	Index int
}

type CodeComplete struct {
	Code string
}

func (CellChanged) event()    {}
func (FocusRequested) event() {}
func (CodeComplete) event()   {}
