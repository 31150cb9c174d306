// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil drives TUI models in tests without a tea.Program.
package testutil

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CmdTimeout bounds how long a single command may run. Commands that wait
// longer, like cursor blinks and ticks, are dropped.
var CmdTimeout = 20 * time.Millisecond

const maxSteps = 500

// Updater is the part of a model the driver needs. Both util.Model and
// the router satisfy it.
type Updater interface {
	Update(tea.Msg) tea.Cmd
}

// Exec runs cmd and returns the messages it produced, flattening batches.
func Exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(CmdTimeout):
		return nil
	}

	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var msgs []tea.Msg
		for _, c := range msg {
			msgs = append(msgs, Exec(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// Drive delivers msgs to m and then every message the resulting commands
// produce, until nothing is left. It returns all delivered messages.
func Drive(m Updater, msgs ...tea.Msg) []tea.Msg {
	var delivered []tea.Msg
	queue := append([]tea.Msg(nil), msgs...)
	for steps := 0; len(queue) > 0 && steps < maxSteps; steps++ {
		msg := queue[0]
		queue = queue[1:]
		delivered = append(delivered, msg)
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		queue = append(queue, Exec(m.Update(msg))...)
	}
	return delivered
}

// DriveCmd executes cmd and drives its messages into m.
func DriveCmd(m Updater, cmd tea.Cmd) []tea.Msg {
	return Drive(m, Exec(cmd)...)
}

// Keys turns a key description into messages: runes are typed one by one,
// the names "enter", "tab", "shift+tab", "backspace", "esc", "left" and
// "right" map to their keys.
func Keys(keys ...string) []tea.Msg {
	var msgs []tea.Msg
	for _, k := range keys {
		if t, ok := namedKeys[k]; ok {
			msgs = append(msgs, tea.KeyMsg{Type: t})
			continue
		}
		for _, r := range k {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	return msgs
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"backspace": tea.KeyBackspace,
	"esc":       tea.KeyEsc,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+u":    tea.KeyCtrlU,
}
