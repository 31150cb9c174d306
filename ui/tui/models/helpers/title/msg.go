// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set names the active screen in the window title.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
