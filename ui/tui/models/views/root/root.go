// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/bookmycook/bookmycook/internal/config"
	"github.com/bookmycook/bookmycook/internal/logging"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/header"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/popup"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/router"
	"github.com/bookmycook/bookmycook/ui/tui/models/components/stack"
	windowtitle "github.com/bookmycook/bookmycook/ui/tui/models/helpers/title"
	"github.com/bookmycook/bookmycook/ui/tui/models/views/footer"
	"github.com/bookmycook/bookmycook/ui/tui/models/views/home"
	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const title string = "Bookmycook"

// Model is the tea.Model handed to the program: header, the routed screens
// with their popups, and the key help footer.
type Model struct {
	stack        *stack.Model
	router       *router.Router
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
}

func New(cfg config.Config, version string) *Model {
	if version == "" {
		version = "unknown version"
	}

	_router, _ := router.New(util.ModelPointer(home.New(cfg.Code)))
	_footer := util.ModelPointer(footer.New(DefaultGlobalKeys))

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithMsgFilter(stack.KeysOnlyWhenFocused),
			stack.WithItem(util.ModelPointer(header.New(version)), header.SizeConfig),
			stack.WithItem(
				util.ModelPointer(popup.NewInjector(util.ModelPointer(_router))),
				stack.VariableSize(1),
			),
			stack.WithItem(_footer, footer.SizeConfig),
		),
		router:       _router,
		footer:       _footer,
		titleHandler: windowtitle.NewHandler(title, " | "),
	}
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()

	return tea.Sequence(titleCmd, initCmd, m.focusStack())
}

// focusStack focuses the routed screens and announces their keys.
func (m *Model) focusStack() tea.Cmd {
	return util.FocusCmd(m.stack)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// handle keys messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultGlobalKeys.Quit):
			logging.Infof("exit requested")
			return m, tea.Quit
		case key.Matches(msg, DefaultGlobalKeys.ToggleHelp):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
			return m, nil
		}

		return m, m.stack.Update(msg)
	}
	// handle window title messages
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	if msg, ok := msg.(router.NavigatedMsg); ok {
		logging.Debugf("navigated, %d screen(s) open", msg.Depth)
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m *Model) View() string {
	return m.stack.View()
}

// Depth is the number of open screens.
func (m *Model) Depth() int {
	return m.router.Depth()
}

// Title is the current window title.
func (m *Model) Title() string {
	return m.titleHandler.Title()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
