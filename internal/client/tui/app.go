// Package tui is the terminal presentation layer. Views are pure consumers
// of the stores: every store action runs inside a tea.Cmd with the configured
// request deadline, completion messages carry only the outcome, and views
// re-query store snapshots when they render.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aakcay5656/dropspot/internal/client/api"
	"github.com/aakcay5656/dropspot/internal/client/models"
	"github.com/aakcay5656/dropspot/internal/client/stores"
)

type screen int

const (
	screenLogin screen = iota
	screenDrops
	screenDetail
	screenAdmin
)

// Stores bundles the state containers the UI reads from.
type Stores struct {
	Session *stores.SessionStore
	Drops   *stores.DropStore
	Admin   *stores.AdminStore
}

type (
	authDoneMsg   struct{ err error }
	dropsDoneMsg  struct{ err error }
	detailDoneMsg struct{ err error }
	joinDoneMsg   struct {
		res *models.JoinResult
		err error
	}
	leaveDoneMsg struct{ err error }
	claimDoneMsg struct {
		res *models.ClaimResult
		err error
	}
	adminDoneMsg struct {
		action string
		err    error
	}
)

type Model struct {
	st      Stores
	timeout time.Duration

	screen screen
	login  loginModel
	list   listModel
	admin  adminModel

	width  int
	height int
}

func New(st Stores, timeout time.Duration) Model {
	m := Model{
		st:      st,
		timeout: timeout,
		login:   newLoginModel(),
		admin:   newAdminModel(),
	}
	if st.Session.IsAuthenticated() {
		m.screen = screenDrops
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenDrops {
		return tea.Batch(textinput.Blink, m.fetchDropsCmd())
	}
	return textinput.Blink
}

// action wraps a store call in a tea.Cmd with the configured deadline.
func (m Model) action(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return fn(ctx)
	}
}

func (m Model) fetchDropsCmd() tea.Cmd {
	return m.action(func(ctx context.Context) tea.Msg {
		return dropsDoneMsg{err: m.st.Drops.FetchDrops(ctx, api.ListDropsParams{})}
	})
}

func (m Model) fetchDropCmd(id int64) tea.Cmd {
	return m.action(func(ctx context.Context) tea.Msg {
		_, err := m.st.Drops.FetchDrop(ctx, id)
		return detailDoneMsg{err: err}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	// A 401 on any action tears the session down inside the transport;
	// the first message that arrives afterwards routes back to login.
	if isActionDone(msg) && !m.st.Session.IsAuthenticated() && m.screen != screenLogin {
		m.screen = screenLogin
		m.login = newLoginModel()
		return m, textinput.Blink
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDrops:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenAdmin:
		return m.updateAdmin(msg)
	}
	return m, nil
}

func isActionDone(msg tea.Msg) bool {
	switch msg.(type) {
	case dropsDoneMsg, detailDoneMsg, joinDoneMsg, leaveDoneMsg, claimDoneMsg, adminDoneMsg:
		return true
	}
	return false
}

func (m Model) View() string {
	switch m.screen {
	case screenLogin:
		return m.viewLogin()
	case screenDrops:
		return m.viewList()
	case screenDetail:
		return m.viewDetail()
	case screenAdmin:
		return m.viewAdmin()
	}
	return ""
}
