package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aakcay5656/dropspot/internal/client/models"
)

// listModel carries only view-local state (cursor, transient notice); the
// drop data itself always comes from the store snapshot.
type listModel struct {
	cursor int
	notice string
}

func (m Model) cursorDrop() *models.Drop {
	drops := m.st.Drops.Drops()
	if len(drops) == 0 || m.list.cursor >= len(drops) {
		return nil
	}
	return &drops[m.list.cursor]
}

func (m Model) joinCmd(id int64) tea.Cmd {
	return m.action(func(ctx context.Context) tea.Msg {
		res, err := m.st.Drops.JoinWaitlist(ctx, id)
		return joinDoneMsg{res: res, err: err}
	})
}

func (m Model) leaveCmd(id int64) tea.Cmd {
	return m.action(func(ctx context.Context) tea.Msg {
		return leaveDoneMsg{err: m.st.Drops.LeaveWaitlist(ctx, id)}
	})
}

func (m Model) claimCmd(id int64) tea.Cmd {
	return m.action(func(ctx context.Context) tea.Msg {
		res, err := m.st.Drops.ClaimDrop(ctx, id)
		return claimDoneMsg{res: res, err: err}
	})
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "up", "k":
			if m.list.cursor > 0 {
				m.list.cursor--
			}
			return m, nil

		case "down", "j":
			if m.list.cursor < len(m.st.Drops.Drops())-1 {
				m.list.cursor++
			}
			return m, nil

		case "r":
			m.list.notice = ""
			return m, m.fetchDropsCmd()

		case "enter":
			if d := m.cursorDrop(); d != nil {
				m.screen = screenDetail
				return m, m.fetchDropCmd(d.ID)
			}
			return m, nil

		case "w":
			if d := m.cursorDrop(); d != nil {
				m.list.notice = ""
				return m, m.joinCmd(d.ID)
			}
			return m, nil

		case "x":
			if d := m.cursorDrop(); d != nil {
				m.list.notice = ""
				return m, m.leaveCmd(d.ID)
			}
			return m, nil

		case "c":
			if d := m.cursorDrop(); d != nil {
				m.list.notice = ""
				return m, m.claimCmd(d.ID)
			}
			return m, nil

		case "a":
			if m.st.Session.IsAdmin() {
				m.screen = screenAdmin
				m.admin = newAdminModel()
				return m, nil
			}
			return m, nil

		case "e":
			if d := m.cursorDrop(); d != nil && m.st.Session.IsAdmin() {
				m.screen = screenAdmin
				m.admin = newAdminModelFor(d)
				return m, nil
			}
			return m, nil

		case "ctrl+l":
			m.st.Session.Logout()
			m.screen = screenLogin
			m.login = newLoginModel()
			return m, nil
		}

	case dropsDoneMsg:
		if n := len(m.st.Drops.Drops()); m.list.cursor >= n && n > 0 {
			m.list.cursor = n - 1
		}
		return m, nil

	case joinDoneMsg:
		if msg.err == nil {
			m.list.notice = fmt.Sprintf("joined waitlist — position %d (score %.2f)", msg.res.Position, msg.res.PriorityScore)
		}
		return m, nil

	case leaveDoneMsg:
		if msg.err == nil {
			m.list.notice = "left waitlist"
		}
		return m, nil

	case claimDoneMsg:
		if msg.err == nil {
			m.list.notice = fmt.Sprintf("claimed! code: %s", msg.res.ClaimCode)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("dropspot — drops") + "\n")

	drops := m.st.Drops.Drops()
	now := time.Now()
	if len(drops) == 0 {
		b.WriteString("no drops\n")
	}
	for i, d := range drops {
		joined := " "
		if d.UserJoined {
			joined = "✓"
		}
		row := fmt.Sprintf("[%s] %-30s %s  %d/%d left", joined, d.Name,
			statusBadge(string(d.WindowStatus(now))), d.Remaining(), d.TotalStock)
		if i == m.list.cursor {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}

	b.WriteString(m.statusLine())

	help := "↑/↓: move • enter: detail • w: join • x: leave • c: claim • r: refresh • ctrl+l: logout • q: quit"
	if m.st.Session.IsAdmin() {
		help += " • a: new drop • e: edit drop"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

// statusLine surfaces, in order of precedence: in-flight activity, the drop
// store's last error, and the most recent action notice.
func (m Model) statusLine() string {
	if m.st.Drops.Busy() {
		return "\n" + statusStyle.Render("syncing...") + "\n"
	}
	if msg := m.st.Drops.LastError(); msg != "" {
		return "\n" + errStyle.Render(msg) + "\n"
	}
	if m.list.notice != "" {
		return "\n" + statusStyle.Render(m.list.notice) + "\n"
	}
	return "\n"
}
