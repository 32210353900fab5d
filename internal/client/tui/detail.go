package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			m.screen = screenDrops
			return m, nil

		case "w":
			if d := m.st.Drops.Selected(); d != nil {
				m.list.notice = ""
				return m, m.joinCmd(d.ID)
			}
			return m, nil

		case "x":
			if d := m.st.Drops.Selected(); d != nil {
				m.list.notice = ""
				return m, m.leaveCmd(d.ID)
			}
			return m, nil

		case "c":
			if d := m.st.Drops.Selected(); d != nil {
				m.list.notice = ""
				return m, m.claimCmd(d.ID)
			}
			return m, nil

		case "r":
			if d := m.st.Drops.Selected(); d != nil {
				return m, m.fetchDropCmd(d.ID)
			}
			return m, nil
		}

	case joinDoneMsg:
		if msg.err == nil {
			m.list.notice = fmt.Sprintf("joined waitlist — position %d (score %.2f)", msg.res.Position, msg.res.PriorityScore)
		}
		return m, m.refreshSelected()

	case leaveDoneMsg:
		if msg.err == nil {
			m.list.notice = "left waitlist"
		}
		return m, m.refreshSelected()

	case claimDoneMsg:
		if msg.err == nil {
			m.list.notice = fmt.Sprintf("claimed! code: %s", msg.res.ClaimCode)
		}
		return m, m.refreshSelected()
	}

	return m, nil
}

// refreshSelected re-fetches the detail after a mutation settled; the list
// itself was already refreshed by the store.
func (m Model) refreshSelected() tea.Cmd {
	if d := m.st.Drops.Selected(); d != nil {
		return m.fetchDropCmd(d.ID)
	}
	return nil
}

func (m Model) viewDetail() string {
	var b strings.Builder
	d := m.st.Drops.Selected()
	if d == nil {
		b.WriteString(titleStyle.Render("dropspot — drop") + "\n")
		if m.st.Drops.Busy() {
			b.WriteString(statusStyle.Render("loading..."))
		} else if msg := m.st.Drops.LastError(); msg != "" {
			b.WriteString(errStyle.Render(msg))
		}
		b.WriteString(helpStyle.Render("\nesc: back"))
		return b.String()
	}

	now := time.Now()
	joined := "no"
	if d.UserJoined {
		joined = "yes"
	}

	b.WriteString(titleStyle.Render("dropspot — "+d.Name) + "\n")
	b.WriteString(d.Description + "\n\n")
	b.WriteString(fmt.Sprintf("status:   %s\n", statusBadge(string(d.WindowStatus(now)))))
	b.WriteString(fmt.Sprintf("stock:    %d claimed of %d (%d left)\n", d.ClaimedCount, d.TotalStock, d.Remaining()))
	b.WriteString(fmt.Sprintf("window:   %s → %s\n", d.ClaimWindowStart.Local().Format(time.RFC822), d.ClaimWindowEnd.Local().Format(time.RFC822)))
	b.WriteString(fmt.Sprintf("joined:   %s\n", joined))

	b.WriteString(m.statusLine())
	b.WriteString(helpStyle.Render("w: join • x: leave • c: claim • r: reload • esc: back"))
	return b.String()
}
