package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aakcay5656/dropspot/internal/client/api"
	"github.com/aakcay5656/dropspot/internal/client/models"
)

const (
	fieldName = iota
	fieldDescription
	fieldStock
	fieldStart
	fieldEnd
	fieldCount
)

// adminModel is the create/edit form. target is nil for create; for edit it
// carries the drop being changed and the inputs come prefilled.
type adminModel struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	target  *models.Drop
	formErr string
}

func newAdminModel() adminModel {
	m := adminModel{}
	labels := [fieldCount]string{"name", "description", "total stock", "window start (RFC3339)", "window end (RFC3339)"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 255
		in.Width = 48
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	return m
}

func newAdminModelFor(d *models.Drop) adminModel {
	m := newAdminModel()
	target := *d
	m.target = &target
	m.inputs[fieldName].SetValue(d.Name)
	m.inputs[fieldDescription].SetValue(d.Description)
	m.inputs[fieldStock].SetValue(strconv.Itoa(d.TotalStock))
	m.inputs[fieldStart].SetValue(d.ClaimWindowStart.Format(time.RFC3339))
	m.inputs[fieldEnd].SetValue(d.ClaimWindowEnd.Format(time.RFC3339))
	return m
}

// parseForm turns the inputs into create params. Structural checks only
// (numbers parse, instants parse); business validation is the server's job.
func (a *adminModel) parseForm() (*api.CreateDropParams, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(a.inputs[fieldStock].Value()))
	if err != nil {
		return nil, fmt.Errorf("total stock must be a number")
	}
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(a.inputs[fieldStart].Value()))
	if err != nil {
		return nil, fmt.Errorf("window start must be RFC3339, e.g. 2026-09-01T18:00:00Z")
	}
	end, err := time.Parse(time.RFC3339, strings.TrimSpace(a.inputs[fieldEnd].Value()))
	if err != nil {
		return nil, fmt.Errorf("window end must be RFC3339, e.g. 2026-09-01T19:00:00Z")
	}
	return &api.CreateDropParams{
		Name:             strings.TrimSpace(a.inputs[fieldName].Value()),
		Description:      strings.TrimSpace(a.inputs[fieldDescription].Value()),
		TotalStock:       stock,
		ClaimWindowStart: start,
		ClaimWindowEnd:   end,
	}, nil
}

func (m Model) submitAdminCmd(params *api.CreateDropParams) tea.Cmd {
	if m.admin.target == nil {
		return m.action(func(ctx context.Context) tea.Msg {
			_, err := m.st.Admin.CreateDrop(ctx, *params)
			return adminDoneMsg{action: "create", err: err}
		})
	}

	id := m.admin.target.ID
	update := api.UpdateDropParams{
		Name:             &params.Name,
		Description:      &params.Description,
		TotalStock:       &params.TotalStock,
		ClaimWindowStart: &params.ClaimWindowStart,
		ClaimWindowEnd:   &params.ClaimWindowEnd,
	}
	return m.action(func(ctx context.Context) tea.Msg {
		_, err := m.st.Admin.UpdateDrop(ctx, id, update)
		return adminDoneMsg{action: "update", err: err}
	})
}

func (m Model) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			m.screen = screenDrops
			return m, nil

		case tea.KeyTab, tea.KeyDown:
			m.admin.inputs[m.admin.focus].Blur()
			m.admin.focus = (m.admin.focus + 1) % fieldCount
			m.admin.inputs[m.admin.focus].Focus()
			return m, textinput.Blink

		case tea.KeyShiftTab, tea.KeyUp:
			m.admin.inputs[m.admin.focus].Blur()
			m.admin.focus = (m.admin.focus + fieldCount - 1) % fieldCount
			m.admin.inputs[m.admin.focus].Focus()
			return m, textinput.Blink

		case tea.KeyEnter:
			if m.admin.focus < fieldCount-1 {
				m.admin.inputs[m.admin.focus].Blur()
				m.admin.focus++
				m.admin.inputs[m.admin.focus].Focus()
				return m, textinput.Blink
			}
			m.admin.formErr = ""
			params, err := m.admin.parseForm()
			if err != nil {
				m.admin.formErr = err.Error()
				return m, nil
			}
			return m, m.submitAdminCmd(params)

		case tea.KeyCtrlD:
			if m.admin.target != nil {
				id := m.admin.target.ID
				return m, m.action(func(ctx context.Context) tea.Msg {
					return adminDoneMsg{action: "delete", err: m.st.Admin.DeleteDrop(ctx, id)}
				})
			}
			return m, nil
		}

	case adminDoneMsg:
		if msg.err != nil {
			return m, nil // surfaced via the admin store's LastError
		}
		// Admin mutations don't self-refresh the read cache; re-fetch
		// explicitly now that the batch of edits is done.
		m.screen = screenDrops
		m.list.notice = "drop " + msg.action + "d"
		return m, m.fetchDropsCmd()
	}

	var cmd tea.Cmd
	m.admin.inputs[m.admin.focus], cmd = m.admin.inputs[m.admin.focus].Update(msg)
	return m, cmd
}

func (m Model) viewAdmin() string {
	var b strings.Builder

	title := "dropspot — new drop"
	if m.admin.target != nil {
		title = fmt.Sprintf("dropspot — edit drop #%d", m.admin.target.ID)
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	for i := range m.admin.inputs {
		b.WriteString(m.admin.inputs[i].View() + "\n")
	}

	if m.st.Admin.Busy() {
		b.WriteString("\n" + statusStyle.Render("saving..."))
	} else if m.admin.formErr != "" {
		b.WriteString("\n" + errStyle.Render(m.admin.formErr))
	} else if msg := m.st.Admin.LastError(); msg != "" {
		b.WriteString("\n" + errStyle.Render(msg))
	}

	help := "enter: next/submit • tab: next field • esc: back"
	if m.admin.target != nil {
		help += " • ctrl+d: delete"
	}
	b.WriteString("\n" + helpStyle.Render(help))
	return b.String()
}
