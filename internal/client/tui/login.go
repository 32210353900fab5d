package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginModel struct {
	inputs [2]textinput.Model
	focus  int
	signup bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{inputs: [2]textinput.Model{email, password}}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			m.login.inputs[m.login.focus].Blur()
			m.login.focus = (m.login.focus + 1) % len(m.login.inputs)
			m.login.inputs[m.login.focus].Focus()
			return m, textinput.Blink

		case tea.KeyCtrlN:
			m.login.signup = !m.login.signup
			return m, nil

		case tea.KeyEnter:
			email := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if email == "" || password == "" {
				return m, nil
			}
			signup := m.login.signup
			return m, m.action(func(ctx context.Context) tea.Msg {
				var err error
				if signup {
					_, err = m.st.Session.Signup(ctx, email, password)
				} else {
					_, err = m.st.Session.Login(ctx, email, password)
				}
				return authDoneMsg{err: err}
			})
		}

	case authDoneMsg:
		if msg.err != nil {
			return m, nil // message surfaces via the store's LastError
		}
		m.screen = screenDrops
		m.list = listModel{}
		return m, m.fetchDropsCmd()
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m Model) viewLogin() string {
	var b strings.Builder

	title := "dropspot — log in"
	if m.login.signup {
		title = "dropspot — sign up"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	for i := range m.login.inputs {
		b.WriteString(m.login.inputs[i].View() + "\n")
	}

	if m.st.Session.Busy() {
		b.WriteString("\n" + statusStyle.Render("authenticating..."))
	} else if msg := m.st.Session.LastError(); msg != "" {
		b.WriteString("\n" + errStyle.Render(msg))
	}

	b.WriteString("\n" + helpStyle.Render(fmt.Sprintf(
		"enter: submit • tab: next field • ctrl+n: switch to %s • ctrl+c: quit",
		map[bool]string{true: "login", false: "signup"}[m.login.signup])))
	return b.String()
}
