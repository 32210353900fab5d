package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	liveStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	upcomingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	endedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

func statusBadge(s string) string {
	switch s {
	case "live":
		return liveStyle.Render("● live")
	case "upcoming":
		return upcomingStyle.Render("○ upcoming")
	default:
		return endedStyle.Render("■ ended")
	}
}
