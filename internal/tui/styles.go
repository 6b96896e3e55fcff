package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	arabicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	milestoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("120")).
			Bold(true)
)
