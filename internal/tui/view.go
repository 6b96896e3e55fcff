package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/report"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		titleStyle.Render(m.tasbih.Name),
	}
	if m.tasbih.ArabicText != "" {
		lines = append(lines, arabicStyle.Render(m.tasbih.ArabicText))
	}
	if m.tasbih.Pronunciation != "" {
		lines = append(lines, subtleStyle.Render(m.tasbih.Pronunciation))
	}

	lines = append(lines,
		"",
		countStyle.Render(fmt.Sprintf("%d", m.counter.Count())),
		subtleStyle.Render(m.growthLine()),
		"",
	)

	timer := report.FormatDuration(m.counter.Seconds())
	if m.counter.Paused() {
		lines = append(lines, pausedStyle.Render(timer+"  (paused)"))
	} else {
		lines = append(lines, timer)
	}

	if m.milestone != "" {
		lines = append(lines, "", milestoneStyle.Render(m.milestone))
	}
	if m.err != nil {
		lines = append(lines, "", pausedStyle.Render("error: "+m.err.Error()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, content)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, m.help.View(m.keys))
}

// growthLine describes today's progress toward the next garden tree.
func (m Model) growthLine() string {
	count := m.counter.Count()
	if count >= constants.GardenTreeThreshold {
		return fmt.Sprintf("tree earned today  -  %d to the next hundred",
			constants.MilestoneStep-count%constants.MilestoneStep)
	}
	return fmt.Sprintf("%d more to plant today's tree", constants.GardenTreeThreshold-count)
}
