package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case secondTickMsg:
		now := time.Time(msg)
		m.counter.TickSecond(now)
		if m.counter.FlushDue(now) {
			m.flush(now)
		}
		return m, tickSecond()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.finish()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tap):
			m.counter.Tap(m.engine.Now())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}
