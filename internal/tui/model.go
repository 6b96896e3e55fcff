// Package tui implements the focus-mode counting screen: a full-screen
// counter driving the batched-write session accumulator.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/engine"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/session"
)

// secondTickMsg drives the session clock once per second.
type secondTickMsg time.Time

type Model struct {
	engine  *engine.Engine
	tasbih  models.Tasbih
	counter *session.Counter

	keys      KeyMap
	help      help.Model
	milestone string
	err       error
	quitting  bool
	width     int
	height    int
}

// NewModel starts a focus-mode session over the given tasbih.
func NewModel(e *engine.Engine, tasbih models.Tasbih) Model {
	now := e.Now()
	return Model{
		engine:  e,
		tasbih:  tasbih,
		counter: session.New(tasbih.ID, tasbih.Count, tasbih.TodayTime, now),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickSecond()
}

func tickSecond() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return secondTickMsg(t)
	})
}

// flush drains the pending batch into the ledger and persists the session's
// absolute time. A milestone crossed inside the batch surfaces here.
func (m *Model) flush(now time.Time) {
	delta := m.counter.Drain(now)
	if delta > 0 {
		milestone, err := m.engine.RecordRepetition(m.counter.TasbihID, delta)
		if err != nil {
			m.err = err
			return
		}
		if milestone != nil {
			m.milestone = "MashaAllah! You crossed another hundred."
		}
	}
	if err := m.engine.RecordTimeSpent(m.counter.TasbihID, m.counter.TodayTime()); err != nil {
		m.err = err
	}
}

// finish flushes unconditionally and, for the general tasbih, drops the
// session summary into the inbox.
func (m *Model) finish() {
	m.flush(m.engine.Now())
	if m.counter.TasbihID == constants.GeneralTasbihID {
		if err := m.engine.ReportGeneralSession(m.counter.SessionCount(), m.counter.Seconds()); err != nil {
			m.err = err
		}
	}
}
