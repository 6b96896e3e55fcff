package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/dates"
	"github.com/tamimhossen6238-cell/amolpro/internal/inbox"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/report"
)

// Tick is the single entry point for time-driven state transitions, invoked
// once per process wake. It purges expired inbox messages, performs the
// daily rollover when the date key has changed and delivers the daily quote
// when due. It returns the freshly generated messages.
//
// The rollover is re-entrant-safe for History only: the upsert deduplicates
// by date key, while a second invocation for the same stale date would
// duplicate Garden and Inbox entries. Callers must run Tick from one control
// point.
func (e *Engine) Tick() ([]models.InboxMessage, error) {
	now := e.clock()
	today := dates.DayKey(now)

	stats, err := e.store.GetStats()
	if err != nil {
		return nil, err
	}

	messages, err := e.store.GetInbox()
	if err != nil {
		return nil, err
	}
	messages = inbox.PurgeExpired(messages, now)

	var batch []models.InboxMessage

	if stats.LastActiveDate != today {
		batch, err = e.rollover(&stats, today)
		if err != nil {
			return nil, err
		}
	}

	// The daily quote fires independently of the rollover, gated only by its
	// own last-shown date.
	if e.lib.Due(stats.LastQuoteDate, now) {
		idx, shown := e.lib.Pick(stats.ShownQuoteIndices, e.rng)
		q := e.lib.Quote(idx)
		batch = append(batch, models.InboxMessage{
			ID:        uuid.NewString(),
			Title:     "Today's Message",
			Body:      fmt.Sprintf("%s\n\n— %s", q.Text, q.Source),
			CreatedAt: now,
			Type:      models.MessageTypeInfo,
		})
		stats.ShownQuoteIndices = shown
		stats.LastQuoteDate = today
	}

	messages = inbox.Prepend(messages, batch...)
	if err := e.store.SaveInbox(messages); err != nil {
		return nil, err
	}
	if err := e.store.SaveStats(stats); err != nil {
		return nil, err
	}

	return batch, nil
}

// rollover archives the stale day, generates the report batch, updates the
// streak and resets per-day counters. stats is mutated in place; the caller
// persists it.
func (e *Engine) rollover(stats *models.Stats, today string) ([]models.InboxMessage, error) {
	now := e.clock()

	tasbihs, general, err := e.allTasbihs()
	if err != nil {
		return nil, err
	}
	targets, err := e.store.GetTargets()
	if err != nil {
		return nil, err
	}
	journal, err := e.store.GetJournal()
	if err != nil {
		return nil, err
	}
	garden, err := e.store.GetGarden()
	if err != nil {
		return nil, err
	}

	all := make([]models.Tasbih, 0, len(tasbihs)+1)
	all = append(all, tasbihs...)
	all = append(all, general)

	var active []models.Tasbih
	totalSeconds := 0
	for _, t := range all {
		totalSeconds += t.TodayTime
		if t.Count > 0 {
			active = append(active, t)
		}
	}

	var completed []models.TargetAmol
	for _, t := range targets {
		if t.Completed {
			completed = append(completed, t)
		}
	}

	// Garden snapshot: one permanent tree per tasbih that reached the
	// threshold, dated to the finished day.
	var newTrees []models.GardenTree
	for _, t := range active {
		if t.Count >= constants.GardenTreeThreshold {
			newTrees = append(newTrees, models.GardenTree{
				ID:         uuid.NewString(),
				TasbihName: t.Name,
				Date:       stats.LastActiveDate,
				Count:      t.Count,
				Type:       models.TreeTypeTasbih,
			})
		}
	}
	garden = append(garden, newTrees...)

	// History upsert: replace-if-exists keeps repeated rollover triggers for
	// the same stale date from duplicating records.
	counts := make(map[string]int)
	for _, t := range active {
		counts[t.ID] = t.Count
	}
	record := models.DailyHistory{
		Date:         stats.LastActiveDate,
		TotalTime:    totalSeconds,
		TotalNeki:    stats.TodayNeki,
		TasbihCounts: counts,
	}
	history, err := e.store.GetHistory()
	if err != nil {
		return nil, err
	}
	history = upsertHistory(history, record)

	// Report batch: daily always, weekly/monthly with catch-up semantics.
	snap := report.DaySnapshot{
		Date:             stats.LastActiveDate,
		ActiveTasbihs:    active,
		CompletedTargets: completed,
		NewTrees:         newTrees,
		TotalSeconds:     totalSeconds,
		NekiEarned:       stats.TodayNeki,
		JournalCount:     stats.TodayJournalCount,
	}
	batch := []models.InboxMessage{report.Daily(snap, now)}

	if fridayKey, due := report.WeeklyDue(stats.LastWeeklyReportDate, now); due {
		batch = append(batch, report.Weekly(*stats, len(journal), garden, now))
		stats.LastWeeklyReportDate = fridayKey
	}
	if firstKey, due := report.MonthlyDue(stats.LastMonthlyReportDate, now); due {
		batch = append(batch, report.Monthly(*stats, len(journal), garden, now))
		stats.LastMonthlyReportDate = firstKey
	}

	// Reminders for user tasbihs pinned to today's weekday. Everyday
	// schedules carry no explicit day set and stay silent.
	weekday := dates.Weekday(now)
	for _, t := range tasbihs {
		if t.Schedule.Everyday {
			continue
		}
		if t.Schedule.IncludesDay(weekday) {
			batch = append(batch, report.ScheduledReminder(t, now))
		}
	}

	// Streak: contiguous qualifying days only.
	switch {
	case stats.TodayActivityPerformed && stats.LastActiveDate == dates.PrevDayKey(today):
		stats.Streak++
	case stats.TodayActivityPerformed:
		stats.Streak = 1
	default:
		stats.Streak = 0
	}

	// Resets: per-day counters only, lifetime totals untouched.
	for i := range tasbihs {
		tasbihs[i].Count = 0
		tasbihs[i].TodayTime = 0
	}
	general.Count = 0
	general.TodayTime = 0
	for i := range targets {
		targets[i].Completed = false
	}
	stats.TodayNeki = 0
	stats.TodayJournalCount = 0
	stats.TodayActivityPerformed = false
	stats.LastActiveDate = today

	if err := e.store.SaveGarden(garden); err != nil {
		return nil, err
	}
	if err := e.store.SaveHistory(history); err != nil {
		return nil, err
	}
	if err := e.store.SaveTasbihs(tasbihs); err != nil {
		return nil, err
	}
	if err := e.store.SaveGeneralTasbih(general); err != nil {
		return nil, err
	}
	if err := e.store.SaveTargets(targets); err != nil {
		return nil, err
	}

	return batch, nil
}

// upsertHistory replaces an existing record for the same date rather than
// appending a duplicate.
func upsertHistory(history []models.DailyHistory, record models.DailyHistory) []models.DailyHistory {
	for i := range history {
		if history[i].Date == record.Date {
			history[i] = record
			return history
		}
	}
	return append(history, record)
}
