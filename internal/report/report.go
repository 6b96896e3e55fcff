// Package report builds the daily, weekly and monthly summary messages
// dispatched at rollover.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/dates"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

// DaySnapshot captures the finished day's aggregates at the moment of
// rollover, before counters are reset.
type DaySnapshot struct {
	Date             string // date key of the archived day
	ActiveTasbihs    []models.Tasbih
	CompletedTargets []models.TargetAmol
	NewTrees         []models.GardenTree
	TotalSeconds     int
	NekiEarned       int
	JournalCount     int
}

// FormatDuration renders seconds as "M minutes S seconds".
func FormatDuration(totalSeconds int) string {
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%d minutes %d seconds", minutes, seconds)
}

// Daily builds the daily report. It is produced on every rollover.
func Daily(snap DaySnapshot, now time.Time) models.InboxMessage {
	var b strings.Builder

	b.WriteString("Assalamu alaikum,\nYesterday's amol report:\n\n")

	b.WriteString("Tasbih recitations:\n")
	if len(snap.ActiveTasbihs) > 0 {
		for _, t := range snap.ActiveTasbihs {
			fmt.Fprintf(&b, "- %s: %d times\n", t.Name, t.Count)
		}
	} else {
		b.WriteString("No tasbih was recited.\n")
	}

	b.WriteString("\nTargets completed:\n")
	if len(snap.CompletedTargets) > 0 {
		for _, t := range snap.CompletedTargets {
			fmt.Fprintf(&b, "- %s\n", t.Name)
		}
	} else {
		b.WriteString("No target was completed.\n")
	}

	b.WriteString("\nGarden update:\n")
	if len(snap.NewTrees) > 0 {
		fmt.Fprintf(&b, "%d tree(s) planted yesterday:\n", len(snap.NewTrees))
		for _, tree := range snap.NewTrees {
			fmt.Fprintf(&b, "- %s\n", tree.TasbihName)
		}
	} else {
		b.WriteString("No tree was planted yesterday (one tree per 100 repetitions).\n")
	}

	fmt.Fprintf(&b, "\nTotal time spent: %s\n", FormatDuration(snap.TotalSeconds))
	fmt.Fprintf(&b, "Neki earned: %d\n", snap.NekiEarned)
	fmt.Fprintf(&b, "\nGood deeds journaled: %d (%d XP)", snap.JournalCount, snap.JournalCount*constants.JournalXP)

	return models.InboxMessage{
		ID:        uuid.NewString(),
		Title:     "Daily Report",
		Body:      b.String(),
		CreatedAt: now,
		Type:      models.MessageTypeDailyReport,
	}
}

// WeeklyDue implements the weekly catch-up check: a report is due when no
// weekly report has been issued for the most recent Friday cycle. It returns
// the Friday date key to watermark. Even after several missed weeks exactly
// one report is emitted, for the most recently passed Friday.
func WeeklyDue(lastWeeklyReportDate string, now time.Time) (string, bool) {
	friday := dates.MostRecentFridayKey(now)
	return friday, lastWeeklyReportDate < friday
}

// MonthlyDue implements the monthly catch-up check against the first of the
// current local month.
func MonthlyDue(lastMonthlyReportDate string, now time.Time) (string, bool) {
	first := dates.FirstOfMonthKey(now)
	return first, lastMonthlyReportDate < first
}

// Weekly builds the weekly report from cumulative stats and the garden trees
// planted in the trailing 7 days.
func Weekly(stats models.Stats, journalTotal int, garden []models.GardenTree, now time.Time) models.InboxMessage {
	var b strings.Builder

	b.WriteString("Assalamu alaikum,\nJumu'ah Mubarak! Your amol progress:\n\n")
	fmt.Fprintf(&b, "Total neki: %d\n", stats.TotalNeki)
	fmt.Fprintf(&b, "Good deeds journaled: %d (%d XP)\n", journalTotal, journalTotal*constants.JournalXP)
	fmt.Fprintf(&b, "Current streak: %d days\n", stats.Streak)
	b.WriteString(treeBreakdown("Trees planted this week", garden, now, 7))
	b.WriteString("\nMay Allah accept all your ibadah.")

	return models.InboxMessage{
		ID:        uuid.NewString(),
		Title:     "Weekly Report (Jumu'ah Mubarak)",
		Body:      b.String(),
		CreatedAt: now,
		Type:      models.MessageTypeWeeklyReport,
	}
}

// Monthly builds the monthly report with a 30-day trailing garden breakdown.
func Monthly(stats models.Stats, journalTotal int, garden []models.GardenTree, now time.Time) models.InboxMessage {
	var b strings.Builder

	b.WriteString("Assalamu alaikum,\nA new month has begun! A short summary of your amolnama:\n\n")
	fmt.Fprintf(&b, "Level reached: %d\n", stats.Level)
	fmt.Fprintf(&b, "Good deeds journaled: %d (%d XP)\n", journalTotal, journalTotal*constants.JournalXP)
	fmt.Fprintf(&b, "Total neki: %d\n", stats.TotalNeki)
	b.WriteString(treeBreakdown("Trees planted this month", garden, now, 30))
	b.WriteString("\nBegin the new month with renewed devotion.")

	return models.InboxMessage{
		ID:        uuid.NewString(),
		Title:     "Monthly Report",
		Body:      b.String(),
		CreatedAt: now,
		Type:      models.MessageTypeMonthlyReport,
	}
}

// treeBreakdown groups trailing-window garden trees by source name.
func treeBreakdown(label string, garden []models.GardenTree, now time.Time, windowDays int) string {
	counts := make(map[string]int)
	total := 0
	for _, tree := range garden {
		if dates.WithinTrailingDays(tree.Date, now, windowDays) {
			counts[tree.TasbihName]++
			total++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d\n", label, total)

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %d\n", name, counts[name])
	}
	return b.String()
}

// ScheduledReminder builds one reminder for a tasbih scheduled on today's
// weekday.
func ScheduledReminder(t models.Tasbih, now time.Time) models.InboxMessage {
	return models.InboxMessage{
		ID:        uuid.NewString(),
		Title:     "Today's Amol Reminder",
		Body:      fmt.Sprintf("%s is scheduled for today (%s). Do not forget your recitation.", t.Name, dates.Weekday(now)),
		CreatedAt: now,
		Type:      models.MessageTypeReminder,
	}
}
