package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/dates"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

// AddJournalEntry records a good deed. It grants the fixed journal XP,
// bumps today's journal counter and immediately plants a permanent journal
// tree, independent of rollover.
func (e *Engine) AddJournalEntry(text string) (models.JournalEntry, error) {
	now := e.clock()
	entry := models.JournalEntry{
		ID:        uuid.NewString(),
		Date:      now.Format("2 January 2006"),
		Text:      text,
		CreatedAt: now,
	}

	journal, err := e.store.GetJournal()
	if err != nil {
		return models.JournalEntry{}, err
	}
	journal = append([]models.JournalEntry{entry}, journal...)
	if err := e.store.SaveJournal(journal); err != nil {
		return models.JournalEntry{}, err
	}

	garden, err := e.store.GetGarden()
	if err != nil {
		return models.JournalEntry{}, err
	}
	garden = append(garden, models.GardenTree{
		ID:         uuid.NewString(),
		TasbihName: "Journal",
		Date:       dates.DayKey(now),
		Count:      constants.JournalXP,
		Type:       models.TreeTypeJournal,
		JournalID:  entry.ID,
	})
	if err := e.store.SaveGarden(garden); err != nil {
		return models.JournalEntry{}, err
	}

	stats, err := e.store.GetStats()
	if err != nil {
		return models.JournalEntry{}, err
	}
	stats.TodayJournalCount++
	stats.TotalXP += constants.JournalXP
	if err := e.store.SaveStats(stats); err != nil {
		return models.JournalEntry{}, err
	}

	return entry, nil
}

// EditJournalEntry updates an entry's text. Edits are permitted only within
// 24 hours of creation; afterwards the entry is immutable.
func (e *Engine) EditJournalEntry(id, text string) error {
	journal, err := e.store.GetJournal()
	if err != nil {
		return err
	}

	for i := range journal {
		if journal[i].ID != id {
			continue
		}
		if e.clock().Sub(journal[i].CreatedAt) > constants.JournalEditWindow {
			return fmt.Errorf("journal entry can no longer be edited (24-hour window elapsed)")
		}
		journal[i].Text = text
		return e.store.SaveJournal(journal)
	}
	return fmt.Errorf("journal entry not found: %s", id)
}

// DeleteJournalEntry removes an entry. Deletion is always permitted; the
// edit window restricts edits only. The linked journal tree is removed and
// the entry's XP deducted, clamped at zero.
func (e *Engine) DeleteJournalEntry(id string) error {
	journal, err := e.store.GetJournal()
	if err != nil {
		return err
	}

	found := false
	out := journal[:0]
	for _, entry := range journal {
		if entry.ID == id {
			found = true
			continue
		}
		out = append(out, entry)
	}
	if !found {
		return nil
	}
	if err := e.store.SaveJournal(out); err != nil {
		return err
	}

	garden, err := e.store.GetGarden()
	if err != nil {
		return err
	}
	trees := garden[:0]
	for _, tree := range garden {
		if tree.Type == models.TreeTypeJournal && tree.JournalID == id {
			continue
		}
		trees = append(trees, tree)
	}
	if err := e.store.SaveGarden(trees); err != nil {
		return err
	}

	stats, err := e.store.GetStats()
	if err != nil {
		return err
	}
	stats.TotalXP -= constants.JournalXP
	if stats.TotalXP < 0 {
		stats.TotalXP = 0
	}
	if stats.TodayJournalCount > 0 {
		stats.TodayJournalCount--
	}
	return e.store.SaveStats(stats)
}
