package engine

import (
	"fmt"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/neki"
)

// Milestone signals that a tasbih's today-count crossed a 100-repetition
// boundary. It exists for celebratory UI feedback; the core only emits it.
type Milestone struct {
	TasbihID string
	OldCount int
	NewCount int
}

// RecordRepetition adds delta repetitions to the tasbih's today and lifetime
// counts, credits the neki valuation and marks activity for today's streak.
// Unknown ids are a no-op. Returns a Milestone when floor(count/100) grew.
func (e *Engine) RecordRepetition(id string, delta int) (*Milestone, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("delta must be positive, got %d", delta)
	}

	tasbihs, general, err := e.allTasbihs()
	if err != nil {
		return nil, err
	}

	var milestone *Milestone
	var nekiEarned int

	if id == constants.GeneralTasbihID {
		old := general.Count
		general.Count += delta
		general.TotalCount += delta
		milestone = milestoneFor(id, old, general.Count)
		if err := e.store.SaveGeneralTasbih(general); err != nil {
			return nil, err
		}
	} else {
		found := false
		for i := range tasbihs {
			if tasbihs[i].ID != id {
				continue
			}
			old := tasbihs[i].Count
			tasbihs[i].Count += delta
			tasbihs[i].TotalCount += delta
			milestone = milestoneFor(id, old, tasbihs[i].Count)
			nekiEarned = delta * neki.PerRepetition(tasbihs[i])
			found = true
			break
		}
		if !found {
			// Stale reference after deletion: not a fatal error.
			return nil, nil
		}
		if err := e.store.SaveTasbihs(tasbihs); err != nil {
			return nil, err
		}
	}

	stats, err := e.store.GetStats()
	if err != nil {
		return nil, err
	}
	stats.TodayActivityPerformed = true
	addNeki(&stats, nekiEarned)
	if err := e.store.SaveStats(stats); err != nil {
		return nil, err
	}

	return milestone, nil
}

func milestoneFor(id string, oldCount, newCount int) *Milestone {
	if oldCount/constants.MilestoneStep < newCount/constants.MilestoneStep {
		return &Milestone{TasbihID: id, OldCount: oldCount, NewCount: newCount}
	}
	return nil
}

// RecordTimeSpent replaces the tasbih's today-time with an absolute running
// total in seconds. The caller tracks elapsed time itself; guarding against
// regressions is the caller's responsibility. Unknown ids are a no-op.
func (e *Engine) RecordTimeSpent(id string, totalSeconds int) error {
	if id == constants.GeneralTasbihID {
		general, err := e.store.GetGeneralTasbih()
		if err != nil {
			return err
		}
		general.TodayTime = totalSeconds
		return e.store.SaveGeneralTasbih(general)
	}

	tasbihs, err := e.store.GetTasbihs()
	if err != nil {
		return err
	}
	for i := range tasbihs {
		if tasbihs[i].ID == id {
			tasbihs[i].TodayTime = totalSeconds
			return e.store.SaveTasbihs(tasbihs)
		}
	}
	return nil
}
