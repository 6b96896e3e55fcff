// Package engine implements the devotional-tracking core: the counter
// ledger, the daily rollover state machine and the operations that mutate
// the persisted application state.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/content"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/storage"
)

// Engine owns the single controlled handle through which all core state is
// mutated. It is not safe for concurrent use; the application is
// single-threaded by design.
type Engine struct {
	store storage.Provider
	clock func() time.Time
	rng   *rand.Rand
	lib   *content.Library
}

// New builds an engine over the given store with the wall clock and a
// time-seeded RNG.
func New(store storage.Provider) (*Engine, error) {
	lib, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load content library: %w", err)
	}
	return &Engine{
		store: store,
		clock: time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		lib:   lib,
	}, nil
}

// NewWithClock builds an engine with an injected clock and RNG, for tests.
func NewWithClock(store storage.Provider, clock func() time.Time, rng *rand.Rand) (*Engine, error) {
	e, err := New(store)
	if err != nil {
		return nil, err
	}
	e.clock = clock
	e.rng = rng
	return e, nil
}

// Store exposes the underlying provider for read-side consumers.
func (e *Engine) Store() storage.Provider {
	return e.store
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.clock()
}

// allTasbihs returns the user list plus the general singleton, which always
// participates in time/count aggregation but never in neki valuation.
func (e *Engine) allTasbihs() ([]models.Tasbih, models.Tasbih, error) {
	tasbihs, err := e.store.GetTasbihs()
	if err != nil {
		return nil, models.Tasbih{}, err
	}
	general, err := e.store.GetGeneralTasbih()
	if err != nil {
		return nil, models.Tasbih{}, err
	}
	return tasbihs, general, nil
}

// addNeki credits neki to the running and today totals and re-derives the
// level. Zero amounts are a no-op.
func addNeki(stats *models.Stats, amount int) {
	if amount == 0 {
		return
	}
	stats.TotalNeki += amount
	stats.TodayNeki += amount
	stats.Level = stats.TotalNeki/constants.LevelThreshold + 1
}
