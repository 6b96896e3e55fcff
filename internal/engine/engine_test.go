package engine

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/tamimhossen6238-cell/amolpro/internal/dates"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/storage"
)

// testClock is a controllable wall clock for engine tests.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

// newTestEngine builds an engine over a fresh JSON store with stats anchored
// to the clock's current day.
func newTestEngine(t *testing.T, start time.Time) (*Engine, storage.Provider, *testClock) {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "amolpro.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	clock := &testClock{now: start}
	e, err := NewWithClock(store, clock.Now, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("engine init failed: %v", err)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	stats.LastActiveDate = dates.DayKey(start)
	stats.LastQuoteDate = dates.DayKey(start)
	stats.LastWeeklyReportDate = dates.DayKey(start)
	stats.LastMonthlyReportDate = dates.DayKey(start)
	if err := store.SaveStats(stats); err != nil {
		t.Fatalf("SaveStats failed: %v", err)
	}
	// Start each test from an empty inbox.
	if err := store.SaveInbox(nil); err != nil {
		t.Fatalf("SaveInbox failed: %v", err)
	}

	return e, store, clock
}

func addUserTasbih(t *testing.T, store storage.Provider, tasbih models.Tasbih) {
	t.Helper()
	tasbihs, err := store.GetTasbihs()
	if err != nil {
		t.Fatalf("GetTasbihs failed: %v", err)
	}
	if err := store.SaveTasbihs(append(tasbihs, tasbih)); err != nil {
		t.Fatalf("SaveTasbihs failed: %v", err)
	}
}

func mustStats(t *testing.T, store storage.Provider) models.Stats {
	t.Helper()
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	return stats
}
