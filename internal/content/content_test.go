package content

import (
	"math/rand"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lib.Len() == 0 {
		t.Fatal("library is empty")
	}
	for i := 0; i < lib.Len(); i++ {
		q := lib.Quote(i)
		if q.Text == "" || q.Source == "" {
			t.Errorf("quote %d missing text or source: %+v", i, q)
		}
	}
}

func TestPick_NoRepeatUntilFullCycle(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	var shown []int
	seen := make(map[int]bool)

	// One full cycle: every index exactly once.
	for i := 0; i < lib.Len(); i++ {
		var idx int
		idx, shown = lib.Pick(shown, rng)
		if seen[idx] {
			t.Fatalf("index %d repeated before full cycle (pick %d)", idx, i)
		}
		seen[idx] = true
	}
	if len(shown) != lib.Len() {
		t.Fatalf("shown set = %d entries, want %d", len(shown), lib.Len())
	}

	// The next pick starts a new cycle: shown resets to a singleton.
	idx, shown := lib.Pick(shown, rng)
	if len(shown) != 1 || shown[0] != idx {
		t.Errorf("after exhaustion shown = %v, want singleton [%d]", shown, idx)
	}
}

func TestPick_IgnoresOutOfRangeShownIndices(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	idx, _ := lib.Pick([]int{-1, lib.Len() + 5}, rng)
	if idx < 0 || idx >= lib.Len() {
		t.Errorf("picked out-of-range index %d", idx)
	}
}

func TestDue(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	morning := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	beforeGate := time.Date(2025, 1, 15, 3, 0, 0, 0, time.UTC)

	if !lib.Due("2025-01-14", morning) {
		t.Error("quote should be due on a new day after the release gate")
	}
	if lib.Due("2025-01-15", morning) {
		t.Error("quote already shown today should not be due")
	}
	if lib.Due("2025-01-14", beforeGate) {
		t.Error("quote should not be due before 04:30 local")
	}
}
