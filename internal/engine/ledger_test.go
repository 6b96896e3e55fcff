package engine

import (
	"testing"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

func TestRecordRepetition_CumulativeCount(t *testing.T) {
	e, store, _ := newTestEngine(t, day1)
	addUserTasbih(t, store, models.Tasbih{ID: "a", Name: "A", TotalCount: 40})

	// N taps in arbitrary batch sizes always land on the cumulative count.
	for _, delta := range []int{1, 3, 1, 5} {
		if _, err := e.RecordRepetition("a", delta); err != nil {
			t.Fatalf("RecordRepetition failed: %v", err)
		}
	}

	tasbihs, _ := store.GetTasbihs()
	for _, tb := range tasbihs {
		if tb.ID == "a" {
			if tb.Count != 10 {
				t.Errorf("today count = %d, want 10", tb.Count)
			}
			if tb.TotalCount != 50 {
				t.Errorf("total count = %d, want 50", tb.TotalCount)
			}
		}
	}
}

func TestRecordRepetition_CreditsNeki(t *testing.T) {
	e, store, _ := newTestEngine(t, day1)

	if _, err := e.RecordRepetition("builtin_subhanallah", 10); err != nil {
		t.Fatal(err)
	}

	stats := mustStats(t, store)
	if stats.TotalNeki != 700 || stats.TodayNeki != 700 {
		t.Errorf("neki = total %d / today %d, want 700/700", stats.TotalNeki, stats.TodayNeki)
	}
	if !stats.TodayActivityPerformed {
		t.Error("activity flag not set")
	}
}

func TestRecordRepetition_LevelDerivation(t *testing.T) {
	e, store, _ := newTestEngine(t, day1)

	// 20 x 70 = 1400 neki, past the first level threshold.
	if _, err := e.RecordRepetition("builtin_subhanallah", 20); err != nil {
		t.Fatal(err)
	}

	if got := mustStats(t, store).Level; got != 2 {
		t.Errorf("level = %d, want 2", got)
	}
}

func TestRecordRepetition_GeneralEarnsNoNeki(t *testing.T) {
	e, store, _ := newTestEngine(t, day1)

	if _, err := e.RecordRepetition(constants.GeneralTasbihID, 500); err != nil {
		t.Fatal(err)
	}

	general, _ := store.GetGeneralTasbih()
	if general.Count != 500 || general.TotalCount != 500 {
		t.Errorf("general counts = %d/%d", general.Count, general.TotalCount)
	}

	stats := mustStats(t, store)
	if stats.TotalNeki != 0 {
		t.Errorf("general tasbih credited %d neki, want 0", stats.TotalNeki)
	}
	if !stats.TodayActivityPerformed {
		t.Error("general recitation should still mark activity")
	}
}

func TestRecordRepetition_Milestone(t *testing.T) {
	e, store, _ := newTestEngine(t, day1)
	addUserTasbih(t, store, models.Tasbih{ID: "a", Name: "A", Count: 95})

	m, err := e.RecordRepetition("a", 3)
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Errorf("98 reps should not cross a milestone, got %+v", m)
	}

	m, err = e.RecordRepetition("a", 4)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("crossing 100 should emit a milestone")
	}
	if m.OldCount != 98 || m.NewCount != 102 {
		t.Errorf("milestone = %+v", m)
	}
}

func TestRecordRepetition_UnknownIDIsNoOp(t *testing.T) {
	e, store, _ := newTestEngine(t, day1)

	m, err := e.RecordRepetition("deleted_long_ago", 5)
	if err != nil {
		t.Fatalf("unknown id should not error: %v", err)
	}
	if m != nil {
		t.Errorf("unknown id produced a milestone: %+v", m)
	}
	if mustStats(t, store).TodayActivityPerformed {
		t.Error("unknown id should not mark activity")
	}
}

func TestRecordRepetition_RejectsNonPositiveDelta(t *testing.T) {
	e, _, _ := newTestEngine(t, day1)

	if _, err := e.RecordRepetition("builtin_subhanallah", 0); err == nil {
		t.Error("zero delta should be rejected")
	}
	if _, err := e.RecordRepetition("builtin_subhanallah", -2); err == nil {
		t.Error("negative delta should be rejected")
	}
}

func TestRecordTimeSpent_AbsoluteReplacement(t *testing.T) {
	e, store, _ := newTestEngine(t, day1)
	addUserTasbih(t, store, models.Tasbih{ID: "a", Name: "A"})

	if err := e.RecordTimeSpent("a", 30); err != nil {
		t.Fatal(err)
	}
	if err := e.RecordTimeSpent("a", 90); err != nil {
		t.Fatal(err)
	}

	tasbihs, _ := store.GetTasbihs()
	for _, tb := range tasbihs {
		if tb.ID == "a" && tb.TodayTime != 90 {
			t.Errorf("today time = %d, want 90 (absolute, not additive)", tb.TodayTime)
		}
	}
}
