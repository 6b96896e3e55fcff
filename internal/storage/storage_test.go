package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

func newStores(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "amolpro.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "amolpro.db")),
	}
}

func TestInitSeedsDefaults(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			tasbihs, err := store.GetTasbihs()
			if err != nil {
				t.Fatalf("GetTasbihs failed: %v", err)
			}
			if len(tasbihs) != 6 {
				t.Errorf("seeded %d tasbihs, want 6", len(tasbihs))
			}

			general, err := store.GetGeneralTasbih()
			if err != nil {
				t.Fatalf("GetGeneralTasbih failed: %v", err)
			}
			if general.ID != constants.GeneralTasbihID {
				t.Errorf("general tasbih id = %q", general.ID)
			}

			stats, err := store.GetStats()
			if err != nil {
				t.Fatalf("GetStats failed: %v", err)
			}
			if stats.Level != 1 || stats.LastActiveDate == "" {
				t.Errorf("unexpected seeded stats: %+v", stats)
			}

			inbox, err := store.GetInbox()
			if err != nil {
				t.Fatalf("GetInbox failed: %v", err)
			}
			if len(inbox) == 0 {
				t.Error("expected welcome messages in seeded inbox")
			}
		})
	}
}

func TestInitRefusesExisting(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			store.Close()

			fresh := NewJSONStore(store.GetConfigPath())
			if name == "sqlite" {
				if err := NewSQLiteStore(store.GetConfigPath()).Init(); err == nil {
					t.Error("second Init should fail")
				}
				return
			}
			if err := fresh.Init(); err == nil {
				t.Error("second Init should fail")
			}
		})
	}
}

func TestLoadRequiresInit(t *testing.T) {
	dir := t.TempDir()
	stores := map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "missing.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "missing.db")),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if err := store.Load(); err == nil {
				t.Error("Load of uninitialized storage should fail")
			}
		})
	}
}

func TestRoundTripCollections(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("Init failed: %v", err)
			}
			defer store.Close()

			history := []models.DailyHistory{
				{Date: "2025-01-14", TotalTime: 330, TotalNeki: 700, TasbihCounts: map[string]int{"a": 150}},
			}
			if err := store.SaveHistory(history); err != nil {
				t.Fatalf("SaveHistory failed: %v", err)
			}

			got, err := store.GetHistory()
			if err != nil {
				t.Fatalf("GetHistory failed: %v", err)
			}
			if len(got) != 1 || got[0].Date != "2025-01-14" || got[0].TasbihCounts["a"] != 150 {
				t.Errorf("history round trip mismatch: %+v", got)
			}

			trees := []models.GardenTree{
				{ID: "t1", TasbihName: "Tasbih A", Date: "2025-01-14", Count: 150, Type: models.TreeTypeTasbih, Live: true},
			}
			if err := store.SaveGarden(trees); err != nil {
				t.Fatalf("SaveGarden failed: %v", err)
			}
			gotTrees, err := store.GetGarden()
			if err != nil {
				t.Fatalf("GetGarden failed: %v", err)
			}
			if len(gotTrees) != 1 {
				t.Fatalf("garden round trip mismatch: %+v", gotTrees)
			}
			if gotTrees[0].Live {
				t.Error("Live flag should never be persisted")
			}
		})
	}
}

func TestJSONLoadCorruptFileFallsBackToSeeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "amolpro.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load of corrupt file should not fail: %v", err)
	}

	tasbihs, err := store.GetTasbihs()
	if err != nil {
		t.Fatalf("GetTasbihs failed: %v", err)
	}
	if len(tasbihs) != 6 {
		t.Errorf("expected seed tasbihs after corrupt load, got %d", len(tasbihs))
	}
}
