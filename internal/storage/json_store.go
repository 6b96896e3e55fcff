package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/seed"
)

// Store is the on-disk shape of the JSON provider: one entry per collection.
type Store struct {
	Version  int                   `json:"version"`
	Tasbihs  []models.Tasbih       `json:"tasbihs"`
	General  *models.Tasbih        `json:"general_tasbih"`
	Targets  []models.TargetAmol   `json:"targets"`
	Journal  []models.JournalEntry `json:"journal"`
	Garden   []models.GardenTree   `json:"garden"`
	Stats    *models.Stats         `json:"stats"`
	History  []models.DailyHistory `json:"history"`
	Inbox    []models.InboxMessage `json:"inbox"`
	Prefs    Prefs                 `json:"prefs"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	now := time.Now()
	stats := seed.Stats(now)
	general := seed.GeneralTasbih()
	s.store = &Store{
		Version: 1,
		Tasbihs: seed.Tasbihs(),
		General: &general,
		Targets: seed.Targets(),
		Stats:   &stats,
		Inbox:   seed.InboxMessages(now),
		Prefs:   Prefs{Theme: "light"},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'amolpro init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Corrupt file: start from seed data rather than failing startup.
		s.store = &Store{Version: 1}
	}

	s.fillDefaults()
	return nil
}

// fillDefaults replaces absent collections with seed data.
func (s *JSONStore) fillDefaults() {
	now := time.Now()
	if s.store.Tasbihs == nil {
		s.store.Tasbihs = seed.Tasbihs()
	}
	if s.store.General == nil {
		general := seed.GeneralTasbih()
		s.store.General = &general
	}
	if s.store.Targets == nil {
		s.store.Targets = seed.Targets()
	}
	if s.store.Stats == nil {
		stats := seed.Stats(now)
		s.store.Stats = &stats
	}
	if s.store.Inbox == nil {
		s.store.Inbox = seed.InboxMessages(now)
	}
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetTasbihs() ([]models.Tasbih, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Tasbihs, nil
}

func (s *JSONStore) SaveTasbihs(tasbihs []models.Tasbih) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Tasbihs = tasbihs
	return s.save()
}

func (s *JSONStore) GetGeneralTasbih() (models.Tasbih, error) {
	if s.store == nil {
		return models.Tasbih{}, fmt.Errorf("storage not loaded")
	}
	return *s.store.General, nil
}

func (s *JSONStore) SaveGeneralTasbih(t models.Tasbih) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.General = &t
	return s.save()
}

func (s *JSONStore) GetTargets() ([]models.TargetAmol, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Targets, nil
}

func (s *JSONStore) SaveTargets(targets []models.TargetAmol) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Targets = targets
	return s.save()
}

func (s *JSONStore) GetJournal() ([]models.JournalEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Journal, nil
}

func (s *JSONStore) SaveJournal(entries []models.JournalEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Journal = entries
	return s.save()
}

func (s *JSONStore) GetGarden() ([]models.GardenTree, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Garden, nil
}

func (s *JSONStore) SaveGarden(trees []models.GardenTree) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Garden = trees
	return s.save()
}

func (s *JSONStore) GetStats() (models.Stats, error) {
	if s.store == nil {
		return models.Stats{}, fmt.Errorf("storage not loaded")
	}
	return *s.store.Stats, nil
}

func (s *JSONStore) SaveStats(stats models.Stats) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Stats = &stats
	return s.save()
}

func (s *JSONStore) GetHistory() ([]models.DailyHistory, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.History, nil
}

func (s *JSONStore) SaveHistory(history []models.DailyHistory) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.History = history
	return s.save()
}

func (s *JSONStore) GetInbox() ([]models.InboxMessage, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Inbox, nil
}

func (s *JSONStore) SaveInbox(messages []models.InboxMessage) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Inbox = messages
	return s.save()
}

func (s *JSONStore) GetPrefs() (Prefs, error) {
	if s.store == nil {
		return Prefs{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Prefs, nil
}

func (s *JSONStore) SavePrefs(prefs Prefs) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Prefs = prefs
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple amolpro processes against the same storage path is not
//     supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
