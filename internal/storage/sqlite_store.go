package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tamimhossen6238-cell/amolpro/internal/models"
	"github.com/tamimhossen6238-cell/amolpro/internal/seed"
)

// Collection keys in the kv table. One JSON blob per collection.
const (
	keyTasbihs = "tasbihs"
	keyGeneral = "general_tasbih"
	keyTargets = "targets"
	keyJournal = "journal"
	keyGarden  = "garden"
	keyStats   = "stats"
	keyHistory = "history"
	keyInbox   = "inbox"
	keyPrefs   = "prefs"
)

// SQLiteStore persists each collection as a JSON blob in a single kv table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	now := time.Now()
	if err := s.SaveTasbihs(seed.Tasbihs()); err != nil {
		return err
	}
	if err := s.SaveGeneralTasbih(seed.GeneralTasbih()); err != nil {
		return err
	}
	if err := s.SaveTargets(seed.Targets()); err != nil {
		return err
	}
	if err := s.SaveStats(seed.Stats(now)); err != nil {
		return err
	}
	if err := s.SaveInbox(seed.InboxMessages(now)); err != nil {
		return err
	}
	return s.SavePrefs(Prefs{Theme: "light"})
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'amolpro init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.createSchema()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL
	)`)
	return err
}

// get unmarshals the named collection into dst. Returns false when the key is
// absent or the blob is unreadable, so callers can fall back to seed data.
func (s *SQLiteStore) get(key string, dst interface{}) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	var data string
	row := s.db.QueryRow("SELECT data FROM collections WHERE key = ?", key)
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *SQLiteStore) put(key string, v interface{}) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	_, err = s.db.Exec(
		"INSERT INTO collections (key, data) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET data = excluded.data",
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetTasbihs() ([]models.Tasbih, error) {
	var tasbihs []models.Tasbih
	ok, err := s.get(keyTasbihs, &tasbihs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seed.Tasbihs(), nil
	}
	return tasbihs, nil
}

func (s *SQLiteStore) SaveTasbihs(tasbihs []models.Tasbih) error {
	return s.put(keyTasbihs, tasbihs)
}

func (s *SQLiteStore) GetGeneralTasbih() (models.Tasbih, error) {
	var t models.Tasbih
	ok, err := s.get(keyGeneral, &t)
	if err != nil {
		return models.Tasbih{}, err
	}
	if !ok {
		return seed.GeneralTasbih(), nil
	}
	return t, nil
}

func (s *SQLiteStore) SaveGeneralTasbih(t models.Tasbih) error {
	return s.put(keyGeneral, t)
}

func (s *SQLiteStore) GetTargets() ([]models.TargetAmol, error) {
	var targets []models.TargetAmol
	ok, err := s.get(keyTargets, &targets)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seed.Targets(), nil
	}
	return targets, nil
}

func (s *SQLiteStore) SaveTargets(targets []models.TargetAmol) error {
	return s.put(keyTargets, targets)
}

func (s *SQLiteStore) GetJournal() ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if _, err := s.get(keyJournal, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *SQLiteStore) SaveJournal(entries []models.JournalEntry) error {
	return s.put(keyJournal, entries)
}

func (s *SQLiteStore) GetGarden() ([]models.GardenTree, error) {
	var trees []models.GardenTree
	if _, err := s.get(keyGarden, &trees); err != nil {
		return nil, err
	}
	return trees, nil
}

func (s *SQLiteStore) SaveGarden(trees []models.GardenTree) error {
	return s.put(keyGarden, trees)
}

func (s *SQLiteStore) GetStats() (models.Stats, error) {
	var stats models.Stats
	ok, err := s.get(keyStats, &stats)
	if err != nil {
		return models.Stats{}, err
	}
	if !ok {
		return seed.Stats(time.Now()), nil
	}
	return stats, nil
}

func (s *SQLiteStore) SaveStats(stats models.Stats) error {
	return s.put(keyStats, stats)
}

func (s *SQLiteStore) GetHistory() ([]models.DailyHistory, error) {
	var history []models.DailyHistory
	if _, err := s.get(keyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *SQLiteStore) SaveHistory(history []models.DailyHistory) error {
	return s.put(keyHistory, history)
}

func (s *SQLiteStore) GetInbox() ([]models.InboxMessage, error) {
	var messages []models.InboxMessage
	if _, err := s.get(keyInbox, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *SQLiteStore) SaveInbox(messages []models.InboxMessage) error {
	return s.put(keyInbox, messages)
}

func (s *SQLiteStore) GetPrefs() (Prefs, error) {
	var prefs Prefs
	if _, err := s.get(keyPrefs, &prefs); err != nil {
		return Prefs{}, err
	}
	return prefs, nil
}

func (s *SQLiteStore) SavePrefs(prefs Prefs) error {
	return s.put(keyPrefs, prefs)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
