package storage

import "github.com/tamimhossen6238-cell/amolpro/internal/models"

// Prefs holds presentation preferences persisted alongside the core state.
type Prefs struct {
	Theme  string `json:"theme"`
	Layout string `json:"layout"`
}

// Provider is the persisted key-value store behind the core: one entry per
// collection, JSON-encoded. Absent or unreadable collections fall back to
// built-in seed data; load never fails on bad data.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Tasbihs
	GetTasbihs() ([]models.Tasbih, error)
	SaveTasbihs([]models.Tasbih) error
	GetGeneralTasbih() (models.Tasbih, error)
	SaveGeneralTasbih(models.Tasbih) error

	// Targets
	GetTargets() ([]models.TargetAmol, error)
	SaveTargets([]models.TargetAmol) error

	// Journal
	GetJournal() ([]models.JournalEntry, error)
	SaveJournal([]models.JournalEntry) error

	// Garden
	GetGarden() ([]models.GardenTree, error)
	SaveGarden([]models.GardenTree) error

	// Stats
	GetStats() (models.Stats, error)
	SaveStats(models.Stats) error

	// History
	GetHistory() ([]models.DailyHistory, error)
	SaveHistory([]models.DailyHistory) error

	// Inbox
	GetInbox() ([]models.InboxMessage, error)
	SaveInbox([]models.InboxMessage) error

	// Prefs
	GetPrefs() (Prefs, error)
	SavePrefs(Prefs) error

	// Utils
	GetConfigPath() string
}
