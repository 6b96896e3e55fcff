package models

// TreeType distinguishes how a garden tree was earned.
type TreeType string

const (
	TreeTypeTasbih  TreeType = "tasbih"
	TreeTypeJournal TreeType = "journal"
)

// GardenTree is a permanent badge representing one day's qualifying tasbih
// volume or one journal entry.
type GardenTree struct {
	ID         string   `json:"id"`
	TasbihName string   `json:"tasbih_name"`
	Date       string   `json:"date"` // YYYY-MM-DD the tree was earned
	Count      int      `json:"count"` // count snapshot used to render growth stage
	Type       TreeType `json:"type"`
	JournalID  string   `json:"journal_id,omitempty"` // set for journal trees
	Live       bool     `json:"-"`                    // today's active tree, never persisted
}
