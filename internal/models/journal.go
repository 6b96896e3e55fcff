package models

import "time"

// JournalEntry is a free-text record of a good deed. Entries are editable
// only within 24 hours of creation; deletion is always permitted.
type JournalEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // human-readable date string
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
