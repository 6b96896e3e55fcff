package constants

import "time"

const (
	// DateFormat is the standard date-key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// InboxTTL is how long an inbox message survives before opportunistic purging
	InboxTTL = 48 * time.Hour

	// JournalEditWindow is how long after creation a journal entry remains editable
	JournalEditWindow = 24 * time.Hour

	// FlushInterval is how often pending count increments are flushed to storage
	// during a counting session
	FlushInterval = 2 * time.Second

	// IdleTimeout pauses the session time tracker after this long without a tap
	IdleTimeout = 5 * time.Second

	// QuoteReleaseHour and QuoteReleaseMinute gate the daily quote: it is not
	// delivered before 04:30 local time even if the date key has changed
	QuoteReleaseHour   = 4
	QuoteReleaseMinute = 30
)
