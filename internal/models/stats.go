package models

// Stats is the single piece of cross-cutting mutable state. It is loaded at
// startup, updated by every core operation and persisted after every mutation.
type Stats struct {
	TotalNeki              int    `json:"total_neki"`
	TotalXP                int    `json:"total_xp"`
	Level                  int    `json:"level"`
	Streak                 int    `json:"streak"` // consecutive qualifying days
	LastActiveDate         string `json:"last_active_date"`
	TodayNeki              int    `json:"today_neki"`
	TodayJournalCount      int    `json:"today_journal_count"`
	LastQuoteDate          string `json:"last_quote_date"`
	ShownQuoteIndices      []int  `json:"shown_quote_indices,omitempty"`
	LastWeeklyReportDate   string `json:"last_weekly_report_date,omitempty"`
	LastMonthlyReportDate  string `json:"last_monthly_report_date,omitempty"`
	TodayActivityPerformed bool   `json:"today_activity_performed,omitempty"`
}
