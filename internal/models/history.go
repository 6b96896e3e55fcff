package models

// DailyHistory archives one finished day. Created only by the rollover
// engine and never mutated afterward, except to replace on a repeated
// rollover trigger for the same date.
type DailyHistory struct {
	Date         string         `json:"date"` // YYYY-MM-DD
	TotalTime    int            `json:"total_time"` // seconds across all tasbihs
	TotalNeki    int            `json:"total_neki"`
	TasbihCounts map[string]int `json:"tasbih_counts,omitempty"` // tasbih ID -> final count
}
