package models

import "time"

// Schedule describes which days a tasbih is intended to be recited.
type Schedule struct {
	Everyday bool           `json:"everyday"`
	Weekdays []time.Weekday `json:"weekdays,omitempty"`
}

// IncludesDay reports whether the schedule covers the given weekday.
func (s Schedule) IncludesDay(d time.Weekday) bool {
	if s.Everyday {
		return true
	}
	for _, wd := range s.Weekdays {
		if wd == d {
			return true
		}
	}
	return false
}

// Tasbih represents a repeatable devotional phrase tracked by count and time.
type Tasbih struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ArabicText    string   `json:"arabic_text,omitempty"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	Translation   string   `json:"translation,omitempty"`
	Schedule      Schedule `json:"schedule"`
	Count         int      `json:"count"`       // today's count, reset at rollover
	TotalCount    int      `json:"total_count"` // lifetime count, never reset
	ManualNeki    int      `json:"manual_neki,omitempty"`
	TodayTime     int      `json:"today_time,omitempty"` // seconds spent today
}
