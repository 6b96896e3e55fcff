package dates

import (
	"time"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
)

// DayKey returns the date key (YYYY-MM-DD) for the local calendar day of the
// given instant. The zone offset is subtracted from the UTC instant before
// truncating to the date portion, so an instant at 23:30 local in a
// UTC-behind zone keys to the local day, not the UTC day. All rollover
// comparisons go through this function; no other truncation is permitted.
func DayKey(now time.Time) string {
	_, offset := now.Zone()
	shifted := now.UTC().Add(time.Duration(offset) * time.Second)
	return shifted.Format(constants.DateFormat)
}

// PrevDayKey returns the date key of the calendar day before the given key.
func PrevDayKey(key string) string {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}

// MostRecentFridayKey returns the date key of the most recent Friday at or
// before the local day of now. A Friday keys to itself.
func MostRecentFridayKey(now time.Time) string {
	key := DayKey(now)
	t, _ := time.Parse(constants.DateFormat, key)
	back := (int(t.Weekday()) + 7 - int(time.Friday)) % 7
	return t.AddDate(0, 0, -back).Format(constants.DateFormat)
}

// FirstOfMonthKey returns the date key of the first day of the local month
// of now.
func FirstOfMonthKey(now time.Time) string {
	key := DayKey(now)
	t, _ := time.Parse(constants.DateFormat, key)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)
}

// Weekday returns the weekday of the local calendar day of now.
func Weekday(now time.Time) time.Weekday {
	key := DayKey(now)
	t, _ := time.Parse(constants.DateFormat, key)
	return t.Weekday()
}

// WithinTrailingDays reports whether the date key falls within the trailing
// n-day window ending at the local day of now, exclusive of days older than
// the window start.
func WithinTrailingDays(key string, now time.Time, n int) bool {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return false
	}
	end, _ := time.Parse(constants.DateFormat, DayKey(now))
	start := end.AddDate(0, 0, -n)
	return t.After(start) && !t.After(end)
}
