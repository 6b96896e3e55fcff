package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

var dayMap = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseSchedule parses a schedule string: "everyday" or a comma-separated
// list of weekday names or numbers (0=Sunday, 6=Saturday).
func ParseSchedule(s string) (models.Schedule, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "everyday" {
		return models.Schedule{Everyday: true}, nil
	}

	var weekdays []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err == nil && num >= 0 && num <= 6 {
			weekdays = append(weekdays, time.Weekday(num))
			continue
		}
		return models.Schedule{}, fmt.Errorf("invalid weekday: %s", part)
	}

	return models.Schedule{Weekdays: weekdays}, nil
}

// FormatSchedule renders a schedule as the string ParseSchedule accepts.
func FormatSchedule(s models.Schedule) string {
	if s.Everyday {
		return "everyday"
	}
	var days []string
	for _, wd := range s.Weekdays {
		days = append(days, strings.ToLower(wd.String()[:3]))
	}
	return strings.Join(days, ",")
}

// ValidateName checks a tasbih or target display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > 120 {
		return fmt.Errorf("name too long (max 120 characters)")
	}
	return nil
}

// ValidateJournalText checks journal entry text.
func ValidateJournalText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("journal text cannot be empty")
	}
	return nil
}
