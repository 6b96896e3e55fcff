// Package content delivers one non-repeating daily quote from a fixed,
// ordered database embedded at build time.
package content

import (
	_ "embed"
	"fmt"
	"math/rand"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tamimhossen6238-cell/amolpro/internal/constants"
	"github.com/tamimhossen6238-cell/amolpro/internal/dates"
)

//go:embed quotes.yaml
var quotesYAML []byte

// Quote is one item of the fixed content database.
type Quote struct {
	Text   string `yaml:"text"`
	Source string `yaml:"source"`
}

// Library holds the ordered quote database.
type Library struct {
	Quotes []Quote `yaml:"quotes"`
}

// Load parses the embedded quote database.
func Load() (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(quotesYAML, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse quote database: %w", err)
	}
	if len(lib.Quotes) == 0 {
		return nil, fmt.Errorf("quote database is empty")
	}
	return &lib, nil
}

// Len returns the number of quotes in the database.
func (l *Library) Len() int {
	return len(l.Quotes)
}

// Due reports whether a quote should be delivered: the last-shown date key
// differs from today and the local time has passed the 04:30 release gate.
func (l *Library) Due(lastShownDate string, now time.Time) bool {
	if lastShownDate == dates.DayKey(now) {
		return false
	}
	gate := time.Date(now.Year(), now.Month(), now.Day(),
		constants.QuoteReleaseHour, constants.QuoteReleaseMinute, 0, 0, now.Location())
	return !now.Before(gate)
}

// Pick selects a uniformly random unseen index, using an explicit
// remaining-indices bag rather than rejection sampling. When every index has
// been shown the bag resets first, so no item repeats until all have been
// shown once. It returns the chosen index and the updated shown set.
func (l *Library) Pick(shown []int, rng *rand.Rand) (int, []int) {
	seen := make(map[int]bool, len(shown))
	for _, i := range shown {
		if i >= 0 && i < len(l.Quotes) {
			seen[i] = true
		}
	}

	if len(seen) >= len(l.Quotes) {
		seen = map[int]bool{}
		shown = nil
	}

	remaining := make([]int, 0, len(l.Quotes)-len(seen))
	for i := range l.Quotes {
		if !seen[i] {
			remaining = append(remaining, i)
		}
	}

	idx := remaining[rng.Intn(len(remaining))]
	return idx, append(shown, idx)
}

// Quote returns the quote at the given index.
func (l *Library) Quote(idx int) Quote {
	return l.Quotes[idx]
}
