package report

import (
	"strings"
	"testing"
	"time"

	"github.com/tamimhossen6238-cell/amolpro/internal/models"
)

func TestDaily_ListsSections(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 5, 0, 0, time.UTC)
	snap := DaySnapshot{
		Date: "2025-01-14",
		ActiveTasbihs: []models.Tasbih{
			{Name: "Tasbih A", Count: 150},
			{Name: "Tasbih B", Count: 33},
		},
		CompletedTargets: []models.TargetAmol{{Name: "Fajr on time"}},
		NewTrees:         []models.GardenTree{{TasbihName: "Tasbih A", Count: 150}},
		TotalSeconds:     330,
		NekiEarned:       700,
		JournalCount:     2,
	}

	msg := Daily(snap, now)

	if msg.Type != models.MessageTypeDailyReport {
		t.Errorf("type = %s", msg.Type)
	}
	for _, want := range []string{
		"Tasbih A: 150 times",
		"Tasbih B: 33 times",
		"Fajr on time",
		"1 tree(s) planted yesterday",
		"- Tasbih A",
		"5 minutes 30 seconds",
		"Neki earned: 700",
		"2 (200 XP)",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("daily body missing %q:\n%s", want, msg.Body)
		}
	}
}

func TestDaily_EmptyDayMentionsThreshold(t *testing.T) {
	msg := Daily(DaySnapshot{Date: "2025-01-14"}, time.Now())

	for _, want := range []string{
		"No tasbih was recited.",
		"No target was completed.",
		"one tree per 100 repetitions",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("empty-day body missing %q", want)
		}
	}
}

func TestWeeklyDue_CatchUp(t *testing.T) {
	tests := []struct {
		name       string
		last       string
		now        time.Time
		wantFriday string
		wantDue    bool
	}{
		{
			name:       "never issued, saturday",
			last:       "",
			now:        time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC),
			wantFriday: "2025-01-17",
			wantDue:    true,
		},
		{
			name:       "issued for current cycle",
			last:       "2025-01-17",
			now:        time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC),
			wantFriday: "2025-01-17",
			wantDue:    false,
		},
		{
			name:       "missed several weeks emits one report",
			last:       "2024-12-20",
			now:        time.Date(2025, 1, 18, 10, 0, 0, 0, time.UTC),
			wantFriday: "2025-01-17",
			wantDue:    true,
		},
		{
			name:       "friday itself is due",
			last:       "2025-01-10",
			now:        time.Date(2025, 1, 17, 10, 0, 0, 0, time.UTC),
			wantFriday: "2025-01-17",
			wantDue:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			friday, due := WeeklyDue(tt.last, tt.now)
			if friday != tt.wantFriday || due != tt.wantDue {
				t.Errorf("WeeklyDue(%q) = (%q, %v), want (%q, %v)", tt.last, friday, due, tt.wantFriday, tt.wantDue)
			}
		})
	}
}

func TestMonthlyDue_CatchUp(t *testing.T) {
	now := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)

	first, due := MonthlyDue("2025-02-01", now)
	if first != "2025-03-01" || !due {
		t.Errorf("MonthlyDue = (%q, %v), want (2025-03-01, true)", first, due)
	}

	if _, due := MonthlyDue("2025-03-01", now); due {
		t.Error("monthly report already issued for this month should not be due")
	}
}

func TestWeekly_GardenBreakdownWindow(t *testing.T) {
	now := time.Date(2025, 1, 17, 9, 0, 0, 0, time.UTC)
	garden := []models.GardenTree{
		{TasbihName: "Tasbih A", Date: "2025-01-16"},
		{TasbihName: "Tasbih A", Date: "2025-01-12"},
		{TasbihName: "Tasbih B", Date: "2025-01-15"},
		{TasbihName: "Old", Date: "2025-01-01"}, // outside window
	}

	msg := Weekly(models.Stats{TotalNeki: 4200, Streak: 5}, 7, garden, now)

	for _, want := range []string{
		"Trees planted this week: 3",
		"- Tasbih A: 2",
		"- Tasbih B: 1",
		"Total neki: 4200",
		"Current streak: 5 days",
		"7 (700 XP)",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("weekly body missing %q:\n%s", want, msg.Body)
		}
	}
	if strings.Contains(msg.Body, "Old") {
		t.Error("weekly breakdown included a tree outside the 7-day window")
	}
}

func TestMonthly_Content(t *testing.T) {
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	garden := []models.GardenTree{
		{TasbihName: "Tasbih A", Date: "2025-01-20"},
	}

	msg := Monthly(models.Stats{Level: 4, TotalNeki: 9001}, 12, garden, now)

	if msg.Type != models.MessageTypeMonthlyReport {
		t.Errorf("type = %s", msg.Type)
	}
	for _, want := range []string{
		"Level reached: 4",
		"Total neki: 9001",
		"Trees planted this month: 1",
		"12 (1200 XP)",
	} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("monthly body missing %q", want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0 minutes 0 seconds"},
		{59, "0 minutes 59 seconds"},
		{330, "5 minutes 30 seconds"},
		{3600, "60 minutes 0 seconds"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
