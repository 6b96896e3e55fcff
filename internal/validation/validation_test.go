package validation

import (
	"testing"
	"time"
)

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		everyday bool
		weekdays []time.Weekday
		wantErr  bool
	}{
		{"everyday keyword", "everyday", true, nil, false},
		{"empty defaults to everyday", "", true, nil, false},
		{"single day", "fri", false, []time.Weekday{time.Friday}, false},
		{"full names", "saturday,sunday", false, []time.Weekday{time.Saturday, time.Sunday}, false},
		{"numeric days", "0,6", false, []time.Weekday{time.Sunday, time.Saturday}, false},
		{"mixed case with spaces", " Mon , TUE ", false, []time.Weekday{time.Monday, time.Tuesday}, false},
		{"invalid day", "someday", false, nil, true},
		{"out of range number", "7", false, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := ParseSchedule(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSchedule(%q) expected error, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSchedule(%q) failed: %v", tt.input, err)
			}
			if sched.Everyday != tt.everyday {
				t.Errorf("Everyday = %v, want %v", sched.Everyday, tt.everyday)
			}
			if len(sched.Weekdays) != len(tt.weekdays) {
				t.Fatalf("Weekdays = %v, want %v", sched.Weekdays, tt.weekdays)
			}
			for i, wd := range tt.weekdays {
				if sched.Weekdays[i] != wd {
					t.Errorf("Weekdays[%d] = %v, want %v", i, sched.Weekdays[i], wd)
				}
			}
		})
	}
}

func TestFormatSchedule_RoundTrip(t *testing.T) {
	for _, input := range []string{"everyday", "fri", "sat,sun"} {
		sched, err := ParseSchedule(input)
		if err != nil {
			t.Fatalf("ParseSchedule(%q) failed: %v", input, err)
		}
		if got := FormatSchedule(sched); got != input {
			t.Errorf("FormatSchedule(ParseSchedule(%q)) = %q", input, got)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Tasbih A"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := ValidateName("   "); err == nil {
		t.Error("blank name accepted")
	}
}
