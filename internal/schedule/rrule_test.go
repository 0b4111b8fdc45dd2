package schedule

import (
	"strings"
	"testing"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

func TestRRule(t *testing.T) {
	tests := []struct {
		name string
		in   Fields
		want []string
	}{
		{
			name: "weekly",
			in: Fields{
				StartDate: "2025-01-10",
				Frequency: &FrequencyFields{Frequency: "Weekly", Interval: "2", Days: []string{"Mo", "We"}},
				Duration:  DurationFields{AllDay: true},
			},
			want: []string{"FREQ=WEEKLY", "INTERVAL=2", "MO", "WE"},
		},
		{
			name: "monthly with end",
			in: Fields{
				StartDate: "2025-01-10",
				EndDate:   str("2025-06-30"),
				Frequency: &FrequencyFields{Frequency: "Monthly", Dates: []int{1, 15}},
				Duration:  DurationFields{Mode: ModePoint, StartTime: str("07:30")},
			},
			want: []string{"FREQ=MONTHLY", "BYMONTHDAY=1,15", "UNTIL=20250630T235959Z"},
		},
		{
			name: "daily",
			in: Fields{
				StartDate: "2025-01-10",
				Frequency: &FrequencyFields{Frequency: "Daily", Interval: "3"},
				Duration:  DurationFields{AllDay: true},
			},
			want: []string{"FREQ=DAILY", "INTERVAL=3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Build(tt.in, now)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}

			rule, err := RRule(s)
			if err != nil {
				t.Fatalf("RRule error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(rule, w) {
					t.Errorf("rule %q does not contain %q", rule, w)
				}
			}
		})
	}
}

func TestRRuleNoRecurrence(t *testing.T) {
	rule, err := RRule(&model.Schedule{StartDate: model.Date{Year: 2025, Month: 1, Day: 10}, Duration: model.AllDay{}})
	if err != nil {
		t.Fatalf("RRule error: %v", err)
	}
	if rule != "" {
		t.Errorf("rule = %q, want empty", rule)
	}
}
