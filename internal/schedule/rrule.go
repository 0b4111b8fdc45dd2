package schedule

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/teambition/rrule-go"
)

// RRule renders the schedule as an RFC 5545 rule for the occurrence
// enumerator. Schedules without recurrence have no rule. The rule starts at
// the start date and, for timed durations, at the start time, in UTC.
func RRule(s *model.Schedule) (string, error) {
	if s.Recurrence == nil {
		return "", nil
	}

	opt := rrule.ROption{
		Interval: s.Recurrence.Every(),
		Dtstart:  dtstart(s),
	}

	switch r := s.Recurrence.(type) {
	case model.DailyRecurrence:
		opt.Freq = rrule.DAILY
	case model.WeeklyRecurrence:
		opt.Freq = rrule.WEEKLY
		for _, d := range r.Days {
			wd, err := Weekday(d)
			if err != nil {
				return "", err
			}
			opt.Byweekday = append(opt.Byweekday, rruleWeekday(wd))
		}
	case model.MonthlyRecurrence:
		opt.Freq = rrule.MONTHLY
		opt.Bymonthday = append([]int(nil), r.Days...)
	default:
		return "", fmt.Errorf("unknown recurrence: %T", s.Recurrence)
	}

	if s.EndDate != nil {
		opt.Until = s.EndDate.Time(time.UTC).Add(24*time.Hour - time.Second)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return "", fmt.Errorf("creating rule: %w", err)
	}

	return rule.String(), nil
}

func dtstart(s *model.Schedule) time.Time {
	start := s.StartDate.Time(time.UTC)

	var at model.TimeOfDay
	switch d := s.Duration.(type) {
	case model.PointInTime:
		at = d.Time
	case model.Period:
		at = d.Start
	}

	return start.Add(time.Duration(at.Minutes()) * time.Minute)
}

func rruleWeekday(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	}

	return rrule.SU
}
