package schedule

import (
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

// ToCanonical renders a validated schedule in its persisted form.
func ToCanonical(s *model.Schedule) *model.CanonicalSchedule {
	c := &model.CanonicalSchedule{
		StartDate:  s.StartDate.String(),
		Recurrence: CanonicalRecurrence(s.Recurrence),
		Duration:   canonicalDuration(s.Duration),
		Reminder:   canonicalReminder(s.Reminder),
	}

	if s.EndDate != nil {
		end := s.EndDate.String()
		c.EndDate = &end
	}

	return c
}

// CanonicalRecurrence renders a rule. Only the day list that belongs to the
// rule's frequency is set.
func CanonicalRecurrence(r model.RecurrenceRule) *model.CanonicalRecurrence {
	switch r := r.(type) {
	case model.DailyRecurrence:
		return &model.CanonicalRecurrence{
			FrequencyType: string(model.FrequencyDaily),
			Interval:      r.Interval,
		}
	case model.WeeklyRecurrence:
		days := make([]string, len(r.Days))
		for i, d := range r.Days {
			days[i] = string(d)
		}
		return &model.CanonicalRecurrence{
			FrequencyType: string(model.FrequencyWeekly),
			Interval:      r.Interval,
			DaysOfWeek:    days,
		}
	case model.MonthlyRecurrence:
		return &model.CanonicalRecurrence{
			FrequencyType: string(model.FrequencyMonthly),
			Interval:      r.Interval,
			DaysOfMonth:   append([]int(nil), r.Days...),
		}
	}

	return nil
}

func canonicalDuration(d model.DurationSpec) *model.CanonicalDuration {
	switch d := d.(type) {
	case model.PointInTime:
		start := d.Time.String()
		return &model.CanonicalDuration{StartTime: &start}
	case model.Period:
		start, end := d.Start.String(), d.End.String()
		return &model.CanonicalDuration{StartTime: &start, EndTime: &end}
	}

	return &model.CanonicalDuration{AllDay: true}
}

func canonicalReminder(r model.ReminderSpec) *model.CanonicalReminder {
	yes := true

	switch r := r.(type) {
	case model.AbsoluteReminder:
		t := r.Time.String()
		return &model.CanonicalReminder{Time: &t}
	case model.RelativeReminder:
		if r.MinutesBefore == model.ThirtyMinutesBefore {
			return &model.CanonicalReminder{ThirtyMinBefore: &yes}
		}
		return &model.CanonicalReminder{TenMinBefore: &yes}
	}

	return nil
}
