// Package schedule turns habit schedule selections into canonical schedule
// records and back.
//
// Everything here is a pure function of its arguments. The current time is
// always passed in by the caller.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

// FrequencyFields is the repeat picker. Frequency takes the picker label or
// the canonical token.
type FrequencyFields struct {
	Frequency string
	Interval  string
	Days      []string
	Dates     []int
}

// Fields is the complete set of schedule selections for one save.
type Fields struct {
	StartDate string
	EndDate   *string
	Frequency *FrequencyFields
	Duration  DurationFields
	Reminder  *ReminderChoice
}

// NewDraft returns the schedule a new habit starts from: tomorrow, no repeat,
// all day, no reminder.
func NewDraft(now time.Time) *model.Schedule {
	return &model.Schedule{
		StartDate: model.DateOf(now).AddDays(1),
		Duration:  model.AllDay{},
	}
}

// Build validates every field and assembles a schedule. Validation does not
// stop at the first problem: on failure the error is a
// model.ValidationErrors holding all of them, and the schedule is nil.
func Build(f Fields, now time.Time) (*model.Schedule, error) {
	var errs model.ValidationErrors
	s := &model.Schedule{}

	today := model.DateOf(now)
	start, err := model.ParseDate(strings.TrimSpace(f.StartDate))
	startOK := err == nil
	switch {
	case err != nil:
		errs.Add(model.FieldStartDate, fmt.Errorf("%w: %q", model.ErrInvalidDate, f.StartDate))
	case start.Before(today):
		errs.Add(model.FieldStartDate, model.ErrStartDateInPast)
	}
	s.StartDate = start

	if f.EndDate != nil && strings.TrimSpace(*f.EndDate) != "" {
		end, err := model.ParseDate(strings.TrimSpace(*f.EndDate))
		switch {
		case err != nil:
			errs.Add(model.FieldEndDate, fmt.Errorf("%w: %q", model.ErrInvalidDate, *f.EndDate))
		case startOK && end.Before(start):
			errs.Add(model.FieldEndDate, model.ErrEndDateBeforeStartDate)
		default:
			s.EndDate = &end
		}
	}

	if f.Frequency != nil && strings.TrimSpace(f.Frequency.Frequency) != "" {
		freq, err := FrequencyToCanonical(strings.TrimSpace(f.Frequency.Frequency))
		if err != nil {
			errs.Add(model.FieldFrequency, err)
		} else {
			rule, err := BuildRecurrence(freq, f.Frequency.Interval, RecurrenceSelection{
				Days:  f.Frequency.Days,
				Dates: f.Frequency.Dates,
			})
			errs.Merge(model.FieldFrequency, err)
			s.Recurrence = rule
		}
	}

	duration, err := BuildDuration(f.Duration)
	errs.Merge(model.FieldDuration, err)
	s.Duration = duration

	reminder, err := BuildReminder(duration, f.Reminder)
	errs.Merge(model.FieldReminder, err)
	s.Reminder = reminder

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return s, nil
}
