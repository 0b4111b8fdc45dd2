package schedule

import (
	"fmt"
	"strings"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

type ReminderKind string

const (
	ReminderUnset    ReminderKind = "unset"
	ReminderAbsolute ReminderKind = "absolute"
	ReminderRelative ReminderKind = "relative"
)

// ReminderChoice is the reminder option picked in the UI. Time is used by
// absolute reminders, MinutesBefore by relative ones.
type ReminderChoice struct {
	Kind          ReminderKind
	Time          *string
	MinutesBefore int
}

func Absolute(t string) *ReminderChoice {
	return &ReminderChoice{Kind: ReminderAbsolute, Time: &t}
}

func Relative(minutes int) *ReminderChoice {
	return &ReminderChoice{Kind: ReminderRelative, MinutesBefore: minutes}
}

// BuildReminder validates a reminder choice against the resolved duration.
// All-day habits take relative offsets only, timed habits take clock times
// only, and a choice of the wrong kind fails before its value is looked at. A
// nil duration means it failed validation; the choice is then checked on its
// own and no reminder is returned.
func BuildReminder(d model.DurationSpec, choice *ReminderChoice) (model.ReminderSpec, error) {
	kind := choiceKind(choice)
	if kind == ReminderUnset {
		return nil, nil
	}

	if kind != ReminderAbsolute && kind != ReminderRelative {
		return nil, &model.FieldError{Field: model.FieldReminder, Err: fmt.Errorf("%w: kind %q", model.ErrIncompatibleReminderMode, kind)}
	}

	if d != nil && !reminderAllowed(d, kind) {
		return nil, &model.FieldError{Field: model.FieldReminder, Err: model.ErrIncompatibleReminderMode}
	}

	var spec model.ReminderSpec
	if kind == ReminderAbsolute {
		t, ok, err := parseOptionalTime(choice.Time)
		if err != nil {
			return nil, &model.FieldError{Field: model.FieldReminder, Err: err}
		}
		if !ok {
			return nil, &model.FieldError{Field: model.FieldReminder, Err: fmt.Errorf("%w: reminder time must be provided", model.ErrInvalidTime)}
		}
		spec = model.AbsoluteReminder{Time: t}
	} else {
		if choice.MinutesBefore != model.TenMinutesBefore && choice.MinutesBefore != model.ThirtyMinutesBefore {
			return nil, &model.FieldError{Field: model.FieldReminder, Err: fmt.Errorf("%w: got %d", model.ErrInvalidReminderOffset, choice.MinutesBefore)}
		}
		spec = model.RelativeReminder{MinutesBefore: choice.MinutesBefore}
	}

	if d == nil {
		return nil, nil
	}

	return spec, nil
}

// choiceKind is the kind of choice. Without an explicit kind it follows the
// filled in value: a time means absolute, an offset means relative.
func choiceKind(choice *ReminderChoice) ReminderKind {
	switch {
	case choice == nil:
		return ReminderUnset
	case choice.Kind != "":
		return choice.Kind
	case choice.Time != nil && strings.TrimSpace(*choice.Time) != "":
		return ReminderAbsolute
	case choice.MinutesBefore != 0:
		return ReminderRelative
	}

	return ReminderUnset
}

func reminderAllowed(d model.DurationSpec, kind ReminderKind) bool {
	switch d.(type) {
	case model.AllDay:
		return kind == ReminderRelative
	case model.PointInTime, model.Period:
		return kind == ReminderAbsolute
	}

	return false
}

// ReminderChoicesFor lists the reminder options to offer once the duration is
// known. Absolute options are seeded with the duration's start time.
func ReminderChoicesFor(d model.DurationSpec) []ReminderChoice {
	switch d := d.(type) {
	case model.AllDay:
		return []ReminderChoice{
			*Relative(model.TenMinutesBefore),
			*Relative(model.ThirtyMinutesBefore),
		}
	case model.PointInTime:
		return []ReminderChoice{*Absolute(d.Time.String())}
	case model.Period:
		return []ReminderChoice{*Absolute(d.Start.String())}
	}

	return nil
}

// ReconstructReminder picks the variant to show for a stored reminder. A time
// field means absolute, a set *_before flag means relative and anything else
// is unset. A variant the duration d does not allow is shown as unset so the
// schedule can be saved again. Oddities are reported in issues but never fail.
func ReconstructReminder(c *model.CanonicalReminder, d model.DurationSpec) (ReminderChoice, []string) {
	unset := ReminderChoice{Kind: ReminderUnset}
	if c == nil {
		return unset, nil
	}

	var issues []string
	var choice ReminderChoice

	switch {
	case c.Time != nil:
		t, err := model.ParseTimeOfDay(strings.TrimSpace(*c.Time))
		if err != nil {
			return unset, []string{fmt.Sprintf("reminder time %q not readable", *c.Time)}
		}
		choice = *Absolute(t.String())
		if c.TenMinBefore != nil || c.ThirtyMinBefore != nil {
			issues = append(issues, "reminder offsets ignored in favour of time")
		}

	case c.TenMinBefore != nil && *c.TenMinBefore:
		choice = *Relative(model.TenMinutesBefore)
		if c.ThirtyMinBefore != nil && *c.ThirtyMinBefore {
			issues = append(issues, "thirty_min_before ignored in favour of ten_min_before")
		}

	case c.ThirtyMinBefore != nil && *c.ThirtyMinBefore:
		choice = *Relative(model.ThirtyMinutesBefore)

	default:
		return unset, nil
	}

	if d != nil && !reminderAllowed(d, choice.Kind) {
		return unset, append(issues, fmt.Sprintf("%s reminder does not match duration", choice.Kind))
	}

	return choice, issues
}
