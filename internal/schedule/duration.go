package schedule

import (
	"fmt"
	"strings"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

// DurationMode selects between a single clock time and a time range when the
// habit is not all day.
type DurationMode string

const (
	ModePoint  DurationMode = "point"
	ModePeriod DurationMode = "period"
)

// ProposedLength is how far past the start an end time is proposed.
const ProposedLength = 60

type DurationFields struct {
	AllDay    bool
	Mode      DurationMode
	StartTime *string
	EndTime   *string
}

// BuildDuration validates the duration fields. All day wins: when AllDay is
// set the time fields are ignored, even malformed ones.
func BuildDuration(f DurationFields) (model.DurationSpec, error) {
	if f.AllDay {
		return model.AllDay{}, nil
	}

	var errs model.ValidationErrors

	start, hasStart, err := parseOptionalTime(f.StartTime)
	if err != nil {
		errs.Add(model.FieldStartTime, err)
	} else if !hasStart {
		errs.Add(model.FieldStartTime, model.ErrMissingStartTime)
	}

	switch f.Mode {
	case ModePoint:
		if err := errs.Err(); err != nil {
			return nil, err
		}
		return model.PointInTime{Time: start}, nil

	case ModePeriod:
		end, hasEnd, err := parseOptionalTime(f.EndTime)
		if err != nil {
			errs.Add(model.FieldEndTime, err)
		}
		if err := errs.Err(); err != nil {
			return nil, err
		}

		if !hasEnd {
			end = ProposeEnd(start)
		}
		if !end.After(start) {
			errs.Add(model.FieldEndTime, model.ErrEndBeforeStart)
			return nil, errs
		}
		return model.Period{Start: start, End: end}, nil

	default:
		errs.Add(model.FieldDuration, fmt.Errorf("%w: %q", model.ErrInvalidDurationMode, f.Mode))
		return nil, errs
	}
}

// ProposeEnd returns the end time offered for a period starting at start.
// The proposal never wraps past midnight, so a start of 23:59 gets no valid
// proposal.
func ProposeEnd(start model.TimeOfDay) model.TimeOfDay {
	return start.Add(ProposedLength)
}

// WithStart moves the start of a period. If the old end is no longer after
// the new start the end is re-proposed, so editing never leaves an inverted
// period behind.
func WithStart(p model.Period, start model.TimeOfDay) model.Period {
	p.Start = start
	if !p.End.After(start) {
		p.End = ProposeEnd(start)
	}

	return p
}

func parseOptionalTime(s *string) (model.TimeOfDay, bool, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return model.TimeOfDay{}, false, nil
	}

	t, err := model.ParseTimeOfDay(strings.TrimSpace(*s))
	if err != nil {
		return model.TimeOfDay{}, true, fmt.Errorf("%w: %q", model.ErrInvalidTime, *s)
	}

	return t, true, nil
}
