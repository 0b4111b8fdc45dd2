package habits

import (
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/metrics"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/SergeyKozhin/habit-planner-backend/internal/schedule"
)

// BuildSchedule validates f against the current time without saving
// anything.
func (s *Service) BuildSchedule(f schedule.Fields) (*model.CanonicalSchedule, error) {
	sch, _, err := s.buildSchedule(f, s.now())
	if err != nil {
		return nil, err
	}

	return schedule.ToCanonical(sch), nil
}

// DraftSchedule is the edit state a new habit starts from.
func (s *Service) DraftSchedule() *schedule.EditState {
	return schedule.DraftState(s.now())
}

// buildSchedule runs the builder and renders the recurrence rule. now is the
// reference for the start date check.
func (s *Service) buildSchedule(f schedule.Fields, now time.Time) (*model.Schedule, string, error) {
	sch, err := schedule.Build(f, now)
	if err != nil {
		metrics.ScheduleBuilds.WithLabelValues(metrics.ResultInvalid).Inc()

		var verrs model.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				metrics.ScheduleValidationErrors.WithLabelValues(e.Field).Inc()
			}
		}
		return nil, "", err
	}
	metrics.ScheduleBuilds.WithLabelValues(metrics.ResultOK).Inc()

	rule, err := schedule.RRule(sch)
	if err != nil {
		return nil, "", fmt.Errorf("schedule.RRule: %w", err)
	}

	return sch, rule, nil
}
