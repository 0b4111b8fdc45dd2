package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/gerow/go-color"
)

type habitDTO struct {
	ID             int64
	UserID         int64
	Title          string
	Description    string
	Color          string
	Schedule       *model.CanonicalSchedule
	RecurrenceRule string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func mapToHabit(d *habitDTO) (*model.Habit, error) {
	colorRGB, err := color.HTMLToRGB(d.Color)
	if err != nil {
		return nil, fmt.Errorf("map color from %v", d.Color)
	}

	return &model.Habit{
		ID:         d.ID,
		RepeatRule: d.RecurrenceRule,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		HabitCreate: model.HabitCreate{
			UserID:      d.UserID,
			Title:       d.Title,
			Description: d.Description,
			Color:       colorRGB,
			Schedule:    d.Schedule,
		},
	}, nil
}

func htmlColor(c color.RGB) string {
	return "#" + c.ToHTML()
}

// scheduleDates extracts the indexed date columns from a schedule.
func scheduleDates(s *model.CanonicalSchedule) (time.Time, *time.Time, error) {
	if s == nil {
		return time.Time{}, nil, fmt.Errorf("schedule missing")
	}

	start, err := model.ParseDate(strings.TrimSpace(s.StartDate))
	if err != nil {
		return time.Time{}, nil, err
	}

	if s.EndDate == nil || strings.TrimSpace(*s.EndDate) == "" {
		return start.Time(time.UTC), nil, nil
	}

	end, err := model.ParseDate(strings.TrimSpace(*s.EndDate))
	if err != nil {
		return time.Time{}, nil, err
	}
	endTime := end.Time(time.UTC)

	return start.Time(time.UTC), &endTime, nil
}
