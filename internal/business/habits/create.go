package habits

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/SergeyKozhin/habit-planner-backend/internal/schedule"
)

func (s *Service) CreateHabit(ctx context.Context, info *HabitInput) (*model.Habit, error) {
	sch, rule, err := s.buildSchedule(info.Schedule, s.now())
	if err != nil {
		return nil, err
	}

	habit := &model.Habit{
		RepeatRule: rule,
		HabitCreate: model.HabitCreate{
			UserID:      info.UserID,
			Title:       info.Title,
			Description: info.Description,
			Color:       info.Color,
			Schedule:    schedule.ToCanonical(sch),
		},
	}

	id, createdAt, err := s.habitsRepository.CreateHabit(ctx, s.db, habit)
	if err != nil {
		return nil, fmt.Errorf("habitsRepository.CreateHabit: %w", err)
	}

	habit.ID = id
	habit.CreatedAt = createdAt
	habit.UpdatedAt = createdAt

	s.cacheHabit(ctx, habit)

	return habit, nil
}
