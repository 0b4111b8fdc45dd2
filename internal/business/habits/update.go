package habits

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/SergeyKozhin/habit-planner-backend/internal/schedule"
)

// UpdateHabit replaces the habit wholesale. The start date is checked against
// the habit's creation time, so an unchanged start date stays valid.
func (s *Service) UpdateHabit(ctx context.Context, id int64, info *HabitInput) (*model.Habit, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	old, err := s.habitsRepository.GetHabitByID(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("get old habit: %w", err)
	}
	if old.UserID != info.UserID {
		return nil, model.ErrNoRecord
	}

	sch, rule, err := s.buildSchedule(info.Schedule, old.CreatedAt)
	if err != nil {
		return nil, err
	}

	habit := &model.Habit{
		ID:         id,
		RepeatRule: rule,
		CreatedAt:  old.CreatedAt,
		UpdatedAt:  s.now(),
		HabitCreate: model.HabitCreate{
			UserID:      info.UserID,
			Title:       info.Title,
			Description: info.Description,
			Color:       info.Color,
			Schedule:    schedule.ToCanonical(sch),
		},
	}

	if err := s.habitsRepository.UpdateHabit(ctx, tx, habit); err != nil {
		return nil, fmt.Errorf("habitsRepository.UpdateHabit: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	s.dropCached(ctx, id)

	return habit, nil
}
