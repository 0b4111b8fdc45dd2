package habits

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/habit-planner-backend/internal/database"
	"github.com/SergeyKozhin/habit-planner-backend/internal/metrics"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/SergeyKozhin/habit-planner-backend/internal/schedule"
)

// GetHabit returns model.ErrNoRecord for habits of other users.
func (s *Service) GetHabit(ctx context.Context, userID, id int64) (*model.Habit, error) {
	habit, err := s.cache.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrNoRecord) {
			s.logger.Errorw("Failed reading habit cache", "id", id, "err", err)
		}

		habit, err = s.loadHabit(ctx, s.db, id)
		if err != nil {
			return nil, err
		}
	}

	if habit.UserID != userID {
		return nil, model.ErrNoRecord
	}

	return habit, nil
}

func (s *Service) GetHabits(ctx context.Context, userID int64) ([]*model.Habit, error) {
	habits, err := s.habitsRepository.GetHabitsByUser(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("habitsRepository.GetHabitsByUser: %w", err)
	}

	return habits, nil
}

// GetHabitForEdit loads the habit with its schedule in picker form. Stored
// fields that cannot be read are defaulted, so this only fails when the habit
// itself cannot be read.
func (s *Service) GetHabitForEdit(ctx context.Context, userID, id int64) (*model.Habit, *schedule.EditState, error) {
	habit, err := s.GetHabit(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	state := s.loader.Load(habit.Schedule, s.now())
	for _, f := range state.Fallbacks {
		metrics.ScheduleEditFallbacks.WithLabelValues(f).Inc()
	}

	return habit, state, nil
}

// loadHabit reads the habit from q and fills the cache.
func (s *Service) loadHabit(ctx context.Context, q database.Queryable, id int64) (*model.Habit, error) {
	habit, err := s.habitsRepository.GetHabitByID(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("habitsRepository.GetHabitByID: %w", err)
	}

	s.cacheHabit(ctx, habit)

	return habit, nil
}

func (s *Service) cacheHabit(ctx context.Context, habit *model.Habit) {
	if err := s.cache.Set(ctx, habit); err != nil {
		s.logger.Errorw("Failed caching habit", "id", habit.ID, "err", err)
	}
}

func (s *Service) dropCached(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Errorw("Failed dropping cached habit", "id", id, "err", err)
	}
}
