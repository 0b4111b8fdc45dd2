package habits

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/habit-planner-backend/internal/database"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

func (*Repository) GetHabitByID(ctx context.Context, q database.Queryable, id int64) (*model.Habit, error) {
	habits, err := getHabits(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}

	if len(habits) == 0 {
		return nil, model.ErrNoRecord
	}

	return habits[0], nil
}

func (*Repository) GetHabitsByUser(ctx context.Context, q database.Queryable, userID int64) ([]*model.Habit, error) {
	return getHabits(ctx, q, sq.Eq{"user_id": userID})
}

func getHabits(ctx context.Context, q database.Queryable, predicate interface{}) ([]*model.Habit, error) {
	qb := baseQuery.
		Where(predicate).
		OrderBy("start_date", "id")

	var dtos []*habitDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Habit, len(dtos))
	for i, d := range dtos {
		h, err := mapToHabit(d)
		if err != nil {
			return nil, err
		}
		res[i] = h
	}

	return res, nil
}
