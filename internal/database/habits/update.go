package habits

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/habit-planner-backend/internal/database"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

func (*Repository) UpdateHabit(ctx context.Context, q database.Queryable, habit *model.Habit) error {
	startDate, endDate, err := scheduleDates(habit.Schedule)
	if err != nil {
		return fmt.Errorf("schedule dates: %w", err)
	}

	qb := database.PSQL.
		Update(database.HabitsTable).
		SetMap(map[string]interface{}{
			"title":           habit.Title,
			"description":     habit.Description,
			"color":           htmlColor(habit.Color),
			"schedule":        habit.Schedule,
			"start_date":      startDate,
			"end_date":        endDate,
			"recurrence_rule": habit.RepeatRule,
			"updated_at":      sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": habit.ID, "user_id": habit.UserID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
