package habits

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/database"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

func (*Repository) CreateHabit(ctx context.Context, q database.Queryable, habit *model.Habit) (int64, time.Time, error) {
	startDate, endDate, err := scheduleDates(habit.Schedule)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("schedule dates: %w", err)
	}

	qb := database.PSQL.
		Insert(database.HabitsTable).
		Columns(
			"user_id",
			"title",
			"description",
			"color",
			"schedule",
			"start_date",
			"end_date",
			"recurrence_rule",
		).
		Values(
			habit.UserID,
			habit.Title,
			habit.Description,
			htmlColor(habit.Color),
			habit.Schedule,
			startDate,
			endDate,
			habit.RepeatRule,
		).
		Suffix("returning id, created_at")

	row := struct {
		ID        int64
		CreatedAt time.Time
	}{}
	if err := q.Get(ctx, &row, qb); err != nil {
		return 0, time.Time{}, fmt.Errorf("SQL request: %w", err)
	}

	return row.ID, row.CreatedAt, nil
}
