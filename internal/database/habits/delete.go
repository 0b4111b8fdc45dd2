package habits

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SergeyKozhin/habit-planner-backend/internal/database"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

func (*Repository) DeleteHabit(ctx context.Context, q database.Queryable, userID, id int64) error {
	qb := database.PSQL.
		Delete(database.HabitsTable).
		Where(sq.Eq{"id": id, "user_id": userID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
