package habits

import "github.com/SergeyKozhin/habit-planner-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"user_id",
		"title",
		"description",
		"color",
		"schedule",
		"recurrence_rule",
		"created_at",
		"updated_at",
	).
	From(database.HabitsTable)
