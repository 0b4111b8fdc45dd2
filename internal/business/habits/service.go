package habits

import (
	"context"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/database"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/SergeyKozhin/habit-planner-backend/internal/schedule"
	"github.com/gerow/go-color"
	"go.uber.org/zap"
)

type Service struct {
	db     database.PGX
	logger *zap.SugaredLogger
	loader *schedule.Loader
	now    func() time.Time

	habitsRepository habitsRepository
	cache            habitCache
}

type habitsRepository interface {
	CreateHabit(ctx context.Context, q database.Queryable, habit *model.Habit) (int64, time.Time, error)
	GetHabitByID(ctx context.Context, q database.Queryable, id int64) (*model.Habit, error)
	GetHabitsByUser(ctx context.Context, q database.Queryable, userID int64) ([]*model.Habit, error)
	UpdateHabit(ctx context.Context, q database.Queryable, habit *model.Habit) error
	DeleteHabit(ctx context.Context, q database.Queryable, userID, id int64) error
}

type habitCache interface {
	Get(ctx context.Context, id int64) (*model.Habit, error)
	Set(ctx context.Context, habit *model.Habit) error
	Delete(ctx context.Context, id int64) error
}

// HabitInput is a habit as submitted by a client, with the schedule still in
// picker form.
type HabitInput struct {
	UserID      int64
	Title       string
	Description string
	Color       color.RGB
	Schedule    schedule.Fields
}

func NewService(db database.PGX, logger *zap.SugaredLogger, repo habitsRepository, cache habitCache) *Service {
	return &Service{
		db:               db,
		logger:           logger,
		loader:           schedule.NewLoader(logger),
		now:              time.Now,
		habitsRepository: repo,
		cache:            cache,
	}
}
