package api

import (
	"context"
	"net/http"

	"github.com/SergeyKozhin/habit-planner-backend/internal/business/habits"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/SergeyKozhin/habit-planner-backend/internal/schedule"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	db     pinger
	jwts   jwtManager
	habits habitsService
}

type pinger interface {
	Ping(ctx context.Context) error
}

type jwtManager interface {
	GetIdFromToken(token string) (int64, error)
}

type habitsService interface {
	CreateHabit(ctx context.Context, info *habits.HabitInput) (*model.Habit, error)
	GetHabit(ctx context.Context, userID, id int64) (*model.Habit, error)
	GetHabits(ctx context.Context, userID int64) ([]*model.Habit, error)
	GetHabitForEdit(ctx context.Context, userID, id int64) (*model.Habit, *schedule.EditState, error)
	UpdateHabit(ctx context.Context, id int64, info *habits.HabitInput) (*model.Habit, error)
	DeleteHabit(ctx context.Context, userID, id int64) error
	BuildSchedule(f schedule.Fields) (*model.CanonicalSchedule, error)
	DraftSchedule() *schedule.EditState
}

func NewApi(
	logger *zap.SugaredLogger,
	db pinger,
	jwts jwtManager,
	habits habitsService,
) (*Api, error) {
	a := &Api{
		logger: logger,
		db:     db,
		jwts:   jwts,
		habits: habits,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes, a.measure)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", a.healthcheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/schedules", func(r chi.Router) {
		r.Post("/validate", a.validateScheduleHandler)
		r.Get("/draft", a.draftScheduleHandler)
	})

	r.With(a.auth).Route("/habits", func(r chi.Router) {
		r.Post("/", a.createHabitHandler)
		r.Get("/", a.getHabitsHandler)

		r.Route("/{habitID}", func(r chi.Router) {
			r.With(a.habitCtx).Get("/", a.getHabitHandler)
			r.Get("/edit", a.getHabitForEditHandler)
			r.Put("/", a.updateHabitHandler)
			r.Delete("/", a.deleteHabitHandler)
		})
	})

	a.handler = r
}

func (a *Api) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.Ping(r.Context()); err != nil {
		a.logger.Errorw("healthcheck failed", "err", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
