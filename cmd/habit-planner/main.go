package main

import (
	"context"
	"log"
	"net/http"

	"github.com/SergeyKozhin/habit-planner-backend/internal/api"
	habits_service "github.com/SergeyKozhin/habit-planner-backend/internal/business/habits"
	"github.com/SergeyKozhin/habit-planner-backend/internal/config"
	"github.com/SergeyKozhin/habit-planner-backend/internal/database"
	"github.com/SergeyKozhin/habit-planner-backend/internal/database/habits"
	"github.com/SergeyKozhin/habit-planner-backend/internal/pkg/jwt"
	"github.com/SergeyKozhin/habit-planner-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	if config.MigrateOnStart() {
		if err := database.Migrate(config.PostgresURL(), logger); err != nil {
			logger.Fatalw("unable to migrate db", "err", err)
		}
	}

	db, err := database.NewPGX(ctx, config.PostgresURL())
	if err != nil {
		logger.Fatalw("unable to initializae db", "err", err)
	}

	redisPool := redis.NewRedisPool(logger, config.RedisURL())
	habitCache := redis.NewHabitCache(redisPool, logger, config.CacheTTL())

	habitsRepository := habits.NewRepository()
	habitsService := habits_service.NewService(db, logger, habitsRepository, habitCache)

	jwts := jwt.NewManager(config.Secret(), config.JwtTTL())

	api, err := api.NewApi(logger, db, jwts, habitsService)
	if err != nil {
		logger.Fatalw("unable to initializae api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
