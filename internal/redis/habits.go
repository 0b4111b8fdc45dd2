package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const habitKeyPrefix = "habit:"

// HabitCache keeps recently read habits by id.
type HabitCache struct {
	pool   *redis.Pool
	logger *zap.SugaredLogger
	ttl    time.Duration
}

func NewHabitCache(pool *redis.Pool, logger *zap.SugaredLogger, ttl time.Duration) *HabitCache {
	return &HabitCache{
		pool:   pool,
		logger: logger,
		ttl:    ttl,
	}
}

// Get returns model.ErrNoRecord on a cache miss.
func (c *HabitCache) Get(ctx context.Context, id int64) (*model.Habit, error) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get conn: %w", err)
	}
	defer c.closeConn(conn)

	data, err := redis.Bytes(conn.Do("GET", habitKey(id)))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("GET: %w", err)
	}

	habit := &model.Habit{}
	if err := json.Unmarshal(data, habit); err != nil {
		return nil, fmt.Errorf("unmarshal habit %v: %w", id, err)
	}

	return habit, nil
}

func (c *HabitCache) Set(ctx context.Context, habit *model.Habit) error {
	data, err := json.Marshal(habit)
	if err != nil {
		return fmt.Errorf("marshal habit %v: %w", habit.ID, err)
	}

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer c.closeConn(conn)

	if _, err := conn.Do("SET", habitKey(habit.ID), data, "PX", c.ttl.Milliseconds()); err != nil {
		return fmt.Errorf("SET: %w", err)
	}

	return nil
}

func (c *HabitCache) Delete(ctx context.Context, id int64) error {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer c.closeConn(conn)

	if _, err := conn.Do("DEL", habitKey(id)); err != nil {
		return fmt.Errorf("DEL: %w", err)
	}

	return nil
}

func (c *HabitCache) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		c.logger.Errorw("Failed closing redis connection", "err", err)
	}
}

func habitKey(id int64) string {
	return fmt.Sprintf("%s%d", habitKeyPrefix, id)
}
