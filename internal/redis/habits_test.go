package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/gerow/go-color"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

// fakeConn is an in-memory redis.Conn that understands GET, SET and DEL.
type fakeConn struct {
	store map[string][]byte
	ttls  map[string]int64
	err   error
}

func (c *fakeConn) Close() error { return nil }
func (c *fakeConn) Err() error   { return nil }
func (c *fakeConn) Flush() error { return nil }

func (c *fakeConn) Send(string, ...interface{}) error { return errors.New("not supported") }

func (c *fakeConn) Receive() (interface{}, error) { return nil, errors.New("not supported") }

func (c *fakeConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	if cmd == "" {
		return nil, nil
	}
	if c.err != nil {
		return nil, c.err
	}

	key := fmt.Sprint(args[0])
	switch cmd {
	case "GET":
		v, ok := c.store[key]
		if !ok {
			return nil, nil
		}
		return v, nil
	case "SET":
		c.store[key] = args[1].([]byte)
		if len(args) == 4 {
			c.ttls[key] = args[3].(int64)
		}
		return "OK", nil
	case "DEL":
		delete(c.store, key)
		return int64(1), nil
	}

	return nil, fmt.Errorf("unknown command %s", cmd)
}

func newTestCache(conn *fakeConn) *HabitCache {
	pool := &redis.Pool{
		Dial: func() (redis.Conn, error) { return conn, nil },
	}
	return NewHabitCache(pool, zap.NewNop().Sugar(), time.Minute)
}

func TestHabitCache(t *testing.T) {
	conn := &fakeConn{store: map[string][]byte{}, ttls: map[string]int64{}}
	cache := newTestCache(conn)
	ctx := context.Background()

	if _, err := cache.Get(ctx, 5); !errors.Is(err, model.ErrNoRecord) {
		t.Fatalf("Get on empty cache error = %v, want ErrNoRecord", err)
	}

	end := "2025-03-01"
	habit := &model.Habit{
		ID:         5,
		RepeatRule: "FREQ=DAILY",
		CreatedAt:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		HabitCreate: model.HabitCreate{
			UserID: 2,
			Title:  "Stretch",
			Color:  color.RGB{R: 1},
			Schedule: &model.CanonicalSchedule{
				StartDate: "2025-01-10",
				EndDate:   &end,
				Duration:  &model.CanonicalDuration{AllDay: true},
			},
		},
	}

	if err := cache.Set(ctx, habit); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if conn.ttls["habit:5"] != time.Minute.Milliseconds() {
		t.Errorf("ttl = %d, want %d", conn.ttls["habit:5"], time.Minute.Milliseconds())
	}

	got, err := cache.Get(ctx, 5)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Title != "Stretch" || got.UserID != 2 || !got.CreatedAt.Equal(habit.CreatedAt) {
		t.Errorf("habit = %+v", got)
	}
	if got.Schedule == nil || got.Schedule.EndDate == nil || *got.Schedule.EndDate != end {
		t.Errorf("schedule = %+v", got.Schedule)
	}

	if err := cache.Delete(ctx, 5); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := cache.Get(ctx, 5); !errors.Is(err, model.ErrNoRecord) {
		t.Errorf("Get after delete error = %v, want ErrNoRecord", err)
	}
}

func TestHabitCacheErrors(t *testing.T) {
	conn := &fakeConn{store: map[string][]byte{}, ttls: map[string]int64{}, err: errors.New("connection reset")}
	cache := newTestCache(conn)

	_, err := cache.Get(context.Background(), 1)
	if err == nil || errors.Is(err, model.ErrNoRecord) {
		t.Errorf("Get error = %v, want connection error", err)
	}

	conn.err = nil
	conn.store["habit:1"] = []byte("{broken")
	if _, err := cache.Get(context.Background(), 1); err == nil {
		t.Error("expected unmarshal error")
	}
}
