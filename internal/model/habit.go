package model

import (
	"time"

	"github.com/gerow/go-color"
)

type HabitCreate struct {
	UserID      int64
	Title       string
	Description string
	Color       color.RGB
	Schedule    *CanonicalSchedule
}

type Habit struct {
	ID         int64
	RepeatRule string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	HabitCreate
}
