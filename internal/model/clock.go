package model

import (
	"fmt"
	"time"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// TimeOfDay is a wall-clock time without date or zone. It is always read
// against the occurrence date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// LastMinute is the latest representable time of day.
var LastMinute = TimeOfDay{Hour: 23, Minute: 59}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time %q: %w", s, err)
	}

	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// TimeOfDayFromMinutes converts minutes since midnight, clamping to the day.
func TimeOfDayFromMinutes(m int) TimeOfDay {
	if m < 0 {
		m = 0
	}
	if m > LastMinute.Minutes() {
		m = LastMinute.Minutes()
	}

	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) After(o TimeOfDay) bool {
	return t.Minutes() > o.Minutes()
}

// Add shifts the time by d minutes without wrapping past midnight.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return TimeOfDayFromMinutes(t.Minutes() + minutes)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Date is a calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}

	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	return d.Time(time.UTC).Before(o.Time(time.UTC))
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.Time(time.UTC).Format(DateFormat)
}
