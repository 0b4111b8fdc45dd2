package model

// Frequency is the canonical repeat token.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// DayCode is the canonical lowercase three-letter weekday.
type DayCode string

const (
	DaySunday    DayCode = "sun"
	DayMonday    DayCode = "mon"
	DayTuesday   DayCode = "tue"
	DayWednesday DayCode = "wed"
	DayThursday  DayCode = "thu"
	DayFriday    DayCode = "fri"
	DaySaturday  DayCode = "sat"
)

// Week lists the day codes in calendar order, Sunday first.
var Week = []DayCode{DaySunday, DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday}

// RecurrenceRule describes how often a habit repeats. Each frequency has its
// own variant so a weekly rule can never carry days of the month and the
// other way round.
type RecurrenceRule interface {
	Frequency() Frequency
	Every() int
}

type DailyRecurrence struct {
	Interval int
}

type WeeklyRecurrence struct {
	Interval int
	Days     []DayCode
}

type MonthlyRecurrence struct {
	Interval int
	Days     []int
}

func (DailyRecurrence) Frequency() Frequency   { return FrequencyDaily }
func (WeeklyRecurrence) Frequency() Frequency  { return FrequencyWeekly }
func (MonthlyRecurrence) Frequency() Frequency { return FrequencyMonthly }

func (r DailyRecurrence) Every() int   { return r.Interval }
func (r WeeklyRecurrence) Every() int  { return r.Interval }
func (r MonthlyRecurrence) Every() int { return r.Interval }

// DurationSpec is the time window a habit occupies on its occurrence date.
type DurationSpec interface {
	isDuration()
}

type AllDay struct{}

type PointInTime struct {
	Time TimeOfDay
}

// Period end is strictly after its start.
type Period struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (AllDay) isDuration()      {}
func (PointInTime) isDuration() {}
func (Period) isDuration()      {}

// ReminderSpec is when to notify about an occurrence.
type ReminderSpec interface {
	isReminder()
}

// AbsoluteReminder fires at a clock time. Only timed durations allow it.
type AbsoluteReminder struct {
	Time TimeOfDay
}

// RelativeReminder fires a fixed number of minutes before an externally
// supplied anchor. Only all-day durations allow it.
type RelativeReminder struct {
	MinutesBefore int
}

func (AbsoluteReminder) isReminder() {}
func (RelativeReminder) isReminder() {}

const (
	TenMinutesBefore    = 10
	ThirtyMinutesBefore = 30
)

// Schedule is the unit that gets persisted and edited. It is replaced as a
// whole on every edit.
type Schedule struct {
	StartDate  Date
	EndDate    *Date
	Recurrence RecurrenceRule
	Duration   DurationSpec
	Reminder   ReminderSpec
}
