package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"go.uber.org/zap"
)

// EditState is a stored schedule in picker vocabulary, ready to prefill the
// edit screens.
type EditState struct {
	StartDate string
	EndDate   string

	Repeats   bool
	Frequency string
	Interval  int
	Days      []string
	Dates     []int

	AllDay    bool
	Mode      DurationMode
	StartTime string
	EndTime   string

	Reminder ReminderChoice

	// Fallbacks names the fields that could not be read and were defaulted.
	Fallbacks []string
}

// Loader rebuilds edit state from stored schedules. Unlike Build it never
// fails: anything it cannot read is replaced by a default and logged.
type Loader struct {
	logger *zap.SugaredLogger
}

func NewLoader(logger *zap.SugaredLogger) *Loader {
	return &Loader{logger: logger}
}

// DraftState is the edit state of a brand new habit.
func DraftState(now time.Time) *EditState {
	return &EditState{
		StartDate: NewDraft(now).StartDate.String(),
		Interval:  1,
		AllDay:    true,
		Reminder:  ReminderChoice{Kind: ReminderUnset},
	}
}

// Load reconstructs the edit state for c. now only seeds the start date when
// the record has none.
func (l *Loader) Load(c *model.CanonicalSchedule, now time.Time) *EditState {
	st := DraftState(now)
	if c == nil {
		l.fallback(st, model.FieldStartDate, "schedule missing")
		return st
	}

	l.loadDates(st, c)
	l.loadRecurrence(st, c.Recurrence)
	duration := l.loadDuration(st, c.Duration)

	choice, issues := ReconstructReminder(c.Reminder, duration)
	st.Reminder = choice
	for _, issue := range issues {
		l.fallback(st, model.FieldReminder, issue)
	}

	return st
}

func (l *Loader) loadDates(st *EditState, c *model.CanonicalSchedule) {
	start, err := model.ParseDate(strings.TrimSpace(c.StartDate))
	if err != nil {
		l.fallback(st, model.FieldStartDate, "start date not readable", "value", c.StartDate)
		start, _ = model.ParseDate(st.StartDate)
	} else {
		st.StartDate = start.String()
	}

	if c.EndDate == nil || strings.TrimSpace(*c.EndDate) == "" {
		return
	}

	end, err := model.ParseDate(strings.TrimSpace(*c.EndDate))
	switch {
	case err != nil:
		l.fallback(st, model.FieldEndDate, "end date not readable", "value", *c.EndDate)
	case end.Before(start):
		l.fallback(st, model.FieldEndDate, "end date before start date dropped", "value", *c.EndDate)
	default:
		st.EndDate = end.String()
	}
}

func (l *Loader) loadRecurrence(st *EditState, c *model.CanonicalRecurrence) {
	if c == nil {
		return
	}

	rs, issues := ReconstructRecurrence(c)
	for _, issue := range issues {
		l.fallback(st, model.FieldFrequency, issue)
	}

	label, err := FrequencyToUI(rs.Frequency)
	if err != nil {
		return
	}

	st.Repeats = true
	st.Frequency = label
	st.Interval = rs.Interval
	st.Days = rs.Selection.Days
	st.Dates = rs.Selection.Dates
}

// loadDuration fills the duration fields and returns the duration they
// describe, used to check the stored reminder against it.
func (l *Loader) loadDuration(st *EditState, c *model.CanonicalDuration) model.DurationSpec {
	if c == nil {
		l.fallback(st, model.FieldDuration, "duration missing, using all day")
		return model.AllDay{}
	}
	if c.AllDay {
		return model.AllDay{}
	}

	start, ok, err := parseOptionalTime(c.StartTime)
	if err != nil || !ok {
		l.fallback(st, model.FieldStartTime, "start time not readable, using all day")
		return model.AllDay{}
	}

	st.AllDay = false
	st.StartTime = start.String()

	if c.EndTime == nil {
		st.Mode = ModePoint
		return model.PointInTime{Time: start}
	}

	end, ok, err := parseOptionalTime(c.EndTime)
	if err == nil && ok && end.After(start) {
		st.Mode = ModePeriod
		st.EndTime = end.String()
		return model.Period{Start: start, End: end}
	}

	period := WithStart(model.Period{Start: start}, start)
	if !period.End.After(period.Start) {
		l.fallback(st, model.FieldEndTime, "no end time fits after start, using point in time", "value", *c.EndTime)
		st.Mode = ModePoint
		return model.PointInTime{Time: start}
	}

	l.fallback(st, model.FieldEndTime, "end time not usable, proposing one", "value", *c.EndTime)
	st.Mode = ModePeriod
	st.EndTime = period.End.String()

	return period
}

func (l *Loader) fallback(st *EditState, field, msg string, kv ...interface{}) {
	st.Fallbacks = append(st.Fallbacks, field)
	l.logger.Warnw("schedule field defaulted", append([]interface{}{"field", field, "reason", msg}, kv...)...)
}

// Fields turns edit state back into builder input, so a loaded schedule can
// be saved again as is.
func (st *EditState) Fields() Fields {
	f := Fields{
		StartDate: st.StartDate,
		Duration: DurationFields{
			AllDay: st.AllDay,
			Mode:   st.Mode,
		},
	}

	if st.EndDate != "" {
		end := st.EndDate
		f.EndDate = &end
	}

	if st.Repeats {
		f.Frequency = &FrequencyFields{
			Frequency: st.Frequency,
			Interval:  strconv.Itoa(st.Interval),
			Days:      st.Days,
			Dates:     st.Dates,
		}
	}

	if st.StartTime != "" {
		start := st.StartTime
		f.Duration.StartTime = &start
	}
	if st.EndTime != "" {
		end := st.EndTime
		f.Duration.EndTime = &end
	}

	if st.Reminder.Kind != ReminderUnset {
		r := st.Reminder
		f.Reminder = &r
	}

	return f
}
