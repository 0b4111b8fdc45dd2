package schedule

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

// RecurrenceSelection is what the user picked in the repeat picker. Days holds
// picker tokens ("Mo") for weekly rules, Dates holds days of the month for
// monthly rules.
type RecurrenceSelection struct {
	Days  []string
	Dates []int
}

// RecurrenceState is a recurrence rule in picker vocabulary.
type RecurrenceState struct {
	Frequency model.Frequency
	Interval  int
	Selection RecurrenceSelection
}

// BuildRecurrence validates a repeat selection for a canonical frequency and
// returns the matching rule variant.
func BuildRecurrence(frequency model.Frequency, interval string, sel RecurrenceSelection) (model.RecurrenceRule, error) {
	var errs model.ValidationErrors

	n, err := ParseInterval(interval)
	if err != nil {
		errs.Add(model.FieldInterval, err)
	}

	var rule model.RecurrenceRule
	switch frequency {
	case model.FrequencyDaily:
		rule = model.DailyRecurrence{Interval: n}

	case model.FrequencyWeekly:
		days, err := weekDays(sel.Days)
		if err != nil {
			errs.Add(model.FieldDaysOfWeek, err)
		}
		rule = model.WeeklyRecurrence{Interval: n, Days: days}

	case model.FrequencyMonthly:
		dates, err := monthDays(sel.Dates)
		if err != nil {
			errs.Add(model.FieldDaysOfMonth, err)
		}
		rule = model.MonthlyRecurrence{Interval: n, Days: dates}

	default:
		errs.Add(model.FieldFrequency, fmt.Errorf("%w: %q", model.ErrUnknownFrequencyToken, frequency))
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return rule, nil
}

// ParseInterval coerces a raw interval to a whole number of at least 1.
// Fractions are truncated and an empty value means 1.
func ParseInterval(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 1, fmt.Errorf("%w: %q", model.ErrInvalidInterval, raw)
		}
		if f > math.MaxInt32 {
			f = math.MaxInt32
		}
		n = int(f)
	}

	if n < 1 {
		n = 1
	}

	return n, nil
}

func weekDays(tokens []string) ([]model.DayCode, error) {
	if len(tokens) == 0 {
		return nil, model.ErrEmptyDaySelection
	}

	set := make(map[model.DayCode]struct{}, len(tokens))
	for _, t := range tokens {
		d, err := DayToCanonical(t)
		if err != nil {
			return nil, err
		}
		set[d] = struct{}{}
	}

	res := make([]model.DayCode, 0, len(set))
	for _, d := range model.Week {
		if _, ok := set[d]; ok {
			res = append(res, d)
		}
	}

	return res, nil
}

func monthDays(dates []int) ([]int, error) {
	if len(dates) == 0 {
		return nil, model.ErrEmptyDateSelection
	}

	set := make(map[int]struct{}, len(dates))
	for _, d := range dates {
		if d < 1 || d > 31 {
			return nil, fmt.Errorf("%w: %d", model.ErrInvalidDayOfMonth, d)
		}
		set[d] = struct{}{}
	}

	res := make([]int, 0, len(set))
	for d := range set {
		res = append(res, d)
	}
	sort.Ints(res)

	return res, nil
}

// ReconstructRecurrence turns a stored recurrence back into picker state. It
// never fails: unknown entries are dropped and reported in issues, a missing
// day list becomes an empty selection and an unknown frequency leaves
// Frequency empty.
func ReconstructRecurrence(c *model.CanonicalRecurrence) (RecurrenceState, []string) {
	var issues []string
	if c == nil {
		return RecurrenceState{}, nil
	}

	state := RecurrenceState{Interval: c.Interval}
	if state.Interval < 1 {
		issues = append(issues, fmt.Sprintf("interval %d replaced with 1", c.Interval))
		state.Interval = 1
	}

	f, err := FrequencyToCanonical(c.FrequencyType)
	if err != nil {
		issues = append(issues, fmt.Sprintf("frequency %q not recognized", c.FrequencyType))
		return RecurrenceState{}, issues
	}
	state.Frequency = f

	switch f {
	case model.FrequencyWeekly:
		state.Selection.Days = []string{}
		seen := make(map[string]struct{}, len(c.DaysOfWeek))
		for _, code := range c.DaysOfWeek {
			t, err := DayToUI(model.DayCode(code))
			if err != nil {
				issues = append(issues, fmt.Sprintf("day of week %q dropped", code))
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			state.Selection.Days = append(state.Selection.Days, t)
		}
		if len(c.DaysOfMonth) != 0 {
			issues = append(issues, "days of month ignored for weekly rule")
		}

	case model.FrequencyMonthly:
		state.Selection.Dates = []int{}
		seen := make(map[int]struct{}, len(c.DaysOfMonth))
		for _, d := range c.DaysOfMonth {
			if d < 1 || d > 31 {
				issues = append(issues, fmt.Sprintf("day of month %d dropped", d))
				continue
			}
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			state.Selection.Dates = append(state.Selection.Dates, d)
		}
		if len(c.DaysOfWeek) != 0 {
			issues = append(issues, "days of week ignored for monthly rule")
		}

	default:
		if len(c.DaysOfWeek) != 0 || len(c.DaysOfMonth) != 0 {
			issues = append(issues, "day selection ignored for daily rule")
		}
	}

	return state, issues
}
