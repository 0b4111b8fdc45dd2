package schedule

import (
	"fmt"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

var dayFromToken = map[string]model.DayCode{
	"Su": model.DaySunday,
	"Mo": model.DayMonday,
	"Tu": model.DayTuesday,
	"We": model.DayWednesday,
	"Th": model.DayThursday,
	"Fr": model.DayFriday,
	"Sa": model.DaySaturday,
}

var dayToken = map[model.DayCode]string{
	model.DaySunday:    "Su",
	model.DayMonday:    "Mo",
	model.DayTuesday:   "Tu",
	model.DayWednesday: "We",
	model.DayThursday:  "Th",
	model.DayFriday:    "Fr",
	model.DaySaturday:  "Sa",
}

var dayWeekday = map[model.DayCode]time.Weekday{
	model.DaySunday:    time.Sunday,
	model.DayMonday:    time.Monday,
	model.DayTuesday:   time.Tuesday,
	model.DayWednesday: time.Wednesday,
	model.DayThursday:  time.Thursday,
	model.DayFriday:    time.Friday,
	model.DaySaturday:  time.Saturday,
}

// DayToCanonical maps a picker token such as "Mo" to its day code.
func DayToCanonical(token string) (model.DayCode, error) {
	d, ok := dayFromToken[token]
	if !ok {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownDayToken, token)
	}

	return d, nil
}

// DayToUI maps a day code back to its picker token.
func DayToUI(code model.DayCode) (string, error) {
	t, ok := dayToken[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownDayCode, code)
	}

	return t, nil
}

// Weekday returns the time.Weekday of a valid day code.
func Weekday(code model.DayCode) (time.Weekday, error) {
	wd, ok := dayWeekday[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrUnknownDayCode, code)
	}

	return wd, nil
}

var frequencyFromLabel = map[string]model.Frequency{
	"Daily":   model.FrequencyDaily,
	"Weekly":  model.FrequencyWeekly,
	"Monthly": model.FrequencyMonthly,
}

var frequencyLabel = map[model.Frequency]string{
	model.FrequencyDaily:   "Daily",
	model.FrequencyWeekly:  "Weekly",
	model.FrequencyMonthly: "Monthly",
}

// FrequencyToCanonical maps "Daily", "Weekly" or "Monthly" to the canonical
// token. Canonical tokens are accepted unchanged.
func FrequencyToCanonical(label string) (model.Frequency, error) {
	if f, ok := frequencyFromLabel[label]; ok {
		return f, nil
	}
	if _, ok := frequencyLabel[model.Frequency(label)]; ok {
		return model.Frequency(label), nil
	}

	return "", fmt.Errorf("%w: %q", model.ErrUnknownFrequencyToken, label)
}

// FrequencyToUI maps a canonical token to its picker label.
func FrequencyToUI(f model.Frequency) (string, error) {
	l, ok := frequencyLabel[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownFrequencyToken, f)
	}

	return l, nil
}
