package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoRecord = errors.New("no record")

// Schedule validation failures. Each one is field scoped and recoverable.
var (
	ErrInvalidInterval          = errors.New("interval must be a whole number")
	ErrEmptyDaySelection        = errors.New("at least one day of the week must be selected")
	ErrEmptyDateSelection       = errors.New("at least one day of the month must be selected")
	ErrInvalidDayOfMonth        = errors.New("day of the month must be between 1 and 31")
	ErrMissingStartTime         = errors.New("start time must be provided")
	ErrEndBeforeStart           = errors.New("end time must be after start time")
	ErrInvalidTime              = errors.New("time must be in HH:MM format")
	ErrInvalidDurationMode      = errors.New("duration mode must be point or period")
	ErrIncompatibleReminderMode = errors.New("reminder type is not available for this duration")
	ErrInvalidReminderOffset    = errors.New("reminder offset must be 10 or 30 minutes")
	ErrInvalidDate              = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStartDate   = errors.New("end date must not be before start date")
	ErrStartDateInPast          = errors.New("start date must not be in the past")
	ErrUnknownDayToken          = errors.New("unknown day")
	ErrUnknownDayCode           = errors.New("unknown day code")
	ErrUnknownFrequencyToken    = errors.New("unknown frequency")
)

// Field names used to scope validation errors. They match the keys of the
// raw schedule request.
const (
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldFrequency   = "frequency_type"
	FieldInterval    = "interval"
	FieldDaysOfWeek  = "days_of_week"
	FieldDaysOfMonth = "days_of_month"
	FieldDuration    = "duration"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldReminder    = "reminder"
)

// FieldError ties a validation failure to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors is every field error found in a single validation pass.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}

	return strings.Join(msgs, "; ")
}

// Is reports whether any of the collected errors matches target.
func (v ValidationErrors) Is(target error) bool {
	for _, e := range v {
		if errors.Is(e, target) {
			return true
		}
	}

	return false
}

// Map renders the errors keyed by field. The first error for a field wins.
func (v ValidationErrors) Map() map[string]string {
	res := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := res[e.Field]; !ok {
			res[e.Field] = e.Err.Error()
		}
	}

	return res
}

// Add appends a field error.
func (v *ValidationErrors) Add(field string, err error) {
	*v = append(*v, &FieldError{Field: field, Err: err})
}

// Merge appends the errors carried by err. Plain errors are scoped to field.
func (v *ValidationErrors) Merge(field string, err error) {
	if err == nil {
		return
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		*v = append(*v, verrs...)
		return
	}

	var ferr *FieldError
	if errors.As(err, &ferr) {
		*v = append(*v, ferr)
		return
	}

	v.Add(field, err)
}

// Err returns nil when nothing was collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}

	return v
}
