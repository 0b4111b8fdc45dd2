package model

// CanonicalSchedule is the persisted and exchanged form of a Schedule.
// Records written by older clients may leave any part of it out.
type CanonicalSchedule struct {
	StartDate  string               `json:"start_date,omitempty"`
	EndDate    *string              `json:"end_date,omitempty"`
	Recurrence *CanonicalRecurrence `json:"recurrence,omitempty"`
	Duration   *CanonicalDuration   `json:"duration,omitempty"`
	Reminder   *CanonicalReminder   `json:"reminder,omitempty"`
}

type CanonicalRecurrence struct {
	FrequencyType string   `json:"frequency_type"`
	Interval      int      `json:"interval"`
	DaysOfWeek    []string `json:"days_of_week,omitempty"`
	DaysOfMonth   []int    `json:"days_of_month,omitempty"`
}

type CanonicalDuration struct {
	AllDay    bool    `json:"all_day"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

type CanonicalReminder struct {
	Time            *string `json:"time,omitempty"`
	TenMinBefore    *bool   `json:"ten_min_before,omitempty"`
	ThirtyMinBefore *bool   `json:"thirty_min_before,omitempty"`
}
