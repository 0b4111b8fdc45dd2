package api

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/SergeyKozhin/habit-planner-backend/internal/schedule"
)

type habitReq struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Color       string      `json:"color"`
	Schedule    scheduleReq `json:"schedule"`
}

type scheduleReq struct {
	StartDate string        `json:"start_date"`
	EndDate   *string       `json:"end_date"`
	Frequency *frequencyReq `json:"frequency"`
	Duration  durationReq   `json:"duration"`
	Reminder  *reminderReq  `json:"reminder"`
}

type frequencyReq struct {
	Frequency string       `json:"frequency"`
	Interval  flexInterval `json:"interval"`
	Days      []string     `json:"days"`
	Dates     []int        `json:"dates"`
}

type durationReq struct {
	AllDay    bool    `json:"all_day"`
	Mode      string  `json:"mode"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type reminderReq struct {
	Kind          string  `json:"kind"`
	Time          *string `json:"time"`
	MinutesBefore int     `json:"minutes_before"`
}

// flexInterval accepts the repeat interval as a JSON number or string. The
// raw text is validated by the schedule builder.
type flexInterval string

var errBadInterval = errors.New("interval must be a number or a string")

func (i *flexInterval) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*i = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = flexInterval(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errBadInterval
	}
	*i = flexInterval(n.String())

	return nil
}

func (s *scheduleReq) fields() schedule.Fields {
	f := schedule.Fields{
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Duration: schedule.DurationFields{
			AllDay:    s.Duration.AllDay,
			Mode:      schedule.DurationMode(s.Duration.Mode),
			StartTime: s.Duration.StartTime,
			EndTime:   s.Duration.EndTime,
		},
	}

	if s.Frequency != nil {
		f.Frequency = &schedule.FrequencyFields{
			Frequency: s.Frequency.Frequency,
			Interval:  string(s.Frequency.Interval),
			Days:      s.Frequency.Days,
			Dates:     s.Frequency.Dates,
		}
	}

	if s.Reminder != nil {
		f.Reminder = &schedule.ReminderChoice{
			Kind:          schedule.ReminderKind(s.Reminder.Kind),
			Time:          s.Reminder.Time,
			MinutesBefore: s.Reminder.MinutesBefore,
		}
	}

	return f
}

type habitResp struct {
	ID             int64                    `json:"id"`
	Title          string                   `json:"title"`
	Description    string                   `json:"description"`
	Color          string                   `json:"color"`
	Schedule       *model.CanonicalSchedule `json:"schedule"`
	RecurrenceRule string                   `json:"recurrence_rule,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func mapToHabitResp(h *model.Habit) *habitResp {
	return &habitResp{
		ID:             h.ID,
		Title:          h.Title,
		Description:    h.Description,
		Color:          "#" + h.Color.ToHTML(),
		Schedule:       h.Schedule,
		RecurrenceRule: h.RepeatRule,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

// editStateResp mirrors scheduleReq so a loaded schedule can be posted back
// unchanged.
type editStateResp struct {
	StartDate string         `json:"start_date"`
	EndDate   *string        `json:"end_date,omitempty"`
	Frequency *frequencyResp `json:"frequency,omitempty"`
	Duration  durationResp   `json:"duration"`
	Reminder  *reminderResp  `json:"reminder,omitempty"`
	Fallbacks []string       `json:"fallbacks,omitempty"`
}

type frequencyResp struct {
	Frequency string   `json:"frequency"`
	Interval  int      `json:"interval"`
	Days      []string `json:"days"`
	Dates     []int    `json:"dates"`
}

type durationResp struct {
	AllDay    bool   `json:"all_day"`
	Mode      string `json:"mode,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type reminderResp struct {
	Kind          string  `json:"kind"`
	Time          *string `json:"time,omitempty"`
	MinutesBefore int     `json:"minutes_before,omitempty"`
}

func mapToEditStateResp(st *schedule.EditState) *editStateResp {
	resp := &editStateResp{
		StartDate: st.StartDate,
		Duration: durationResp{
			AllDay:    st.AllDay,
			Mode:      string(st.Mode),
			StartTime: st.StartTime,
			EndTime:   st.EndTime,
		},
		Fallbacks: st.Fallbacks,
	}

	if st.EndDate != "" {
		end := st.EndDate
		resp.EndDate = &end
	}

	if st.Repeats {
		resp.Frequency = &frequencyResp{
			Frequency: st.Frequency,
			Interval:  st.Interval,
			Days:      st.Days,
			Dates:     st.Dates,
		}
	}

	if st.Reminder.Kind != schedule.ReminderUnset {
		resp.Reminder = &reminderResp{
			Kind:          string(st.Reminder.Kind),
			Time:          st.Reminder.Time,
			MinutesBefore: st.Reminder.MinutesBefore,
		}
	}

	return resp
}
