package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyKozhin/habit-planner-backend/internal/business/habits"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/SergeyKozhin/habit-planner-backend/internal/pkg/jwt"
	"github.com/SergeyKozhin/habit-planner-backend/internal/schedule"
	"go.uber.org/zap"
)

var now = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

// fakeService keeps habits in memory and runs the real schedule builder.
type fakeService struct {
	habits    map[int64]*model.Habit
	nextID    int64
	lastInput *habits.HabitInput
}

func (s *fakeService) save(id int64, info *habits.HabitInput) (*model.Habit, error) {
	s.lastInput = info

	sch, err := schedule.Build(info.Schedule, now)
	if err != nil {
		return nil, err
	}

	h := &model.Habit{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		HabitCreate: model.HabitCreate{
			UserID:      info.UserID,
			Title:       info.Title,
			Description: info.Description,
			Color:       info.Color,
			Schedule:    schedule.ToCanonical(sch),
		},
	}
	s.habits[id] = h

	return h, nil
}

func (s *fakeService) CreateHabit(_ context.Context, info *habits.HabitInput) (*model.Habit, error) {
	s.nextID++
	return s.save(s.nextID, info)
}

func (s *fakeService) GetHabit(_ context.Context, userID, id int64) (*model.Habit, error) {
	h, ok := s.habits[id]
	if !ok || h.UserID != userID {
		return nil, model.ErrNoRecord
	}
	return h, nil
}

func (s *fakeService) GetHabits(_ context.Context, userID int64) ([]*model.Habit, error) {
	var res []*model.Habit
	for _, h := range s.habits {
		if h.UserID == userID {
			res = append(res, h)
		}
	}
	return res, nil
}

func (s *fakeService) GetHabitForEdit(ctx context.Context, userID, id int64) (*model.Habit, *schedule.EditState, error) {
	h, err := s.GetHabit(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	return h, schedule.NewLoader(zap.NewNop().Sugar()).Load(h.Schedule, now), nil
}

func (s *fakeService) UpdateHabit(ctx context.Context, id int64, info *habits.HabitInput) (*model.Habit, error) {
	if _, err := s.GetHabit(ctx, info.UserID, id); err != nil {
		return nil, err
	}
	return s.save(id, info)
}

func (s *fakeService) DeleteHabit(ctx context.Context, userID, id int64) error {
	if _, err := s.GetHabit(ctx, userID, id); err != nil {
		return err
	}
	delete(s.habits, id)
	return nil
}

func (s *fakeService) BuildSchedule(f schedule.Fields) (*model.CanonicalSchedule, error) {
	sch, err := schedule.Build(f, now)
	if err != nil {
		return nil, err
	}
	return schedule.ToCanonical(sch), nil
}

func (s *fakeService) DraftSchedule() *schedule.EditState {
	return schedule.DraftState(now)
}

type fakeDB struct {
	err error
}

func (d *fakeDB) Ping(context.Context) error { return d.err }

type testEnv struct {
	api     *Api
	db      *fakeDB
	service *fakeService
	token   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	jwts := jwt.NewManager("secret", time.Hour)
	db := &fakeDB{}
	service := &fakeService{habits: map[int64]*model.Habit{}}

	a, err := NewApi(zap.NewNop().Sugar(), db, jwts, service)
	if err != nil {
		t.Fatalf("NewApi error: %v", err)
	}

	token, err := jwts.CreateToken(1)
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}

	return &testEnv{api: a, db: db, service: service, token: token}
}

func (e *testEnv) do(method, path, body string, auth bool) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if auth {
		r.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.api.ServeHTTP(w, r)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

const weeklySchedule = `{
	"start_date": "2025-01-10",
	"frequency": {"frequency": "Weekly", "interval": 2, "days": ["Mo", "We"]},
	"duration": {"all_day": true},
	"reminder": {"kind": "relative", "minutes_before": 10}
}`

func TestHealthcheck(t *testing.T) {
	e := newTestEnv(t)

	if w := e.do(http.MethodGet, "/healthcheck", "", false); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	e.db.err = errors.New("connection refused")
	if w := e.do(http.MethodGet, "/healthcheck", "", false); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status with db down = %d, want 503", w.Code)
	}

	if w := e.do(http.MethodGet, "/metrics", "", false); w.Code != http.StatusOK {
		t.Errorf("metrics status = %d, want 200", w.Code)
	}
	if w := e.do(http.MethodGet, "/nowhere", "", false); w.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", w.Code)
	}
}

func TestValidateSchedule(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/schedules/validate", weeklySchedule, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got model.CanonicalSchedule
	decode(t, w, &got)

	rec := got.Recurrence
	if rec == nil || rec.FrequencyType != "weekly" || rec.Interval != 2 || strings.Join(rec.DaysOfWeek, ",") != "mon,wed" {
		t.Errorf("recurrence = %+v", rec)
	}
	if got.Reminder == nil || got.Reminder.TenMinBefore == nil || !*got.Reminder.TenMinBefore {
		t.Errorf("reminder = %+v", got.Reminder)
	}
}

func TestValidateScheduleIntervalAsString(t *testing.T) {
	e := newTestEnv(t)

	body := `{"start_date": "2025-01-10", "frequency": {"frequency": "Daily", "interval": "3"}, "duration": {"all_day": true}}`
	w := e.do(http.MethodPost, "/schedules/validate", body, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got model.CanonicalSchedule
	decode(t, w, &got)
	if got.Recurrence == nil || got.Recurrence.Interval != 3 {
		t.Errorf("recurrence = %+v", got.Recurrence)
	}
}

func TestValidateScheduleReminderWithoutKind(t *testing.T) {
	e := newTestEnv(t)

	body := `{"start_date": "2025-01-10", "duration": {"mode": "point", "start_time": "08:00"}, "reminder": {"time": "07:00"}}`
	w := e.do(http.MethodPost, "/schedules/validate", body, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got model.CanonicalSchedule
	decode(t, w, &got)
	if got.Reminder == nil || got.Reminder.Time == nil || *got.Reminder.Time != "07:00" {
		t.Errorf("reminder = %+v, want 07:00", got.Reminder)
	}

	body = `{"start_date": "2025-01-10", "duration": {"all_day": true}, "reminder": {"time": "07:00"}}`
	if w := e.do(http.MethodPost, "/schedules/validate", body, false); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("time on all day status = %d, want 422", w.Code)
	}
}

func TestValidateScheduleErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		fields []string
	}{
		{
			name:   "end before start",
			body:   `{"start_date": "2025-01-10", "duration": {"mode": "period", "start_time": "09:00", "end_time": "08:00"}}`,
			status: http.StatusUnprocessableEntity,
			fields: []string{"end_time"},
		},
		{
			name:   "absolute reminder on all day",
			body:   `{"start_date": "2025-01-10", "duration": {"all_day": true}, "reminder": {"kind": "absolute", "time": "07:00"}}`,
			status: http.StatusUnprocessableEntity,
			fields: []string{"reminder"},
		},
		{
			name:   "end date before start date",
			body:   `{"start_date": "2025-01-10", "end_date": "2025-01-05", "duration": {"all_day": true}}`,
			status: http.StatusUnprocessableEntity,
			fields: []string{"end_date"},
		},
		{
			name:   "several fields",
			body:   `{"start_date": "2024-01-10", "frequency": {"frequency": "Monthly", "interval": "x"}, "duration": {"mode": "point"}}`,
			status: http.StatusUnprocessableEntity,
			fields: []string{"start_date", "interval", "days_of_month", "start_time"},
		},
		{
			name:   "interval of wrong type",
			body:   `{"start_date": "2025-01-10", "frequency": {"frequency": "Daily", "interval": true}, "duration": {"all_day": true}}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown key",
			body:   `{"start_date": "2025-01-10", "colour": "red"}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)

			w := e.do(http.MethodPost, "/schedules/validate", tt.body, false)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.status, w.Body.String())
			}
			if len(tt.fields) == 0 {
				return
			}

			var resp struct {
				Error map[string]string `json:"error"`
			}
			decode(t, w, &resp)
			for _, f := range tt.fields {
				if _, ok := resp.Error[f]; !ok {
					t.Errorf("errors %v missing %q", resp.Error, f)
				}
			}
		})
	}
}

func TestDraftSchedule(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodGet, "/schedules/draft", "", false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got editStateResp
	decode(t, w, &got)
	if got.StartDate != "2025-01-02" || !got.Duration.AllDay || got.Frequency != nil || got.Reminder != nil {
		t.Errorf("draft = %+v", got)
	}
}

func TestHabitsRequireToken(t *testing.T) {
	e := newTestEnv(t)

	if w := e.do(http.MethodGet, "/habits", "", false); w.Code != http.StatusUnauthorized {
		t.Errorf("status without token = %d, want 401", w.Code)
	}

	e.token = "garbage"
	if w := e.do(http.MethodGet, "/habits", "", true); w.Code != http.StatusUnauthorized {
		t.Errorf("status with bad token = %d, want 401", w.Code)
	}
}

func TestCreateHabit(t *testing.T) {
	e := newTestEnv(t)

	body := `{"title": "Gym", "color": "#ff0000", "schedule": ` + weeklySchedule + `}`
	w := e.do(http.MethodPost, "/habits", body, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got habitResp
	decode(t, w, &got)
	if got.ID != 1 || got.Title != "Gym" || !strings.EqualFold(got.Color, "#ff0000") {
		t.Errorf("habit = %+v", got)
	}

	in := e.service.lastInput
	if in.UserID != 1 || in.Schedule.Frequency == nil || in.Schedule.Frequency.Interval != "2" {
		t.Errorf("input = %+v", in)
	}
	if !strings.EqualFold(in.Color.ToHTML(), "ff0000") {
		t.Errorf("color = %s", in.Color.ToHTML())
	}
}

func TestCreateHabitValidation(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/habits", `{"title": " ", "color": "red", "schedule": `+weeklySchedule+`}`, true)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	var resp struct {
		Error map[string]string `json:"error"`
	}
	decode(t, w, &resp)
	if _, ok := resp.Error["title"]; !ok {
		t.Errorf("errors %v missing title", resp.Error)
	}
	if _, ok := resp.Error["color"]; !ok {
		t.Errorf("errors %v missing color", resp.Error)
	}

	w = e.do(http.MethodPost, "/habits", `{"title": "Gym", "color": "#00ff00", "schedule": {"start_date": "2025-01-10"}}`, true)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("schedule status = %d, want 422", w.Code)
	}
	if len(e.service.habits) != 0 {
		t.Error("invalid habit stored")
	}
}

func TestHabitLifecycle(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/habits", `{"title": "Gym", "color": "#ff0000", "schedule": `+weeklySchedule+`}`, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	if w := e.do(http.MethodGet, "/habits/1", "", true); w.Code != http.StatusOK {
		t.Errorf("get status = %d", w.Code)
	}
	if w := e.do(http.MethodGet, "/habits/2", "", true); w.Code != http.StatusNotFound {
		t.Errorf("missing habit status = %d, want 404", w.Code)
	}
	if w := e.do(http.MethodGet, "/habits/abc", "", true); w.Code != http.StatusNotFound {
		t.Errorf("bad id status = %d, want 404", w.Code)
	}

	w = e.do(http.MethodGet, "/habits", "", true)
	var list []habitResp
	decode(t, w, &list)
	if len(list) != 1 {
		t.Errorf("list = %+v", list)
	}

	w = e.do(http.MethodGet, "/habits/1/edit", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("edit status = %d", w.Code)
	}
	var edit struct {
		Schedule editStateResp `json:"schedule"`
	}
	decode(t, w, &edit)
	st := edit.Schedule
	if st.Frequency == nil || st.Frequency.Frequency != "Weekly" || strings.Join(st.Frequency.Days, ",") != "Mo,We" {
		t.Errorf("edit frequency = %+v", st.Frequency)
	}
	if st.Reminder == nil || st.Reminder.Kind != "relative" || st.Reminder.MinutesBefore != 10 {
		t.Errorf("edit reminder = %+v", st.Reminder)
	}

	// The edit state posts back as a schedule unchanged.
	scheduleJSON, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	w = e.do(http.MethodPut, "/habits/1", `{"title": "Gym twice", "color": "#ff0000", "schedule": `+string(scheduleJSON)+`}`, true)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	if e.service.habits[1].Title != "Gym twice" {
		t.Errorf("title = %q", e.service.habits[1].Title)
	}

	if w := e.do(http.MethodDelete, "/habits/1", "", true); w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", w.Code)
	}
	if w := e.do(http.MethodDelete, "/habits/1", "", true); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}
