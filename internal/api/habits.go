package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/SergeyKozhin/habit-planner-backend/internal/business/habits"
	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
	"github.com/SergeyKozhin/habit-planner-backend/internal/pkg/validator"
	"github.com/gerow/go-color"
)

func (a *Api) createHabitHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	info, ok := a.readHabitInput(w, r, userID)
	if !ok {
		return
	}

	habit, err := a.habits.CreateHabit(r.Context(), info)
	if err != nil {
		a.habitErrorResponse(w, r, err, "create habit")
		return
	}

	resp := mapToHabitResp(habit)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getHabitsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	list, err := a.habits.GetHabits(r.Context(), userID)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get habits: %w", err))
		return
	}

	resp := mapSlice(list, mapToHabitResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getHabitHandler(w http.ResponseWriter, r *http.Request) {
	habit, ok := r.Context().Value(contextKeyHabit).(*model.Habit)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveHabit)
		return
	}

	resp := mapToHabitResp(habit)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getHabitForEditHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := habitIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	habit, state, err := a.habits.GetHabitForEdit(r.Context(), userID, id)
	if err != nil {
		a.habitErrorResponse(w, r, err, "get habit for edit")
		return
	}

	hr := mapToHabitResp(habit)
	resp := &struct {
		Habit    *habitResp     `json:"habit"`
		Schedule *editStateResp `json:"schedule"`
	}{
		Habit:    hr,
		Schedule: mapToEditStateResp(state),
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateHabitHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := habitIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	info, ok := a.readHabitInput(w, r, userID)
	if !ok {
		return
	}

	habit, err := a.habits.UpdateHabit(r.Context(), id, info)
	if err != nil {
		a.habitErrorResponse(w, r, err, "update habit")
		return
	}

	resp := mapToHabitResp(habit)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteHabitHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextKeyID).(int64)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := habitIDParam(r)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.habits.DeleteHabit(r.Context(), userID, id); err != nil {
		a.habitErrorResponse(w, r, err, "delete habit")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readHabitInput decodes and checks the non-schedule fields. On false a
// response has already been written.
func (a *Api) readHabitInput(w http.ResponseWriter, r *http.Request, userID int64) (*habits.HabitInput, bool) {
	req := &habitReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return nil, false
	}

	v := validator.New()

	v.Check(len(strings.TrimSpace(req.Title)) != 0, "title", "title must be provided")
	v.Check(len(req.Title) <= 200, "title", "title must not be more than 200 bytes long")
	v.Check(validator.Matches(req.Color, validator.HexRX), "color", "color must be valid HEX color")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return nil, false
	}

	colorRGB, err := color.HTMLToRGB(req.Color)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("parse color: %w", err))
		return nil, false
	}

	return &habits.HabitInput{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Color:       colorRGB,
		Schedule:    req.Schedule.fields(),
	}, true
}
