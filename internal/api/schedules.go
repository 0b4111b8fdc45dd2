package api

import (
	"net/http"
)

func (a *Api) validateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	req := &scheduleReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	canonical, err := a.habits.BuildSchedule(req.fields())
	if err != nil {
		a.habitErrorResponse(w, r, err, "build schedule")
		return
	}

	if err := a.writeJSON(w, http.StatusOK, canonical, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) draftScheduleHandler(w http.ResponseWriter, r *http.Request) {
	resp := mapToEditStateResp(a.habits.DraftSchedule())

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
