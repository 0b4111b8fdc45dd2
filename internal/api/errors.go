package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/habit-planner-backend/internal/model"
)

func (a *Api) logError(_ *http.Request, err error) {
	a.logger.Errorw("server error", "error", err)
}

func (a *Api) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	data := map[string]interface{}{"error": message}

	if err := a.writeJSON(w, status, data, nil); err != nil {
		a.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	a.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (a *Api) clientErrorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	a.logger.Debugw("client error", "err", message)
	a.errorResponse(w, r, status, message)
}

func (a *Api) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	a.clientErrorResponse(w, r, http.StatusNotFound, message)
}

func (a *Api) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	a.clientErrorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (a *Api) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (a *Api) failedValidationResponse(w http.ResponseWriter, r *http.Request, errs map[string]string) {
	a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, errs)
}

func (a *Api) unauthorizedResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusUnauthorized, err.Error())
}

// habitErrorResponse maps service errors: validation failures to 422, missing
// habits to 404, everything else to 500.
func (a *Api) habitErrorResponse(w http.ResponseWriter, r *http.Request, err error, op string) {
	var verrs model.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		a.failedValidationResponse(w, r, verrs.Map())
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	default:
		a.serverErrorResponse(w, r, fmt.Errorf("%s: %w", op, err))
	}
}
