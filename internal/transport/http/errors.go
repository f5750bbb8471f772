package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AadiD123/348-Project/internal/domain"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeValidationFailed   = "validation_failed"
	codeInvalidBarID       = "invalid_bar_id"
	codeInvalidDate        = "invalid_date"
	codeInvalidTime        = "invalid_time"
	codeBarNotFound        = "bar_not_found"
	codeEventNotFound      = "event_not_found"
	codeCategoryNotFound   = "category_not_found"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeServiceError maps a domain error onto an HTTP status. Unknown errors
// become a generic 500 so store failures never leak details to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidBarID):
		writeError(w, http.StatusBadRequest, codeInvalidBarID, err.Error())
	case errors.Is(err, domain.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, codeInvalidDate, err.Error())
	case errors.Is(err, domain.ErrInvalidTime):
		writeError(w, http.StatusBadRequest, codeInvalidTime, err.Error())
	case errors.Is(err, domain.ErrBarRequired),
		errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrEventDateRequired),
		errors.Is(err, domain.ErrTimesRequired),
		errors.Is(err, domain.ErrCategoryRequired),
		errors.Is(err, domain.ErrNegativeCoverCharge),
		errors.Is(err, domain.ErrInvalidAgeRequirement):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrBarNotFound):
		writeError(w, http.StatusNotFound, codeBarNotFound, err.Error())
	case errors.Is(err, domain.ErrEventNotFound):
		writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
	case errors.Is(err, domain.ErrCategoryNotFound):
		writeError(w, http.StatusNotFound, codeCategoryNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
