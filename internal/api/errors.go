package api

import (
	"errors"
	"net/http"

	"risk-demo/internal/domain"
)

// Error is the JSON body of every failed API response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &accessDenied):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an Error body. Internal errors are logged and
// their detail is not exposed.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatusFromDomainError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.Logger.ErrorContext(r.Context(), "api request failed", "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}
	writeJSON(w, status, Error{Code: status, Message: message})
}
