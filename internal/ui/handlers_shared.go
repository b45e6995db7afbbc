package ui

import (
	"errors"
	"net/http"

	"risk-demo/internal/domain"
)

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while loading this page."

	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	} else if errors.As(err, &accessDenied) {
		status = http.StatusForbidden
		title = "Access Denied"
		message = accessDenied.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	} else if errors.As(err, &conflict) {
		status = http.StatusConflict
		title = "Conflict"
		message = conflict.Error()
	} else if h.Logger != nil {
		h.Logger.ErrorContext(r.Context(), "ui request failed", "path", r.URL.Path, "error", err)
	}

	renderHTML(w, status, errorPage(title, message))
}

// toastForError turns a user-facing failure into a toast. Only validation
// and not-found errors qualify; anything else is rendered as an error page.
func toastForError(err error) (*toast, bool) {
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	switch {
	case errors.As(err, &validation):
		return &toast{Kind: toastError, Message: validation.Message}, true
	case errors.As(err, &notFound):
		return &toast{Kind: toastError, Message: notFound.Message}, true
	default:
		return nil, false
	}
}
