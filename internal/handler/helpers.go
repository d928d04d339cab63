package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"promptdesk/internal/domain"
	"promptdesk/internal/httputil"
)

// Error categories returned in the "error" field
const (
	errValidation    = "Validation error"
	errNotFound      = "Not found"
	errConfiguration = "Configuration error"
	errStorage       = "Storage error"
	errInternal      = "Internal server error"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr) && len(validationErr.Fields) > 0:
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, errValidation, validationErr.Error(),
			map[string]interface{}{"fields": validationErr.Fields})
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, errValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, errNotFound, err.Error())
	case errors.Is(err, domain.ErrConfiguration):
		logger.Error("configuration error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, errConfiguration, err.Error())
	case errors.Is(err, domain.ErrStorage):
		logger.Error("storage error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, errStorage, err.Error())
	default:
		logger.Error("unhandled error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, errInternal, err.Error())
	}
}

// badRequest wraps a body decoding failure as a validation error
func badRequest(err error) error {
	return &domain.ValidationError{Message: err.Error()}
}
