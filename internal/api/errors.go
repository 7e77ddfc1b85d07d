package api

import (
	"errors"
	"net/http"

	"github.com/tasktrack/tasktrack-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrTaskNotFound):
		return http.StatusNotFound

	// Default: internal server error. This covers malformed bodies and any
	// unexpected failure during processing.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		return "Heading is required"

	case errors.Is(err, service.ErrTaskNotFound):
		return "Task not found"

	default:
		return "An unexpected error occurred"
	}
}
