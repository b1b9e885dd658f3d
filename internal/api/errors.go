package api

import (
	"errors"
	"net/http"

	"github.com/nvoronina/adboard-api/internal/api/shared"
	"github.com/nvoronina/adboard-api/internal/service/auth"
	"github.com/nvoronina/adboard-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Constraint violations (duplicate username/email, dangling user_id)
	case errors.Is(err, store.ErrBadLuck):
		return http.StatusBadRequest

	// Authentication errors (reserved; no handler currently produces these)
	case errors.Is(err, auth.ErrAuth):
		return http.StatusUnauthorized

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the default client-facing message for the
// error's kind. These are the fixed messages of the error taxonomy; the
// underlying error detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrBadLuck):
		return "Bad luck"

	case errors.Is(err, auth.ErrAuth):
		return "Auth error"

	default:
		return "Unknown error"
	}
}

// HandleAPIError is the single boundary translator: it maps err to a status
// code and default message, then writes the uniform error body. A non-empty
// message overrides the default for that error kind.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
