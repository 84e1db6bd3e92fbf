package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogdev/blog-api/internal/api/shared"
	"github.com/blogdev/blog-api/internal/domain"
	"github.com/blogdev/blog-api/internal/platform/logger"
	"github.com/blogdev/blog-api/internal/service"
	"github.com/blogdev/blog-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var verr *shared.ValidationError

	switch {
	// Bad request errors
	case errors.As(err, &verr),
		errors.Is(err, shared.ErrInvalidRequestBody),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Default: internal server error
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

	var verr *shared.ValidationError

	switch {
	case errors.Is(err, shared.ErrInvalidRequestBody):
		return "Invalid request format"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid post ID"

	case errors.As(err, &verr),
		errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Post not found"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err.
//
// Validation failures get the field map body. Not-found is a normal branch:
// an empty 404, logged at debug. Everything else gets a JSON error body;
// customMsg replaces the default safe message when it is not empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, customMsg string) {
	var verr *shared.ValidationError
	if errors.As(err, &verr) {
		shared.RespondWithValidationError(w, r, verr)
		return
	}

	status := MapErrorToStatusCode(err)

	if status == http.StatusNotFound {
		logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("resource not found",
			slog.String("path", r.URL.Path),
			slog.String("method", r.Method))
		shared.RespondWithStatus(w, http.StatusNotFound)
		return
	}

	msg := GetSafeErrorMessage(err)
	if customMsg != "" {
		msg = customMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}
