package errors

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/aevon-lab/chronicle/internal/core/recurrence"
	"github.com/aevon-lab/chronicle/internal/core/storage"
)

const (
	HttpInternalError         = "internal_error"
	HttpInvalidJsonError      = "invalid_json"
	HttpInvalidRequestError   = "invalid_request"
	HttpUnauthenticatedError  = "unauthenticated"
	HttpPermissionDeniedError = "permission_denied"
	HttpNotFoundError         = "not_found"
	HttpVersionNotFoundError  = "version_not_found"
	HttpOwnerProtectedError   = "owner_protected"
	HttpInvalidTimeRangeError = "invalid_time_range"
	HttpInvalidRollbackError  = "invalid_rollback"
	HttpVersionConflictError  = "version_conflict"
	HttpInvalidPatternError   = "invalid_recurrence_pattern"
	HttpRateLimitedError      = "rate_limited"
)

var (
	// ErrInvalidRequest marks request validation failures. Wrap it with the reason.
	ErrInvalidRequest = stderrors.New("invalid request")

	// ErrPermissionDenied is returned when the caller's role is insufficient.
	ErrPermissionDenied = stderrors.New("permission denied")
)

// ErrorResponse is the error response body shared by every endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

type mapping struct {
	target    error
	status    int
	errorType string
}

// mappings is checked in order; the first errors.Is match wins.
var mappings = []mapping{
	{ErrInvalidRequest, http.StatusBadRequest, HttpInvalidRequestError},
	{ErrPermissionDenied, http.StatusForbidden, HttpPermissionDeniedError},
	{storage.ErrVersionNotFound, http.StatusNotFound, HttpVersionNotFoundError},
	{storage.ErrNotFound, http.StatusNotFound, HttpNotFoundError},
	{storage.ErrOwnerProtected, http.StatusBadRequest, HttpOwnerProtectedError},
	{storage.ErrInvalidTimeRange, http.StatusBadRequest, HttpInvalidTimeRangeError},
	{storage.ErrInvalidFields, http.StatusBadRequest, HttpInvalidRequestError},
	{storage.ErrInvalidRollback, http.StatusBadRequest, HttpInvalidRollbackError},
	{storage.ErrVersionConflict, http.StatusConflict, HttpVersionConflictError},
	{recurrence.ErrUnknownFrequency, http.StatusBadRequest, HttpInvalidPatternError},
	{recurrence.ErrInvalidPattern, http.StatusBadRequest, HttpInvalidPatternError},
}

// FromError maps a service error to its HTTP status and response body.
// Unrecognized errors become a generic 500; the cause is logged, not returned.
func FromError(err error) (int, ErrorResponse) {
	for _, m := range mappings {
		if stderrors.Is(err, m.target) {
			return m.status, ErrorResponse{ErrorType: m.errorType, Message: err.Error()}
		}
	}

	slog.Error("[HTTP] Unhandled error", "error", err)
	return http.StatusInternalServerError, ErrorResponse{
		ErrorType: HttpInternalError,
		Message:   "Internal server error",
	}
}
