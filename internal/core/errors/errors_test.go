package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aevon-lab/chronicle/internal/core/recurrence"
	"github.com/aevon-lab/chronicle/internal/core/storage"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"invalid request", fmt.Errorf("%w: title is required", ErrInvalidRequest), http.StatusBadRequest, HttpInvalidRequestError},
		{"permission denied", ErrPermissionDenied, http.StatusForbidden, HttpPermissionDeniedError},
		{"not found", fmt.Errorf("event 4: %w", storage.ErrNotFound), http.StatusNotFound, HttpNotFoundError},
		{"version not found", storage.ErrVersionNotFound, http.StatusNotFound, HttpVersionNotFoundError},
		{"owner protected", storage.ErrOwnerProtected, http.StatusBadRequest, HttpOwnerProtectedError},
		{"time range", storage.ErrInvalidTimeRange, http.StatusBadRequest, HttpInvalidTimeRangeError},
		{"rollback", storage.ErrInvalidRollback, http.StatusBadRequest, HttpInvalidRollbackError},
		{"conflict", fmt.Errorf("update: %w", storage.ErrVersionConflict), http.StatusConflict, HttpVersionConflictError},
		{"pattern", recurrence.ErrUnknownFrequency, http.StatusBadRequest, HttpInvalidPatternError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := FromError(tt.err)
			require.Equal(t, tt.wantStatus, status)
			require.Equal(t, tt.wantType, body.ErrorType)
			require.Equal(t, tt.err.Error(), body.Message)
		})
	}
}

func TestFromError_InternalHidesCause(t *testing.T) {
	status, body := FromError(stderrors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, HttpInternalError, body.ErrorType)
	require.NotContains(t, body.Message, "pq")
}
