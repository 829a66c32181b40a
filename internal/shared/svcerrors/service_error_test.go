package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("AGG_1000", "invalid granularity", nil),
			wantErr: NewInvalidArgumentError("AGG_1000", "invalid granularity", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("REF_9000", nil)),
			wantErr: NewInternalError("REF_9000", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped unavailable error",
			err:     fmt.Errorf("wrap: %w", NewUnavailableError("SRC_9002", "backend rpc failed", nil)),
			wantErr: NewUnavailableError("SRC_9002", "backend rpc failed", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_StatusCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 400, NewInvalidArgumentError("X", "m", nil).HttpStatusCode)
	assert.Equal(t, 404, NewNotFoundError("X", "m", nil).HttpStatusCode)
	assert.Equal(t, 409, NewResourceConflictError("X", "m", nil).HttpStatusCode)
	assert.Equal(t, 503, NewUnavailableError("X", "m", nil).HttpStatusCode)
	assert.Equal(t, 500, NewInternalError("X", nil).HttpStatusCode)

	assert.True(t, NewUnavailableError("X", "m", nil).IsUnavailableError())
	assert.False(t, NewUnavailableError("X", "m", nil).IsInternalError())
}

func TestServiceError_UnwrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewUnavailableError("SRC_9002", "backend rpc failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "SRC_9002: backend rpc failed", err.Error())
}
