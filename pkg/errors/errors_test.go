package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewValidationError("type is required")
	assert.Equal(t, "VALIDATION_ERROR: type is required", err.Error())

	cause := stderrors.New("connection refused")
	wrapped := NewDatabaseError("failed to save forecast", cause)
	assert.Equal(t, "DATABASE_ERROR: failed to save forecast (caused by: connection refused)", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsHelpers_SeeThroughWrapping(t *testing.T) {
	base := NewNotFoundError("location not found")
	wrapped := fmt.Errorf("get location 7: %w", base)

	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.True(t, IsConfigurationError(fmt.Errorf("ingest: %w", NewConfigurationError("OpenWeather API key missing.", nil))))
	assert.True(t, IsUnauthorizedError(NewUnauthorizedError("Unauthorized")))
	assert.True(t, IsExternalAPIError(NewExternalAPIError("boom", nil)))
	assert.True(t, IsDatabaseError(NewDatabaseError("boom", nil)))
	assert.False(t, IsNotFoundError(stderrors.New("plain")))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "app error", err: NewExternalAPIError(`{"cod":401}`, nil), want: `{"cod":401}`},
		{name: "wrapped app error", err: fmt.Errorf("fetch: %w", NewExternalAPIError("bad gateway", nil)), want: "bad gateway"},
		{name: "plain error", err: stderrors.New("dial tcp: timeout"), want: "dial tcp: timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "UNAUTHORIZED_ERROR", ErrorTypeUnauthorized.String())
	assert.Equal(t, "PUBLISH_ERROR", ErrorTypePublish.String())
	assert.Equal(t, "UNKNOWN_ERROR", ErrorType(99).String())
}
