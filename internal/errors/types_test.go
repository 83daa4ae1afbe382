package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	plain := &AppError{Type: ErrorTypeNotFound, Message: "item not found: 7"}
	assert.Equal(t, "not_found: item not found: 7", plain.Error())

	wrapped := &AppError{
		Type:    ErrorTypeDatabase,
		Message: "insert item",
		Cause:   errors.New("disk I/O error"),
	}
	assert.Equal(t, "database: insert item (caused by: disk I/O error)", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("database is locked")
	appErr := NewDatabaseError("update item", cause)

	assert.Same(t, cause, appErr.Unwrap())
	assert.ErrorIs(t, appErr, cause)
}

func TestAppError_WithContext(t *testing.T) {
	appErr := &AppError{Type: ErrorTypeInvalidInput, Message: "bad id"}

	same := appErr.WithContext("field", "id")
	require.Same(t, appErr, same)
	assert.Equal(t, map[string]interface{}{"field": "id"}, appErr.Context)

	appErr.WithContext("value", "abc")
	assert.Len(t, appErr.Context, 2)
}
