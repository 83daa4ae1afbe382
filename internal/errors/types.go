package errors

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// ErrorType is the category an AppError falls into. The web layer picks its
// status code from it.
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
)

func (et ErrorType) String() string {
	switch et {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeDatabase:
		return "database"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	case ErrorTypeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// AppError is returned by the store and the service. Context holds the
// identifiers involved (item id, operation, field) and ends up in the logs.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext records key on the error and returns it for chaining
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// logAttrs renders the type, the code and the context as slog attributes.
// Context keys are grouped under "context" in sorted order.
func (e *AppError) logAttrs() []any {
	attrs := []any{
		slog.String("type", e.Type.String()),
		slog.String("code", e.Code),
	}
	if len(e.Context) == 0 {
		return attrs
	}

	contextAttrs := make([]any, 0, len(e.Context))
	for _, key := range slices.Sorted(maps.Keys(e.Context)) {
		contextAttrs = append(contextAttrs, slog.Any(key, e.Context[key]))
	}
	return append(attrs, slog.Group("context", contextAttrs...))
}
