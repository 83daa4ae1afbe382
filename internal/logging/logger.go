package logging

import (
	"context"
	"log/slog"

	"github.com/mama165/sdk-go/logs"
)

type ctxKey struct{}

// New returns the application logger at the given level name (DEBUG, INFO, WARN, ERROR)
func New(level string) *slog.Logger {
	return logs.GetLoggerFromString(level)
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger stores logger in ctx
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or fallback when there is none
func FromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}
