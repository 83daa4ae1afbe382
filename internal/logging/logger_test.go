package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		t.Run(level, func(t *testing.T) {
			assert.NotNil(t, New(level))
		})
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestFromContext(t *testing.T) {
	fallback := Discard()
	requestLogger := Discard().With("request_id", "abc")

	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	ctx := WithLogger(context.Background(), requestLogger)
	assert.Same(t, requestLogger, FromContext(ctx, fallback))
}
