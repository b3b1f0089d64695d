package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sendkit/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("nil_error_returns_empty_attr", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("error_under_error_key", func(t *testing.T) {
		t.Parallel()
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}

func TestDuration(t *testing.T) {
	t.Parallel()

	attr := logger.Duration(250 * time.Millisecond)
	assert.Equal(t, "duration", attr.Key)
	assert.Equal(t, 250*time.Millisecond, attr.Value.Duration())
}

func TestStatus(t *testing.T) {
	t.Parallel()

	attr := logger.Status(404)
	assert.Equal(t, "status", attr.Key)
	assert.Equal(t, int64(404), attr.Value.Int64())
}

func TestBytes(t *testing.T) {
	t.Parallel()

	attr := logger.Bytes(1024)
	assert.Equal(t, "bytes", attr.Key)
	assert.Equal(t, int64(1024), attr.Value.Int64())
}
