package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/scilla-check/internal/domain/config"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelFromEnv(tt.input))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("drops timestamps", func(t *testing.T) {
		t.Setenv("SCILLA_CHECK_LOG_LEVEL", "info")
		var buf bytes.Buffer
		log := newLogger(&buf, &config.RuntimeConfig{})
		log.Info("hello", "case", "deposit")

		assert.NotContains(t, buf.String(), "time=")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "case=deposit")
	})

	t.Run("debug config enables debug level", func(t *testing.T) {
		t.Setenv("SCILLA_CHECK_LOG_LEVEL", "error")
		var buf bytes.Buffer
		log := newLogger(&buf, &config.RuntimeConfig{Debug: true})
		log.Debug("details")

		assert.Contains(t, buf.String(), "msg=details")
	})

	t.Run("default level hides info", func(t *testing.T) {
		t.Setenv("SCILLA_CHECK_LOG_LEVEL", "")
		var buf bytes.Buffer
		log := newLogger(&buf, nil)
		log.Info("quiet")
		log.Warn("loud")

		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "loud")
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/verify/verifier.go", shortPath("/home/dev/src/scilla-check/internal/verify/verifier.go"))
	assert.Equal(t, "main.go", shortPath("/elsewhere/main.go"))
}
