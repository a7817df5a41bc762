package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/nounsgov/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("drops time and respects level", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&config.RuntimeConfig{}, &buf, "warn")

		log.Info("hidden")
		log.Warn("shown", "component", "test")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "level=WARN msg=shown component=test")
		assert.NotContains(t, out, "time=")
	})

	t.Run("debug config adds source", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(&config.RuntimeConfig{Debug: true}, &buf, "error")

		log.Debug("details")

		out := buf.String()
		assert.Contains(t, out, "msg=details")
		assert.Contains(t, out, "source=")
		assert.Contains(t, out, "logger_test.go")
	})
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/show_proposal.go", shortPath("/home/dev/src/nounsgov/internal/usecase/show_proposal.go"))
	assert.Equal(t, "main.go", shortPath("/elsewhere/main.go"))
}
