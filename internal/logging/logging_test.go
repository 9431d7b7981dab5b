package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"trace", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json filters by level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := New(&buf, Config{Level: "warn", Format: "json"})

		logger.Info().Msg("hidden")
		logger.Warn().Str("addr", ":8080").Msg("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("info message logged at warn level: %s", out)
		}
		if !strings.Contains(out, `"addr":":8080"`) || !strings.Contains(out, `"message":"shown"`) {
			t.Errorf("warn message missing or not JSON: %s", out)
		}
	})

	t.Run("console is human readable", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := New(&buf, Config{Level: "debug", Format: "console", NoColor: true})

		logger.Debug().Int("logo", 3).Msg("selection ignored")

		out := buf.String()
		if strings.HasPrefix(strings.TrimSpace(out), "{") {
			t.Errorf("console output looks like JSON: %s", out)
		}
		if !strings.Contains(out, "selection ignored") || !strings.Contains(out, "logo=3") {
			t.Errorf("console output = %q", out)
		}
	})

	t.Run("nil writer", func(t *testing.T) {
		t.Parallel()

		logger := New(nil, Config{})
		logger.Info().Msg("discarded")
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, Config{Format: "json"})
	ctx := logger.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("FromContext() did not return the attached logger: %s", buf.String())
	}

	// A bare context yields a disabled logger, never nil.
	FromContext(context.Background()).Info().Msg("dropped")
	Nop().Info().Msg("dropped")
}
