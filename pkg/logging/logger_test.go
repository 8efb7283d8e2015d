// pkg/logging/logger_test.go
package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
)

func TestNewLogger_DefaultLevel(t *testing.T) {
	os.Unsetenv("FLATTOP_LOG_LEVEL")
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected INFO to be enabled by default")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected DEBUG to be disabled by default")
	}
}

func TestNewLogger_LevelFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		envVal  string
		level   slog.Level
		enabled bool
	}{
		{"debug_enabled", "DEBUG", slog.LevelDebug, true},
		{"warn_hides_info", "WARN", slog.LevelInfo, false},
		{"error_hides_warn", "ERROR", slog.LevelWarn, false},
		{"unknown_defaults_to_info", "VERBOSE", slog.LevelInfo, true},
		{"lowercase_accepted", "debug", slog.LevelDebug, true},
	}

	original := os.Getenv("FLATTOP_LOG_LEVEL")
	defer os.Setenv("FLATTOP_LOG_LEVEL", original)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("FLATTOP_LOG_LEVEL", tt.envVal)
			logger := NewLogger()
			if got := logger.Enabled(context.Background(), tt.level); got != tt.enabled {
				t.Errorf("Enabled(%v) = %v with FLATTOP_LOG_LEVEL=%s, expected %v",
					tt.level, got, tt.envVal, tt.enabled)
			}
		})
	}
}

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc123")
	if id := GetCorrelationID(ctx); id != "abc123" {
		t.Errorf("GetCorrelationID() = %q, expected %q", id, "abc123")
	}
}

func TestCorrelationID_GeneratedWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")
	if id := GetCorrelationID(ctx); id == "" {
		t.Error("expected a generated correlation ID, got empty string")
	}
}

func TestGetCorrelationID_MissingReturnsEmpty(t *testing.T) {
	if id := GetCorrelationID(context.Background()); id != "" {
		t.Errorf("GetCorrelationID() on bare context = %q, expected empty", id)
	}
}

func TestGenerateCorrelationID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateCorrelationID()
		if seen[id] {
			t.Fatalf("GenerateCorrelationID produced duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")

	wrapped := WrapError(base, "loading config %s", "game.json")
	if wrapped == nil {
		t.Fatal("WrapError returned nil for non-nil error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error does not unwrap to the original")
	}
	if wrapped.Error() != "loading config game.json: boom" {
		t.Errorf("unexpected wrapped message: %q", wrapped.Error())
	}

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestSanitizeAttributes(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		redacted bool
	}{
		{"password_masked", "password", true},
		{"token_masked", "api_token", true},
		{"session_masked", "session_id", true},
		{"position_kept", "position_x", false},
		{"phase_kept", "flight_phase", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := sanitizeAttributes(nil, slog.String(tt.key, "value"))
			got := attr.Value.String() == "[REDACTED]"
			if got != tt.redacted {
				t.Errorf("sanitizeAttributes(%q) redacted=%v, expected %v", tt.key, got, tt.redacted)
			}
		})
	}
}
