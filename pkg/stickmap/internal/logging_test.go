package internal

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestLoggersAreShared(t *testing.T) {
	if GetLogger() != GetLogger() {
		t.Error("GetLogger should return the same logger")
	}
	if GetInternalLogger() != GetInternalLogger() {
		t.Error("GetInternalLogger should return the same logger")
	}
	if GetInternalLogger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("internal logger should default to error level")
	}
}
