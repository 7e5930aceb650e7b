package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"default_info", DefaultConfig(), zapcore.InfoLevel, zapcore.DebugLevel},
		{"development_debug", DevelopmentConfig(), zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"bad_level_falls_back", Config{Level: "loud", Format: "json"}, zapcore.InfoLevel, zapcore.DebugLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("new logger: %v", err)
			}
			if !l.Core().Enabled(tc.enabled) {
				t.Fatalf("expected %v enabled", tc.enabled)
			}
			if l.Core().Enabled(tc.muted) {
				t.Fatalf("expected %v disabled", tc.muted)
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected a no-op logger")
	}
}
