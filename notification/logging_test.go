package notification

import (
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	l.Debugf("debug message")
	l.Infof("info message")
	l.Warnf("warn message")
	l.Errorf("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("below-threshold messages were logged: %s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error output, got: %s", out)
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	l = l.WithField("glyph", "A").WithField("layer", "foreground")

	l.Infof("changed")

	out := buf.String()
	if !strings.Contains(out, "glyph=A") || !strings.Contains(out, "layer=foreground") {
		t.Errorf("expected fields in output, got: %s", out)
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	// None of these may panic.
	l.Debugf("debug")
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")
	l.SetLevel(LogLevelError)
	if l.WithField("k", "v") != nil {
		t.Error("WithField on nil logger should return nil")
	}
}
