package logging

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if got := LevelWarn.String(); got != "WARN" {
		t.Errorf("LevelWarn.String() = %q", got)
	}
	if got := Level(99).String(); got != "UNKNOWN" {
		t.Errorf("Level(99).String() = %q", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("dropped %d", 1)
	l.Info("dropped %d", 2)
	l.Warn("kept %d", 3)
	l.Error("kept %d", 4)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("below-threshold lines written:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] kept 3") || !strings.Contains(out, "[ERROR] kept 4") {
		t.Errorf("expected lines missing:\n%s", out)
	}
}

func TestDiscard(t *testing.T) {
	var buf strings.Builder
	l := Discard()
	l.SetOutput(&buf)

	l.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("Discard logger wrote %q", buf.String())
	}
}
