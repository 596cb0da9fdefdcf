package log

import (
	"testing"

	slerror "github.com/msto63/strlist/pkg/core/error"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"TRC", LevelTrace, false},
		{"debug", LevelDebug, false},
		{" Info ", LevelInfo, false},
		{"wrn", LevelWarn, false},
		{"ERROR", LevelError, false},
		{"audit", LevelAudit, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	_, err := ParseLevel("verbose")
	if err.Error() != "invalid level: verbose" || !slerror.HasCode(err, slerror.CodeInvalidInput) {
		t.Errorf("ParseLevel(verbose) error = %v", err)
	}
}

func TestLevelString(t *testing.T) {
	want := map[Level]string{
		LevelTrace: "trace",
		LevelDebug: "debug",
		LevelInfo:  "info",
		LevelWarn:  "warn",
		LevelError: "error",
		LevelAudit: "audit",
		Level(42):  "unknown",
	}
	for level, name := range want {
		if got := level.String(); got != name {
			t.Errorf("Level(%d).String() = %q, want %q", int(level), got, name)
		}
	}
}

func TestLevelEnabled(t *testing.T) {
	tests := []struct {
		level, min Level
		want       bool
	}{
		{LevelTrace, LevelTrace, true},
		{LevelTrace, LevelDebug, false},
		{LevelInfo, LevelInfo, true},
		{LevelError, LevelWarn, true},
		{LevelWarn, LevelError, false},
		{LevelAudit, LevelAudit, true},
	}

	for _, tt := range tests {
		if got := tt.level.Enabled(tt.min); got != tt.want {
			t.Errorf("%v.Enabled(%v) = %v, want %v", tt.level, tt.min, got, tt.want)
		}
	}
}
