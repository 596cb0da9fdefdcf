package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	slerror "github.com/msto63/strlist/pkg/core/error"
)

func jsonLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]interface{}
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("invalid log line %q: %v", sc.Text(), err)
		}
		lines = append(lines, m)
	}
	return lines
}

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: &buf, Name: "test"}), &buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Trace("t")
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")
	logger.Audit("a")

	var got []string
	for _, line := range jsonLines(t, buf) {
		got = append(got, line["message"].(string)+"/"+line["level"].(string))
	}
	want := []string{"w/warn", "e/error", "a/audit"}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWithReturnsCopy(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)
	tagged := base.WithField("list", "a").WithCorrelationID("id-1").WithLevel(LevelTrace)

	base.Trace("hidden")
	base.Info("plain")
	tagged.Trace("tagged", Field("op", "Add"))

	lines := jsonLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d entries, want 2", len(lines))
	}
	if _, ok := lines[0]["list"]; ok {
		t.Errorf("base logger picked up a field: %v", lines[0])
	}
	if _, ok := lines[0]["correlation_id"]; ok {
		t.Errorf("base logger picked up a correlation id: %v", lines[0])
	}
	if lines[1]["list"] != "a" || lines[1]["correlation_id"] != "id-1" || lines[1]["op"] != "Add" {
		t.Errorf("tagged entry = %v", lines[1])
	}
	if base.CorrelationID() != "" || tagged.CorrelationID() != "id-1" {
		t.Errorf("CorrelationID() = %q / %q", base.CorrelationID(), tagged.CorrelationID())
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "low severity",
			err:       slerror.New("index 9 out of bounds").WithCode(slerror.CodeIndexOutOfBounds).WithOperation("strlist.Get").WithDetail("index", 9),
			wantLevel: "info",
			wantCode:  "INDEX_OUT_OF_BOUNDS",
		},
		{
			name:      "medium severity",
			err:       slerror.New("odd"),
			wantLevel: "warn",
			wantCode:  "UNKNOWN",
		},
		{
			name:      "high severity",
			err:       slerror.New("list used after Free").WithCode(slerror.CodeListReleased),
			wantLevel: "error",
			wantCode:  "LIST_RELEASED",
		},
		{
			name:      "plain error",
			err:       errors.New("disk full"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			logger.LogError(tt.err, Field("op", "Get"))

			lines := jsonLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("got %d entries, want 1", len(lines))
			}
			line := lines[0]
			if line["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", line["level"], tt.wantLevel)
			}
			if line["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", line["error_code"], tt.wantCode)
			}
			if line["message"] != tt.err.Error() || line["error"] != tt.err.Error() {
				t.Errorf("message/error = %v / %v", line["message"], line["error"])
			}
			if line["op"] != "Get" {
				t.Errorf("caller field lost: %v", line)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestLogErrorDetails(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	err := slerror.New("index 11 out of bounds").
		WithCode(slerror.CodeIndexOutOfBounds).
		WithOperation("strlist.Insert").
		WithDetail("index", 11).
		WithDetail("bound", 11)
	logger.LogError(err)

	line := jsonLines(t, buf)[0]
	if line["error_operation"] != "strlist.Insert" || line["error_severity"] != "low" {
		t.Errorf("entry = %v", line)
	}
	if line["error_index"] != float64(11) || line["error_bound"] != float64(11) {
		t.Errorf("details not flattened: %v", line)
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)

	timer := logger.StartTimer("Sort").WithLevel(LevelTrace).WithFields(Fields{"size": 10})
	if d := timer.Stop("operation-completed"); d <= 0 {
		t.Errorf("Stop() = %v, want > 0", d)
	}
	if d := timer.Stop("again"); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	cancelled := logger.StartTimer("Shuffle")
	cancelled.Cancel()
	cancelled.Stop("never")

	lines := jsonLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d entries, want 1", len(lines))
	}
	line := lines[0]
	if line["op"] != "Sort" || line["size"] != float64(10) || line["level"] != "trace" {
		t.Errorf("timer entry = %v", line)
	}
	if _, ok := line["duration_ms"]; !ok {
		t.Errorf("timer entry has no duration: %v", line)
	}
}

func TestTimerDefaultLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.StartTimer("Trim").Stop("done")

	if buf.Len() != 0 {
		t.Errorf("debug timer written at info level: %q", buf.String())
	}
}
