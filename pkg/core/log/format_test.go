package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	slerror "github.com/msto63/strlist/pkg/core/error"
)

func traceEntry() *Entry {
	return &Entry{
		Time:          time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC),
		Level:         LevelTrace,
		Message:       "operation-entered",
		Logger:        "strlist",
		CorrelationID: "0123456789abcdef",
		Fields:        Fields{"op": "Insert", "index": 3, "item": "x"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" TEXT ", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if tt.wantErr && !slerror.HasCode(err, slerror.CodeInvalidFormat) {
				t.Errorf("error code = %v", err)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	e := traceEntry()
	e.Err = errors.New("boom")
	e.Duration = 1500 * time.Microsecond

	out, err := NewFormatter(FormatJSON).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON entry should end with a newline")
	}

	var got map[string]interface{}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}

	want := map[string]interface{}{
		"timestamp":      "2026-10-15T12:30:00Z",
		"level":          "trace",
		"message":        "operation-entered",
		"logger":         "strlist",
		"correlation_id": "0123456789abcdef",
		"op":             "Insert",
		"index":          float64(3),
		"item":           "x",
		"error":          "boom",
		"duration_ms":    1.5,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestTextFormat(t *testing.T) {
	out, err := NewFormatter(FormatText).Format(traceEntry())
	if err != nil {
		t.Fatal(err)
	}

	want := "12:30:00 [TRC] {strlist} (list=01234567) operation-entered [index=3 item=x op=Insert]\n"
	if string(out) != want {
		t.Errorf("text =\n%q\nwant\n%q", out, want)
	}

	e := traceEntry()
	e.Fields = nil
	e.CorrelationID = "abc"
	e.Err = errors.New("index 9 out of bounds")
	e.Duration = 2 * time.Millisecond
	out, _ = NewFormatter(FormatText).Format(e)

	want = "12:30:00 [TRC] {strlist} (list=abc) operation-entered error=\"index 9 out of bounds\" duration=2ms\n"
	if string(out) != want {
		t.Errorf("text =\n%q\nwant\n%q", out, want)
	}
}

func TestConsoleFormat(t *testing.T) {
	out, _ := NewFormatter(FormatConsole).Format(traceEntry())
	s := string(out)

	if !strings.HasPrefix(s, "\033[37m12:30:00 [TRC]") {
		t.Errorf("console line should start with the trace color: %q", s)
	}
	if !strings.HasSuffix(s, colorReset+"\n") {
		t.Errorf("console line should reset the color: %q", s)
	}
}

func TestLogfmtFormat(t *testing.T) {
	f := &logfmtFormatter{noTime: true}
	out, err := f.Format(traceEntry())
	if err != nil {
		t.Fatal(err)
	}

	want := `level=trace message="operation-entered" logger="strlist" correlation_id="0123456789abcdef" index=3 item="x" op="Insert"` + "\n"
	if string(out) != want {
		t.Errorf("logfmt =\n%s\nwant\n%s", out, want)
	}
}
