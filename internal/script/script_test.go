package script

import (
	"bytes"
	"strings"
	"testing"

	slerror "github.com/msto63/strlist/pkg/core/error"
	"github.com/msto63/strlist/pkg/strlist"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Op
	}{
		{"add:hello", Op{Kind: OpAdd, Item: "hello"}},
		{"ADD:with:colon", Op{Kind: OpAdd, Item: "with:colon"}},
		{"add:", Op{Kind: OpAdd, Item: ""}},
		{"insert:a@b@2", Op{Kind: OpInsert, Item: "a@b", A: 2}},
		{"set:x@0", Op{Kind: OpSet, Item: "x", A: 0}},
		{"remove:4", Op{Kind: OpRemove, A: 4}},
		{"removeall:x", Op{Kind: OpRemoveAll, Item: "x"}},
		{"swap:1, 3", Op{Kind: OpSwap, A: 1, B: 3}},
		{"range:5,100", Op{Kind: OpRange, A: 5, B: 100}},
		{"expand:-2", Op{Kind: OpExpand, A: -2}},
		{" sort ", Op{Kind: OpSort}},
		{"print", Op{Kind: OpPrint}},
		{"contains:x", Op{Kind: OpContains, Item: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			tt.want.Raw = tt.input
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		reason string
	}{
		{"push:x", "unknown operation"},
		{"add", "missing item"},
		{"insert:x", "expected item@index"},
		{"insert:x@two", "invalid number"},
		{"remove", "missing number"},
		{"swap:1", "expected two numbers"},
		{"range:a,2", "invalid number"},
		{"sort:now", "takes no argument"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !slerror.HasCode(err, slerror.CodeInvalidInput) {
				t.Fatalf("Parse(%q) error = %v, want INVALID_INPUT", tt.input, err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("Parse(%q) error = %q, want %q", tt.input, err.Error(), tt.reason)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	ops, err := ParseAll([]string{"add:a", "sort"})
	if err != nil || len(ops) != 2 {
		t.Fatalf("ParseAll() = %v, %v", ops, err)
	}

	if _, err := ParseAll([]string{"add:a", "bogus"}); err == nil {
		t.Error("ParseAll() should fail on a bad operation")
	}
}

func TestRun(t *testing.T) {
	ops, err := ParseAll([]string{
		"add:c", "add:a", "add:b",
		"insert:z@9",
		"sort",
		"get:0",
		"contains:z",
		"swap:0,2",
		"range:1,5",
		"removeall:b",
		"print",
	})
	if err != nil {
		t.Fatal(err)
	}

	l, _ := strlist.New(2)
	var out bytes.Buffer
	failed := Run(l, ops, &out)

	if failed != 1 {
		t.Errorf("Run() failed = %d, want 1", failed)
	}

	want := strings.Join([]string{
		"insert:z@9: error: index 9 out of bounds",
		`get:0: "a"`,
		"contains:z: false",
		`range:1,5: ["b"]["a"]`,
		"removeall:b: removed 1",
		`print: ["c"]["a"]`,
	}, "\n") + "\n"
	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}
	if l.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4", l.Cap())
	}
}

func TestApplyCapacityOps(t *testing.T) {
	l, _ := strlist.New(3)
	for _, raw := range []string{"add:a", "expand:5", "trim", "clear"} {
		op, err := Parse(raw)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := op.Apply(l); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		switch raw {
		case "expand:5":
			if l.Cap() != 8 {
				t.Errorf("after expand Cap() = %d, want 8", l.Cap())
			}
		case "trim":
			if l.Cap() != 2 {
				t.Errorf("after trim Cap() = %d, want 2", l.Cap())
			}
		}
	}
	if l.Len() != 0 || l.Cap() != 2 {
		t.Errorf("after clear len=%d cap=%d", l.Len(), l.Cap())
	}
}
