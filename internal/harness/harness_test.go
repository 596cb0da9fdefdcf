package harness

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/msto63/strlist/pkg/strlist"
)

type markRecorder struct {
	strlist.NopObserver
	passed []string
	failed []string
}

func (r *markRecorder) TestPassed(name string) {
	r.passed = append(r.passed, name)
}

func (r *markRecorder) TestFailed(name string, err error) {
	r.failed = append(r.failed, name)
}

func TestScenariosPass(t *testing.T) {
	seeds := []uint64{1, 7, 42, 1234}
	for _, seed := range seeds {
		opts := []strlist.Option{strlist.WithRand(rand.New(rand.NewPCG(seed, seed)))}
		for _, r := range Run(nil, Scenarios(), opts...) {
			if !r.Passed() {
				t.Errorf("seed %d: %s failed: %v", seed, r.Name, r.Err)
			}
		}
	}
}

func TestScenarioNames(t *testing.T) {
	want := []string{
		"ADD", "ADDALL", "ADDARRAY", "ADDLIST", "COPY", "CREATE", "EQUALS",
		"EXPAND", "GET", "INSERT", "RANGE", "REMOVE", "REVERSE", "SORT",
		"SET", "SHUFFLE", "SWAP", "TRIM",
	}
	got := Scenarios()
	if len(got) != len(want) {
		t.Fatalf("len(Scenarios()) = %d, want %d", len(got), len(want))
	}
	for i, sc := range got {
		if sc.Name != want[i] {
			t.Errorf("Scenarios()[%d] = %s, want %s", i, sc.Name, want[i])
		}
	}
}

func TestRunMarksResults(t *testing.T) {
	boom := errors.New("boom")
	scenarios := []Scenario{
		{"OK", func([]strlist.Option) error { return nil }},
		{"BAD", func([]strlist.Option) error { return boom }},
		{"ALSO_OK", func([]strlist.Option) error { return nil }},
	}

	rec := &markRecorder{}
	results := Run(rec, scenarios)

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if !errors.Is(results[1].Err, boom) {
		t.Errorf("results[1].Err = %v, want boom", results[1].Err)
	}
	if got := Failed(results); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
	if len(rec.passed) != 2 || rec.passed[0] != "OK" || rec.passed[1] != "ALSO_OK" {
		t.Errorf("passed markers = %v", rec.passed)
	}
	if len(rec.failed) != 1 || rec.failed[0] != "BAD" {
		t.Errorf("failed markers = %v", rec.failed)
	}
}

func TestScenariosWithObserver(t *testing.T) {
	rec := &markRecorder{}
	results := Run(rec, Scenarios(), strlist.WithObserver(rec))

	if n := Failed(results); n != 0 {
		t.Errorf("Failed() = %d, want 0", n)
	}
	if len(rec.passed) != len(results) {
		t.Errorf("passed markers = %d, want %d", len(rec.passed), len(results))
	}
}
