// ============================================================================
// strlist - Growable string list
// ============================================================================
//
// Package:     harness
// Description: Self-check scenarios run by "strlist check"; results are
//              reported through the list observer's test markers
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package harness

import (
	"fmt"

	"github.com/msto63/strlist/pkg/strlist"
)

var digits = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// Scenario is one named check
type Scenario struct {
	Name string
	Run  func(opts []strlist.Option) error
}

// Result is the outcome of one scenario
type Result struct {
	Name string
	Err  error
}

// Passed reports whether the scenario succeeded
func (r Result) Passed() bool {
	return r.Err == nil
}

// Scenarios returns every check in run order
func Scenarios() []Scenario {
	return []Scenario{
		{"ADD", checkAdd},
		{"ADDALL", checkAddAll},
		{"ADDARRAY", checkAddArray},
		{"ADDLIST", checkAddList},
		{"COPY", checkCopy},
		{"CREATE", checkCreate},
		{"EQUALS", checkEquals},
		{"EXPAND", checkExpand},
		{"GET", checkGet},
		{"INSERT", checkInsert},
		{"RANGE", checkRange},
		{"REMOVE", checkRemove},
		{"REVERSE", checkReverse},
		{"SORT", checkSort},
		{"SET", checkSet},
		{"SHUFFLE", checkShuffle},
		{"SWAP", checkSwap},
		{"TRIM", checkTrim},
	}
}

// Run executes scenarios in order, marking each on obs. opts are passed
// to every list a scenario builds.
func Run(obs strlist.Observer, scenarios []Scenario, opts ...strlist.Option) []Result {
	if obs == nil {
		obs = strlist.NopObserver{}
	}

	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		err := sc.Run(opts)
		if err != nil {
			obs.TestFailed(sc.Name, err)
		} else {
			obs.TestPassed(sc.Name)
		}
		results = append(results, Result{Name: sc.Name, Err: err})
	}
	return results
}

// Failed counts failed results
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed() {
			n++
		}
	}
	return n
}

func expect(ok bool, format string, args ...interface{}) error {
	if ok {
		return nil
	}
	return fmt.Errorf(format, args...)
}

func expectItem(l *strlist.List, index int, want string) error {
	got, err := l.Get(index)
	if err != nil {
		return err
	}
	return expect(got == want, "item %d = %q, want %q", index, got, want)
}

func expectSize(l *strlist.List, size, capacity int) error {
	return expect(l.Len() == size && l.Cap() == capacity,
		"len=%d cap=%d, want %d/%d", l.Len(), l.Cap(), size, capacity)
}

func create(capacity int, opts []strlist.Option) (*strlist.List, error) {
	return strlist.New(capacity, opts...)
}

func digitList(capacity int, opts []strlist.Option) (*strlist.List, error) {
	l, err := create(capacity, opts)
	if err != nil {
		return nil, err
	}
	l.AddArray(len(digits), digits)
	return l, nil
}
