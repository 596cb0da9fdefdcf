// ============================================================================
// strlist - Growable string list
// ============================================================================
//
// Package:     script
// Description: Parses and applies list operations written as "name:args"
//              for the run command and the interactive editor
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	slerror "github.com/msto63/strlist/pkg/core/error"
	"github.com/msto63/strlist/pkg/strlist"
)

// Kind identifies an operation
type Kind int

const (
	OpAdd Kind = iota
	OpInsert
	OpSet
	OpRemove
	OpRemoveAll
	OpSwap
	OpSort
	OpShuffle
	OpReverse
	OpTrim
	OpExpand
	OpClear
	OpRange
	OpGet
	OpContains
	OpPrint
)

var names = map[string]Kind{
	"add":       OpAdd,
	"insert":    OpInsert,
	"set":       OpSet,
	"remove":    OpRemove,
	"removeall": OpRemoveAll,
	"swap":      OpSwap,
	"sort":      OpSort,
	"shuffle":   OpShuffle,
	"reverse":   OpReverse,
	"trim":      OpTrim,
	"expand":    OpExpand,
	"clear":     OpClear,
	"range":     OpRange,
	"get":       OpGet,
	"contains":  OpContains,
	"print":     OpPrint,
}

// Usage lists the accepted operation forms
const Usage = `add:x  insert:x@i  set:x@i  remove:i  removeall:x  swap:i,j
sort  shuffle  reverse  trim  expand:n  clear
range:a,b  get:i  contains:x  print`

// Op is one parsed operation
type Op struct {
	Kind Kind
	Item string
	A, B int
	Raw  string
}

// Parse parses a single operation such as "insert:x@3" or "sort".
// Names are case-insensitive; the item text is taken verbatim.
func Parse(raw string) (Op, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(raw), ":")
	kind, ok := names[strings.ToLower(name)]
	if !ok {
		return Op{}, parseError(raw, "unknown operation")
	}

	op := Op{Kind: kind, Raw: raw}
	var err error

	switch kind {
	case OpAdd, OpRemoveAll, OpContains:
		if !hasArg {
			return Op{}, parseError(raw, "missing item")
		}
		op.Item = arg

	case OpInsert, OpSet:
		at := strings.LastIndex(arg, "@")
		if !hasArg || at < 0 {
			return Op{}, parseError(raw, "expected item@index")
		}
		op.Item = arg[:at]
		op.A, err = parseInt(arg[at+1:])

	case OpRemove, OpGet, OpExpand:
		if !hasArg {
			return Op{}, parseError(raw, "missing number")
		}
		op.A, err = parseInt(arg)

	case OpSwap, OpRange:
		first, second, found := strings.Cut(arg, ",")
		if !hasArg || !found {
			return Op{}, parseError(raw, "expected two numbers separated by a comma")
		}
		if op.A, err = parseInt(first); err == nil {
			op.B, err = parseInt(second)
		}

	default:
		if hasArg {
			return Op{}, parseError(raw, "operation takes no argument")
		}
	}

	if err != nil {
		return Op{}, parseError(raw, err.Error())
	}
	return op, nil
}

// ParseAll parses every operation and stops at the first error
func ParseAll(raw []string) ([]Op, error) {
	ops := make([]Op, 0, len(raw))
	for _, r := range raw {
		op, err := Parse(r)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}

func parseError(raw, reason string) error {
	return slerror.New(fmt.Sprintf("cannot parse %q: %s", raw, reason)).
		WithCode(slerror.CodeInvalidInput).
		WithOperation("script.Parse").
		WithDetail("input", raw)
}

// Apply runs op against l. The returned text is the query result for
// get, contains, range and print and empty otherwise.
func (op Op) Apply(l *strlist.List) (string, error) {
	switch op.Kind {
	case OpAdd:
		l.Add(op.Item)
	case OpInsert:
		return "", l.Insert(op.Item, op.A)
	case OpSet:
		return "", l.Set(op.Item, op.A)
	case OpRemove:
		return "", l.Remove(op.A)
	case OpRemoveAll:
		return fmt.Sprintf("removed %d", l.RemoveAllMatches(op.Item)), nil
	case OpSwap:
		return "", l.Swap(op.A, op.B)
	case OpSort:
		l.Sort()
	case OpShuffle:
		l.Shuffle()
	case OpReverse:
		l.Reverse()
	case OpTrim:
		l.Trim()
	case OpExpand:
		l.Expand(op.A)
	case OpClear:
		l.Clear()
	case OpRange:
		return l.Range(op.A, op.B).String(), nil
	case OpGet:
		item, err := l.Get(op.A)
		if err != nil {
			return "", err
		}
		return strconv.Quote(item), nil
	case OpContains:
		return strconv.FormatBool(l.Contains(op.Item)), nil
	case OpPrint:
		return l.String(), nil
	}
	return "", nil
}

// Run applies ops in order, writing query results and errors to w.
// A failing operation does not stop the run. It returns the number of
// failed operations.
func Run(l *strlist.List, ops []Op, w io.Writer) int {
	failed := 0
	for _, op := range ops {
		out, err := op.Apply(l)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s: error: %v\n", op.Raw, err)
			continue
		}
		if out != "" {
			fmt.Fprintf(w, "%s: %s\n", op.Raw, out)
		}
	}
	return failed
}
