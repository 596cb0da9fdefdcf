// File: observer.go
// Title: List Operation Observer
// Description: Defines the Observer hook that receives operation trace
//              events from a List, with a no-op default and a LogObserver
//              that forwards events to the structured logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package strlist

import (
	"sync"

	"github.com/google/uuid"

	sllog "github.com/msto63/strlist/pkg/core/log"
)

// Fields carries the arguments of a traced operation
type Fields = sllog.Fields

// Event names written by LogObserver
const (
	EventEntered   = "operation-entered"
	EventCompleted = "operation-completed"
	EventMessage   = "operation-message"
	EventError     = "operation-error"
	EventTestPass  = "test-success"
	EventTestFail  = "test-failure"
)

// Observer receives diagnostic events from list operations. An observer
// must not call back into the list that reports to it.
type Observer interface {
	Entered(op string, args Fields)
	Completed(op string, args Fields)
	Message(op, msg string, args Fields)
	Failed(op string, err error)
	TestPassed(name string)
	TestFailed(name string, err error)
}

// deriver is implemented by observers that hand a fresh identity to
// lists built from another list.
type deriver interface {
	Derive() Observer
}

func derive(o Observer) Observer {
	if d, ok := o.(deriver); ok {
		return d.Derive()
	}
	return o
}

// NopObserver discards every event
type NopObserver struct{}

func (NopObserver) Entered(string, Fields) {}
func (NopObserver) Completed(string, Fields) {}
func (NopObserver) Message(string, string, Fields) {}
func (NopObserver) Failed(string, error) {}
func (NopObserver) TestPassed(string) {}
func (NopObserver) TestFailed(string, error) {}

// Verbosity selects which event categories a LogObserver writes
type Verbosity struct {
	Trace    bool // operation-entered / operation-completed
	Messages bool // operation-message
	Errors   bool // operation-error
	Tests    bool // test pass/fail markers
}

// AllEvents enables every category
var AllEvents = Verbosity{Trace: true, Messages: true, Errors: true, Tests: true}

// LogObserver writes list events through a Logger. Each LogObserver has
// its own correlation id; Derive hands out a new one for derived lists.
type LogObserver struct {
	logger    *sllog.Logger
	verbosity Verbosity

	mu     sync.Mutex
	timers []*sllog.Timer
}

// NewLogObserver creates an observer writing to logger with a new
// correlation id.
func NewLogObserver(logger *sllog.Logger, verbosity Verbosity) *LogObserver {
	if logger == nil {
		logger = sllog.GetDefault()
	}
	return &LogObserver{
		logger:    logger.WithCorrelationID(uuid.NewString()),
		verbosity: verbosity,
	}
}

// Derive returns an observer with the same logger and verbosity and a
// new correlation id. The parent id is kept as a field.
func (o *LogObserver) Derive() Observer {
	child := NewLogObserver(o.logger, o.verbosity)
	child.logger = child.logger.WithField("parent", o.logger.CorrelationID())
	return child
}

// ID returns the correlation id stamped on every event
func (o *LogObserver) ID() string {
	return o.logger.CorrelationID()
}

// Logger returns the underlying logger
func (o *LogObserver) Logger() *sllog.Logger {
	return o.logger
}

// Entered logs operation-entered and starts timing op
func (o *LogObserver) Entered(op string, args Fields) {
	if !o.verbosity.Trace {
		return
	}
	o.logger.Trace(EventEntered, args, sllog.Field("op", op))

	timer := o.logger.StartTimer(op).WithLevel(sllog.LevelTrace).WithFields(args)
	o.mu.Lock()
	o.timers = append(o.timers, timer)
	o.mu.Unlock()
}

// Completed logs operation-completed with the elapsed time
func (o *LogObserver) Completed(op string, args Fields) {
	if !o.verbosity.Trace {
		return
	}
	if timer := o.pop(); timer != nil {
		timer.WithFields(args).Stop(EventCompleted)
		return
	}
	o.logger.Trace(EventCompleted, args, sllog.Field("op", op))
}

// Message logs an operation-message at debug level
func (o *LogObserver) Message(op, msg string, args Fields) {
	if !o.verbosity.Messages {
		return
	}
	o.logger.Debug(EventMessage, args, Fields{"op": op, "msg": msg})
}

// Failed logs the error with its code and severity and closes the
// trace of the failed operation.
func (o *LogObserver) Failed(op string, err error) {
	if o.verbosity.Trace {
		if timer := o.pop(); timer != nil {
			timer.Cancel()
		}
	}
	if !o.verbosity.Errors {
		return
	}
	o.logger.LogError(err, Fields{"event": EventError, "op": op})
}

// TestPassed writes a test-success marker
func (o *LogObserver) TestPassed(name string) {
	if !o.verbosity.Tests {
		return
	}
	o.logger.Audit(EventTestPass, sllog.Field("test", name))
}

// TestFailed writes a test-failure marker
func (o *LogObserver) TestFailed(name string, err error) {
	if !o.verbosity.Tests {
		return
	}
	fields := Fields{"test": name}
	if err != nil {
		fields["error"] = err.Error()
	}
	o.logger.Audit(EventTestFail, fields)
}

func (o *LogObserver) pop() *sllog.Timer {
	o.mu.Lock()
	defer o.mu.Unlock()

	n := len(o.timers)
	if n == 0 {
		return nil
	}
	timer := o.timers[n-1]
	o.timers[n-1] = nil
	o.timers = o.timers[:n-1]
	return timer
}
