package types

import (
	"errors"
	"time"
)

// State tracks the execution lifecycle of a Case. The three completed states
// are terminal; a Case never transitions out of them.
type State string

const (
	StateUnexecuted            State = "unexecuted"
	StateExecuting             State = "executing"
	StateCompleted             State = "completed"
	StateCompletedWithFailures State = "completed_with_failures"
	StateAborted               State = "aborted"
)

// ErrAlreadyExecuted is returned when Execute is called on a Case whose body
// has already run. The recorded result is left untouched; re-running a case
// in the same process is rejected rather than silently double-counted.
var ErrAlreadyExecuted = errors.New("test case already executed")

// Body is the behavior of a test case. It records zero or more checks on the
// supplied Result and may terminate abnormally by panicking.
type Body func(t *Result)

// Case is a named, independently executable unit of work. It owns its Result
// exclusively: only its own Execute call mutates it.
type Case struct {
	name   string
	body   Body
	result Result
	state  State
}

// NewCase creates an unexecuted Case. Most callers go through
// registry.NewCase, which also registers the case.
func NewCase(name string, body Body) *Case {
	return &Case{
		name:   name,
		body:   body,
		result: Result{TestName: name},
		state:  StateUnexecuted,
	}
}

// Name returns the case name assigned at construction.
func (c *Case) Name() string {
	return c.name
}

// Result returns the case's result. Safe to call at any time; before
// execution it holds the zero counts. Callers must treat it as read-only.
func (c *Case) Result() *Result {
	return &c.result
}

// State returns the current lifecycle state.
func (c *Case) State() State {
	return c.state
}

// Execute runs the test body exactly once. A panic raised by the body is
// recovered here, at the boundary between the driver and the body, and
// recorded as a single CapturedFailure; it terminates the body but never
// propagates to the caller. Subsequent calls return ErrAlreadyExecuted.
func (c *Case) Execute() error {
	if c.state != StateUnexecuted {
		return ErrAlreadyExecuted
	}
	c.state = StateExecuting

	start := time.Now()
	c.runBody()
	c.result.Duration = time.Since(start)

	switch {
	case len(c.result.Failures) > 0:
		c.state = StateAborted
	case len(c.result.FailedChecks) > 0:
		c.state = StateCompletedWithFailures
	default:
		c.state = StateCompleted
	}
	return nil
}

func (c *Case) runBody() {
	defer func() {
		if v := recover(); v != nil {
			c.result.Failures = append(c.result.Failures, captureFailure(v))
		}
	}()
	c.body(&c.result)
}
