package types

import (
	"fmt"
	"time"
)

// Status represents the reported outcome of a single test case
type Status string

const (
	StatusPassed       Status = "PASSED"
	StatusFailed       Status = "FAILED"
	StatusException    Status = "EXCEPTION"
	StatusNotPerformed Status = "NOT PERFORMED"
)

// FailedCheck records a single expected-vs-actual mismatch. It is appended to
// the owning Result when a check fails and never mutated afterwards.
type FailedCheck struct {
	Ordinal int    // 1-based position among the executed checks of the test
	Name    string // caller-supplied check name, may be empty
	Message string // human-readable actual vs. expected rendering
}

// CapturedFailure records an unrecovered error that terminated a test body
// early. Kind is a classification label: either the author-supplied Fault
// kind, or one of the fallback labels "error" and "panic".
type CapturedFailure struct {
	Kind    string
	Message string
}

func (cf CapturedFailure) String() string {
	return fmt.Sprintf("%s(%s)", cf.Kind, cf.Message)
}

// Result captures the outcome of a single test case run. It is owned and
// mutated exclusively by its Case during execution and read-only afterwards.
type Result struct {
	TestName       string
	ExecutedChecks int
	FailedChecks   []FailedCheck
	Failures       []CapturedFailure
	Duration       time.Duration
}

// Status derives the reporting label for this result. The labels are
// mutually exclusive and checked in priority order: a captured failure wins
// over failed checks, failed checks win over a pass, and a test that
// recorded no checks at all is flagged as not performed rather than passed.
func (r *Result) Status() Status {
	switch {
	case len(r.Failures) > 0:
		return StatusException
	case len(r.FailedChecks) > 0:
		return StatusFailed
	case r.ExecutedChecks > 0:
		return StatusPassed
	default:
		return StatusNotPerformed
	}
}

// RecordCheck compares actual against expected and records the outcome on r.
// The executed-check counter is incremented unconditionally; on mismatch a
// FailedCheck is appended whose ordinal is the current counter value.
// A failed check does not stop the test body; the returned outcome is the
// only failure signal. Booleans render as true/false via %v.
func RecordCheck[V comparable](r *Result, name string, actual, expected V) bool {
	r.ExecutedChecks++

	if actual == expected {
		return true
	}

	r.FailedChecks = append(r.FailedChecks, FailedCheck{
		Ordinal: r.ExecutedChecks,
		Name:    name,
		Message: fmt.Sprintf("Result: %v | Expected: %v", actual, expected),
	})
	return false
}
