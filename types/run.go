package types

import (
	"fmt"
	"time"
)

// ResultStats tracks aggregate counts across a full run.
type ResultStats struct {
	Total          int // registered cases executed
	Passed         int // >0 checks, none failed, not aborted
	Failed         int // >=1 failed check, not aborted
	Aborted        int // >=1 captured failure
	NotPerformed   int // zero checks and no captured failure
	ExecutedChecks int // sum of per-case executed checks
	FailedChecks   int // sum of per-case failed checks
}

// RunResult captures the complete outcome of one ExecuteAll pass. Results
// are held in execution order, which equals registration order.
type RunResult struct {
	RunID    string
	Results  []*Result
	Stats    ResultStats
	Duration time.Duration
}

// NewRunResult creates an empty RunResult with the given run identifier.
func NewRunResult(runID string) *RunResult {
	return &RunResult{RunID: runID}
}

// Append folds one finished test result into the run aggregates.
func (rr *RunResult) Append(res *Result) {
	rr.Results = append(rr.Results, res)

	s := &rr.Stats
	s.Total++
	s.ExecutedChecks += res.ExecutedChecks
	s.FailedChecks += len(res.FailedChecks)

	switch res.Status() {
	case StatusException:
		s.Aborted++
	case StatusFailed:
		s.Failed++
	case StatusPassed:
		s.Passed++
	default:
		s.NotPerformed++
	}
}

// Succeeded reports the overall summary outcome: true iff no check failed
// anywhere in the run. Captured failures do not affect this label; they are
// surfaced separately and through ShouldFail.
func (rr *RunResult) Succeeded() bool {
	return rr.Stats.FailedChecks == 0
}

// ShouldFail reports whether a driver built on the harness should signal a
// non-zero exit status: any failed check or any aborted test.
func (rr *RunResult) ShouldFail() bool {
	return rr.Stats.FailedChecks > 0 || rr.Stats.Aborted > 0
}

// Label returns the overall result label used by the summary.
func (rr *RunResult) Label() string {
	if rr.Succeeded() {
		return "SUCCESS!"
	}
	return "FAILED"
}

func (rr *RunResult) String() string {
	return fmt.Sprintf("run %s: %s (%d checks across %d tests: %d passed, %d failed, %d aborted, %d not performed) in %.1fs",
		rr.RunID, rr.Label(),
		rr.Stats.ExecutedChecks, rr.Stats.Total,
		rr.Stats.Passed, rr.Stats.Failed, rr.Stats.Aborted, rr.Stats.NotPerformed,
		rr.Duration.Seconds())
}
