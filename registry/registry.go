// Package registry collects declared test cases and drives their sequential
// execution. A Registry is an explicit, process-scoped object: it is created
// once at program start and handed to every declaration site, rather than
// living behind a package-level singleton.
package registry

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/checkrun/checkr/types"
)

// ErrAlreadyRan is returned by ExecuteAll after a completed run. Running the
// suite twice in one process is unsupported: cases execute at most once, so
// a second pass could only produce an empty or misleading report.
var ErrAlreadyRan = errors.New("registry already executed its cases")

// Reporter renders per-test rows and the aggregate run summary. It consumes
// result data only and never mutates test state. PrintRow is invoked once
// per test, immediately after that test finishes, so long suites show live
// progress instead of buffering everything to the end.
type Reporter interface {
	PrintHeader()
	PrintRow(index int, result *types.Result)
	PrintSummary(run *types.RunResult)
}

// Config contains registry configuration.
type Config struct {
	Log logrus.FieldLogger
}

// Registry holds the ordered sequence of registered cases. Registration
// order is immutable: entries are never reordered or deduplicated, and
// duplicate names are allowed. All registration is expected to happen during
// a single initialization phase before ExecuteAll; the sequence is read-only
// during execution, so no locking is needed.
type Registry struct {
	log   logrus.FieldLogger
	cases []*types.Case
	ran   bool
}

// New creates an empty registry.
func New(cfg Config) *Registry {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	return &Registry{log: cfg.Log}
}

// Register appends a case to the registered sequence. Safe to call from
// package initialization code; no validation is performed.
func (r *Registry) Register(c *types.Case) {
	r.cases = append(r.cases, c)
	r.log.WithFields(logrus.Fields{
		"test":  c.Name(),
		"index": len(r.cases),
	}).Debug("registered test case")
}

// NewCase constructs a case and immediately registers it with reg. This is
// the self-registration protocol: declaration sites anywhere in the program
// call it from top-level var statements or init functions, and every
// declared case ends up registered exactly once before ExecuteAll runs.
//
//	var _ = registry.NewCase(reg, "Addition", func(t *types.Result) {
//		types.RecordCheck(t, "sum", 2+3, 5)
//	})
func NewCase(reg *Registry, name string, body types.Body) *types.Case {
	c := types.NewCase(name, body)
	reg.Register(c)
	return c
}

// Cases returns the registered cases in registration order.
func (r *Registry) Cases() []*types.Case {
	return r.cases
}

// ExecuteAll runs every registered case in registration order, streaming one
// reporter row per finished test and a single summary after the loop. A test
// that aborts never halts the run; the next case executes regardless.
// A second call returns ErrAlreadyRan.
func (r *Registry) ExecuteAll(rep Reporter) (*types.RunResult, error) {
	if r.ran {
		return nil, ErrAlreadyRan
	}
	r.ran = true

	run := types.NewRunResult(uuid.New().String())
	r.log.WithFields(logrus.Fields{
		"run_id": run.RunID,
		"tests":  len(r.cases),
	}).Info("executing registered test cases")

	start := time.Now()
	rep.PrintHeader()

	for i, c := range r.cases {
		if err := c.Execute(); err != nil {
			// Only reachable if a case was executed outside this registry.
			r.log.WithError(err).WithField("test", c.Name()).Warn("skipping case")
		}
		run.Append(c.Result())
		rep.PrintRow(i+1, c.Result())
	}

	run.Duration = time.Since(start)
	rep.PrintSummary(run)

	r.log.WithFields(logrus.Fields{
		"run_id": run.RunID,
		"result": run.Label(),
	}).Info("test run completed")
	return run, nil
}
