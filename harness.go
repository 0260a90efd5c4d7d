// Package checkr is a self-contained in-process unit-test harness: test
// cases declare themselves against an explicit registry, execute
// sequentially in registration order, and produce a streaming console table
// plus an aggregate summary. Check failures and abnormal terminations travel
// on separate channels and never halt the run.
package checkr

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/checkrun/checkr/metrics"
	"github.com/checkrun/checkr/registry"
	"github.com/checkrun/checkr/reporter"
	"github.com/checkrun/checkr/reporting"
	"github.com/checkrun/checkr/types"
)

// Harness ties a registry, a console reporter, metrics and optional summary
// sinks together into a single suite run.
type Harness struct {
	config   *Config
	registry *registry.Registry
	reporter registry.Reporter
	sinks    []reporting.Sink
	tracer   trace.Tracer
	result   *types.RunResult
}

// New creates a harness around an already-populated registry.
func New(cfg *Config, reg *registry.Registry) (*Harness, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if reg == nil {
		return nil, errors.New("registry is required")
	}

	cfg.Log.WithFields(logrus.Fields{
		"tests":       len(reg.Cases()),
		"summaryFile": cfg.SummaryFile,
		"noColor":     cfg.NoColor,
	}).Debug("creating harness")

	h := &Harness{
		config:   cfg,
		registry: reg,
		reporter: reporter.NewConsole(reporter.Config{Out: cfg.Out, NoColor: cfg.NoColor}),
		tracer:   otel.Tracer("checkr"),
	}
	if cfg.SummaryFile != "" {
		h.sinks = append(h.sinks, reporting.NewYAMLFileSink(cfg.Log, cfg.SummaryFile))
	}
	return h, nil
}

// Run executes every registered case once, prints the report, records
// metrics and feeds the sinks. It returns a TestFailureError when the run
// has failed checks or aborted tests, and a RuntimeError for harness
// problems, so drivers can map outcomes onto exit codes.
func (h *Harness) Run(ctx context.Context) error {
	_, span := h.tracer.Start(ctx, "checkr.run")
	defer span.End()

	run, err := h.registry.ExecuteAll(h.reporter)
	if err != nil {
		return NewRuntimeError(err)
	}
	h.result = run

	span.SetAttributes(
		attribute.String("run.id", run.RunID),
		attribute.Int("run.tests", run.Stats.Total),
		attribute.Int("run.checks", run.Stats.ExecutedChecks),
		attribute.Int("run.failed_checks", run.Stats.FailedChecks),
		attribute.Int("run.aborted", run.Stats.Aborted),
	)
	metrics.RecordRun(run)

	for _, sink := range h.sinks {
		if err := sink.Consume(run); err != nil {
			h.config.Log.WithError(err).Error("failed to persist run summary")
			metrics.RecordError("summary sink failure")
			return NewRuntimeError(err)
		}
	}

	if run.ShouldFail() {
		return NewTestFailureError(run.String())
	}
	return nil
}

// Result returns the aggregates of the completed run, or nil before Run.
func (h *Harness) Result() *types.RunResult {
	return h.result
}
