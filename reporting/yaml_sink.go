// Package reporting persists completed runs in machine-readable formats,
// complementing the console reporter.
package reporting

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/checkrun/checkr/types"
)

// Sink consumes a completed run and persists it somewhere.
type Sink interface {
	Consume(run *types.RunResult) error
}

// RunSummary is the YAML document written for a run.
type RunSummary struct {
	RunID           string        `yaml:"run_id"`
	Result          string        `yaml:"result"`
	DurationSeconds float64       `yaml:"duration_seconds"`
	Stats           StatsSummary  `yaml:"stats"`
	Tests           []TestSummary `yaml:"tests"`
}

// StatsSummary mirrors types.ResultStats.
type StatsSummary struct {
	Total          int `yaml:"total"`
	Passed         int `yaml:"passed"`
	Failed         int `yaml:"failed"`
	Aborted        int `yaml:"aborted"`
	NotPerformed   int `yaml:"not_performed"`
	ExecutedChecks int `yaml:"executed_checks"`
	FailedChecks   int `yaml:"failed_checks"`
}

// TestSummary is the per-test entry, in execution order.
type TestSummary struct {
	Name            string           `yaml:"name"`
	Status          string           `yaml:"status"`
	ExecutedChecks  int              `yaml:"executed_checks"`
	DurationSeconds float64          `yaml:"duration_seconds"`
	FailedChecks    []CheckSummary   `yaml:"failed_checks,omitempty"`
	Failures        []FailureSummary `yaml:"failures,omitempty"`
}

// CheckSummary is a failed check entry.
type CheckSummary struct {
	Ordinal int    `yaml:"ordinal"`
	Name    string `yaml:"name,omitempty"`
	Message string `yaml:"message"`
}

// FailureSummary is a captured failure entry.
type FailureSummary struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
}

// YAMLFileSink writes the run summary to a single YAML file, replacing any
// previous content.
type YAMLFileSink struct {
	path string
	log  logrus.FieldLogger
}

// NewYAMLFileSink creates a sink writing to path.
func NewYAMLFileSink(log logrus.FieldLogger, path string) *YAMLFileSink {
	if log == nil {
		log = logrus.New()
	}
	return &YAMLFileSink{path: path, log: log}
}

// Consume builds the summary document and writes it to the sink's path.
func (s *YAMLFileSink) Consume(run *types.RunResult) error {
	data, err := yaml.Marshal(BuildRunSummary(run))
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing run summary: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"run_id": run.RunID,
		"path":   s.path,
	}).Info("wrote run summary")
	return nil
}

// BuildRunSummary converts a RunResult into its YAML document shape.
func BuildRunSummary(run *types.RunResult) RunSummary {
	summary := RunSummary{
		RunID:           run.RunID,
		Result:          run.Label(),
		DurationSeconds: run.Duration.Seconds(),
		Stats: StatsSummary{
			Total:          run.Stats.Total,
			Passed:         run.Stats.Passed,
			Failed:         run.Stats.Failed,
			Aborted:        run.Stats.Aborted,
			NotPerformed:   run.Stats.NotPerformed,
			ExecutedChecks: run.Stats.ExecutedChecks,
			FailedChecks:   run.Stats.FailedChecks,
		},
	}

	for _, res := range run.Results {
		test := TestSummary{
			Name:            res.TestName,
			Status:          string(res.Status()),
			ExecutedChecks:  res.ExecutedChecks,
			DurationSeconds: res.Duration.Seconds(),
		}
		for _, check := range res.FailedChecks {
			test.FailedChecks = append(test.FailedChecks, CheckSummary{
				Ordinal: check.Ordinal,
				Name:    check.Name,
				Message: check.Message,
			})
		}
		for _, failure := range res.Failures {
			test.Failures = append(test.Failures, FailureSummary{
				Kind:    failure.Kind,
				Message: failure.Message,
			})
		}
		summary.Tests = append(summary.Tests, test)
	}

	return summary
}
