// Package metrics exposes Prometheus metrics for test runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/checkrun/checkr/types"
)

const (
	MetricsNamespace = "checkr"
)

var (
	log logrus.FieldLogger = logrus.New()

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of harness errors",
	}, []string{
		"error",
	})

	runResults = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_results",
		Help:      "Result of test runs",
	}, []string{
		"run_id",
		"result",
	})

	checksExecutedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "checks_executed_total",
		Help:      "Total number of executed checks",
	}, []string{
		"run_id",
	})

	checksFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "checks_failed_total",
		Help:      "Total number of failed checks",
	}, []string{
		"run_id",
	})

	testsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "tests_total",
		Help:      "Total number of executed test cases",
	}, []string{
		"run_id",
		"status",
	})

	runDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of test runs",
	}, []string{
		"run_id",
	})
)

// SetLogger replaces the package logger.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		log = l
	}
}

// RecordError counts a harness-level error.
func RecordError(error string) {
	log.WithField("error", error).Debug("metric inc errors_total")
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordRun records the aggregates of a completed run.
func RecordRun(run *types.RunResult) {
	runResults.WithLabelValues(run.RunID, run.Label()).Set(1)
	checksExecutedTotal.WithLabelValues(run.RunID).Add(float64(run.Stats.ExecutedChecks))
	checksFailedTotal.WithLabelValues(run.RunID).Add(float64(run.Stats.FailedChecks))
	testsTotal.WithLabelValues(run.RunID, string(types.StatusPassed)).Add(float64(run.Stats.Passed))
	testsTotal.WithLabelValues(run.RunID, string(types.StatusFailed)).Add(float64(run.Stats.Failed))
	testsTotal.WithLabelValues(run.RunID, string(types.StatusException)).Add(float64(run.Stats.Aborted))
	testsTotal.WithLabelValues(run.RunID, string(types.StatusNotPerformed)).Add(float64(run.Stats.NotPerformed))
	runDuration.WithLabelValues(run.RunID).Set(run.Duration.Seconds())

	log.WithFields(logrus.Fields{
		"run_id": run.RunID,
		"result": run.Label(),
	}).Debug("recorded run metrics")
}
