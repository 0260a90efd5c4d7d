package metrics

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/checkrun/checkr/types"
)

func TestRecordRun(t *testing.T) {
	run := types.NewRunResult("metrics-run-1")
	run.Append(&types.Result{TestName: "A", ExecutedChecks: 2})
	run.Append(&types.Result{
		TestName:       "B",
		ExecutedChecks: 1,
		FailedChecks:   []types.FailedCheck{{Ordinal: 1}},
	})
	run.Duration = 100 * time.Millisecond

	// Mostly checking the label wiring doesn't panic; the collectors are
	// process-global promauto registrations.
	RecordRun(run)
	assert.True(t, true, "completed without panicking")
}

func TestRecordError(t *testing.T) {
	RecordError("summary sink failure")
	assert.True(t, true, "completed without panicking")
}

func TestSetLogger(t *testing.T) {
	SetLogger(nil) // nil is ignored
	SetLogger(logrus.New())

	run := types.NewRunResult("metrics-run-2")
	RecordRun(run)
}
