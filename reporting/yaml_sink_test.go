package reporting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/checkrun/checkr/types"
)

func sampleRun() *types.RunResult {
	run := types.NewRunResult("run-yaml-1")
	run.Append(&types.Result{TestName: "Passes", ExecutedChecks: 2, Duration: 5 * time.Millisecond})
	run.Append(&types.Result{
		TestName:       "Fails",
		ExecutedChecks: 1,
		FailedChecks: []types.FailedCheck{
			{Ordinal: 1, Name: "sum", Message: "Result: 4 | Expected: 5"},
		},
	})
	run.Append(&types.Result{
		TestName: "Aborts",
		Failures: []types.CapturedFailure{{Kind: "overflow", Message: "value out of range"}},
	})
	run.Duration = 42 * time.Millisecond
	return run
}

func TestBuildRunSummary(t *testing.T) {
	summary := BuildRunSummary(sampleRun())

	assert.Equal(t, "run-yaml-1", summary.RunID)
	assert.Equal(t, "FAILED", summary.Result)
	assert.Equal(t, 3, summary.Stats.Total)
	assert.Equal(t, 1, summary.Stats.Passed)
	assert.Equal(t, 1, summary.Stats.Failed)
	assert.Equal(t, 1, summary.Stats.Aborted)
	assert.Equal(t, 3, summary.Stats.ExecutedChecks)
	assert.Equal(t, 1, summary.Stats.FailedChecks)

	require.Len(t, summary.Tests, 3)
	assert.Equal(t, "Passes", summary.Tests[0].Name)
	assert.Equal(t, string(types.StatusPassed), summary.Tests[0].Status)
	assert.Empty(t, summary.Tests[0].FailedChecks)

	require.Len(t, summary.Tests[1].FailedChecks, 1)
	assert.Equal(t, 1, summary.Tests[1].FailedChecks[0].Ordinal)
	assert.Equal(t, "sum", summary.Tests[1].FailedChecks[0].Name)

	require.Len(t, summary.Tests[2].Failures, 1)
	assert.Equal(t, "overflow", summary.Tests[2].Failures[0].Kind)
}

func TestYAMLFileSinkWritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	sink := NewYAMLFileSink(logrus.New(), path)

	require.NoError(t, sink.Consume(sampleRun()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var summary RunSummary
	require.NoError(t, yaml.Unmarshal(data, &summary))
	assert.Equal(t, "run-yaml-1", summary.RunID)
	assert.Equal(t, "FAILED", summary.Result)
	require.Len(t, summary.Tests, 3)
	assert.Equal(t, "Aborts", summary.Tests[2].Name)

	// Empty lists are omitted from the document entirely.
	assert.NotContains(t, string(data), "failed_checks: []")
}

func TestYAMLFileSinkUnwritablePath(t *testing.T) {
	sink := NewYAMLFileSink(logrus.New(), filepath.Join(t.TempDir(), "missing", "run.yaml"))

	err := sink.Consume(sampleRun())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing run summary")
}
