package checkr

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkrun/checkr/registry"
	"github.com/checkrun/checkr/types"
)

func testConfig(out *bytes.Buffer) *Config {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &Config{Out: out, Log: log}
}

func TestNewRequiresConfigAndRegistry(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	reg := registry.New(registry.Config{Log: cfg.Log})

	_, err := New(nil, reg)
	require.ErrorContains(t, err, "config is required")

	_, err = New(cfg, nil)
	require.ErrorContains(t, err, "registry is required")
}

func TestRunPassingSuite(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	reg := registry.New(registry.Config{Log: cfg.Log})
	registry.NewCase(reg, "Addition", func(tr *types.Result) {
		types.RecordCheck(tr, "sum", 2+3, 5)
	})

	h, err := New(cfg, reg)
	require.NoError(t, err)
	require.NoError(t, h.Run(context.Background()))

	require.NotNil(t, h.Result())
	assert.Equal(t, "SUCCESS!", h.Result().Label())

	out := stripansi.Strip(buf.String())
	assert.Contains(t, out, "Addition")
	assert.Contains(t, out, "TEST SUMMARY: SUCCESS!")
}

func TestRunFailingSuiteReturnsTestFailure(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	reg := registry.New(registry.Config{Log: cfg.Log})
	registry.NewCase(reg, "Addition", func(tr *types.Result) {
		types.RecordCheck(tr, "sum", 4, 5)
	})

	h, err := New(cfg, reg)
	require.NoError(t, err)

	err = h.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsTestFailureError(err))
	assert.False(t, IsRuntimeError(err))
}

func TestRunAbortedSuiteReturnsTestFailure(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	reg := registry.New(registry.Config{Log: cfg.Log})
	registry.NewCase(reg, "Boom", func(tr *types.Result) {
		types.Abort("invariant", "broken")
	})

	h, err := New(cfg, reg)
	require.NoError(t, err)

	err = h.Run(context.Background())
	require.Error(t, err)
	// The summary label stays SUCCESS! for abort-only runs, but the
	// driver-facing outcome must still be a failure.
	assert.True(t, IsTestFailureError(err))
	assert.Contains(t, stripansi.Strip(buf.String()), "TEST SUMMARY: SUCCESS!")
}

func TestRunTwiceReturnsRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	reg := registry.New(registry.Config{Log: cfg.Log})
	registry.NewCase(reg, "Once", func(tr *types.Result) {
		types.RecordCheck(tr, "ok", 1, 1)
	})

	h, err := New(cfg, reg)
	require.NoError(t, err)
	require.NoError(t, h.Run(context.Background()))

	err = h.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
	assert.ErrorIs(t, err, registry.ErrAlreadyRan)
}

func TestRunWritesSummaryFile(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.SummaryFile = filepath.Join(t.TempDir(), "run.yaml")

	reg := registry.New(registry.Config{Log: cfg.Log})
	registry.NewCase(reg, "Addition", func(tr *types.Result) {
		types.RecordCheck(tr, "sum", 2+3, 5)
	})

	h, err := New(cfg, reg)
	require.NoError(t, err)
	require.NoError(t, h.Run(context.Background()))

	data, err := os.ReadFile(cfg.SummaryFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "result: SUCCESS!")
	assert.Contains(t, string(data), "name: Addition")
}

func TestRunUnwritableSummaryFileIsRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.SummaryFile = filepath.Join(t.TempDir(), "missing", "run.yaml")

	reg := registry.New(registry.Config{Log: cfg.Log})
	registry.NewCase(reg, "Addition", func(tr *types.Result) {
		types.RecordCheck(tr, "sum", 2+3, 5)
	})

	h, err := New(cfg, reg)
	require.NoError(t, err)

	err = h.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
}
