package checkr

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/checkrun/checkr/flags"
)

// Config holds the harness configuration.
type Config struct {
	NoColor     bool      // Disable ANSI colors in the console report
	SummaryFile string    // If non-empty, write a YAML run summary here
	Serve       bool      // Expose healthz/metrics servers during the run
	Out         io.Writer // Report destination; defaults to os.Stdout
	Log         logrus.FieldLogger
}

// NewConfig creates a new Config from cli context
func NewConfig(ctx *cli.Context, log logrus.FieldLogger) (*Config, error) {
	if log == nil {
		return nil, errors.New("logger is required")
	}

	summaryFile := ctx.String(flags.SummaryFile.Name)
	if summaryFile != "" {
		abs, err := filepath.Abs(summaryFile)
		if err != nil {
			return nil, errors.New("failed to resolve absolute path for summary file")
		}
		summaryFile = abs
	}

	return &Config{
		NoColor:     ctx.Bool(flags.NoColor.Name),
		SummaryFile: summaryFile,
		Serve:       ctx.Bool(flags.Serve.Name),
		Log:         log,
	}, nil
}
