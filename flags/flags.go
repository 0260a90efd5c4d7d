package flags

import (
	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "CHECKR"

func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	LogLevel = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Usage:   "Harness log level (trace, debug, info, warn, error)",
	}
	NoColor = &cli.BoolFlag{
		Name:    "no-color",
		Value:   false,
		EnvVars: prefixEnvVars("NO_COLOR"),
		Usage:   "Disable ANSI colors in the console report",
	}
	SummaryFile = &cli.StringFlag{
		Name:    "summary-file",
		Value:   "",
		EnvVars: prefixEnvVars("SUMMARY_FILE"),
		Usage:   "Path to write a YAML run summary (eg. 'run.yaml'). Omit to skip.",
	}
	Serve = &cli.BoolFlag{
		Name:    "serve",
		Value:   false,
		EnvVars: prefixEnvVars("SERVE"),
		Usage:   "Expose healthz and Prometheus metrics HTTP servers during the run",
	}
)

var Flags = []cli.Flag{
	LogLevel,
	NoColor,
	SummaryFile,
	Serve,
}
