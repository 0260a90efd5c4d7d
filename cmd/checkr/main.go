package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	checkr "github.com/checkrun/checkr"
	"github.com/checkrun/checkr/exitcodes"
	"github.com/checkrun/checkr/flags"
	"github.com/checkrun/checkr/metrics"
	"github.com/checkrun/checkr/registry"
	"github.com/checkrun/checkr/service"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "checkr"
	app.Usage = "Self-contained unit test harness"
	app.Description = "checkr runs its example suite and demonstrates the harness driver surface"
	app.Flags = flags.Flags
	app.Action = run
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			if checkr.IsRuntimeError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
			} else if checkr.IsTestFailureError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			} else {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			}
		}
	}

	// Telemetry is best effort; a test run must not die because no
	// collector is reachable.
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(app.Name),
		otelconfig.WithServiceVersion(app.Version),
	)
	if err != nil {
		logrus.WithError(err).Warn("telemetry disabled")
	} else {
		defer otelShutdown()
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("application failed")
		os.Exit(exitcodes.RuntimeErr)
	}
}

func run(cliCtx *cli.Context) error {
	log := logrus.New()
	level, err := logrus.ParseLevel(cliCtx.String(flags.LogLevel.Name))
	if err != nil {
		return checkr.NewRuntimeError(fmt.Errorf("invalid log level: %w", err))
	}
	log.SetLevel(level)
	metrics.SetLogger(log)

	cfg, err := checkr.NewConfig(cliCtx, log)
	if err != nil {
		return checkr.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	if cfg.Serve {
		svc := service.New(log)
		svc.Start(cliCtx.Context)
		defer svc.Shutdown()
	}

	reg := registry.New(registry.Config{Log: log})
	registerExampleCases(reg)

	harness, err := checkr.New(cfg, reg)
	if err != nil {
		return checkr.NewRuntimeError(fmt.Errorf("failed to create harness: %w", err))
	}
	return harness.Run(cliCtx.Context)
}
