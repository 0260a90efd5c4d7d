// Package reporter renders test run output for the console. Rendering is
// pure: the reporter consumes result data and never mutates test state.
package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/checkrun/checkr/types"
)

// Column widths of the results table: ordinal, test name, executed checks,
// failed checks, status label.
const (
	widthOrdinal = 4
	widthName    = 24
	widthChecks  = 10
	widthFailed  = 10
	widthStatus  = 15
)

// statusColors maps each status label to its tint. NOT PERFORMED stays
// untinted. Colors are applied per field and reset by go-pretty, so they
// never bleed into subsequent output.
var statusColors = map[types.Status]text.Colors{
	types.StatusPassed:    {text.FgGreen},
	types.StatusFailed:    {text.FgRed},
	types.StatusException: {text.FgMagenta},
}

// Config contains console reporter configuration.
type Config struct {
	Out     io.Writer // defaults to os.Stdout
	NoColor bool      // disable ANSI tinting entirely
}

// Console writes the streaming results table and the run summary.
type Console struct {
	out     io.Writer
	noColor bool
}

// NewConsole creates a console reporter.
func NewConsole(cfg Config) *Console {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return &Console{out: cfg.Out, noColor: cfg.NoColor}
}

func (c *Console) tint(colors text.Colors, s string) string {
	if c.noColor || colors == nil {
		return s
	}
	return colors.Sprint(s)
}

// PrintHeader writes the results table header once, before any row.
func (c *Console) PrintHeader() {
	fmt.Fprintf(c.out, "%*s %-*s %*s %*s %-*s\n",
		widthOrdinal, "#",
		widthName, "Test Name",
		widthChecks, "Checks",
		widthFailed, "Failed",
		widthStatus, "Status")
}

// PrintRow writes one result row. index is the 1-based execution ordinal.
// The status field is padded before tinting so ANSI codes do not skew the
// column alignment.
func (c *Console) PrintRow(index int, result *types.Result) {
	status := result.Status()
	label := fmt.Sprintf("%-*s", widthStatus, string(status))

	fmt.Fprintf(c.out, "%*d %-*s %*d %*d %s\n",
		widthOrdinal, index,
		widthName, result.TestName,
		widthChecks, result.ExecutedChecks,
		widthFailed, len(result.FailedChecks),
		c.tint(statusColors[status], label))
}

// PrintSummary writes the aggregate summary: the overall result label,
// totals, conditional failed/aborted counts, and an itemized listing of
// every failed check and captured failure in the order the tests ran.
func (c *Console) PrintSummary(run *types.RunResult) {
	overall := run.Label()
	overallColor := text.Colors{text.FgGreen}
	if !run.Succeeded() {
		overallColor = text.Colors{text.FgRed}
	}

	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "TEST SUMMARY: %s\n", c.tint(overallColor, overall))
	fmt.Fprintf(c.out, "  %d checks executed for %d test cases.\n",
		run.Stats.ExecutedChecks, run.Stats.Total)
	if run.Stats.Failed > 0 {
		fmt.Fprintf(c.out, "  %d passed tests, %d failed tests.\n",
			run.Stats.Passed, run.Stats.Failed)
	}
	if run.Stats.Aborted > 0 {
		fmt.Fprintf(c.out, "  %d tests were terminated with an exception.\n",
			run.Stats.Aborted)
	}
	fmt.Fprintln(c.out)

	for _, res := range run.Results {
		for _, check := range res.FailedChecks {
			fmt.Fprintf(c.out, "# Failed: %s check %d (%s) | %s\n",
				res.TestName, check.Ordinal, check.Name, check.Message)
		}
	}
	for _, res := range run.Results {
		for _, failure := range res.Failures {
			fmt.Fprintf(c.out, "# Exception: %s%s\n", res.TestName, failure)
		}
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out)
}
