// Package exitcodes defines the standard exit codes used by checkr drivers.
package exitcodes

// Exit code constants used by drivers built on the harness:
//
// * Success (0): Used when no check failed and no test aborted
// * TestFailure (1): Used when one or more checks fail or a test aborts
// * RuntimeErr (2): Used for harness errors such as bad configuration
const (
	Success     = 0 // Clean run
	TestFailure = 1 // Failed checks or aborted tests
	RuntimeErr  = 2 // Harness runtime errors
)
