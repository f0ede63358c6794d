// Package exitcodes defines the exit codes of infra-smoke-tests.
//
// * Success (0): every check passed
// * TestFailure (1): one or more checks failed
// * RuntimeErr (2): the checks could not be run, e.g. because of invalid configuration
package exitcodes

const (
	Success     = 0
	TestFailure = 1
	RuntimeErr  = 2
)
