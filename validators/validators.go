// Package validators assembles the smoke test suites of every part of the infrastructure.
package validators

import (
	"github.com/ethereum/go-ethereum/log"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
	"github.com/rust-lang/infra-smoke-tests/validators/crates"
	"github.com/rust-lang/infra-smoke-tests/validators/releases"
	"github.com/rust-lang/infra-smoke-tests/validators/rustup"
)

// Options configure how the suites run.
type Options struct {
	Client *httpcheck.Client
	// Mode applies to the groups of every suite and the tests of every group.
	Mode smoke.Mode
	Log  log.Logger
}

// All returns every suite, configured for the given fixtures.
func All(fixtures *environment.Fixtures, opts Options) []smoke.TestSuite {
	if opts.Log == nil {
		opts.Log = log.Root()
	}
	if opts.Client == nil {
		opts.Client = httpcheck.NewClient(httpcheck.DefaultTimeout, opts.Log)
	}

	suites := []*smoke.Suite{
		crates.New(fixtures.Crates, opts.Client),
		releases.New(fixtures.Releases, opts.Client),
		rustup.New(fixtures.Rustup, opts.Client),
	}

	all := make([]smoke.TestSuite, 0, len(suites))
	for _, suite := range suites {
		configure(suite, opts)
		all = append(all, suite)
	}
	return all
}

// Names returns the names of every suite.
func Names() []string {
	return []string{crates.SuiteName, releases.SuiteName, rustup.SuiteName}
}

func configure(suite *smoke.Suite, opts Options) {
	suite.Mode = opts.Mode
	suite.Log = opts.Log
	for _, g := range suite.Groups {
		if group, ok := g.(*smoke.Group); ok {
			group.Mode = opts.Mode
			group.Log = opts.Log.New("suite", suite.ID)
		}
	}
}
