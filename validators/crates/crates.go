// Package crates checks the CDNs and services behind crates.io.
package crates

import (
	"fmt"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
)

const SuiteName = "crates.io"

// New creates the crates.io suite.
func New(fixtures environment.CratesFixtures, client *httpcheck.Client) *smoke.Suite {
	return smoke.NewSuite(SuiteName,
		PlusInVersion(fixtures, client),
		CORSHeaders(fixtures, client),
		DBDump(fixtures, client),
		API(fixtures, client),
		Index(fixtures, client),
	)
}

// crateURL returns the download URL of a crate version on a CDN.
func crateURL(baseURL string, crate environment.Crate) string {
	return fmt.Sprintf("%s/crates/%s/%s-%s.crate", baseURL, crate.Name, crate.Name, crate.Version)
}
