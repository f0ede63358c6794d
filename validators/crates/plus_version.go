package crates

import (
	"context"
	"net/http"
	"strings"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
)

// PlusInVersionGroup covers rust-lang/crates.io#4891: crate files with a '+' in their version
// must be served whether or not the '+' is encoded, but not when it was turned into a space.
const PlusInVersionGroup = "rust-lang/crates.io#4891"

func PlusInVersion(fixtures environment.CratesFixtures, client *httpcheck.Client) *smoke.Group {
	cdns := []struct {
		name string
		url  string
	}{
		{"CloudFront", fixtures.CloudFrontURL},
		{"Fastly", fixtures.FastlyURL},
	}

	var tests []smoke.Test
	for _, cdn := range cdns {
		url := crateURL(cdn.url, fixtures.PlusCrate)
		tests = append(tests,
			expectStatus(client, cdn.name+" encoded", strings.ReplaceAll(url, "+", "%2B"), http.StatusOK),
			expectStatus(client, cdn.name+" unencoded", url, http.StatusOK),
			expectStatus(client, cdn.name+" with space", strings.ReplaceAll(url, "+", " "), http.StatusForbidden),
		)
	}
	return smoke.NewGroup(PlusInVersionGroup, tests...)
}

func expectStatus(client *httpcheck.Client, name, url string, status int) smoke.Check {
	return smoke.Check{
		ID: name,
		Fn: func(ctx context.Context) error {
			resp, err := client.Get(ctx, url)
			if err != nil {
				return err
			}
			return httpcheck.ExpectStatus(resp, status)
		},
	}
}
