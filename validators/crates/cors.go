package crates

import (
	"context"
	"net/http"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
)

// CORSHeadersGroup covers rust-lang/crates.io#6164: crate downloads from a browser need CORS headers.
const CORSHeadersGroup = "rust-lang/crates.io#6164 - CORS headers"

const corsOrigin = "https://example.com"

func CORSHeaders(fixtures environment.CratesFixtures, client *httpcheck.Client) *smoke.Group {
	return smoke.NewGroup(CORSHeadersGroup,
		expectCORSHeader(client, "CloudFront", crateURL(fixtures.CloudFrontURL, fixtures.CORSCrate)),
		expectCORSHeader(client, "Fastly", crateURL(fixtures.FastlyURL, fixtures.CORSCrate)),
	)
}

func expectCORSHeader(client *httpcheck.Client, name, url string) smoke.Check {
	return smoke.Check{
		ID: name,
		Fn: func(ctx context.Context) error {
			resp, err := client.Do(ctx, httpcheck.Request{
				Method: http.MethodGet,
				URL:    url,
				Header: http.Header{"Origin": []string{corsOrigin}},
			})
			if err != nil {
				return err
			}
			return httpcheck.ExpectHeader(resp, "Access-Control-Allow-Origin", "*",
				"Expected the Access-Control-Allow-Origin header to be set to '*'")
		},
	}
}
