package crates

import (
	"context"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
)

const (
	APIGroup   = "crates.io API"
	IndexGroup = "Index domains"

	apiHealthPath = "/api/v1/summary"
	// indexPath is the sparse index entry of the crate "foo".
	indexPath = "/3/f/foo"
)

func API(fixtures environment.CratesFixtures, client *httpcheck.Client) *smoke.Group {
	return smoke.NewGroup(APIGroup,
		smoke.Check{
			ID: "crates.io API",
			Fn: func(ctx context.Context) error {
				resp, err := client.Get(ctx, fixtures.APIURL+apiHealthPath)
				if err != nil {
					return err
				}
				return httpcheck.ExpectSuccess(resp)
			},
		},
	)
}

func Index(fixtures environment.CratesFixtures, client *httpcheck.Client) *smoke.Group {
	return smoke.NewGroup(IndexGroup,
		smoke.Check{
			ID: "index.crates.io",
			Fn: func(ctx context.Context) error {
				resp, err := client.Head(ctx, fixtures.IndexURL+indexPath)
				if err != nil {
					return err
				}
				return httpcheck.ExpectSuccess(resp)
			},
		},
	)
}
