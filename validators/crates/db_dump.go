package crates

import (
	"context"
	"fmt"
	"net/http"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
)

const DBDumpGroup = "db-dump.tar.gz"

// dbDumpArtifacts are served by CloudFront. Fastly redirects to them.
var dbDumpArtifacts = []string{"db-dump.tar.gz", "db-dump.zip"}

func DBDump(fixtures environment.CratesFixtures, client *httpcheck.Client) *smoke.Group {
	return smoke.NewGroup(DBDumpGroup,
		smoke.Check{
			ID: "CloudFront",
			Fn: func(ctx context.Context) error {
				resp, err := client.Head(ctx, fmt.Sprintf("%s/%s", fixtures.CloudFrontURL, dbDumpArtifacts[0]))
				if err != nil {
					return err
				}
				return httpcheck.ExpectSuccess(resp)
			},
		},
		smoke.Check{
			ID: "Fastly",
			Fn: func(ctx context.Context) error {
				// the first artifact that is not redirected fails the check
				for _, artifact := range dbDumpArtifacts {
					resp, err := client.Do(ctx, httpcheck.Request{
						Method:     http.MethodHead,
						URL:        fmt.Sprintf("%s/%s", fixtures.FastlyURL, artifact),
						NoRedirect: true,
					})
					if err != nil {
						return err
					}
					if err := httpcheck.ExpectRedirect(resp, fmt.Sprintf("%s/%s", fixtures.CloudFrontURL, artifact)); err != nil {
						return err
					}
				}
				return nil
			},
		},
	)
}
