// Package releases checks the distribution of Rust releases and their documentation.
package releases

import (
	"context"
	"fmt"
	"net/http"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
)

const (
	SuiteName = "Rust releases"

	ListFilesGroup = "list-files.html"
	DocRouterGroup = "doc-router"

	listFilesMarker = "Loading directory contents..."
)

// New creates the Rust releases suite.
func New(fixtures environment.ReleasesFixtures, client *httpcheck.Client) *smoke.Suite {
	return smoke.NewSuite(SuiteName,
		ListFiles(fixtures, client),
		DocRouter(fixtures, client),
	)
}

// ListFiles checks that both CDNs serve the directory listing of a release.
func ListFiles(fixtures environment.ReleasesFixtures, client *httpcheck.Client) *smoke.Group {
	return smoke.NewGroup(ListFilesGroup,
		expectDirectoryListing(client, "CloudFront", fixtures.CloudFrontURL, fixtures.Release),
		expectDirectoryListing(client, "Fastly", fixtures.FastlyURL, fixtures.Release),
	)
}

func expectDirectoryListing(client *httpcheck.Client, name, baseURL, release string) smoke.Check {
	return smoke.Check{
		ID: name,
		Fn: func(ctx context.Context) error {
			resp, err := client.Get(ctx, fmt.Sprintf("%s/dist/%s/index.html", baseURL, release))
			if err != nil {
				return err
			}
			return httpcheck.ExpectBodyContains(resp, listFilesMarker, "Expected body to load directory contents")
		},
	}
}

// DocRouter checks the redirects of the documentation router.
func DocRouter(fixtures environment.ReleasesFixtures, client *httpcheck.Client) *smoke.Group {
	return smoke.NewGroup(DocRouterGroup,
		expectDocRedirect(client, "Redirect root path", fixtures.DocURL+"/", "/stable/"),
		expectDocRedirect(client, "Redirect minor versions",
			fixtures.DocURL+"/1.65/std/boxed/struct.Box.html", "/1.65.0/std/boxed/struct.Box.html"),
	)
}

func expectDocRedirect(client *httpcheck.Client, name, url, location string) smoke.Check {
	return smoke.Check{
		ID: name,
		Fn: func(ctx context.Context) error {
			resp, err := client.Do(ctx, httpcheck.Request{Method: http.MethodGet, URL: url, NoRedirect: true})
			if err != nil {
				return err
			}
			return httpcheck.ExpectRedirect(resp, location)
		},
	}
}
