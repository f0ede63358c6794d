// Package rustup checks the distribution of the rustup installers.
package rustup

import (
	"context"
	"fmt"
	"net/http"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
)

const (
	SuiteName = "rustup"

	RustupShGroup   = "rustup.sh"
	WinInstallGroup = "win.rustup.rs"

	rustupShLocation = "https://sh.rustup.rs"
)

// winArchitectures are the Windows targets with a rustup-init.exe.
var winArchitectures = []string{"aarch64", "i686", "x86_64"}

// New creates the rustup suite.
func New(fixtures environment.RustupFixtures, client *httpcheck.Client) *smoke.Suite {
	return smoke.NewSuite(SuiteName,
		RustupSh(fixtures, client),
		WinInstaller(fixtures, client),
	)
}

// RustupSh checks that the legacy rustup.sh script points users to sh.rustup.rs.
func RustupSh(fixtures environment.RustupFixtures, client *httpcheck.Client) *smoke.Group {
	return smoke.NewGroup(RustupShGroup,
		expectRustupShRedirect(client, "CloudFront", fixtures.CloudFrontURL),
		expectRustupShRedirect(client, "Fastly", fixtures.FastlyURL),
	)
}

func expectRustupShRedirect(client *httpcheck.Client, name, baseURL string) smoke.Check {
	return smoke.Check{
		ID: name,
		Fn: func(ctx context.Context) error {
			resp, err := client.Do(ctx, httpcheck.Request{
				Method:     http.MethodGet,
				URL:        baseURL + "/rustup.sh",
				NoRedirect: true,
			})
			if err != nil {
				return err
			}
			if err := httpcheck.ExpectRedirect(resp, rustupShLocation); err != nil {
				return err
			}
			return httpcheck.ExpectBodyContains(resp, rustupShLocation, "Expected body to link to sh.rustup.rs")
		},
	}
}

// WinInstaller checks that win.rustup.rs serves rustup-init.exe for every Windows architecture.
func WinInstaller(fixtures environment.RustupFixtures, client *httpcheck.Client) *smoke.Group {
	tests := make([]smoke.Test, 0, len(winArchitectures))
	for _, arch := range winArchitectures {
		tests = append(tests, expectInstaller(client, arch, fmt.Sprintf("%s/%s", fixtures.WinURL, arch)))
	}
	return smoke.NewGroup(WinInstallGroup, tests...)
}

func expectInstaller(client *httpcheck.Client, name, url string) smoke.Check {
	return smoke.Check{
		ID: name,
		Fn: func(ctx context.Context) error {
			resp, err := client.Head(ctx, url)
			if err != nil {
				return err
			}
			if err := httpcheck.ExpectStatus(resp, http.StatusOK); err != nil {
				return err
			}
			if err := httpcheck.ExpectHeader(resp, "Content-Type", "application/x-msdownload",
				"Expected the Content-Type header to be set to 'application/x-msdownload'"); err != nil {
				return err
			}
			return httpcheck.ExpectHeaderContains(resp, "Content-Disposition", `attachment; filename="rustup-init.exe"`,
				"Expected the Content-Disposition header to indicate an attachment")
		},
	}
}
