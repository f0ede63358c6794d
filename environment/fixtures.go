package environment

import (
	_ "embed"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed environments.yaml
var defaultFixtures []byte

// Fixtures are the base URLs and test data the checks run against.
type Fixtures struct {
	Crates   CratesFixtures   `yaml:"crates" toml:"crates"`
	Releases ReleasesFixtures `yaml:"releases" toml:"releases"`
	Rustup   RustupFixtures   `yaml:"rustup" toml:"rustup"`
}

// Crate identifies a published crate version.
type Crate struct {
	Name    string `yaml:"name" toml:"name"`
	Version string `yaml:"version" toml:"version"`
}

type CratesFixtures struct {
	CloudFrontURL string `yaml:"cloudfront_url" toml:"cloudfront_url"`
	FastlyURL     string `yaml:"fastly_url" toml:"fastly_url"`
	APIURL        string `yaml:"api_url" toml:"api_url"`
	IndexURL      string `yaml:"index_url" toml:"index_url"`
	// PlusCrate must have a '+' in its version.
	PlusCrate Crate `yaml:"plus_crate" toml:"plus_crate"`
	// CORSCrate is any crate available on both CDNs.
	CORSCrate Crate `yaml:"cors_crate" toml:"cors_crate"`
}

type ReleasesFixtures struct {
	CloudFrontURL string `yaml:"cloudfront_url" toml:"cloudfront_url"`
	FastlyURL     string `yaml:"fastly_url" toml:"fastly_url"`
	// Release is the date of a nightly release in the dist directory, e.g. 2024-09-11.
	Release string `yaml:"release" toml:"release"`
	DocURL  string `yaml:"doc_url" toml:"doc_url"`
}

type RustupFixtures struct {
	CloudFrontURL string `yaml:"cloudfront_url" toml:"cloudfront_url"`
	FastlyURL     string `yaml:"fastly_url" toml:"fastly_url"`
	WinURL        string `yaml:"win_url" toml:"win_url"`
}

// Defaults returns the built-in fixtures of an environment.
func Defaults(env Environment) (*Fixtures, error) {
	all := map[Environment]Fixtures{}
	if err := yaml.Unmarshal(defaultFixtures, &all); err != nil {
		return nil, errors.Wrap(err, "failed to parse default fixtures")
	}
	fixtures, ok := all[env]
	if !ok {
		return nil, errors.Errorf("no fixtures for environment '%s'", env)
	}
	return &fixtures, nil
}

// Load returns the fixtures of an environment. If overridePath is set, the values in that
// file replace the defaults. YAML (.yaml, .yml) and TOML (.toml) files are supported, and
// fields missing from the file keep their default value.
func Load(env Environment, overridePath string) (*Fixtures, error) {
	fixtures, err := Defaults(env)
	if err != nil {
		return nil, err
	}

	if overridePath != "" {
		if err := decodeFile(overridePath, fixtures); err != nil {
			return nil, errors.Wrapf(err, "failed to load fixtures from %s", overridePath)
		}
	}

	fixtures.normalize()
	if err := fixtures.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid fixtures for environment '%s'", env)
	}
	return fixtures, nil
}

func decodeFile(path string, fixtures *Fixtures) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, fixtures)
	case ".toml":
		_, err := toml.Decode(string(data), fixtures)
		return err
	default:
		return errors.Errorf("unsupported fixtures file extension '%s'", filepath.Ext(path))
	}
}

// normalize strips trailing slashes from base URLs so paths can be appended with a '/'.
func (f *Fixtures) normalize() {
	for _, u := range f.baseURLs() {
		*u.value = strings.TrimRight(*u.value, "/")
	}
}

// Validate checks that every base URL is absolute and every identifier is set.
func (f *Fixtures) Validate() error {
	for _, u := range f.baseURLs() {
		if err := validateURL(*u.value); err != nil {
			return errors.Wrap(err, u.name)
		}
	}

	if f.Crates.PlusCrate.Name == "" || f.Crates.PlusCrate.Version == "" {
		return errors.New("crates.plus_crate: name and version are required")
	}
	if !strings.Contains(f.Crates.PlusCrate.Version, "+") {
		return errors.Errorf("crates.plus_crate: version '%s' has no '+'", f.Crates.PlusCrate.Version)
	}
	if f.Crates.CORSCrate.Name == "" || f.Crates.CORSCrate.Version == "" {
		return errors.New("crates.cors_crate: name and version are required")
	}
	if f.Releases.Release == "" {
		return errors.New("releases.release: release is required")
	}
	return nil
}

type namedURL struct {
	name  string
	value *string
}

func (f *Fixtures) baseURLs() []namedURL {
	return []namedURL{
		{"crates.cloudfront_url", &f.Crates.CloudFrontURL},
		{"crates.fastly_url", &f.Crates.FastlyURL},
		{"crates.api_url", &f.Crates.APIURL},
		{"crates.index_url", &f.Crates.IndexURL},
		{"releases.cloudfront_url", &f.Releases.CloudFrontURL},
		{"releases.fastly_url", &f.Releases.FastlyURL},
		{"releases.doc_url", &f.Releases.DocURL},
		{"rustup.cloudfront_url", &f.Rustup.CloudFrontURL},
		{"rustup.fastly_url", &f.Rustup.FastlyURL},
		{"rustup.win_url", &f.Rustup.WinURL},
	}
}

func validateURL(raw string) error {
	if raw == "" {
		return errors.New("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrapf(err, "invalid url '%s'", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("url '%s' must use http or https", raw)
	}
	if u.Host == "" {
		return errors.Errorf("url '%s' has no host", raw)
	}
	return nil
}
