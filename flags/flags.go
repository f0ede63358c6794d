package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"

	opservice "github.com/ethereum-optimism/optimism/op-service"
	oplog "github.com/ethereum-optimism/optimism/op-service/log"
	opmetrics "github.com/ethereum-optimism/optimism/op-service/metrics"

	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
	"github.com/rust-lang/infra-smoke-tests/reporting"
)

const EnvVarPrefix = "SMOKE"

var (
	Environment = &cli.StringFlag{
		Name:    "env",
		Value:   environment.Staging.String(),
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "ENV"),
		Usage:   fmt.Sprintf("Environment to test (%s or %s)", environment.Staging, environment.Production),
		Action: func(_ *cli.Context, v string) error {
			_, err := environment.Parse(v)
			return err
		},
	}
	Fixtures = &cli.PathFlag{
		Name:    "fixtures",
		Value:   "",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "FIXTURES"),
		Usage:   "Path to a YAML or TOML file overriding the built-in fixtures of the environment",
	}
	Suites = &cli.StringSliceFlag{
		Name:    "suite",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "SUITE"),
		Usage:   "Only run the suites with this name (eg. 'crates.io'). Can be repeated. Runs every suite if omitted.",
	}
	Timeout = &cli.DurationFlag{
		Name:    "timeout",
		Value:   httpcheck.DefaultTimeout,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "TIMEOUT"),
		Usage:   "Timeout of a single HTTP request",
	}
	Concurrency = &cli.IntFlag{
		Name:    "concurrency",
		Value:   0,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "CONCURRENCY"),
		Usage:   "Maximum number of suites running at the same time. 0 runs every suite at once.",
	}
	Serial = &cli.BoolFlag{
		Name:    "serial",
		Value:   false,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "SERIAL"),
		Usage:   "Run the groups and tests of every suite one after another",
	}
	Format = &cli.StringFlag{
		Name:    "format",
		Value:   string(reporting.FormatText),
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "FORMAT"),
		Usage:   fmt.Sprintf("Report format (%s or %s)", reporting.FormatText, reporting.FormatTable),
		Action: func(_ *cli.Context, v string) error {
			_, err := reporting.ParseFormat(v)
			return err
		},
	}
	RunInterval = &cli.DurationFlag{
		Name:    "run-interval",
		Value:   0,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "RUN_INTERVAL"),
		Usage:   "Interval between runs (e.g. '1h', '30m'). Set to 0 or omit for run-once mode.",
	}
	HealthzEnabled = &cli.BoolFlag{
		Name:    "healthz.enabled",
		Value:   false,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "HEALTHZ_ENABLED"),
		Usage:   "Serve /healthz reporting the last run in continuous mode",
	}
	HealthzAddr = &cli.StringFlag{
		Name:    "healthz.addr",
		Value:   "0.0.0.0",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "HEALTHZ_ADDR"),
		Usage:   "Healthz listening address",
	}
	HealthzPort = &cli.IntFlag{
		Name:    "healthz.port",
		Value:   8080,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "HEALTHZ_PORT"),
		Usage:   "Healthz listening port",
	}
)

var optionalFlags = []cli.Flag{
	Environment,
	Fixtures,
	Suites,
	Timeout,
	Concurrency,
	Serial,
	Format,
	RunInterval,
	HealthzEnabled,
	HealthzAddr,
	HealthzPort,
}

var Flags []cli.Flag

func init() {
	optionalFlags = append(optionalFlags, oplog.CLIFlags(EnvVarPrefix)...)
	optionalFlags = append(optionalFlags, opmetrics.CLIFlags(EnvVarPrefix)...)

	Flags = append(Flags, optionalFlags...)
}
