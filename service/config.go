package service

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	opmetrics "github.com/ethereum-optimism/optimism/op-service/metrics"

	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/flags"
	"github.com/rust-lang/infra-smoke-tests/reporting"
)

type HealthzConfig struct {
	Enabled bool
	Addr    string
	Port    int
}

// Config holds the application configuration
type Config struct {
	Environment  environment.Environment
	Fixtures     *environment.Fixtures
	TargetSuites []string
	Timeout      time.Duration // Timeout of a single HTTP request
	Concurrency  int           // Maximum number of concurrent suites (0 = unbounded)
	Serial       bool          // Run groups and tests one after another
	Format       reporting.Format
	RunInterval  time.Duration // Interval between runs
	RunOnce      bool          // Exit after one run
	Healthz      HealthzConfig
	Metrics      opmetrics.CLIConfig
	Out          io.Writer // Report output, stdout by default
	Log          log.Logger
}

// NewConfig creates a new Config from cli context
func NewConfig(ctx *cli.Context, log log.Logger) (*Config, error) {
	env, err := environment.Parse(ctx.String(flags.Environment.Name))
	if err != nil {
		return nil, err
	}

	fixturesPath := ctx.Path(flags.Fixtures.Name)
	fixtures, err := environment.Load(env, fixturesPath)
	if err != nil {
		return nil, err
	}

	format, err := reporting.ParseFormat(ctx.String(flags.Format.Name))
	if err != nil {
		return nil, err
	}

	concurrency := ctx.Int(flags.Concurrency.Name)
	if concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative, got %d", concurrency)
	}

	runInterval := ctx.Duration(flags.RunInterval.Name)
	if runInterval < 0 {
		return nil, fmt.Errorf("run interval must not be negative, got %s", runInterval)
	}

	metricsCfg := opmetrics.ReadCLIConfig(ctx)
	if err := metricsCfg.Check(); err != nil {
		return nil, fmt.Errorf("invalid metrics config: %w", err)
	}

	return &Config{
		Environment:  env,
		Fixtures:     fixtures,
		TargetSuites: ctx.StringSlice(flags.Suites.Name),
		Timeout:      ctx.Duration(flags.Timeout.Name),
		Concurrency:  concurrency,
		Serial:       ctx.Bool(flags.Serial.Name),
		Format:       format,
		RunInterval:  runInterval,
		RunOnce:      runInterval == 0,
		Healthz: HealthzConfig{
			Enabled: ctx.Bool(flags.HealthzEnabled.Name),
			Addr:    ctx.String(flags.HealthzAddr.Name),
			Port:    ctx.Int(flags.HealthzPort.Name),
		},
		Metrics: metricsCfg,
		Out:     os.Stdout,
		Log:     log,
	}, nil
}
