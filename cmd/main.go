package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/optimism/devnet-sdk/telemetry"
	"github.com/ethereum-optimism/optimism/op-service/cliapp"
	"github.com/ethereum-optimism/optimism/op-service/ctxinterrupt"
	oplog "github.com/ethereum-optimism/optimism/op-service/log"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/exitcodes"
	"github.com/rust-lang/infra-smoke-tests/flags"
	"github.com/rust-lang/infra-smoke-tests/service"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "infra-smoke-tests"
	app.Usage = "Smoke tests for the Rust project's CDNs and release infrastructure"
	app.Description = "infra-smoke-tests checks crates.io, the release CDNs and rustup against an environment"
	app.Flags = cliapp.ProtectFlags(flags.Flags)
	app.Action = cliapp.LifecycleCmd(run)
	app.ExitErrHandler = func(c *cli.Context, err error) {
		if err == nil {
			return
		}
		var exitErr cli.ExitCoder
		switch {
		case errors.As(err, &exitErr):
			cli.HandleExitCoder(exitErr)
		case smoke.IsRuntimeError(err):
			cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
		case smoke.IsTestFailureError(err):
			cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
		default:
			// Unclassified errors come from flag parsing or the app itself
			cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
		}
	}

	ctx, shutdown, err := telemetry.SetupOpenTelemetry(
		context.Background(),
		otelconfig.WithServiceName(app.Name),
		otelconfig.WithServiceVersion(app.Version),
	)
	if err != nil {
		log.Crit("Failed to setup open telemetry", "message", err)
	}
	defer shutdown()

	ctx = ctxinterrupt.WithSignalWaiterMain(ctx)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error("Application failed", "message", err)
		os.Exit(exitcodes.RuntimeErr)
	}
}

func run(ctx *cli.Context, closeApp context.CancelCauseFunc) (cliapp.Lifecycle, error) {
	logCfg := oplog.ReadCLIConfig(ctx)
	// Reports go to stdout, logs to stderr
	log := oplog.NewLogger(os.Stderr, logCfg)
	oplog.SetGlobalLogHandler(log.Handler())
	oplog.SetupDefaults()

	cfg, err := service.NewConfig(ctx, log)
	if err != nil {
		return nil, smoke.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	svc, err := service.New(ctx.Context, cfg, Version, closeApp)
	if err != nil {
		return nil, smoke.NewRuntimeError(fmt.Errorf("failed to create service: %w", err))
	}
	return svc, nil
}
