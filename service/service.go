package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum-optimism/optimism/op-service/cliapp"
	"github.com/ethereum-optimism/optimism/op-service/httputil"
	opmetrics "github.com/ethereum-optimism/optimism/op-service/metrics"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/httpcheck"
	"github.com/rust-lang/infra-smoke-tests/metrics"
	"github.com/rust-lang/infra-smoke-tests/reporting"
	"github.com/rust-lang/infra-smoke-tests/runner"
	"github.com/rust-lang/infra-smoke-tests/validators"
)

// Service implements the cliapp.Lifecycle interface.
var _ cliapp.Lifecycle = &Service{}

// Service runs the smoke tests once or periodically.
type Service struct {
	ctx      context.Context
	config   *Config
	version  string
	runner   runner.TestRunner
	reporter *reporting.Reporter
	result   atomic.Pointer[runner.RunnerResult]

	healthz       *HealthzServer
	metricsServer *httputil.HTTPServer

	running atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup

	shutdownCallback func(error) // Callback to signal application shutdown
}

func New(ctx context.Context, config *Config, version string, shutdownCallback func(error)) (*Service, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Log.Debug("Creating smoke test service",
		"environment", config.Environment,
		"suites", config.TargetSuites,
		"concurrency", config.Concurrency,
		"serial", config.Serial,
		"runInterval", config.RunInterval,
		"runOnce", config.RunOnce)

	mode := smoke.Concurrent
	if config.Serial {
		mode = smoke.Sequential
	}
	suites := validators.All(config.Fixtures, validators.Options{
		Client: httpcheck.NewClient(config.Timeout, config.Log),
		Mode:   mode,
		Log:    config.Log,
	})

	testRunner, err := runner.NewTestRunner(runner.Config{
		Suites:       suites,
		Environment:  config.Environment,
		TargetSuites: config.TargetSuites,
		Concurrency:  config.Concurrency,
		Log:          config.Log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create test runner: %w", err)
	}

	return NewWithRunner(ctx, config, version, testRunner, shutdownCallback), nil
}

// NewWithRunner creates the service around an existing runner.
func NewWithRunner(ctx context.Context, config *Config, version string, testRunner runner.TestRunner, shutdownCallback func(error)) *Service {
	return &Service{
		ctx:              ctx,
		config:           config,
		version:          version,
		runner:           testRunner,
		reporter:         reporting.NewReporter(config.Out, config.Format),
		done:             make(chan struct{}),
		shutdownCallback: shutdownCallback,
	}
}

// Start runs the smoke tests, then keeps running them at the configured interval
// unless in run-once mode.
// Start implements the cliapp.Lifecycle interface.
func (s *Service) Start(ctx context.Context) error {
	s.ctx = ctx
	s.done = make(chan struct{})
	s.running.Store(true)

	if s.config.RunOnce {
		s.config.Log.Info("Starting smoke tests in run-once mode", "version", s.version, "environment", s.config.Environment)
	} else {
		s.config.Log.Info("Starting smoke tests in continuous mode", "version", s.version, "environment", s.config.Environment, "interval", s.config.RunInterval)
	}

	if err := s.startServers(); err != nil {
		return smoke.NewRuntimeError(err)
	}

	// Run tests immediately on startup
	if err := s.runTests(ctx); err != nil {
		s.config.Log.Error("Runtime error running tests", "error", err)
		return smoke.NewRuntimeError(err)
	}

	if s.config.RunOnce {
		result := s.result.Load()
		if !result.Success() {
			s.config.Log.Warn("Smoke tests failed", "failed", result.Stats.Failed, "total", result.Stats.Total)
			return smoke.NewTestFailureError(result.Stats.Failed, result.Stats.Total)
		}

		s.config.Log.Info("Smoke tests passed, exiting (run-once mode)")
		go func() {
			s.shutdownCallback(nil)
		}()
		return nil
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.config.Log.Debug("Starting periodic test runner goroutine", "interval", s.config.RunInterval)

		ticker := time.NewTicker(s.config.RunInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !s.running.Load() {
					return
				}
				s.config.Log.Info("Running periodic smoke tests")
				if err := s.runTests(ctx); err != nil {
					s.config.Log.Error("Error running periodic smoke tests", "error", err)
				}

			case <-s.done:
				s.config.Log.Debug("Done signal received, stopping periodic test runner")
				return

			case <-ctx.Done():
				s.config.Log.Debug("Context canceled, stopping periodic test runner")
				return
			}
		}
	}()
	return nil
}

// runTests runs all suites and reports the results
func (s *Service) runTests(ctx context.Context) error {
	result := s.runner.RunAllTests(ctx)
	s.result.Store(result)

	if err := s.reporter.Report(result); err != nil {
		metrics.RecordErrorDetails("report", err)
		return err
	}
	s.config.Log.Info("Smoke test run completed",
		"run_id", result.RunID,
		"success", result.Success(),
		"passed", result.Stats.Passed,
		"failed", result.Stats.Failed,
		"duration", result.Duration)
	return nil
}

func (s *Service) startServers() error {
	if s.config.Metrics.Enabled {
		s.config.Log.Info("Starting metrics server", "addr", s.config.Metrics.ListenAddr, "port", s.config.Metrics.ListenPort)
		server, err := opmetrics.StartServer(metrics.Registry, s.config.Metrics.ListenAddr, s.config.Metrics.ListenPort)
		if err != nil {
			metrics.RecordErrorDetails("metrics server", err)
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		s.config.Log.Info("Started metrics server", "endpoint", server.Addr())
		s.metricsServer = server
	}

	if s.config.Healthz.Enabled && !s.config.RunOnce {
		s.healthz = NewHealthzServer(s.config.Log, s.Healthy)
		if err := s.healthz.Start(s.config.Healthz.Addr, s.config.Healthz.Port); err != nil {
			metrics.RecordErrorDetails("healthz server", err)
			return fmt.Errorf("failed to start healthz server: %w", err)
		}
	}
	return nil
}

// Healthy is true until a run fails.
func (s *Service) Healthy() bool {
	result := s.result.Load()
	return result == nil || result.Success()
}

// LastResult returns the result of the latest run, or nil before the first run finished.
func (s *Service) LastResult() *runner.RunnerResult {
	return s.result.Load()
}

// Stop stops the periodic runs and the servers.
// Stop implements the cliapp.Lifecycle interface.
func (s *Service) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}
	s.running.Store(false)
	close(s.done)
	s.wg.Wait()

	var result error
	if s.healthz != nil {
		if err := s.healthz.Shutdown(ctx); err != nil {
			result = errors.Join(result, fmt.Errorf("failed to stop healthz server: %w", err))
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Stop(ctx); err != nil {
			result = errors.Join(result, fmt.Errorf("failed to stop metrics server: %w", err))
		}
	}

	s.config.Log.Info("Smoke tests stopped")
	return result
}

// Stopped returns true if the service is stopped.
// Stopped implements the cliapp.Lifecycle interface.
func (s *Service) Stopped() bool {
	return !s.running.Load()
}
