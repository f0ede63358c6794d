package runner

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/metrics"
)

// RunnerResult captures the complete smoke test run
type RunnerResult struct {
	RunID       string
	Environment environment.Environment
	// Suites are sorted, as are the groups and tests within them.
	Suites   []smoke.TestSuiteResult
	Duration time.Duration
	Stats    smoke.Stats
}

// Success is true if every suite succeeded.
func (r *RunnerResult) Success() bool {
	for _, suite := range r.Suites {
		if !suite.Success() {
			return false
		}
	}
	return true
}

// String renders every suite, one line per node.
func (r *RunnerResult) String() string {
	var sb strings.Builder
	for _, suite := range r.Suites {
		sb.WriteString(suite.String())
	}
	return sb.String()
}

// TestRunner runs the smoke test suites
type TestRunner interface {
	RunAllTests(ctx context.Context) *RunnerResult
	Suites() []string
}

type runner struct {
	suites      []smoke.TestSuite
	environment environment.Environment
	concurrency int
	log         log.Logger
	tracer      trace.Tracer
}

type Config struct {
	Suites      []smoke.TestSuite
	Environment environment.Environment
	// TargetSuites limits the run to the suites with these names. Empty runs every suite.
	TargetSuites []string
	// Concurrency is the maximum number of suites running at the same time. 0 means no limit.
	Concurrency int
	Log         log.Logger
}

// NewTestRunner creates a new test runner instance
func NewTestRunner(cfg Config) (TestRunner, error) {
	if cfg.Log == nil {
		cfg.Log = log.New()
		cfg.Log.Error("No logger provided, using default")
	}
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}

	suites := cfg.Suites
	if len(cfg.TargetSuites) > 0 {
		suites = nil
		for _, suite := range cfg.Suites {
			if slices.Contains(cfg.TargetSuites, suite.Name()) {
				suites = append(suites, suite)
			}
		}
		if len(suites) == 0 {
			return nil, fmt.Errorf("no suites found matching %s", strings.Join(cfg.TargetSuites, ", "))
		}
	}

	cfg.Log.Info("NewTestRunner()", "environment", cfg.Environment, "suites", len(suites), "concurrency", cfg.Concurrency)

	return &runner{
		suites:      suites,
		environment: cfg.Environment,
		concurrency: cfg.Concurrency,
		log:         cfg.Log,
		tracer:      otel.Tracer("test runner"),
	}, nil
}

// Suites returns the names of the suites that will run.
func (r *runner) Suites() []string {
	names := make([]string, 0, len(r.suites))
	for _, suite := range r.suites {
		names = append(names, suite.Name())
	}
	return names
}

// RunAllTests runs every suite concurrently and waits for all of them.
func (r *runner) RunAllTests(ctx context.Context) *RunnerResult {
	start := time.Now()
	runID := uuid.New().String()

	ctx, span := r.tracer.Start(ctx, fmt.Sprintf("run %s", runID))
	defer span.End()

	r.log.Debug("Running all suites", "run_id", runID, "suites", len(r.suites))

	results := make([]smoke.TestSuiteResult, len(r.suites))
	var g errgroup.Group
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}
	for i, suite := range r.suites {
		g.Go(func() error {
			results[i] = suite.Run(ctx)
			return nil
		})
	}
	// Suites never return errors, failures are part of their results.
	_ = g.Wait()

	sorted := make([]smoke.TestSuiteResult, len(results))
	for i, suite := range results {
		sorted[i] = suite.Sorted()
	}
	smoke.SortSuiteResults(sorted)

	result := &RunnerResult{
		RunID:       runID,
		Environment: r.environment,
		Suites:      sorted,
		Duration:    time.Since(start),
	}
	for _, suite := range sorted {
		result.Stats.Merge(suite.Stats())
		r.recordMetrics(suite)
	}
	metrics.RecordRun(r.environment.String(), result.Success(), result.Duration)

	r.log.Debug("Finished all suites",
		"run_id", runID,
		"success", result.Success(),
		"total", result.Stats.Total,
		"failed", result.Stats.Failed,
		"duration", result.Duration)
	return result
}

func (r *runner) recordMetrics(suite smoke.TestSuiteResult) {
	for _, group := range suite.Results {
		var stats smoke.Stats
		for _, test := range group.Results {
			stats.Add(test)
		}
		metrics.RecordChecks(r.environment.String(), suite.Name, group.Name, stats.Passed, stats.Failed)
	}
}
