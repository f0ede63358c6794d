package runner

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum-optimism/optimism/op-service/testlog"
	"github.com/ethereum/go-ethereum/log"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
	"github.com/rust-lang/infra-smoke-tests/mocks"
)

func mockSuite(ctrl *gomock.Controller, result smoke.TestSuiteResult) *mocks.MockTestSuite {
	suite := mocks.NewMockTestSuite(ctrl)
	suite.EXPECT().Name().Return(result.Name).AnyTimes()
	suite.EXPECT().Run(gomock.Any()).Return(result).Times(1)
	return suite
}

func suiteResult(name string, groups ...smoke.TestGroupResult) smoke.TestSuiteResult {
	return smoke.TestSuiteResult{Name: name, Results: groups}
}

func groupResult(name string, tests ...smoke.TestResult) smoke.TestGroupResult {
	return smoke.TestGroupResult{Name: name, Results: tests}
}

func TestRunAllTests(t *testing.T) {
	ctrl := gomock.NewController(t)

	r, err := NewTestRunner(Config{
		Suites: []smoke.TestSuite{
			mockSuite(ctrl, suiteResult("rustup",
				groupResult("win.rustup.rs", smoke.Pass("x86_64"), smoke.Pass("aarch64")))),
			mockSuite(ctrl, suiteResult("crates.io",
				groupResult("db-dump.tar.gz", smoke.Fail("Fastly", "Expected HTTP 200, got HTTP 403"), smoke.Pass("CloudFront")))),
		},
		Environment: environment.Staging,
		Log:         testlog.Logger(t, log.LevelInfo),
	})
	require.NoError(t, err)

	result := r.RunAllTests(context.Background())

	_, err = uuid.Parse(result.RunID)
	require.NoError(t, err)
	assert.Equal(t, environment.Staging, result.Environment)
	assert.False(t, result.Success())
	assert.Equal(t, smoke.Stats{Total: 4, Passed: 3, Failed: 1}, result.Stats)

	require.Len(t, result.Suites, 2)
	assert.Equal(t, "crates.io", result.Suites[0].Name)
	assert.Equal(t, "rustup", result.Suites[1].Name)
	// nested results are sorted too
	assert.Equal(t, "CloudFront", result.Suites[0].Results[0].Results[0].Name)
	assert.Equal(t, "aarch64", result.Suites[1].Results[0].Results[0].Name)

	expected := "❌ crates.io\n" +
		"  ❌ db-dump.tar.gz\n" +
		"    ✅ CloudFront\n" +
		"    ❌ Fastly Expected HTTP 200, got HTTP 403\n" +
		"✅ rustup\n" +
		"  ✅ win.rustup.rs\n" +
		"    ✅ aarch64\n" +
		"    ✅ x86_64\n"
	assert.Equal(t, expected, result.String())
}

func TestRunAllTestsDeterministic(t *testing.T) {
	results := []smoke.TestSuiteResult{
		suiteResult("b", groupResult("g", smoke.Pass("t"))),
		suiteResult("a", groupResult("g", smoke.Pass("t2"), smoke.Fail("t1", "boom"))),
		suiteResult("c"),
	}

	var reports []string
	for i := 0; i < 5; i++ {
		ctrl := gomock.NewController(t)
		suites := make([]smoke.TestSuite, 0, len(results))
		// rotate the declaration order on every run
		for j := range results {
			suites = append(suites, mockSuite(ctrl, results[(i+j)%len(results)]))
		}
		r, err := NewTestRunner(Config{Suites: suites, Log: testlog.Logger(t, log.LevelInfo)})
		require.NoError(t, err)
		reports = append(reports, r.RunAllTests(context.Background()).String())
	}

	for _, report := range reports[1:] {
		assert.Equal(t, reports[0], report)
	}
}

func TestRunAllTestsEmpty(t *testing.T) {
	r, err := NewTestRunner(Config{Log: testlog.Logger(t, log.LevelInfo)})
	require.NoError(t, err)

	result := r.RunAllTests(context.Background())
	assert.True(t, result.Success())
	assert.Empty(t, result.Suites)
	assert.Equal(t, "", result.String())
}

type blockingSuite struct {
	name    string
	running *atomic.Int32
	peak    *atomic.Int32
}

func (s blockingSuite) Name() string { return s.name }

func (s blockingSuite) Run(ctx context.Context) smoke.TestSuiteResult {
	n := s.running.Add(1)
	for {
		peak := s.peak.Load()
		if n <= peak || s.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	s.running.Add(-1)
	return smoke.TestSuiteResult{Name: s.name}
}

func TestRunAllTestsConcurrency(t *testing.T) {
	tests := []struct {
		name        string
		concurrency int
		maxPeak     int32
	}{
		{name: "limited", concurrency: 1, maxPeak: 1},
		{name: "limited to two", concurrency: 2, maxPeak: 2},
		{name: "unbounded", concurrency: 0, maxPeak: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var running, peak atomic.Int32
			suites := []smoke.TestSuite{
				blockingSuite{"a", &running, &peak},
				blockingSuite{"b", &running, &peak},
				blockingSuite{"c", &running, &peak},
				blockingSuite{"d", &running, &peak},
			}
			r, err := NewTestRunner(Config{Suites: suites, Concurrency: tt.concurrency, Log: testlog.Logger(t, log.LevelInfo)})
			require.NoError(t, err)

			result := r.RunAllTests(context.Background())
			assert.Len(t, result.Suites, 4)
			assert.LessOrEqual(t, peak.Load(), tt.maxPeak)
			assert.GreaterOrEqual(t, peak.Load(), int32(1))
		})
	}
}

func TestNewTestRunner(t *testing.T) {
	ctrl := gomock.NewController(t)
	crates := mocks.NewMockTestSuite(ctrl)
	crates.EXPECT().Name().Return("crates.io").AnyTimes()
	rustup := mocks.NewMockTestSuite(ctrl)
	rustup.EXPECT().Name().Return("rustup").AnyTimes()

	t.Run("target suites", func(t *testing.T) {
		r, err := NewTestRunner(Config{
			Suites:       []smoke.TestSuite{crates, rustup},
			TargetSuites: []string{"rustup"},
			Log:          testlog.Logger(t, log.LevelInfo),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"rustup"}, r.Suites())
	})

	t.Run("unknown target suite", func(t *testing.T) {
		_, err := NewTestRunner(Config{
			Suites:       []smoke.TestSuite{crates, rustup},
			TargetSuites: []string{"docs.rs"},
			Log:          testlog.Logger(t, log.LevelInfo),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no suites found matching docs.rs")
	})

	t.Run("negative concurrency", func(t *testing.T) {
		_, err := NewTestRunner(Config{Concurrency: -1, Log: testlog.Logger(t, log.LevelInfo)})
		require.Error(t, err)
	})
}
