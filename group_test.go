package smoke_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum-optimism/optimism/op-service/testlog"
	"github.com/ethereum/go-ethereum/log"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/mocks"
)

func mockTest(ctrl *gomock.Controller, result smoke.TestResult) *mocks.MockTest {
	test := mocks.NewMockTest(ctrl)
	test.EXPECT().Name().Return(result.Name).AnyTimes()
	test.EXPECT().Run(gomock.Any()).Return(result).Times(1)
	return test
}

func TestCheckRun(t *testing.T) {
	ctx := context.Background()

	pass := smoke.Check{ID: "ok", Fn: func(context.Context) error { return nil }}
	assert.Equal(t, "ok", pass.Name())
	assert.Equal(t, smoke.Pass("ok"), pass.Run(ctx))

	fail := smoke.Check{ID: "bad", Fn: func(context.Context) error {
		return errors.New("Expected HTTP 200, got HTTP 403")
	}}
	assert.Equal(t, smoke.Fail("bad", "Expected HTTP 200, got HTTP 403"), fail.Run(ctx))

	panics := smoke.Check{ID: "panics", Fn: func(context.Context) error { panic("boom") }}
	assert.Equal(t, smoke.Fail("panics", "panic: boom"), panics.Run(ctx))

	missing := smoke.Check{ID: "missing"}
	assert.Equal(t, smoke.Fail("missing", "check function is nil"), missing.Run(ctx))
}

func TestGroupRun(t *testing.T) {
	ctrl := gomock.NewController(t)

	group := smoke.NewGroup("CORS headers",
		mockTest(ctrl, smoke.Pass("CloudFront")),
		mockTest(ctrl, smoke.Fail("Fastly", "Expected header access-control-allow-origin to be *")),
	)
	group.Log = testlog.Logger(t, log.LevelInfo)
	assert.Equal(t, "CORS headers", group.Name())

	result := group.Run(context.Background())
	assert.Equal(t, "CORS headers", result.Name)
	assert.Len(t, result.Results, 2)
	assert.False(t, result.Success())
	assert.ElementsMatch(t, []smoke.TestResult{
		smoke.Pass("CloudFront"),
		smoke.Fail("Fastly", "Expected header access-control-allow-origin to be *"),
	}, result.Results)
}

func TestGroupRunEmpty(t *testing.T) {
	result := smoke.NewGroup("empty").Run(context.Background())
	assert.Equal(t, "empty", result.Name)
	assert.Empty(t, result.Results)
	assert.True(t, result.Success())
}

func TestGroupRunConcurrent(t *testing.T) {
	// Both checks wait for each other, so they only finish if they run at the same time
	var wg sync.WaitGroup
	wg.Add(2)
	rendezvous := func(ctx context.Context) error {
		wg.Done()
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("checks did not run concurrently")
		}
	}

	group := smoke.NewGroup("concurrent",
		smoke.Check{ID: "a", Fn: rendezvous},
		smoke.Check{ID: "b", Fn: rendezvous},
	)
	result := group.Run(context.Background())
	assert.True(t, result.Success(), result.String())
}

func TestGroupRunSequential(t *testing.T) {
	var order []string
	record := func(id string) smoke.Check {
		return smoke.Check{ID: id, Fn: func(context.Context) error {
			order = append(order, id)
			return nil
		}}
	}

	group := smoke.NewGroup("sequential", record("c"), record("a"), record("b"))
	group.Mode = smoke.Sequential
	result := group.Run(context.Background())

	require.True(t, result.Success())
	assert.Equal(t, []string{"c", "a", "b"}, order)
	assert.Equal(t, "c", result.Results[0].Name)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "concurrent", smoke.Concurrent.String())
	assert.Equal(t, "sequential", smoke.Sequential.String())
	assert.Equal(t, "unknown", smoke.Mode(42).String())
}
