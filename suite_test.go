package smoke_test

import (
	"context"
	"testing"

	"github.com/ethereum-optimism/optimism/op-service/testlog"
	"github.com/ethereum/go-ethereum/log"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/mocks"
)

func mockGroup(ctrl *gomock.Controller, result smoke.TestGroupResult) *mocks.MockTestGroup {
	group := mocks.NewMockTestGroup(ctrl)
	group.EXPECT().Name().Return(result.Name).AnyTimes()
	group.EXPECT().Run(gomock.Any()).Return(result).Times(1)
	return group
}

func TestSuiteRun(t *testing.T) {
	ctrl := gomock.NewController(t)

	suite := smoke.NewSuite("crates.io",
		mockGroup(ctrl, smoke.TestGroupResult{Name: "Index domains", Results: []smoke.TestResult{smoke.Pass("index.crates.io")}}),
		mockGroup(ctrl, smoke.TestGroupResult{Name: "db-dump.tar.gz", Results: []smoke.TestResult{smoke.Fail("Fastly", "Expected HTTP 200, got HTTP 500")}}),
	)
	suite.Log = testlog.Logger(t, log.LevelInfo)
	assert.Equal(t, "crates.io", suite.Name())

	result := suite.Run(context.Background())
	assert.Equal(t, "crates.io", result.Name)
	assert.Len(t, result.Results, 2)
	assert.False(t, result.Success())

	want := "❌ crates.io\n" +
		"  ✅ Index domains\n" +
		"    ✅ index.crates.io\n" +
		"  ❌ db-dump.tar.gz\n" +
		"    ❌ Fastly Expected HTTP 200, got HTTP 500\n"
	assert.Equal(t, want, result.String())
}

func TestSuiteRunEmpty(t *testing.T) {
	result := smoke.NewSuite("empty").Run(context.Background())
	assert.True(t, result.Success())
	assert.Equal(t, "✅ empty\n", result.String())
}

func TestSuiteRunWithChecks(t *testing.T) {
	suite := smoke.NewSuite("suite",
		smoke.NewGroup("group", smoke.Check{ID: "test", Fn: func(context.Context) error { return nil }}),
	)
	suite.Mode = smoke.Sequential

	result := suite.Run(context.Background())
	assert.Equal(t, "✅ suite\n  ✅ group\n    ✅ test\n", result.String())
}
