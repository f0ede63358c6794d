//go:generate mockgen -destination=mocks/mock_smoke.go -package=mocks github.com/rust-lang/infra-smoke-tests Test,TestGroup,TestSuite

package smoke

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Test is a single check against the infrastructure.
// Run must never panic and must be safe to call concurrently with other tests.
type Test interface {
	Name() string
	Run(ctx context.Context) TestResult
}

// TestGroup is a collection of related tests.
type TestGroup interface {
	Name() string
	Run(ctx context.Context) TestGroupResult
}

// TestSuite is a collection of test groups for one part of the infrastructure.
type TestSuite interface {
	Name() string
	Run(ctx context.Context) TestSuiteResult
}

var _ Test = Check{}

var errNilCheck = errors.New("check function is nil")

// tracer is shared by tests, groups and suites. It is a no-op unless a provider is installed.
var tracer trace.Tracer = otel.Tracer("smoke tests")

// Check is a Test backed by a function.
// A nil error from Fn is a success, any other error fails the test with the error as its message.
type Check struct {
	ID string
	Fn func(ctx context.Context) error
}

// Run runs the check function and converts its outcome into a result.
func (c Check) Run(ctx context.Context) (result TestResult) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("test %s", c.ID))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			result = Fail(c.ID, fmt.Sprintf("panic: %v", r))
		}
	}()

	if c.Fn == nil {
		return Fail(c.ID, errNilCheck.Error())
	}
	if err := c.Fn(ctx); err != nil {
		return Fail(c.ID, err.Error())
	}
	return Pass(c.ID)
}

// Name returns the id of the check.
func (c Check) Name() string {
	return c.ID
}
