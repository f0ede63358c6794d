package smoke

import (
	"errors"
	"fmt"
)

// RuntimeError is an operational error that should lead to exit code 2,
// e.g. an unknown environment or an unreadable fixtures file.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// NewRuntimeError creates a new RuntimeError
func NewRuntimeError(err error) *RuntimeError {
	return &RuntimeError{Err: err}
}

// IsRuntimeError checks if the error is or wraps a RuntimeError
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return err != nil && errors.As(err, &runtimeErr)
}

// TestFailureError signals that at least one check failed (exit code 1).
type TestFailureError struct {
	Failed int
	Total  int
}

func (e *TestFailureError) Error() string {
	return fmt.Sprintf("test failure: %d of %d checks failed", e.Failed, e.Total)
}

// NewTestFailureError creates a new TestFailureError
func NewTestFailureError(failed, total int) *TestFailureError {
	return &TestFailureError{Failed: failed, Total: total}
}

// IsTestFailureError checks if the error is or wraps a TestFailureError
func IsTestFailureError(err error) bool {
	var testErr *TestFailureError
	return err != nil && errors.As(err, &testErr)
}
