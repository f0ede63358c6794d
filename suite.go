package smoke

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
)

var _ TestSuite = &Suite{}

// A Suite is a collection of groups covering one part of the infrastructure,
// e.g. the crates.io CDNs.
type Suite struct {
	ID     string
	Groups []TestGroup
	Mode   Mode
	Log    log.Logger
}

// NewSuite creates a suite that runs the given groups concurrently.
func NewSuite(id string, groups ...TestGroup) *Suite {
	return &Suite{ID: id, Groups: groups}
}

// Run runs all groups in the suite and collects their results.
func (s *Suite) Run(ctx context.Context) TestSuiteResult {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("suite %s", s.ID))
	defer span.End()

	logger := s.Log
	if logger == nil {
		logger = log.Root()
	}
	logger = logger.New("suite", s.ID)
	logger.Debug("Running suite", "groups", len(s.Groups), "mode", s.Mode)

	results := dispatch(s.Mode, s.Groups, func(g TestGroup) TestGroupResult {
		return g.Run(ctx)
	})
	result := TestSuiteResult{Name: s.ID, Results: results}

	logger.Debug("Suite finished", "success", result.Success())
	return result
}

// Name returns the id of the suite.
func (s *Suite) Name() string {
	return s.ID
}
