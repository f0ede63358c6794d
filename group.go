package smoke

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
)

var _ TestGroup = &Group{}

// A Group is a collection of tests that check one behavior of the infrastructure.
type Group struct {
	ID    string
	Tests []Test
	Mode  Mode
	// Log defaults to the root logger.
	Log log.Logger
}

// NewGroup creates a group that runs the given tests concurrently.
func NewGroup(id string, tests ...Test) *Group {
	return &Group{ID: id, Tests: tests}
}

// Run runs every test in the group and collects their results.
// A failing test does not stop the others.
func (g *Group) Run(ctx context.Context) TestGroupResult {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("group %s", g.ID))
	defer span.End()

	logger := g.logger()
	logger.Debug("Running group", "tests", len(g.Tests), "mode", g.Mode)

	results := dispatch(g.Mode, g.Tests, func(t Test) TestResult {
		return t.Run(ctx)
	})
	result := TestGroupResult{Name: g.ID, Results: results}

	logger.Debug("Group finished", "success", result.Success())
	return result
}

// Name returns the id of the group.
func (g *Group) Name() string {
	return g.ID
}

func (g *Group) logger() log.Logger {
	if g.Log == nil {
		return log.Root().New("group", g.ID)
	}
	return g.Log.New("group", g.ID)
}
