package validators

import (
	"testing"

	"github.com/ethereum-optimism/optimism/op-service/testlog"
	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smoke "github.com/rust-lang/infra-smoke-tests"
	"github.com/rust-lang/infra-smoke-tests/environment"
)

func TestAll(t *testing.T) {
	fixtures, err := environment.Load(environment.Production, "")
	require.NoError(t, err)

	suites := All(fixtures, Options{Mode: smoke.Sequential, Log: testlog.Logger(t, log.LevelInfo)})
	require.Len(t, suites, 3)

	names := make([]string, 0, len(suites))
	for _, s := range suites {
		names = append(names, s.Name())

		suite, ok := s.(*smoke.Suite)
		require.True(t, ok)
		assert.Equal(t, smoke.Sequential, suite.Mode)
		assert.NotEmpty(t, suite.Groups)
		for _, g := range suite.Groups {
			group, ok := g.(*smoke.Group)
			require.True(t, ok)
			assert.Equal(t, smoke.Sequential, group.Mode)
			assert.NotEmpty(t, group.Tests)
		}
	}
	assert.Equal(t, Names(), names)
	assert.Equal(t, []string{"crates.io", "Rust releases", "rustup"}, names)
}
