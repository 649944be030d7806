package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamNameDrawsFromWordLists(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		name := TeamName()
		parts := strings.SplitN(name, " ", 2)
		require.Len(t, parts, 2)
		assert.Contains(t, teamAdjectives, parts[0])
		assert.Contains(t, teamNouns, parts[1])
	}
}

func TestTeamNamesAreDistinct(t *testing.T) {
	t.Parallel()

	names := TeamNames(50)
	require.Len(t, names, 50)

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		_, dup := seen[name]
		assert.False(t, dup, "duplicate team name %q", name)
		seen[name] = struct{}{}
		assert.NotEmpty(t, strings.TrimSpace(name))
	}
}

func TestTeamNamesBeyondCombinationSpace(t *testing.T) {
	t.Parallel()

	limit := len(teamAdjectives) * len(teamNouns)
	names := TeamNames(limit + 3)
	require.Len(t, names, limit+3)

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		_, dup := seen[name]
		assert.False(t, dup, "duplicate team name %q", name)
		seen[name] = struct{}{}
	}
}
