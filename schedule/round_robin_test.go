package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinSingleRound(t *testing.T) {
	pairings, err := RoundRobin([]int{1, 2, 3, 4}, 1)
	require.NoError(t, err)
	assert.Len(t, pairings, 6) // n(n-1)/2

	seen := map[Pairing]bool{}
	for _, p := range pairings {
		assert.NotEqual(t, p.HomeTeamID, p.AwayTeamID)
		assert.False(t, seen[p], "pairing %v generated twice", p)
		seen[p] = true
	}
	assert.Equal(t, Pairing{HomeTeamID: 1, AwayTeamID: 2}, pairings[0])
}

func TestRoundRobinTwoRounds(t *testing.T) {
	pairings, err := RoundRobin([]int{1, 2, 3}, 2)
	require.NoError(t, err)
	assert.Len(t, pairings, 6)

	// Every leg is followed by its swapped return leg.
	for i := 0; i < len(pairings); i += 2 {
		assert.Equal(t, pairings[i].HomeTeamID, pairings[i+1].AwayTeamID)
		assert.Equal(t, pairings[i].AwayTeamID, pairings[i+1].HomeTeamID)
	}
}

func TestRoundRobinNotEnoughTeams(t *testing.T) {
	_, err := RoundRobin([]int{1}, 1)
	assert.Error(t, err)

	_, err = RoundRobin(nil, 1)
	assert.Error(t, err)
}

func TestRoundRobinInvalidRounds(t *testing.T) {
	_, err := RoundRobin([]int{1, 2}, 3)
	assert.Error(t, err)

	_, err = RoundRobin([]int{1, 2}, 0)
	assert.Error(t, err)
}
