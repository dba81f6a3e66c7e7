package services

import (
	"context"
	"testing"

	"github.com/copaops/copa-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerStatsFixture(matches []*models.Match, goals []*models.Goal) (PlayerStatsService, *fakePlayerStatsRepo) {
	statsRepo := &fakePlayerStatsRepo{}
	matchRepo := &fakeMatchRepo{matches: matches}
	goalRepo := &fakeGoalRepo{goals: goals}
	return NewPlayerStatsService(statsRepo, matchRepo, goalRepo), statsRepo
}

func TestRecomputeFromGoals(t *testing.T) {
	matches := []*models.Match{
		completedMatch(1, 1, 0, 10, 20, 2, 0),
		completedMatch(2, 1, 0, 20, 10, 1, 3),
		completedMatch(3, 1, 0, 10, 30, 1, 1),
	}
	// Two goals in match 1, one in match 2, none in match 3.
	goals := []*models.Goal{
		{ID: 1, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 12, Type: models.GoalTypeRegular},
		{ID: 2, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 55, Type: models.GoalTypePenalty},
		{ID: 3, MatchID: 2, PlayerID: 7, TeamID: 10, Minute: 80, Type: models.GoalTypeRegular},
	}

	svc, _ := playerStatsFixture(matches, goals)
	stats, err := svc.RecomputeFromGoals(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.GoalsScored)
	assert.Equal(t, 2, stats.MatchesPlayed, "only matches with a goal count")
	assert.Equal(t, 180, stats.MinutesPlayed)
	assert.InDelta(t, 1.5, stats.GoalsPerMatch, 1e-9)
	assert.InDelta(t, 60.0, stats.MinutesPerGoal, 1e-9)
}

func TestRecomputeFromGoalsRatesAreNotRounded(t *testing.T) {
	matches := []*models.Match{
		completedMatch(1, 1, 0, 10, 20, 1, 0),
		completedMatch(2, 1, 0, 10, 20, 1, 0),
		completedMatch(3, 1, 0, 10, 20, 1, 0),
	}
	goals := []*models.Goal{
		{ID: 1, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 5},
		{ID: 2, MatchID: 2, PlayerID: 7, TeamID: 10, Minute: 5},
		{ID: 3, MatchID: 2, PlayerID: 7, TeamID: 10, Minute: 50},
		{ID: 4, MatchID: 3, PlayerID: 7, TeamID: 10, Minute: 5},
		{ID: 5, MatchID: 3, PlayerID: 7, TeamID: 10, Minute: 50},
		{ID: 6, MatchID: 3, PlayerID: 7, TeamID: 10, Minute: 88},
		{ID: 7, MatchID: 3, PlayerID: 7, TeamID: 10, Minute: 90},
	}

	svc, _ := playerStatsFixture(matches, goals)
	stats, err := svc.RecomputeFromGoals(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.InDelta(t, 7.0/3.0, stats.GoalsPerMatch, 1e-9)
	assert.InDelta(t, 270.0/7.0, stats.MinutesPerGoal, 1e-9)
}

func TestRecomputeFromGoalsZeroState(t *testing.T) {
	svc, repo := playerStatsFixture(nil, nil)
	stats, err := svc.RecomputeFromGoals(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.Zero(t, stats.GoalsScored)
	assert.Zero(t, stats.MatchesPlayed)
	assert.Zero(t, stats.MinutesPlayed)
	assert.Zero(t, stats.GoalsPerMatch, "zero denominator resolves to 0, not NaN")
	assert.Zero(t, stats.MinutesPerGoal)

	stored, err := repo.GetByPlayerAndTournament(context.Background(), 7, 1)
	require.NoError(t, err, "the zeroed record is created on first request")
	assert.Equal(t, stats.ID, stored.ID)
}

func TestRecomputeFromGoalsIgnoresOtherTournaments(t *testing.T) {
	matches := []*models.Match{
		completedMatch(1, 1, 0, 10, 20, 1, 0),
		completedMatch(2, 2, 0, 10, 20, 4, 0), // different tournament
	}
	goals := []*models.Goal{
		{ID: 1, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 10},
		{ID: 2, MatchID: 2, PlayerID: 7, TeamID: 10, Minute: 20},
		{ID: 3, MatchID: 2, PlayerID: 7, TeamID: 10, Minute: 30},
	}

	svc, _ := playerStatsFixture(matches, goals)
	stats, err := svc.RecomputeFromGoals(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.GoalsScored)
	assert.Equal(t, 1, stats.MatchesPlayed)
}

func TestRecomputeFromGoalsCountsOwnGoals(t *testing.T) {
	matches := []*models.Match{completedMatch(1, 1, 0, 10, 20, 1, 1)}
	goals := []*models.Goal{
		{ID: 1, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 30, Type: models.GoalTypeRegular},
		{ID: 2, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 60, Type: models.GoalTypeOwnGoal},
	}

	svc, _ := playerStatsFixture(matches, goals)
	stats, err := svc.RecomputeFromGoals(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.GoalsScored, "own goals stay with the attributed player")
}

func TestRecomputeFromGoalsIsIdempotent(t *testing.T) {
	matches := []*models.Match{completedMatch(1, 1, 0, 10, 20, 2, 0)}
	goals := []*models.Goal{
		{ID: 1, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 10},
		{ID: 2, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 70},
	}

	svc, _ := playerStatsFixture(matches, goals)
	first, err := svc.RecomputeFromGoals(context.Background(), 7, 1)
	require.NoError(t, err)
	second, err := svc.RecomputeFromGoals(context.Background(), 7, 1)
	require.NoError(t, err)

	assert.Equal(t, first.GoalsScored, second.GoalsScored)
	assert.Equal(t, first.MatchesPlayed, second.MatchesPlayed)
	assert.Equal(t, first.MinutesPlayed, second.MinutesPlayed)
}

func TestRecomputeTournament(t *testing.T) {
	matches := []*models.Match{
		completedMatch(1, 1, 0, 10, 20, 2, 1),
		completedMatch(2, 1, 0, 20, 10, 0, 1),
	}
	goals := []*models.Goal{
		{ID: 1, MatchID: 1, PlayerID: 9, TeamID: 10, Minute: 10},
		{ID: 2, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 40},
		{ID: 3, MatchID: 1, PlayerID: 5, TeamID: 20, Minute: 60},
		{ID: 4, MatchID: 2, PlayerID: 9, TeamID: 10, Minute: 85},
	}

	svc, _ := playerStatsFixture(matches, goals)
	results, err := svc.RecomputeTournament(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Ascending player id order, regardless of goal insertion order.
	assert.Equal(t, 5, results[0].PlayerID)
	assert.Equal(t, 7, results[1].PlayerID)
	assert.Equal(t, 9, results[2].PlayerID)
	assert.Equal(t, 2, results[2].GoalsScored)
}

func TestTopScorers(t *testing.T) {
	matches := []*models.Match{
		completedMatch(1, 1, 0, 10, 20, 3, 1),
		completedMatch(2, 1, 0, 20, 10, 1, 2),
	}
	goals := []*models.Goal{
		{ID: 1, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 10},
		{ID: 2, MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 30},
		{ID: 3, MatchID: 1, PlayerID: 9, TeamID: 10, Minute: 50},
		{ID: 4, MatchID: 1, PlayerID: 5, TeamID: 20, Minute: 70},
		{ID: 5, MatchID: 2, PlayerID: 7, TeamID: 10, Minute: 15},
		{ID: 6, MatchID: 2, PlayerID: 9, TeamID: 10, Minute: 88},
	}

	svc, _ := playerStatsFixture(matches, goals)
	scorers, err := svc.TopScorers(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, scorers, 2)

	assert.Equal(t, 7, scorers[0].PlayerID)
	assert.Equal(t, 3, scorers[0].GoalsScored)
	assert.Equal(t, 9, scorers[1].PlayerID)
	assert.Equal(t, 2, scorers[1].GoalsScored)
}

func TestGetByPlayerAndTournamentNotFound(t *testing.T) {
	svc, _ := playerStatsFixture(nil, nil)
	_, err := svc.GetByPlayerAndTournament(context.Background(), 7, 1)
	assert.ErrorIs(t, err, ErrPlayerStatsNotFound)
}
