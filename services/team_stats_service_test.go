package services

import (
	"context"
	"testing"

	"github.com/copaops/copa-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamStatsFixture(matches []*models.Match) (TeamStatsService, *fakeTeamStatsRepo) {
	statsRepo := &fakeTeamStatsRepo{}
	matchRepo := &fakeMatchRepo{matches: matches}
	return NewTeamStatsService(statsRepo, matchRepo), statsRepo
}

func TestRecomputeFromMatches(t *testing.T) {
	matches := []*models.Match{
		completedMatch(1, 1, 0, 10, 20, 2, 0), // home win, clean sheet
		completedMatch(2, 1, 0, 30, 10, 1, 1), // away draw
		completedMatch(3, 1, 0, 10, 30, 0, 3), // home loss
		completedMatch(4, 1, 0, 20, 10, 0, 2), // away win, clean sheet
	}

	svc, _ := teamStatsFixture(matches)
	stats, err := svc.RecomputeFromMatches(context.Background(), 10, 1)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.MatchesPlayed)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 5, stats.GoalsFor)
	assert.Equal(t, 4, stats.GoalsAgainst)
	assert.Equal(t, 1, stats.GoalDiff)
	assert.Equal(t, 2, stats.CleanSheets)
	assert.Equal(t, 7, stats.Points)

	assert.InDelta(t, 50.0, stats.WinPercentage, 1e-9)
	assert.InDelta(t, 1.25, stats.GoalsPerMatch, 1e-9)
	assert.InDelta(t, 1.75, stats.PointsPerMatch, 1e-9)
}

func TestRecomputeFromMatchesRoundsRates(t *testing.T) {
	matches := []*models.Match{
		completedMatch(1, 1, 0, 10, 20, 1, 0),
		completedMatch(2, 1, 0, 10, 20, 0, 1),
		completedMatch(3, 1, 0, 10, 20, 0, 1),
	}

	svc, _ := teamStatsFixture(matches)
	stats, err := svc.RecomputeFromMatches(context.Background(), 10, 1)
	require.NoError(t, err)

	// 1/3 rates round to two decimals.
	assert.Equal(t, 33.33, stats.WinPercentage)
	assert.Equal(t, 0.33, stats.GoalsPerMatch)
	assert.Equal(t, 1.0, stats.PointsPerMatch)
}

func TestRecomputeFromMatchesNoCompletedMatches(t *testing.T) {
	scheduled := &models.Match{
		ID: 1, TournamentID: 1, HomeTeamID: 10, AwayTeamID: 20,
		Status: models.MatchStatusScheduled,
	}

	svc, _ := teamStatsFixture([]*models.Match{scheduled})
	stats, err := svc.RecomputeFromMatches(context.Background(), 10, 1)
	require.NoError(t, err)

	assert.Zero(t, stats.MatchesPlayed)
	assert.Zero(t, stats.Points)
	assert.Zero(t, stats.WinPercentage)
	assert.Zero(t, stats.GoalsPerMatch)
	assert.Zero(t, stats.PointsPerMatch)
}

func TestRecomputeFromMatchesResetsBeforeFold(t *testing.T) {
	matches := []*models.Match{completedMatch(1, 1, 0, 10, 20, 1, 0)}

	svc, repo := teamStatsFixture(matches)
	_, err := svc.RecomputeFromMatches(context.Background(), 10, 1)
	require.NoError(t, err)

	// A second pass over the same match log must not double-count.
	stats, err := svc.RecomputeFromMatches(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MatchesPlayed)
	assert.Equal(t, 3, stats.Points)

	stored, err := repo.GetByTeamAndTournament(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.MatchesPlayed)
}

func TestRecomputeFromMatchesHomeAwaySymmetry(t *testing.T) {
	matches := []*models.Match{
		completedMatch(1, 1, 0, 10, 20, 2, 1),
		completedMatch(2, 1, 0, 20, 10, 1, 2),
	}

	svc, _ := teamStatsFixture(matches)
	stats, err := svc.RecomputeFromMatches(context.Background(), 10, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Wins, "a win counts the same from either side")
	assert.Equal(t, 4, stats.GoalsFor)
	assert.Equal(t, 2, stats.GoalsAgainst)
}

func TestRankTeams(t *testing.T) {
	statsRepo := &fakeTeamStatsRepo{}
	ctx := context.Background()
	seed := []*models.TeamStats{
		{TeamID: 10, TournamentID: 1, Points: 6, GoalDiff: 2, GoalsFor: 5},
		{TeamID: 20, TournamentID: 1, Points: 9, GoalDiff: 4, GoalsFor: 8},
		{TeamID: 30, TournamentID: 1, Points: 6, GoalDiff: 2, GoalsFor: 7},
		{TeamID: 40, TournamentID: 1, Points: 6, GoalDiff: 3, GoalsFor: 4},
	}
	for _, s := range seed {
		require.NoError(t, statsRepo.Create(ctx, s))
	}
	svc := NewTeamStatsService(statsRepo, &fakeMatchRepo{})

	ranked, err := svc.RankTeams(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	assert.Equal(t, 20, ranked[0].TeamID, "most points first")
	assert.Equal(t, 40, ranked[1].TeamID, "goal difference breaks the points tie")
	assert.Equal(t, 30, ranked[2].TeamID, "goals for breaks the difference tie")
	assert.Equal(t, 10, ranked[3].TeamID)
}

func TestGetByTeamAndTournamentNotFound(t *testing.T) {
	svc, _ := teamStatsFixture(nil)
	_, err := svc.GetByTeamAndTournament(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrTeamStatsNotFound)
}
