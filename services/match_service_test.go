package services

import (
	"context"
	"testing"

	"github.com/copaops/copa-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchServiceFixture(matches []*models.Match) MatchService {
	return NewMatchService(&fakeMatchRepo{matches: matches, nextID: len(matches)})
}

func TestCreateMatchRejectsIdenticalTeams(t *testing.T) {
	svc := matchServiceFixture(nil)
	_, err := svc.CreateMatch(context.Background(), CreateMatchInput{
		TournamentID: 1, HomeTeamID: 10, AwayTeamID: 10,
	})
	assert.ErrorIs(t, err, ErrMatchTeamsIdentical)
}

func TestCreateMatchStartsScheduled(t *testing.T) {
	svc := matchServiceFixture(nil)
	match, err := svc.CreateMatch(context.Background(), CreateMatchInput{
		TournamentID: 1, HomeTeamID: 10, AwayTeamID: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusScheduled, match.Status)
	assert.Nil(t, match.HomeScore)
	assert.Nil(t, match.AwayScore)
}

func TestUpdateStatusForwardTransitions(t *testing.T) {
	scheduled := &models.Match{ID: 1, TournamentID: 1, HomeTeamID: 10, AwayTeamID: 20, Status: models.MatchStatusScheduled}
	svc := matchServiceFixture([]*models.Match{scheduled})
	ctx := context.Background()

	match, err := svc.UpdateStatus(ctx, 1, UpdateMatchStatusInput{Status: models.MatchStatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusInProgress, match.Status)

	match, err = svc.UpdateStatus(ctx, 1, UpdateMatchStatusInput{
		Status:    models.MatchStatusCompleted,
		HomeScore: intPtr(2),
		AwayScore: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusCompleted, match.Status)
	assert.Equal(t, 2, *match.HomeScore)
	assert.Equal(t, 1, *match.AwayScore)
}

func TestUpdateStatusSkippingInProgressAllowed(t *testing.T) {
	scheduled := &models.Match{ID: 1, TournamentID: 1, HomeTeamID: 10, AwayTeamID: 20, Status: models.MatchStatusScheduled}
	svc := matchServiceFixture([]*models.Match{scheduled})

	match, err := svc.UpdateStatus(context.Background(), 1, UpdateMatchStatusInput{
		Status:    models.MatchStatusCompleted,
		HomeScore: intPtr(0),
		AwayScore: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusCompleted, match.Status)
}

func TestUpdateStatusRejectsBackwardAndRepeat(t *testing.T) {
	completed := completedMatch(1, 1, 0, 10, 20, 1, 0)
	inProgress := &models.Match{ID: 2, TournamentID: 1, HomeTeamID: 10, AwayTeamID: 20, Status: models.MatchStatusInProgress}
	svc := matchServiceFixture([]*models.Match{completed, inProgress})
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 1, UpdateMatchStatusInput{Status: models.MatchStatusScheduled})
	assert.ErrorIs(t, err, ErrMatchStatusTransition)

	_, err = svc.UpdateStatus(ctx, 2, UpdateMatchStatusInput{Status: models.MatchStatusInProgress})
	assert.ErrorIs(t, err, ErrMatchStatusTransition)

	_, err = svc.UpdateStatus(ctx, 1, UpdateMatchStatusInput{
		Status: models.MatchStatusCompleted, HomeScore: intPtr(1), AwayScore: intPtr(1),
	})
	assert.ErrorIs(t, err, ErrMatchStatusTransition)
}

func TestUpdateStatusCompletionRequiresBothScores(t *testing.T) {
	scheduled := &models.Match{ID: 1, TournamentID: 1, HomeTeamID: 10, AwayTeamID: 20, Status: models.MatchStatusScheduled}
	svc := matchServiceFixture([]*models.Match{scheduled})
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 1, UpdateMatchStatusInput{Status: models.MatchStatusCompleted})
	assert.ErrorIs(t, err, ErrMatchScoreRequired)

	_, err = svc.UpdateStatus(ctx, 1, UpdateMatchStatusInput{
		Status: models.MatchStatusCompleted, HomeScore: intPtr(1),
	})
	assert.ErrorIs(t, err, ErrMatchScoreRequired)
}

func TestUpdateStatusRejectsScoresOutsideCompletion(t *testing.T) {
	scheduled := &models.Match{ID: 1, TournamentID: 1, HomeTeamID: 10, AwayTeamID: 20, Status: models.MatchStatusScheduled}
	svc := matchServiceFixture([]*models.Match{scheduled})

	_, err := svc.UpdateStatus(context.Background(), 1, UpdateMatchStatusInput{
		Status: models.MatchStatusInProgress, HomeScore: intPtr(1),
	})
	assert.ErrorIs(t, err, ErrMatchScoreNotAllowed)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	scheduled := &models.Match{ID: 1, TournamentID: 1, HomeTeamID: 10, AwayTeamID: 20, Status: models.MatchStatusScheduled}
	svc := matchServiceFixture([]*models.Match{scheduled})

	_, err := svc.UpdateStatus(context.Background(), 1, UpdateMatchStatusInput{Status: "postponed"})
	assert.ErrorIs(t, err, ErrMatchInvalidStatus)
}

func TestUpdateStatusMatchNotFound(t *testing.T) {
	svc := matchServiceFixture(nil)
	_, err := svc.UpdateStatus(context.Background(), 99, UpdateMatchStatusInput{Status: models.MatchStatusInProgress})
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
