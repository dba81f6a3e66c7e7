package services

import (
	"context"
	"testing"

	"github.com/copaops/copa-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalServiceFixture() GoalService {
	inProgress := &models.Match{
		ID: 1, TournamentID: 1, HomeTeamID: 10, AwayTeamID: 20,
		Status: models.MatchStatusInProgress,
	}
	return NewGoalService(&fakeGoalRepo{}, &fakeMatchRepo{matches: []*models.Match{inProgress}, nextID: 1})
}

func TestRecordGoal(t *testing.T) {
	svc := goalServiceFixture()
	goal, err := svc.RecordGoal(context.Background(), RecordGoalInput{
		MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 42,
	})
	require.NoError(t, err)

	assert.NotZero(t, goal.ID)
	assert.Equal(t, models.GoalTypeRegular, goal.Type, "type defaults to regular")
	assert.Equal(t, 42, goal.Minute)
}

func TestRecordGoalMinuteBounds(t *testing.T) {
	svc := goalServiceFixture()
	ctx := context.Background()

	_, err := svc.RecordGoal(ctx, RecordGoalInput{MatchID: 1, PlayerID: 7, TeamID: 10, Minute: -1})
	assert.ErrorIs(t, err, ErrGoalMinuteInvalid)

	_, err = svc.RecordGoal(ctx, RecordGoalInput{MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 121})
	assert.ErrorIs(t, err, ErrGoalMinuteInvalid)

	// Stoppage time of extra time is still valid.
	_, err = svc.RecordGoal(ctx, RecordGoalInput{MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 120})
	assert.NoError(t, err)
}

func TestRecordGoalRejectsUnknownType(t *testing.T) {
	svc := goalServiceFixture()
	_, err := svc.RecordGoal(context.Background(), RecordGoalInput{
		MatchID: 1, PlayerID: 7, TeamID: 10, Minute: 10, Type: "bicycle_kick",
	})
	assert.ErrorIs(t, err, ErrGoalTypeInvalid)
}

func TestRecordGoalTeamMustPlayInMatch(t *testing.T) {
	svc := goalServiceFixture()
	_, err := svc.RecordGoal(context.Background(), RecordGoalInput{
		MatchID: 1, PlayerID: 7, TeamID: 99, Minute: 10,
	})
	assert.ErrorIs(t, err, ErrGoalTeamNotInMatch)
}

func TestRecordGoalMatchNotFound(t *testing.T) {
	svc := goalServiceFixture()
	_, err := svc.RecordGoal(context.Background(), RecordGoalInput{
		MatchID: 99, PlayerID: 7, TeamID: 10, Minute: 10,
	})
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
