package services

import (
	"context"
	"testing"

	"github.com/copaops/copa-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupServiceFixture() (GroupService, *fakeGroupRepo, *fakeMatchRepo) {
	groupRepo := &fakeGroupRepo{
		groups: map[int]*models.Group{1: {ID: 1, PhaseID: 1, Name: "Group A"}},
		teams:  map[int][]models.Team{},
	}
	phaseRepo := &fakePhaseRepo{
		phases: map[int]*models.Phase{1: {ID: 1, TournamentID: 5, Name: "Group Stage", Type: models.PhaseTypeGroup}},
	}
	matchRepo := &fakeMatchRepo{}
	return NewGroupService(groupRepo, phaseRepo, matchRepo), groupRepo, matchRepo
}

func TestCreateGroupRequiresName(t *testing.T) {
	svc, _, _ := groupServiceFixture()
	_, err := svc.CreateGroup(context.Background(), CreateGroupInput{PhaseID: 1})
	assert.ErrorIs(t, err, ErrGroupNameRequired)
}

func TestAddTeamTwiceConflicts(t *testing.T) {
	svc, _, _ := groupServiceFixture()
	ctx := context.Background()

	require.NoError(t, svc.AddTeam(ctx, 1, 10))
	err := svc.AddTeam(ctx, 1, 10)
	assert.ErrorIs(t, err, ErrGroupMembershipExists)
}

func TestRemoveTeamNotInGroup(t *testing.T) {
	svc, _, _ := groupServiceFixture()
	err := svc.RemoveTeam(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrTeamNotInGroup)
}

func TestGenerateFixturesSingleRound(t *testing.T) {
	svc, groupRepo, matchRepo := groupServiceFixture()
	ctx := context.Background()
	groupRepo.teams[1] = []models.Team{{ID: 10}, {ID: 20}, {ID: 30}}

	matches, err := svc.GenerateFixtures(ctx, 1, GenerateFixturesInput{})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for _, m := range matches {
		assert.Equal(t, 5, m.TournamentID, "fixtures inherit the phase's tournament")
		require.NotNil(t, m.GroupID)
		assert.Equal(t, 1, *m.GroupID)
		assert.Equal(t, models.MatchStatusScheduled, m.Status)
		assert.Nil(t, m.HomeScore)
	}
	assert.Len(t, matchRepo.matches, 3)
}

func TestGenerateFixturesTwoRounds(t *testing.T) {
	svc, groupRepo, _ := groupServiceFixture()
	groupRepo.teams[1] = []models.Team{{ID: 10}, {ID: 20}}

	matches, err := svc.GenerateFixtures(context.Background(), 1, GenerateFixturesInput{Rounds: 2})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, matches[0].HomeTeamID, matches[1].AwayTeamID)
	assert.Equal(t, matches[0].AwayTeamID, matches[1].HomeTeamID)
}

func TestGenerateFixturesNotEnoughTeams(t *testing.T) {
	svc, groupRepo, _ := groupServiceFixture()
	groupRepo.teams[1] = []models.Team{{ID: 10}}

	_, err := svc.GenerateFixtures(context.Background(), 1, GenerateFixturesInput{})
	assert.ErrorIs(t, err, ErrFixturesNotEnoughTeams)
}

func TestGenerateFixturesInvalidRounds(t *testing.T) {
	svc, groupRepo, _ := groupServiceFixture()
	groupRepo.teams[1] = []models.Team{{ID: 10}, {ID: 20}}

	_, err := svc.GenerateFixtures(context.Background(), 1, GenerateFixturesInput{Rounds: 3})
	assert.ErrorIs(t, err, ErrFixturesInvalidRoundsCount)
}

func TestGenerateFixturesUnknownGroup(t *testing.T) {
	svc, _, _ := groupServiceFixture()
	_, err := svc.GenerateFixtures(context.Background(), 99, GenerateFixturesInput{})
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
