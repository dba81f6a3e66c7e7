package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
	"github.com/copaops/copa-system/schedule"
)

var ErrGroupNameRequired = errors.New("group name is required")

type CreateGroupInput struct {
	PhaseID int    `json:"phase_id"`
	Name    string `json:"name"`
}

type GenerateFixturesInput struct {
	Date   time.Time `json:"date"`
	Rounds int       `json:"rounds"`
}

type GroupService interface {
	CreateGroup(ctx context.Context, input CreateGroupInput) (*models.Group, error)
	GetGroupByID(ctx context.Context, id int) (*models.Group, error)
	ListGroupsByPhase(ctx context.Context, phaseID int) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, id int, input CreateGroupInput) (*models.Group, error)
	DeleteGroup(ctx context.Context, id int) error

	AddTeam(ctx context.Context, groupID, teamID int) error
	RemoveTeam(ctx context.Context, groupID, teamID int) error

	// GenerateFixtures creates scheduled round-robin matches among the
	// group's current member teams.
	GenerateFixtures(ctx context.Context, groupID int, input GenerateFixturesInput) ([]*models.Match, error)
}

type groupService struct {
	groupRepo repositories.GroupRepository
	phaseRepo repositories.PhaseRepository
	matchRepo repositories.MatchRepository
}

func NewGroupService(
	groupRepo repositories.GroupRepository,
	phaseRepo repositories.PhaseRepository,
	matchRepo repositories.MatchRepository,
) GroupService {
	return &groupService{
		groupRepo: groupRepo,
		phaseRepo: phaseRepo,
		matchRepo: matchRepo,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, input CreateGroupInput) (*models.Group, error) {
	if input.Name == "" {
		return nil, ErrGroupNameRequired
	}

	group := &models.Group{PhaseID: input.PhaseID, Name: input.Name}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, repositories.ErrGroupPhaseInvalid) {
			return nil, ErrPhaseNotFound
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (s *groupService) GetGroupByID(ctx context.Context, id int) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	teams, err := s.groupRepo.ListTeams(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of group %d: %w", id, err)
	}
	group.Teams = teams
	return group, nil
}

func (s *groupService) ListGroupsByPhase(ctx context.Context, phaseID int) ([]*models.Group, error) {
	groups, err := s.groupRepo.ListByPhase(ctx, phaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups of phase %d: %w", phaseID, err)
	}
	return groups, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, id int, input CreateGroupInput) (*models.Group, error) {
	if input.Name == "" {
		return nil, ErrGroupNameRequired
	}

	group, err := s.GetGroupByID(ctx, id)
	if err != nil {
		return nil, err
	}

	group.Name = input.Name
	if err := s.groupRepo.Update(ctx, group); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to update group %d: %w", id, err)
	}
	return group, nil
}

func (s *groupService) DeleteGroup(ctx context.Context, id int) error {
	err := s.groupRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrGroupNotFound) {
		return ErrGroupNotFound
	}
	return err
}

func (s *groupService) AddTeam(ctx context.Context, groupID, teamID int) error {
	if _, err := s.GetGroupByID(ctx, groupID); err != nil {
		return err
	}

	err := s.groupRepo.AddTeam(ctx, groupID, teamID)
	switch {
	case errors.Is(err, repositories.ErrGroupMembershipExists):
		return ErrGroupMembershipExists
	case errors.Is(err, repositories.ErrGroupTeamInvalid):
		return ErrTeamNotFound
	}
	return err
}

func (s *groupService) RemoveTeam(ctx context.Context, groupID, teamID int) error {
	err := s.groupRepo.RemoveTeam(ctx, groupID, teamID)
	if errors.Is(err, repositories.ErrGroupTeamInvalid) {
		return ErrTeamNotInGroup
	}
	return err
}

func (s *groupService) GenerateFixtures(ctx context.Context, groupID int, input GenerateFixturesInput) ([]*models.Match, error) {
	group, err := s.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	phase, err := s.phaseRepo.GetByID(ctx, group.PhaseID)
	if err != nil {
		if errors.Is(err, repositories.ErrPhaseNotFound) {
			return nil, ErrPhaseNotFound
		}
		return nil, err
	}

	teamIDs := make([]int, 0, len(group.Teams))
	for _, team := range group.Teams {
		teamIDs = append(teamIDs, team.ID)
	}

	rounds := input.Rounds
	if rounds == 0 {
		rounds = 1
	}
	if rounds != 1 && rounds != 2 {
		return nil, ErrFixturesInvalidRoundsCount
	}

	pairings, err := schedule.RoundRobin(teamIDs, rounds)
	if err != nil {
		return nil, ErrFixturesNotEnoughTeams
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	matches := make([]*models.Match, 0, len(pairings))
	for _, pairing := range pairings {
		match := &models.Match{
			TournamentID: phase.TournamentID,
			PhaseID:      &phase.ID,
			GroupID:      &group.ID,
			HomeTeamID:   pairing.HomeTeamID,
			AwayTeamID:   pairing.AwayTeamID,
			Date:         date,
			Status:       models.MatchStatusScheduled,
		}
		if err := s.matchRepo.Create(ctx, match); err != nil {
			return nil, fmt.Errorf("failed to create fixture for group %d: %w", groupID, err)
		}
		matches = append(matches, match)
	}
	return matches, nil
}
