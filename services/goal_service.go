package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
)

type RecordGoalInput struct {
	MatchID  int             `json:"match_id"`
	PlayerID int             `json:"player_id"`
	TeamID   int             `json:"team_id"`
	Minute   int             `json:"minute"`
	Type     models.GoalType `json:"type"`
}

type GoalService interface {
	// RecordGoal appends one entry to the scoring log. The team on the
	// input is the side the goal is attributed to; own goals carry the
	// conceding attribution chosen at record time.
	RecordGoal(ctx context.Context, input RecordGoalInput) (*models.Goal, error)
	GetGoalByID(ctx context.Context, id int) (*models.Goal, error)
	ListGoalsByMatch(ctx context.Context, matchID int) ([]*models.Goal, error)
	DeleteGoal(ctx context.Context, id int) error
}

type goalService struct {
	goalRepo  repositories.GoalRepository
	matchRepo repositories.MatchRepository
}

func NewGoalService(goalRepo repositories.GoalRepository, matchRepo repositories.MatchRepository) GoalService {
	return &goalService{
		goalRepo:  goalRepo,
		matchRepo: matchRepo,
	}
}

func (s *goalService) RecordGoal(ctx context.Context, input RecordGoalInput) (*models.Goal, error) {
	if input.Minute < 0 || input.Minute > 120 {
		return nil, ErrGoalMinuteInvalid
	}

	goalType := input.Type
	if goalType == "" {
		goalType = models.GoalTypeRegular
	}
	switch goalType {
	case models.GoalTypeRegular, models.GoalTypePenalty, models.GoalTypeOwnGoal:
	default:
		return nil, ErrGoalTypeInvalid
	}

	match, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if input.TeamID != match.HomeTeamID && input.TeamID != match.AwayTeamID {
		return nil, ErrGoalTeamNotInMatch
	}

	goal := &models.Goal{
		MatchID:  input.MatchID,
		PlayerID: input.PlayerID,
		TeamID:   input.TeamID,
		Minute:   input.Minute,
		Type:     goalType,
	}
	if err := s.goalRepo.Create(ctx, goal); err != nil {
		if errors.Is(err, repositories.ErrGoalReferenceInvalid) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to record goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, id int) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (s *goalService) ListGoalsByMatch(ctx context.Context, matchID int) ([]*models.Goal, error) {
	goals, err := s.goalRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals of match %d: %w", matchID, err)
	}
	return goals, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, id int) error {
	err := s.goalRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrGoalNotFound) {
		return ErrGoalNotFound
	}
	return err
}
