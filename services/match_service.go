package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
)

type CreateMatchInput struct {
	TournamentID int       `json:"tournament_id"`
	PhaseID      *int      `json:"phase_id,omitempty"`
	GroupID      *int      `json:"group_id,omitempty"`
	HomeTeamID   int       `json:"home_team_id"`
	AwayTeamID   int       `json:"away_team_id"`
	Date         time.Time `json:"date"`
	Location     *string   `json:"location,omitempty"`
}

type UpdateMatchStatusInput struct {
	Status    models.MatchStatus `json:"status"`
	HomeScore *int               `json:"home_score,omitempty"`
	AwayScore *int               `json:"away_score,omitempty"`
}

type MatchService interface {
	CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatchesByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error)
	ListMatchesByGroup(ctx context.Context, groupID int) ([]*models.Match, error)
	UpdateMatch(ctx context.Context, id int, input CreateMatchInput) (*models.Match, error)
	// UpdateStatus advances the match lifecycle. Transitions are
	// monotonic: scheduled -> in-progress -> completed, skipping allowed,
	// no reverse. Scores are accepted (and required) only on completion.
	UpdateStatus(ctx context.Context, id int, input UpdateMatchStatusInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
}

type matchService struct {
	matchRepo repositories.MatchRepository
}

func NewMatchService(matchRepo repositories.MatchRepository) MatchService {
	return &matchService{matchRepo: matchRepo}
}

// statusRank orders lifecycle states for the monotonic-transition check.
var statusRank = map[models.MatchStatus]int{
	models.MatchStatusScheduled:  0,
	models.MatchStatusInProgress: 1,
	models.MatchStatusCompleted:  2,
}

func (s *matchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if input.HomeTeamID == input.AwayTeamID {
		return nil, ErrMatchTeamsIdentical
	}

	match := &models.Match{
		TournamentID: input.TournamentID,
		PhaseID:      input.PhaseID,
		GroupID:      input.GroupID,
		HomeTeamID:   input.HomeTeamID,
		AwayTeamID:   input.AwayTeamID,
		Date:         input.Date,
		Location:     input.Location,
		Status:       models.MatchStatusScheduled,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchReferenceInvalid) {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (s *matchService) ListMatchesByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of tournament %d: %w", tournamentID, err)
	}
	return matches, nil
}

func (s *matchService) ListMatchesByGroup(ctx context.Context, groupID int) ([]*models.Match, error) {
	matches, err := s.matchRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of group %d: %w", groupID, err)
	}
	return matches, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input CreateMatchInput) (*models.Match, error) {
	if input.HomeTeamID == input.AwayTeamID {
		return nil, ErrMatchTeamsIdentical
	}

	match, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	match.PhaseID = input.PhaseID
	match.GroupID = input.GroupID
	match.HomeTeamID = input.HomeTeamID
	match.AwayTeamID = input.AwayTeamID
	match.Date = input.Date
	match.Location = input.Location

	if err := s.matchRepo.Update(ctx, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchNotFound):
			return nil, ErrMatchNotFound
		case errors.Is(err, repositories.ErrMatchReferenceInvalid):
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("failed to update match %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) UpdateStatus(ctx context.Context, id int, input UpdateMatchStatusInput) (*models.Match, error) {
	newRank, ok := statusRank[input.Status]
	if !ok {
		return nil, ErrMatchInvalidStatus
	}

	match, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if newRank <= statusRank[match.Status] {
		return nil, fmt.Errorf("%w: %s -> %s", ErrMatchStatusTransition, match.Status, input.Status)
	}

	if input.Status == models.MatchStatusCompleted {
		if input.HomeScore == nil || input.AwayScore == nil {
			return nil, ErrMatchScoreRequired
		}
	} else if input.HomeScore != nil || input.AwayScore != nil {
		return nil, ErrMatchScoreNotAllowed
	}

	if err := s.matchRepo.UpdateScoreAndStatus(ctx, id, input.Status, input.HomeScore, input.AwayScore); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match %d status: %w", id, err)
	}

	match.Status = input.Status
	match.HomeScore = input.HomeScore
	match.AwayScore = input.AwayScore
	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	err := s.matchRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrMatchNotFound) {
		return ErrMatchNotFound
	}
	return err
}
