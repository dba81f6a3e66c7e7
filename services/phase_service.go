package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
)

var (
	ErrPhaseNameRequired = errors.New("phase name is required")
	ErrPhaseTypeInvalid  = errors.New("phase type must be group or elimination")
)

type CreatePhaseInput struct {
	TournamentID int              `json:"tournament_id"`
	Name         string           `json:"name"`
	Order        int              `json:"order"`
	Type         models.PhaseType `json:"type"`
}

type PhaseService interface {
	CreatePhase(ctx context.Context, input CreatePhaseInput) (*models.Phase, error)
	GetPhaseByID(ctx context.Context, id int) (*models.Phase, error)
	ListPhasesByTournament(ctx context.Context, tournamentID int) ([]*models.Phase, error)
	UpdatePhase(ctx context.Context, id int, input CreatePhaseInput) (*models.Phase, error)
	DeletePhase(ctx context.Context, id int) error
}

type phaseService struct {
	phaseRepo repositories.PhaseRepository
}

func NewPhaseService(phaseRepo repositories.PhaseRepository) PhaseService {
	return &phaseService{phaseRepo: phaseRepo}
}

func validatePhaseInput(input CreatePhaseInput) error {
	if input.Name == "" {
		return ErrPhaseNameRequired
	}
	if input.Type != models.PhaseTypeGroup && input.Type != models.PhaseTypeElimination {
		return ErrPhaseTypeInvalid
	}
	return nil
}

func (s *phaseService) CreatePhase(ctx context.Context, input CreatePhaseInput) (*models.Phase, error) {
	if err := validatePhaseInput(input); err != nil {
		return nil, err
	}

	phase := &models.Phase{
		TournamentID: input.TournamentID,
		Name:         input.Name,
		Order:        input.Order,
		Type:         input.Type,
	}
	if err := s.phaseRepo.Create(ctx, phase); err != nil {
		if errors.Is(err, repositories.ErrPhaseTournamentInvalid) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to create phase: %w", err)
	}
	return phase, nil
}

func (s *phaseService) GetPhaseByID(ctx context.Context, id int) (*models.Phase, error) {
	phase, err := s.phaseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPhaseNotFound) {
			return nil, ErrPhaseNotFound
		}
		return nil, err
	}
	return phase, nil
}

func (s *phaseService) ListPhasesByTournament(ctx context.Context, tournamentID int) ([]*models.Phase, error) {
	phases, err := s.phaseRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases of tournament %d: %w", tournamentID, err)
	}
	return phases, nil
}

func (s *phaseService) UpdatePhase(ctx context.Context, id int, input CreatePhaseInput) (*models.Phase, error) {
	if err := validatePhaseInput(input); err != nil {
		return nil, err
	}

	phase, err := s.GetPhaseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	phase.Name = input.Name
	phase.Order = input.Order
	phase.Type = input.Type

	if err := s.phaseRepo.Update(ctx, phase); err != nil {
		if errors.Is(err, repositories.ErrPhaseNotFound) {
			return nil, ErrPhaseNotFound
		}
		return nil, fmt.Errorf("failed to update phase %d: %w", id, err)
	}
	return phase, nil
}

func (s *phaseService) DeletePhase(ctx context.Context, id int) error {
	err := s.phaseRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrPhaseNotFound) {
		return ErrPhaseNotFound
	}
	return err
}
