package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
	"github.com/copaops/copa-system/storage"
)

var (
	ErrTournamentNameRequired     = errors.New("tournament name is required")
	ErrTournamentInvalidDateRange = errors.New("tournament end date must not be before start date")
)

type CreateTournamentInput struct {
	Name        string    `json:"name"`
	Edition     string    `json:"edition"`
	Year        int       `json:"year"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description *string   `json:"description,omitempty"`
}

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context, limit, offset int) ([]*models.Tournament, error)
	UpdateTournament(ctx context.Context, id int, input CreateTournamentInput) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id int) error
	UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Tournament, error)
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	uploader       storage.FileUploader
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository, uploader storage.FileUploader) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		uploader:       uploader,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	if err := validateTournamentInput(input); err != nil {
		return nil, err
	}

	tournament := &models.Tournament{
		Name:        input.Name,
		Edition:     input.Edition,
		Year:        input.Year,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	s.populateLogoURL(tournament)
	return tournament, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	s.populateLogoURL(tournament)
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	for _, t := range tournaments {
		s.populateLogoURL(t)
	}
	return tournaments, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id int, input CreateTournamentInput) (*models.Tournament, error) {
	if err := validateTournamentInput(input); err != nil {
		return nil, err
	}

	tournament, err := s.GetTournamentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tournament.Name = input.Name
	tournament.Edition = input.Edition
	tournament.Year = input.Year
	tournament.StartDate = input.StartDate
	tournament.EndDate = input.EndDate
	tournament.Description = input.Description

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentNotFound):
			return nil, ErrTournamentNotFound
		case errors.Is(err, repositories.ErrTournamentNameConflict):
			return nil, ErrTournamentNameConflict
		}
		return nil, fmt.Errorf("failed to update tournament %d: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int) error {
	err := s.tournamentRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrTournamentNotFound) {
		return ErrTournamentNotFound
	}
	return err
}

func (s *tournamentService) UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Tournament, error) {
	tournament, err := s.GetTournamentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("tournaments/%d/logo", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload tournament logo: %w", err)
	}

	if err := s.tournamentRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		return nil, err
	}
	tournament.LogoKey = &result.Key
	s.populateLogoURL(tournament)
	return tournament, nil
}

func (s *tournamentService) populateLogoURL(t *models.Tournament) {
	if t.LogoKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*t.LogoKey)
		t.LogoURL = &url
	}
}

func validateTournamentInput(input CreateTournamentInput) error {
	if input.Name == "" {
		return ErrTournamentNameRequired
	}
	if input.EndDate.Before(input.StartDate) {
		return ErrTournamentInvalidDateRange
	}
	return nil
}
