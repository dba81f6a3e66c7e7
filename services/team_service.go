package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
	"github.com/copaops/copa-system/storage"
)

var ErrTeamNameRequired = errors.New("team name is required")

type CreateTeamInput struct {
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
	City      *string `json:"city,omitempty"`
	Colors    *string `json:"colors,omitempty"`
}

type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeams(ctx context.Context, limit, offset int) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, id int, input CreateTeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
	UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
	uploader storage.FileUploader
}

func NewTeamService(teamRepo repositories.TeamRepository, uploader storage.FileUploader) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		uploader: uploader,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	if input.Name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{
		Name:      input.Name,
		ShortName: input.ShortName,
		City:      input.City,
		Colors:    input.Colors,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context, limit, offset int) ([]*models.Team, error) {
	teams, err := s.teamRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	for _, t := range teams {
		s.populateLogoURL(t)
	}
	return teams, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input CreateTeamInput) (*models.Team, error) {
	if input.Name == "" {
		return nil, ErrTeamNameRequired
	}

	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Name = input.Name
	team.ShortName = input.ShortName
	team.City = input.City
	team.Colors = input.Colors

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	err := s.teamRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrTeamNotFound) {
		return ErrTeamNotFound
	}
	return err
}

func (s *teamService) UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Team, error) {
	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("teams/%d/logo", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload team logo: %w", err)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		return nil, err
	}
	team.LogoKey = &result.Key
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) populateLogoURL(t *models.Team) {
	if t.LogoKey != nil && s.uploader != nil {
		url := s.uploader.GetPublicURL(*t.LogoKey)
		t.LogoURL = &url
	}
}
