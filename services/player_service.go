package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
)

var ErrPlayerNameRequired = errors.New("player name is required")

type CreatePlayerInput struct {
	TeamID       int     `json:"team_id"`
	Name         string  `json:"name"`
	Number       *int    `json:"number,omitempty"`
	Position     *string `json:"position,omitempty"`
	IsGoalkeeper bool    `json:"is_goalkeeper"`
}

type PlayerService interface {
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	ListPlayersByTeam(ctx context.Context, teamID int) ([]*models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input CreatePlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int) error
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

func (s *playerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	if input.Name == "" {
		return nil, ErrPlayerNameRequired
	}

	player := &models.Player{
		TeamID:       input.TeamID,
		Name:         input.Name,
		Number:       input.Number,
		Position:     input.Position,
		IsGoalkeeper: input.IsGoalkeeper,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerTeamInvalid) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (s *playerService) ListPlayersByTeam(ctx context.Context, teamID int) ([]*models.Player, error) {
	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players of team %d: %w", teamID, err)
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input CreatePlayerInput) (*models.Player, error) {
	if input.Name == "" {
		return nil, ErrPlayerNameRequired
	}

	player, err := s.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	player.TeamID = input.TeamID
	player.Name = input.Name
	player.Number = input.Number
	player.Position = input.Position
	player.IsGoalkeeper = input.IsGoalkeeper

	if err := s.playerRepo.Update(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return nil, ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerTeamInvalid):
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return player, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	err := s.playerRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrPlayerNotFound) {
		return ErrPlayerNotFound
	}
	return err
}
