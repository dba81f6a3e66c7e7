package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
	"golang.org/x/sync/errgroup"
)

// estimatedMinutesPerMatch is the fixed appearance estimate: the system
// records no lineups or substitutions, so a scoring match counts as a
// full 90 minutes.
const estimatedMinutesPerMatch = 90

// maxConcurrentRecomputes bounds the errgroup fan-out of a
// tournament-wide stats refresh.
const maxConcurrentRecomputes = 8

type PlayerStatsService interface {
	// RecomputeFromGoals rebuilds the player's tournament statistics from
	// the goal log, overwriting the stored record wholesale. The record is
	// created zeroed on first request for the (player, tournament) pair.
	RecomputeFromGoals(ctx context.Context, playerID, tournamentID int) (*models.PlayerStats, error)
	// RecomputeTournament refreshes stats for every player who scored in
	// the tournament.
	RecomputeTournament(ctx context.Context, tournamentID int) ([]*models.PlayerStats, error)
	TopScorers(ctx context.Context, tournamentID, limit int) ([]*models.PlayerStats, error)
	GetByPlayerAndTournament(ctx context.Context, playerID, tournamentID int) (*models.PlayerStats, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.PlayerStats, error)
	ListByPlayer(ctx context.Context, playerID int) ([]*models.PlayerStats, error)
}

type playerStatsService struct {
	statsRepo repositories.PlayerStatsRepository
	matchRepo repositories.MatchRepository
	goalRepo  repositories.GoalRepository
}

func NewPlayerStatsService(
	statsRepo repositories.PlayerStatsRepository,
	matchRepo repositories.MatchRepository,
	goalRepo repositories.GoalRepository,
) PlayerStatsService {
	return &playerStatsService{
		statsRepo: statsRepo,
		matchRepo: matchRepo,
		goalRepo:  goalRepo,
	}
}

func (s *playerStatsService) RecomputeFromGoals(ctx context.Context, playerID, tournamentID int) (*models.PlayerStats, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, playerID, tournamentID)
	if err != nil {
		return nil, err
	}

	matchIDs, err := s.tournamentMatchIDs(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	// Restricting to the tournament's own matches drops any goal rows
	// that reference the player but belong elsewhere.
	goals, err := s.goalRepo.ListByPlayerInMatches(ctx, playerID, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for player %d: %w", playerID, err)
	}

	matchesWithGoal := make(map[int]struct{}, len(goals))
	for _, goal := range goals {
		matchesWithGoal[goal.MatchID] = struct{}{}
	}

	stats.GoalsScored = len(goals)
	stats.MatchesPlayed = len(matchesWithGoal)
	stats.MinutesPlayed = stats.MatchesPlayed * estimatedMinutesPerMatch

	// Guarded divisions: zero denominators resolve to 0.0, never NaN.
	if stats.MatchesPlayed > 0 {
		stats.GoalsPerMatch = float64(stats.GoalsScored) / float64(stats.MatchesPlayed)
	} else {
		stats.GoalsPerMatch = 0.0
	}
	if stats.GoalsScored > 0 {
		stats.MinutesPerGoal = float64(stats.MinutesPlayed) / float64(stats.GoalsScored)
	} else {
		stats.MinutesPerGoal = 0.0
	}

	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to persist player stats for p:%d t:%d: %w", playerID, tournamentID, err)
	}
	return stats, nil
}

func (s *playerStatsService) RecomputeTournament(ctx context.Context, tournamentID int) ([]*models.PlayerStats, error) {
	playerIDs, err := s.scorerIDs(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	results := make([]*models.PlayerStats, len(playerIDs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRecomputes)

	for i, playerID := range playerIDs {
		i, playerID := i, playerID
		g.Go(func() error {
			stats, err := s.RecomputeFromGoals(gCtx, playerID, tournamentID)
			if err != nil {
				return err
			}
			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *playerStatsService) TopScorers(ctx context.Context, tournamentID, limit int) ([]*models.PlayerStats, error) {
	stats, err := s.RecomputeTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].GoalsScored > stats[j].GoalsScored
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

func (s *playerStatsService) GetByPlayerAndTournament(ctx context.Context, playerID, tournamentID int) (*models.PlayerStats, error) {
	stats, err := s.statsRepo.GetByPlayerAndTournament(ctx, playerID, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerStatsNotFound) {
			return nil, ErrPlayerStatsNotFound
		}
		return nil, err
	}
	return stats, nil
}

func (s *playerStatsService) ListByTournament(ctx context.Context, tournamentID int) ([]*models.PlayerStats, error) {
	return s.statsRepo.ListByTournament(ctx, tournamentID)
}

func (s *playerStatsService) ListByPlayer(ctx context.Context, playerID int) ([]*models.PlayerStats, error) {
	return s.statsRepo.ListByPlayer(ctx, playerID)
}

func (s *playerStatsService) tournamentMatchIDs(ctx context.Context, tournamentID int) ([]int, error) {
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of tournament %d: %w", tournamentID, err)
	}
	ids := make([]int, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// scorerIDs returns the distinct players with at least one goal in the
// tournament, in ascending id order for deterministic output.
func (s *playerStatsService) scorerIDs(ctx context.Context, tournamentID int) ([]int, error) {
	matchIDs, err := s.tournamentMatchIDs(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	goals, err := s.goalRepo.ListByMatches(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals of tournament %d: %w", tournamentID, err)
	}

	seen := make(map[int]struct{}, len(goals))
	ids := make([]int, 0, len(goals))
	for _, goal := range goals {
		if _, ok := seen[goal.PlayerID]; ok {
			continue
		}
		seen[goal.PlayerID] = struct{}{}
		ids = append(ids, goal.PlayerID)
	}
	sort.Ints(ids)
	return ids, nil
}
