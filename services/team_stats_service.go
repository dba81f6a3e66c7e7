package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
)

type TeamStatsService interface {
	// RecomputeFromMatches rebuilds the team's season record for the
	// tournament from its completed matches, resetting every counter
	// before the fold and overwriting the stored record.
	RecomputeFromMatches(ctx context.Context, teamID, tournamentID int) (*models.TeamStats, error)
	// RankTeams returns every stats row of the tournament ordered by the
	// standings comparator: points, goal difference, goals for, descending.
	RankTeams(ctx context.Context, tournamentID int) ([]*models.TeamStats, error)
	GetByTeamAndTournament(ctx context.Context, teamID, tournamentID int) (*models.TeamStats, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.TeamStats, error)
}

type teamStatsService struct {
	statsRepo repositories.TeamStatsRepository
	matchRepo repositories.MatchRepository
}

func NewTeamStatsService(
	statsRepo repositories.TeamStatsRepository,
	matchRepo repositories.MatchRepository,
) TeamStatsService {
	return &teamStatsService{
		statsRepo: statsRepo,
		matchRepo: matchRepo,
	}
}

func (s *teamStatsService) RecomputeFromMatches(ctx context.Context, teamID, tournamentID int) (*models.TeamStats, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, teamID, tournamentID)
	if err != nil {
		return nil, err
	}

	homeMatches, err := s.matchRepo.ListByTeamHome(ctx, teamID, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list home matches for team %d: %w", teamID, err)
	}
	awayMatches, err := s.matchRepo.ListByTeamAway(ctx, teamID, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list away matches for team %d: %w", teamID, err)
	}

	// Full reset before folding: the record is a pure function of the
	// match log, never an incremental adjustment of its previous value.
	stats.MatchesPlayed = 0
	stats.Wins = 0
	stats.Draws = 0
	stats.Losses = 0
	stats.GoalsFor = 0
	stats.GoalsAgainst = 0
	stats.CleanSheets = 0
	stats.Points = 0

	for _, match := range homeMatches {
		if !match.IsCompleted() {
			continue
		}
		s.foldMatch(stats, *match.HomeScore, *match.AwayScore)
	}
	for _, match := range awayMatches {
		if !match.IsCompleted() {
			continue
		}
		s.foldMatch(stats, *match.AwayScore, *match.HomeScore)
	}

	stats.GoalDiff = stats.GoalsFor - stats.GoalsAgainst
	if stats.MatchesPlayed > 0 {
		played := float64(stats.MatchesPlayed)
		stats.WinPercentage = round2(float64(stats.Wins) / played * 100)
		stats.GoalsPerMatch = round2(float64(stats.GoalsFor) / played)
		stats.PointsPerMatch = round2(float64(stats.Points) / played)
	} else {
		stats.WinPercentage = 0.0
		stats.GoalsPerMatch = 0.0
		stats.PointsPerMatch = 0.0
	}

	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to persist team stats for t:%d tr:%d: %w", teamID, tournamentID, err)
	}
	return stats, nil
}

// foldMatch applies one completed match with the team's goals first and
// the opponent's second; home/away symmetry is the caller's concern.
func (s *teamStatsService) foldMatch(stats *models.TeamStats, goalsFor, goalsAgainst int) {
	stats.MatchesPlayed++
	stats.GoalsFor += goalsFor
	stats.GoalsAgainst += goalsAgainst

	switch {
	case goalsFor > goalsAgainst:
		stats.Wins++
		stats.Points += 3
	case goalsFor == goalsAgainst:
		stats.Draws++
		stats.Points++
	default:
		stats.Losses++
	}

	if goalsAgainst == 0 {
		stats.CleanSheets++
	}
}

func (s *teamStatsService) RankTeams(ctx context.Context, tournamentID int) ([]*models.TeamStats, error) {
	stats, err := s.statsRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team stats of tournament %d: %w", tournamentID, err)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		return rankKey{a.Points, a.GoalDiff, a.GoalsFor}.beats(rankKey{b.Points, b.GoalDiff, b.GoalsFor})
	})
	return stats, nil
}

func (s *teamStatsService) GetByTeamAndTournament(ctx context.Context, teamID, tournamentID int) (*models.TeamStats, error) {
	stats, err := s.statsRepo.GetByTeamAndTournament(ctx, teamID, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamStatsNotFound) {
			return nil, ErrTeamStatsNotFound
		}
		return nil, err
	}
	return stats, nil
}

func (s *teamStatsService) ListByTeam(ctx context.Context, teamID int) ([]*models.TeamStats, error) {
	return s.statsRepo.ListByTeam(ctx, teamID)
}
