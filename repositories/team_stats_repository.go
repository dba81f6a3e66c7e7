package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/copaops/copa-system/models"
)

var ErrTeamStatsNotFound = errors.New("team stats not found")

type TeamStatsRepository interface {
	Create(ctx context.Context, stats *models.TeamStats) error
	GetByTeamAndTournament(ctx context.Context, teamID, tournamentID int) (*models.TeamStats, error)
	GetOrCreate(ctx context.Context, teamID, tournamentID int) (*models.TeamStats, error)
	Update(ctx context.Context, stats *models.TeamStats) error
	// ListByTournament returns stats rows in team-id order; ranking is
	// applied by the service comparator, not here.
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.TeamStats, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.TeamStats, error)
}

type postgresTeamStatsRepository struct {
	db *sql.DB
}

func NewPostgresTeamStatsRepository(db *sql.DB) TeamStatsRepository {
	return &postgresTeamStatsRepository{db: db}
}

const teamStatsColumns = `id, team_id, tournament_id, matches_played, wins, draws, losses,
		goals_for, goals_against, goal_difference, clean_sheets, points,
		win_percentage, goals_per_match, points_per_match, updated_at`

func (r *postgresTeamStatsRepository) scanStats(rowScanner interface{ Scan(...interface{}) error }) (*models.TeamStats, error) {
	s := &models.TeamStats{}
	err := rowScanner.Scan(
		&s.ID, &s.TeamID, &s.TournamentID, &s.MatchesPlayed, &s.Wins, &s.Draws, &s.Losses,
		&s.GoalsFor, &s.GoalsAgainst, &s.GoalDiff, &s.CleanSheets, &s.Points,
		&s.WinPercentage, &s.GoalsPerMatch, &s.PointsPerMatch, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamStatsNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresTeamStatsRepository) Create(ctx context.Context, s *models.TeamStats) error {
	query := `
		INSERT INTO team_stats
			(team_id, tournament_id, matches_played, wins, draws, losses,
			 goals_for, goals_against, goal_difference, clean_sheets, points,
			 win_percentage, goals_per_match, points_per_match, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}
	return r.db.QueryRowContext(ctx, query,
		s.TeamID, s.TournamentID, s.MatchesPlayed, s.Wins, s.Draws, s.Losses,
		s.GoalsFor, s.GoalsAgainst, s.GoalDiff, s.CleanSheets, s.Points,
		s.WinPercentage, s.GoalsPerMatch, s.PointsPerMatch, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *postgresTeamStatsRepository) GetByTeamAndTournament(ctx context.Context, teamID, tournamentID int) (*models.TeamStats, error) {
	query := `SELECT ` + teamStatsColumns + ` FROM team_stats WHERE team_id = $1 AND tournament_id = $2`
	return r.scanStats(r.db.QueryRowContext(ctx, query, teamID, tournamentID))
}

func (r *postgresTeamStatsRepository) GetOrCreate(ctx context.Context, teamID, tournamentID int) (*models.TeamStats, error) {
	stats, err := r.GetByTeamAndTournament(ctx, teamID, tournamentID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, ErrTeamStatsNotFound) {
		return nil, fmt.Errorf("failed to get team stats for t:%d tr:%d: %w", teamID, tournamentID, err)
	}

	stats = &models.TeamStats{TeamID: teamID, TournamentID: tournamentID}
	if createErr := r.Create(ctx, stats); createErr != nil {
		return nil, fmt.Errorf("failed to create team stats for t:%d tr:%d: %w", teamID, tournamentID, createErr)
	}
	return stats, nil
}

func (r *postgresTeamStatsRepository) Update(ctx context.Context, s *models.TeamStats) error {
	query := `
		UPDATE team_stats
		SET matches_played = $1, wins = $2, draws = $3, losses = $4,
		    goals_for = $5, goals_against = $6, goal_difference = $7,
		    clean_sheets = $8, points = $9,
		    win_percentage = $10, goals_per_match = $11, points_per_match = $12,
		    updated_at = $13
		WHERE id = $14`

	s.UpdatedAt = time.Now()
	result, err := r.db.ExecContext(ctx, query,
		s.MatchesPlayed, s.Wins, s.Draws, s.Losses,
		s.GoalsFor, s.GoalsAgainst, s.GoalDiff,
		s.CleanSheets, s.Points,
		s.WinPercentage, s.GoalsPerMatch, s.PointsPerMatch,
		s.UpdatedAt, s.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamStatsNotFound)
}

func (r *postgresTeamStatsRepository) listStats(ctx context.Context, query string, args ...interface{}) ([]*models.TeamStats, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*models.TeamStats, 0)
	for rows.Next() {
		s, errScan := r.scanStats(rows)
		if errScan != nil {
			return nil, errScan
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *postgresTeamStatsRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.TeamStats, error) {
	query := `SELECT ` + teamStatsColumns + ` FROM team_stats WHERE tournament_id = $1 ORDER BY team_id ASC`
	return r.listStats(ctx, query, tournamentID)
}

func (r *postgresTeamStatsRepository) ListByTeam(ctx context.Context, teamID int) ([]*models.TeamStats, error) {
	query := `SELECT ` + teamStatsColumns + ` FROM team_stats WHERE team_id = $1 ORDER BY tournament_id ASC`
	return r.listStats(ctx, query, teamID)
}
