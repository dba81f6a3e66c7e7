package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/copaops/copa-system/models"
)

var ErrPlayerStatsNotFound = errors.New("player stats not found")

type PlayerStatsRepository interface {
	Create(ctx context.Context, stats *models.PlayerStats) error
	GetByPlayerAndTournament(ctx context.Context, playerID, tournamentID int) (*models.PlayerStats, error)
	// GetOrCreate returns the stats row for the pair, lazily inserting a
	// zeroed one on first request.
	GetOrCreate(ctx context.Context, playerID, tournamentID int) (*models.PlayerStats, error)
	Update(ctx context.Context, stats *models.PlayerStats) error
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.PlayerStats, error)
	ListByPlayer(ctx context.Context, playerID int) ([]*models.PlayerStats, error)
}

type postgresPlayerStatsRepository struct {
	db *sql.DB
}

func NewPostgresPlayerStatsRepository(db *sql.DB) PlayerStatsRepository {
	return &postgresPlayerStatsRepository{db: db}
}

const playerStatsColumns = `id, player_id, tournament_id, matches_played, goals_scored,
		minutes_played, goals_per_match, minutes_per_goal, updated_at`

func (r *postgresPlayerStatsRepository) scanStats(rowScanner interface{ Scan(...interface{}) error }) (*models.PlayerStats, error) {
	s := &models.PlayerStats{}
	err := rowScanner.Scan(
		&s.ID, &s.PlayerID, &s.TournamentID, &s.MatchesPlayed, &s.GoalsScored,
		&s.MinutesPlayed, &s.GoalsPerMatch, &s.MinutesPerGoal, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerStatsNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresPlayerStatsRepository) Create(ctx context.Context, s *models.PlayerStats) error {
	query := `
		INSERT INTO player_stats
			(player_id, tournament_id, matches_played, goals_scored, minutes_played, goals_per_match, minutes_per_goal, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}
	return r.db.QueryRowContext(ctx, query,
		s.PlayerID, s.TournamentID, s.MatchesPlayed, s.GoalsScored,
		s.MinutesPlayed, s.GoalsPerMatch, s.MinutesPerGoal, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *postgresPlayerStatsRepository) GetByPlayerAndTournament(ctx context.Context, playerID, tournamentID int) (*models.PlayerStats, error) {
	query := `SELECT ` + playerStatsColumns + ` FROM player_stats WHERE player_id = $1 AND tournament_id = $2`
	return r.scanStats(r.db.QueryRowContext(ctx, query, playerID, tournamentID))
}

func (r *postgresPlayerStatsRepository) GetOrCreate(ctx context.Context, playerID, tournamentID int) (*models.PlayerStats, error) {
	stats, err := r.GetByPlayerAndTournament(ctx, playerID, tournamentID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, ErrPlayerStatsNotFound) {
		return nil, fmt.Errorf("failed to get player stats for p:%d t:%d: %w", playerID, tournamentID, err)
	}

	stats = &models.PlayerStats{PlayerID: playerID, TournamentID: tournamentID}
	if createErr := r.Create(ctx, stats); createErr != nil {
		return nil, fmt.Errorf("failed to create player stats for p:%d t:%d: %w", playerID, tournamentID, createErr)
	}
	return stats, nil
}

func (r *postgresPlayerStatsRepository) Update(ctx context.Context, s *models.PlayerStats) error {
	query := `
		UPDATE player_stats
		SET matches_played = $1, goals_scored = $2, minutes_played = $3,
		    goals_per_match = $4, minutes_per_goal = $5, updated_at = $6
		WHERE id = $7`

	s.UpdatedAt = time.Now()
	result, err := r.db.ExecContext(ctx, query,
		s.MatchesPlayed, s.GoalsScored, s.MinutesPlayed,
		s.GoalsPerMatch, s.MinutesPerGoal, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerStatsNotFound)
}

func (r *postgresPlayerStatsRepository) listStats(ctx context.Context, query string, args ...interface{}) ([]*models.PlayerStats, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*models.PlayerStats, 0)
	for rows.Next() {
		s, errScan := r.scanStats(rows)
		if errScan != nil {
			return nil, errScan
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *postgresPlayerStatsRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.PlayerStats, error) {
	query := `SELECT ` + playerStatsColumns + ` FROM player_stats WHERE tournament_id = $1 ORDER BY player_id ASC`
	return r.listStats(ctx, query, tournamentID)
}

func (r *postgresPlayerStatsRepository) ListByPlayer(ctx context.Context, playerID int) ([]*models.PlayerStats, error) {
	query := `SELECT ` + playerStatsColumns + ` FROM player_stats WHERE player_id = $1 ORDER BY tournament_id ASC`
	return r.listStats(ctx, query, playerID)
}
