package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/copaops/copa-system/models"
)

var (
	ErrMatchNotFound         = errors.New("match not found")
	ErrMatchReferenceInvalid = errors.New("match references an unknown tournament, phase, group or team")
)

// MatchRepository returns persisted match rows as they are. It never
// pre-filters by status or score presence; completion filtering belongs
// to the aggregation services so the rule lives in exactly one place.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error)
	ListByGroup(ctx context.Context, groupID int) ([]*models.Match, error)
	ListByTeamHome(ctx context.Context, teamID, tournamentID int) ([]*models.Match, error)
	ListByTeamAway(ctx context.Context, teamID, tournamentID int) ([]*models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	UpdateScoreAndStatus(ctx context.Context, id int, status models.MatchStatus, homeScore, awayScore *int) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `id, tournament_id, phase_id, group_id, home_team_id, away_team_id,
		date, location, home_score, away_score, status, created_at`

func (r *postgresMatchRepository) scanMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.Match, error) {
	m := &models.Match{}
	err := rowScanner.Scan(
		&m.ID, &m.TournamentID, &m.PhaseID, &m.GroupID, &m.HomeTeamID, &m.AwayTeamID,
		&m.Date, &m.Location, &m.HomeScore, &m.AwayScore, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *postgresMatchRepository) Create(ctx context.Context, m *models.Match) error {
	query := `
		INSERT INTO matches
			(tournament_id, phase_id, group_id, home_team_id, away_team_id, date, location, home_score, away_score, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		m.TournamentID, m.PhaseID, m.GroupID, m.HomeTeamID, m.AwayTeamID,
		m.Date, m.Location, m.HomeScore, m.AwayScore, m.Status,
	).Scan(&m.ID, &m.CreatedAt)

	if err != nil && pqErrorCode(err) == pqForeignKeyViolation {
		return ErrMatchReferenceInvalid
	}
	return err
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresMatchRepository) listMatches(ctx context.Context, query string, args ...interface{}) ([]*models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		m, errScan := r.scanMatch(rows)
		if errScan != nil {
			return nil, errScan
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1 ORDER BY date ASC, id ASC`
	return r.listMatches(ctx, query, tournamentID)
}

func (r *postgresMatchRepository) ListByGroup(ctx context.Context, groupID int) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE group_id = $1 ORDER BY date ASC, id ASC`
	return r.listMatches(ctx, query, groupID)
}

func (r *postgresMatchRepository) ListByTeamHome(ctx context.Context, teamID, tournamentID int) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE home_team_id = $1 AND tournament_id = $2 ORDER BY date ASC, id ASC`
	return r.listMatches(ctx, query, teamID, tournamentID)
}

func (r *postgresMatchRepository) ListByTeamAway(ctx context.Context, teamID, tournamentID int) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE away_team_id = $1 AND tournament_id = $2 ORDER BY date ASC, id ASC`
	return r.listMatches(ctx, query, teamID, tournamentID)
}

func (r *postgresMatchRepository) Update(ctx context.Context, m *models.Match) error {
	query := `
		UPDATE matches
		SET phase_id = $1, group_id = $2, home_team_id = $3, away_team_id = $4, date = $5, location = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		m.PhaseID, m.GroupID, m.HomeTeamID, m.AwayTeamID, m.Date, m.Location, m.ID,
	)
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			return ErrMatchReferenceInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateScoreAndStatus(ctx context.Context, id int, status models.MatchStatus, homeScore, awayScore *int) error {
	query := `UPDATE matches SET status = $1, home_score = $2, away_score = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, status, homeScore, awayScore, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}
