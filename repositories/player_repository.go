package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/copaops/copa-system/models"
)

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPlayerTeamInvalid = errors.New("player references an unknown team")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	query := `
		INSERT INTO players (team_id, name, number, position, is_goalkeeper)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, p.TeamID, p.Name, p.Number, p.Position, p.IsGoalkeeper).Scan(&p.ID)
	if err != nil && pqErrorCode(err) == pqForeignKeyViolation {
		return ErrPlayerTeamInvalid
	}
	return err
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT id, team_id, name, number, position, is_goalkeeper FROM players WHERE id = $1`

	p := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.TeamID, &p.Name, &p.Number, &p.Position, &p.IsGoalkeeper,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresPlayerRepository) ListByTeam(ctx context.Context, teamID int) ([]*models.Player, error) {
	query := `
		SELECT id, team_id, name, number, position, is_goalkeeper
		FROM players
		WHERE team_id = $1
		ORDER BY number ASC NULLS LAST, name ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		p := &models.Player{}
		if err := rows.Scan(&p.ID, &p.TeamID, &p.Name, &p.Number, &p.Position, &p.IsGoalkeeper); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *postgresPlayerRepository) Update(ctx context.Context, p *models.Player) error {
	query := `
		UPDATE players
		SET team_id = $1, name = $2, number = $3, position = $4, is_goalkeeper = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query, p.TeamID, p.Name, p.Number, p.Position, p.IsGoalkeeper, p.ID)
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			return ErrPlayerTeamInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}
