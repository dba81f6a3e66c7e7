package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/copaops/copa-system/models"
)

var (
	ErrPhaseNotFound          = errors.New("phase not found")
	ErrPhaseTournamentInvalid = errors.New("phase references an unknown tournament")
)

type PhaseRepository interface {
	Create(ctx context.Context, phase *models.Phase) error
	GetByID(ctx context.Context, id int) (*models.Phase, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Phase, error)
	Update(ctx context.Context, phase *models.Phase) error
	Delete(ctx context.Context, id int) error
}

type postgresPhaseRepository struct {
	db *sql.DB
}

func NewPostgresPhaseRepository(db *sql.DB) PhaseRepository {
	return &postgresPhaseRepository{db: db}
}

func (r *postgresPhaseRepository) Create(ctx context.Context, p *models.Phase) error {
	query := `
		INSERT INTO phases (tournament_id, name, "order", type)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, p.TournamentID, p.Name, p.Order, p.Type).Scan(&p.ID)
	if err != nil && pqErrorCode(err) == pqForeignKeyViolation {
		return ErrPhaseTournamentInvalid
	}
	return err
}

func (r *postgresPhaseRepository) GetByID(ctx context.Context, id int) (*models.Phase, error) {
	query := `SELECT id, tournament_id, name, "order", type FROM phases WHERE id = $1`

	p := &models.Phase{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.TournamentID, &p.Name, &p.Order, &p.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhaseNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresPhaseRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Phase, error) {
	query := `
		SELECT id, tournament_id, name, "order", type
		FROM phases
		WHERE tournament_id = $1
		ORDER BY "order" ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	phases := make([]*models.Phase, 0)
	for rows.Next() {
		p := &models.Phase{}
		if err := rows.Scan(&p.ID, &p.TournamentID, &p.Name, &p.Order, &p.Type); err != nil {
			return nil, err
		}
		phases = append(phases, p)
	}
	return phases, rows.Err()
}

func (r *postgresPhaseRepository) Update(ctx context.Context, p *models.Phase) error {
	query := `UPDATE phases SET name = $1, "order" = $2, type = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, p.Name, p.Order, p.Type, p.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPhaseNotFound)
}

func (r *postgresPhaseRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPhaseNotFound)
}
