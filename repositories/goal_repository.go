package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/copaops/copa-system/models"
	"github.com/lib/pq"
)

var (
	ErrGoalNotFound         = errors.New("goal not found")
	ErrGoalReferenceInvalid = errors.New("goal references an unknown match, player or team")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) error
	GetByID(ctx context.Context, id int) (*models.Goal, error)
	ListByMatch(ctx context.Context, matchID int) ([]*models.Goal, error)
	// ListByPlayerInMatches returns the player's goals restricted to the
	// given match set. An empty set yields an empty slice.
	ListByPlayerInMatches(ctx context.Context, playerID int, matchIDs []int) ([]*models.Goal, error)
	// ListByMatches returns every goal of the given match set.
	ListByMatches(ctx context.Context, matchIDs []int) ([]*models.Goal, error)
	Delete(ctx context.Context, id int) error
}

type postgresGoalRepository struct {
	db *sql.DB
}

func NewPostgresGoalRepository(db *sql.DB) GoalRepository {
	return &postgresGoalRepository{db: db}
}

func (r *postgresGoalRepository) Create(ctx context.Context, g *models.Goal) error {
	query := `
		INSERT INTO goals (match_id, player_id, team_id, minute, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, g.MatchID, g.PlayerID, g.TeamID, g.Minute, g.Type).Scan(&g.ID)
	if err != nil && pqErrorCode(err) == pqForeignKeyViolation {
		return ErrGoalReferenceInvalid
	}
	return err
}

func (r *postgresGoalRepository) GetByID(ctx context.Context, id int) (*models.Goal, error) {
	query := `SELECT id, match_id, player_id, team_id, minute, type FROM goals WHERE id = $1`

	g := &models.Goal{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.MatchID, &g.PlayerID, &g.TeamID, &g.Minute, &g.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *postgresGoalRepository) listGoals(ctx context.Context, query string, args ...interface{}) ([]*models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]*models.Goal, 0)
	for rows.Next() {
		g := &models.Goal{}
		if err := rows.Scan(&g.ID, &g.MatchID, &g.PlayerID, &g.TeamID, &g.Minute, &g.Type); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *postgresGoalRepository) ListByMatch(ctx context.Context, matchID int) ([]*models.Goal, error) {
	query := `
		SELECT id, match_id, player_id, team_id, minute, type
		FROM goals
		WHERE match_id = $1
		ORDER BY minute ASC, id ASC`
	return r.listGoals(ctx, query, matchID)
}

func (r *postgresGoalRepository) ListByPlayerInMatches(ctx context.Context, playerID int, matchIDs []int) ([]*models.Goal, error) {
	if len(matchIDs) == 0 {
		return []*models.Goal{}, nil
	}
	query := `
		SELECT id, match_id, player_id, team_id, minute, type
		FROM goals
		WHERE player_id = $1 AND match_id = ANY($2)
		ORDER BY match_id ASC, minute ASC, id ASC`
	return r.listGoals(ctx, query, playerID, pq.Array(matchIDs))
}

func (r *postgresGoalRepository) ListByMatches(ctx context.Context, matchIDs []int) ([]*models.Goal, error) {
	if len(matchIDs) == 0 {
		return []*models.Goal{}, nil
	}
	query := `
		SELECT id, match_id, player_id, team_id, minute, type
		FROM goals
		WHERE match_id = ANY($1)
		ORDER BY match_id ASC, minute ASC, id ASC`
	return r.listGoals(ctx, query, pq.Array(matchIDs))
}

func (r *postgresGoalRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGoalNotFound)
}
