package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/copaops/copa-system/models"
)

var (
	ErrGroupNotFound         = errors.New("group not found")
	ErrGroupPhaseInvalid     = errors.New("group references an unknown phase")
	ErrGroupTeamInvalid      = errors.New("group membership references an unknown team")
	ErrGroupMembershipExists = errors.New("team is already in the group")
)

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id int) (*models.Group, error)
	ListByPhase(ctx context.Context, phaseID int) ([]*models.Group, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id int) error

	AddTeam(ctx context.Context, groupID, teamID int) error
	RemoveTeam(ctx context.Context, groupID, teamID int) error
	ListTeams(ctx context.Context, groupID int) ([]models.Team, error)
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

func (r *postgresGroupRepository) Create(ctx context.Context, g *models.Group) error {
	query := `INSERT INTO groups (phase_id, name) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, g.PhaseID, g.Name).Scan(&g.ID)
	if err != nil && pqErrorCode(err) == pqForeignKeyViolation {
		return ErrGroupPhaseInvalid
	}
	return err
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, id int) (*models.Group, error) {
	query := `SELECT id, phase_id, name FROM groups WHERE id = $1`

	g := &models.Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.PhaseID, &g.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *postgresGroupRepository) ListByPhase(ctx context.Context, phaseID int) ([]*models.Group, error) {
	query := `SELECT id, phase_id, name FROM groups WHERE phase_id = $1 ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, phaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*models.Group, 0)
	for rows.Next() {
		g := &models.Group{}
		if err := rows.Scan(&g.ID, &g.PhaseID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *postgresGroupRepository) Update(ctx context.Context, g *models.Group) error {
	result, err := r.db.ExecContext(ctx, `UPDATE groups SET name = $1 WHERE id = $2`, g.Name, g.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupNotFound)
}

func (r *postgresGroupRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupNotFound)
}

func (r *postgresGroupRepository) AddTeam(ctx context.Context, groupID, teamID int) error {
	query := `INSERT INTO team_group (team_id, group_id) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, teamID, groupID)
	if err != nil {
		switch pqErrorCode(err) {
		case pqUniqueViolation:
			return ErrGroupMembershipExists
		case pqForeignKeyViolation:
			return ErrGroupTeamInvalid
		}
		return err
	}
	return nil
}

func (r *postgresGroupRepository) RemoveTeam(ctx context.Context, groupID, teamID int) error {
	query := `DELETE FROM team_group WHERE team_id = $1 AND group_id = $2`

	result, err := r.db.ExecContext(ctx, query, teamID, groupID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupTeamInvalid)
}

// ListTeams returns the current membership of the group, in insertion
// order. Standings rely on this order for stable ranking of full ties.
func (r *postgresGroupRepository) ListTeams(ctx context.Context, groupID int) ([]models.Team, error) {
	query := `
		SELECT t.id, t.name, t.short_name, t.logo_key, t.city, t.colors
		FROM teams t
		JOIN team_group tg ON tg.team_id = t.id
		WHERE tg.group_id = $1
		ORDER BY tg.added_at ASC, t.id ASC`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.ShortName, &t.LogoKey, &t.City, &t.Colors); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
