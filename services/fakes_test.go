package services

import (
	"context"

	"github.com/copaops/copa-system/models"
	"github.com/copaops/copa-system/repositories"
)

// In-memory repository fakes shared by the service tests.

func intPtr(v int) *int { return &v }

func completedMatch(id, tournamentID, groupID, homeTeamID, awayTeamID, homeScore, awayScore int) *models.Match {
	var gid *int
	if groupID > 0 {
		gid = intPtr(groupID)
	}
	return &models.Match{
		ID:           id,
		TournamentID: tournamentID,
		GroupID:      gid,
		HomeTeamID:   homeTeamID,
		AwayTeamID:   awayTeamID,
		HomeScore:    intPtr(homeScore),
		AwayScore:    intPtr(awayScore),
		Status:       models.MatchStatusCompleted,
	}
}

type fakeMatchRepo struct {
	matches []*models.Match
	nextID  int
}

func (r *fakeMatchRepo) Create(_ context.Context, m *models.Match) error {
	r.nextID++
	m.ID = r.nextID
	r.matches = append(r.matches, m)
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	for _, m := range r.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) ListByTournament(_ context.Context, tournamentID int) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) ListByGroup(_ context.Context, groupID int) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.GroupID != nil && *m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) ListByTeamHome(_ context.Context, teamID, tournamentID int) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.HomeTeamID == teamID && m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) ListByTeamAway(_ context.Context, teamID, tournamentID int) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.AwayTeamID == teamID && m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) Update(_ context.Context, m *models.Match) error {
	for i, existing := range r.matches {
		if existing.ID == m.ID {
			r.matches[i] = m
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) UpdateScoreAndStatus(_ context.Context, id int, status models.MatchStatus, homeScore, awayScore *int) error {
	for _, m := range r.matches {
		if m.ID == id {
			m.Status = status
			m.HomeScore = homeScore
			m.AwayScore = awayScore
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int) error {
	for i, m := range r.matches {
		if m.ID == id {
			r.matches = append(r.matches[:i], r.matches[i+1:]...)
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

type fakeGroupRepo struct {
	groups map[int]*models.Group
	teams  map[int][]models.Team
}

func (r *fakeGroupRepo) Create(_ context.Context, g *models.Group) error {
	if r.groups == nil {
		r.groups = map[int]*models.Group{}
	}
	g.ID = len(r.groups) + 1
	r.groups[g.ID] = g
	return nil
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id int) (*models.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, repositories.ErrGroupNotFound
	}
	return g, nil
}

func (r *fakeGroupRepo) ListByPhase(_ context.Context, phaseID int) ([]*models.Group, error) {
	var out []*models.Group
	for _, g := range r.groups {
		if g.PhaseID == phaseID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) Update(_ context.Context, g *models.Group) error {
	if _, ok := r.groups[g.ID]; !ok {
		return repositories.ErrGroupNotFound
	}
	r.groups[g.ID] = g
	return nil
}

func (r *fakeGroupRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.groups[id]; !ok {
		return repositories.ErrGroupNotFound
	}
	delete(r.groups, id)
	return nil
}

func (r *fakeGroupRepo) AddTeam(_ context.Context, groupID, teamID int) error {
	if r.teams == nil {
		r.teams = map[int][]models.Team{}
	}
	for _, t := range r.teams[groupID] {
		if t.ID == teamID {
			return repositories.ErrGroupMembershipExists
		}
	}
	r.teams[groupID] = append(r.teams[groupID], models.Team{ID: teamID})
	return nil
}

func (r *fakeGroupRepo) RemoveTeam(_ context.Context, groupID, teamID int) error {
	members := r.teams[groupID]
	for i, t := range members {
		if t.ID == teamID {
			r.teams[groupID] = append(members[:i], members[i+1:]...)
			return nil
		}
	}
	return repositories.ErrGroupTeamInvalid
}

func (r *fakeGroupRepo) ListTeams(_ context.Context, groupID int) ([]models.Team, error) {
	return r.teams[groupID], nil
}

type fakePhaseRepo struct {
	phases map[int]*models.Phase
}

func (r *fakePhaseRepo) Create(_ context.Context, p *models.Phase) error {
	if r.phases == nil {
		r.phases = map[int]*models.Phase{}
	}
	p.ID = len(r.phases) + 1
	r.phases[p.ID] = p
	return nil
}

func (r *fakePhaseRepo) GetByID(_ context.Context, id int) (*models.Phase, error) {
	p, ok := r.phases[id]
	if !ok {
		return nil, repositories.ErrPhaseNotFound
	}
	return p, nil
}

func (r *fakePhaseRepo) ListByTournament(_ context.Context, tournamentID int) ([]*models.Phase, error) {
	var out []*models.Phase
	for _, p := range r.phases {
		if p.TournamentID == tournamentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePhaseRepo) Update(_ context.Context, p *models.Phase) error {
	if _, ok := r.phases[p.ID]; !ok {
		return repositories.ErrPhaseNotFound
	}
	r.phases[p.ID] = p
	return nil
}

func (r *fakePhaseRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.phases[id]; !ok {
		return repositories.ErrPhaseNotFound
	}
	delete(r.phases, id)
	return nil
}

type playerStatsKey struct{ playerID, tournamentID int }

type fakePlayerStatsRepo struct {
	records map[playerStatsKey]*models.PlayerStats
	nextID  int
}

func (r *fakePlayerStatsRepo) Create(_ context.Context, stats *models.PlayerStats) error {
	if r.records == nil {
		r.records = map[playerStatsKey]*models.PlayerStats{}
	}
	r.nextID++
	stats.ID = r.nextID
	r.records[playerStatsKey{stats.PlayerID, stats.TournamentID}] = stats
	return nil
}

func (r *fakePlayerStatsRepo) GetByPlayerAndTournament(_ context.Context, playerID, tournamentID int) (*models.PlayerStats, error) {
	stats, ok := r.records[playerStatsKey{playerID, tournamentID}]
	if !ok {
		return nil, repositories.ErrPlayerStatsNotFound
	}
	return stats, nil
}

func (r *fakePlayerStatsRepo) GetOrCreate(ctx context.Context, playerID, tournamentID int) (*models.PlayerStats, error) {
	if stats, ok := r.records[playerStatsKey{playerID, tournamentID}]; ok {
		return stats, nil
	}
	stats := &models.PlayerStats{PlayerID: playerID, TournamentID: tournamentID}
	if err := r.Create(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *fakePlayerStatsRepo) Update(_ context.Context, stats *models.PlayerStats) error {
	key := playerStatsKey{stats.PlayerID, stats.TournamentID}
	if _, ok := r.records[key]; !ok {
		return repositories.ErrPlayerStatsNotFound
	}
	r.records[key] = stats
	return nil
}

func (r *fakePlayerStatsRepo) ListByTournament(_ context.Context, tournamentID int) ([]*models.PlayerStats, error) {
	var out []*models.PlayerStats
	for key, stats := range r.records {
		if key.tournamentID == tournamentID {
			out = append(out, stats)
		}
	}
	return out, nil
}

func (r *fakePlayerStatsRepo) ListByPlayer(_ context.Context, playerID int) ([]*models.PlayerStats, error) {
	var out []*models.PlayerStats
	for key, stats := range r.records {
		if key.playerID == playerID {
			out = append(out, stats)
		}
	}
	return out, nil
}

type teamStatsKey struct{ teamID, tournamentID int }

type fakeTeamStatsRepo struct {
	records map[teamStatsKey]*models.TeamStats
	nextID  int
}

func (r *fakeTeamStatsRepo) Create(_ context.Context, stats *models.TeamStats) error {
	if r.records == nil {
		r.records = map[teamStatsKey]*models.TeamStats{}
	}
	r.nextID++
	stats.ID = r.nextID
	r.records[teamStatsKey{stats.TeamID, stats.TournamentID}] = stats
	return nil
}

func (r *fakeTeamStatsRepo) GetByTeamAndTournament(_ context.Context, teamID, tournamentID int) (*models.TeamStats, error) {
	stats, ok := r.records[teamStatsKey{teamID, tournamentID}]
	if !ok {
		return nil, repositories.ErrTeamStatsNotFound
	}
	return stats, nil
}

func (r *fakeTeamStatsRepo) GetOrCreate(ctx context.Context, teamID, tournamentID int) (*models.TeamStats, error) {
	if stats, ok := r.records[teamStatsKey{teamID, tournamentID}]; ok {
		return stats, nil
	}
	stats := &models.TeamStats{TeamID: teamID, TournamentID: tournamentID}
	if err := r.Create(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *fakeTeamStatsRepo) Update(_ context.Context, stats *models.TeamStats) error {
	key := teamStatsKey{stats.TeamID, stats.TournamentID}
	if _, ok := r.records[key]; !ok {
		return repositories.ErrTeamStatsNotFound
	}
	r.records[key] = stats
	return nil
}

func (r *fakeTeamStatsRepo) ListByTournament(_ context.Context, tournamentID int) ([]*models.TeamStats, error) {
	var out []*models.TeamStats
	for key, stats := range r.records {
		if key.tournamentID == tournamentID {
			out = append(out, stats)
		}
	}
	return out, nil
}

func (r *fakeTeamStatsRepo) ListByTeam(_ context.Context, teamID int) ([]*models.TeamStats, error) {
	var out []*models.TeamStats
	for key, stats := range r.records {
		if key.teamID == teamID {
			out = append(out, stats)
		}
	}
	return out, nil
}

type fakeGoalRepo struct {
	goals  []*models.Goal
	nextID int
}

func (r *fakeGoalRepo) Create(_ context.Context, g *models.Goal) error {
	r.nextID++
	g.ID = r.nextID
	r.goals = append(r.goals, g)
	return nil
}

func (r *fakeGoalRepo) GetByID(_ context.Context, id int) (*models.Goal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, repositories.ErrGoalNotFound
}

func (r *fakeGoalRepo) ListByMatch(_ context.Context, matchID int) ([]*models.Goal, error) {
	var out []*models.Goal
	for _, g := range r.goals {
		if g.MatchID == matchID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) ListByPlayerInMatches(_ context.Context, playerID int, matchIDs []int) ([]*models.Goal, error) {
	inSet := make(map[int]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		inSet[id] = struct{}{}
	}
	var out []*models.Goal
	for _, g := range r.goals {
		if g.PlayerID != playerID {
			continue
		}
		if _, ok := inSet[g.MatchID]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) ListByMatches(_ context.Context, matchIDs []int) ([]*models.Goal, error) {
	inSet := make(map[int]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		inSet[id] = struct{}{}
	}
	var out []*models.Goal
	for _, g := range r.goals {
		if _, ok := inSet[g.MatchID]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id int) error {
	for i, g := range r.goals {
		if g.ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return nil
		}
	}
	return repositories.ErrGoalNotFound
}
