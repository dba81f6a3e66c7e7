package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in-progress"
	MatchStatusCompleted  MatchStatus = "completed"
)

// Match is the source-of-truth record all derived statistics are folded
// from. HomeScore/AwayScore are set together when the match completes;
// they are meaningless for any other status.
type Match struct {
	ID           int         `json:"id"`
	TournamentID int         `json:"tournament_id"`
	PhaseID      *int        `json:"phase_id,omitempty"`
	GroupID      *int        `json:"group_id,omitempty"`
	HomeTeamID   int         `json:"home_team_id"`
	AwayTeamID   int         `json:"away_team_id"`
	Date         time.Time   `json:"date"`
	Location     *string     `json:"location,omitempty"`
	HomeScore    *int        `json:"home_score,omitempty"`
	AwayScore    *int        `json:"away_score,omitempty"`
	Status       MatchStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// IsCompleted reports whether the match may contribute to standings and
// team statistics: completed status with both scores recorded.
func (m *Match) IsCompleted() bool {
	return m.Status == MatchStatusCompleted && m.HomeScore != nil && m.AwayScore != nil
}
