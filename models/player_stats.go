package models

import "time"

// PlayerStats is a derived record recomputed wholesale from the goal log
// of one tournament. MatchesPlayed counts the distinct matches the
// player scored in, not appearances: the system has no lineup or
// substitution data, so matches without a goal are invisible here, and
// MinutesPlayed is the fixed 90-minute estimate per such match.
type PlayerStats struct {
	ID             int       `json:"id"`
	PlayerID       int       `json:"player_id"`
	TournamentID   int       `json:"tournament_id"`
	MatchesPlayed  int       `json:"matches_played"`
	GoalsScored    int       `json:"goals_scored"`
	MinutesPlayed  int       `json:"minutes_played"`
	GoalsPerMatch  float64   `json:"goals_per_match"`
	MinutesPerGoal float64   `json:"minutes_per_goal"`
	UpdatedAt      time.Time `json:"updated_at"`
}
