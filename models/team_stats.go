package models

import "time"

// TeamStats is a derived season record for one (team, tournament) pair,
// recomputed from completed matches on demand. The percentage and
// per-match rates are rounded to two decimals as part of the contract.
type TeamStats struct {
	ID             int       `json:"id"`
	TeamID         int       `json:"team_id"`
	TournamentID   int       `json:"tournament_id"`
	MatchesPlayed  int       `json:"matches_played"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	GoalsFor       int       `json:"goals_for"`
	GoalsAgainst   int       `json:"goals_against"`
	GoalDiff       int       `json:"goal_difference"`
	CleanSheets    int       `json:"clean_sheets"`
	Points         int       `json:"points"`
	WinPercentage  float64   `json:"win_percentage"`
	GoalsPerMatch  float64   `json:"goals_per_match"`
	PointsPerMatch float64   `json:"points_per_match"`
	UpdatedAt      time.Time `json:"updated_at"`
}
