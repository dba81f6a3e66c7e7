package models

// TeamStanding is one row of a group table. Standings are ephemeral:
// recomputed from the match log on every request, never persisted.
type TeamStanding struct {
	TeamID        int     `json:"team_id"`
	TeamName      string  `json:"team_name"`
	TeamShortName string  `json:"team_short_name"`
	TeamLogoURL   *string `json:"team_logo_url,omitempty"`
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	Draws         int     `json:"draws"`
	Losses        int     `json:"losses"`
	GoalsFor      int     `json:"goals_for"`
	GoalsAgainst  int     `json:"goals_against"`
	GoalDiff      int     `json:"goal_difference"`
	Points        int     `json:"points"`
}
