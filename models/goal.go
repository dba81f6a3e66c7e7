package models

type GoalType string

const (
	GoalTypeRegular GoalType = "regular"
	GoalTypePenalty GoalType = "penalty"
	GoalTypeOwnGoal GoalType = "own_goal"
)

// Goal is one entry of the append-only scoring log. The player and team
// on the record are whoever the goal was attributed to when it was
// recorded; own goals are not re-credited to the opposing side, so they
// count toward the attributed player's tally in the statistics.
type Goal struct {
	ID       int      `json:"id"`
	MatchID  int      `json:"match_id"`
	PlayerID int      `json:"player_id"`
	TeamID   int      `json:"team_id"`
	Minute   int      `json:"minute"`
	Type     GoalType `json:"type"`
}
