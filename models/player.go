package models

type Player struct {
	ID           int     `json:"id"`
	TeamID       int     `json:"team_id"`
	Name         string  `json:"name"`
	Number       *int    `json:"number,omitempty"`
	Position     *string `json:"position,omitempty"`
	IsGoalkeeper bool    `json:"is_goalkeeper"`
}
