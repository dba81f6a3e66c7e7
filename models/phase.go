package models

type PhaseType string

const (
	PhaseTypeGroup       PhaseType = "group"
	PhaseTypeElimination PhaseType = "elimination"
)

type Phase struct {
	ID           int       `json:"id"`
	TournamentID int       `json:"tournament_id"`
	Name         string    `json:"name"`
	Order        int       `json:"order"`
	Type         PhaseType `json:"type"`
}
