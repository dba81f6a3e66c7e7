package models

// Group is one pool of a group phase. Teams are attached through the
// team_group membership table, many-to-many.
type Group struct {
	ID      int    `json:"id"`
	PhaseID int    `json:"phase_id"`
	Name    string `json:"name"`

	Teams []Team `json:"teams,omitempty"`
}
