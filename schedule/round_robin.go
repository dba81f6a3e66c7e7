// Package schedule generates fixture pairings for group play.
package schedule

import "fmt"

// Pairing is one generated fixture. The first listed team hosts.
type Pairing struct {
	HomeTeamID int
	AwayTeamID int
}

// RoundRobin produces the pairings of a round-robin among the given
// teams, in input order. With rounds=1 every team meets every other
// once; with rounds=2 a return leg with swapped roles is added.
func RoundRobin(teamIDs []int, rounds int) ([]Pairing, error) {
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("round robin: not enough teams (found %d, min 2 required)", len(teamIDs))
	}
	if rounds != 1 && rounds != 2 {
		return nil, fmt.Errorf("round robin: rounds must be 1 or 2, got %d", rounds)
	}

	pairings := make([]Pairing, 0, rounds*len(teamIDs)*(len(teamIDs)-1)/2)
	for i := 0; i < len(teamIDs); i++ {
		for j := i + 1; j < len(teamIDs); j++ {
			pairings = append(pairings, Pairing{HomeTeamID: teamIDs[i], AwayTeamID: teamIDs[j]})
			if rounds == 2 {
				pairings = append(pairings, Pairing{HomeTeamID: teamIDs[j], AwayTeamID: teamIDs[i]})
			}
		}
	}
	return pairings, nil
}
