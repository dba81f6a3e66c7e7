package services

import "math"

// rankKey is the composite tie-break key shared by group standings and
// tournament rankings: points, then goal difference, then goals for,
// each descending. Entries equal on all three keys keep their input
// order (the callers sort with sort.SliceStable).
type rankKey struct {
	points   int
	goalDiff int
	goalsFor int
}

func (k rankKey) beats(other rankKey) bool {
	if k.points != other.points {
		return k.points > other.points
	}
	if k.goalDiff != other.goalDiff {
		return k.goalDiff > other.goalDiff
	}
	return k.goalsFor > other.goalsFor
}

// round2 rounds to two decimal places. The displayed percentages and
// per-match rates are contractually two-decimal values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
