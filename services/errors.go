package services

import "errors"

// Sentinel errors shared across services and the HTTP error mapping.
var (
	ErrValidationFailed = errors.New("validation failed")

	// Not-found per entity
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrPhaseNotFound       = errors.New("phase not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrPlayerStatsNotFound = errors.New("player stats not found")
	ErrTeamStatsNotFound   = errors.New("team stats not found")

	// Conflicts
	ErrTournamentNameConflict = errors.New("tournament name and edition already exist")
	ErrTeamNameConflict       = errors.New("team name is already in use")
	ErrGroupMembershipExists  = errors.New("team is already in the group")
	ErrTeamNotInGroup         = errors.New("team is not in the group")

	// Match lifecycle
	ErrMatchTeamsIdentical        = errors.New("a team cannot play against itself")
	ErrMatchInvalidStatus         = errors.New("invalid match status provided")
	ErrMatchStatusTransition      = errors.New("invalid match status transition")
	ErrMatchScoreRequired         = errors.New("both scores are required to complete a match")
	ErrMatchScoreNotAllowed       = errors.New("scores can only be set when completing a match")
	ErrFixturesNotEnoughTeams     = errors.New("at least two teams are required to generate fixtures")
	ErrFixturesInvalidRoundsCount = errors.New("fixture rounds must be 1 or 2")

	// Goals
	ErrGoalMinuteInvalid  = errors.New("goal minute must be between 0 and 120")
	ErrGoalTeamNotInMatch = errors.New("scoring team is not playing in the match")
	ErrGoalTypeInvalid    = errors.New("invalid goal type provided")

	// Auth
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrAuthEmailTaken         = errors.New("email address is already in use")
	ErrPasswordTooShort       = errors.New("password is too short")
)
