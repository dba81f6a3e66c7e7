package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/copaops/copa-system/services"
)

type TeamStatsHandler struct {
	statsService      services.TeamStatsService
	teamService       services.TeamService
	tournamentService services.TournamentService
}

func NewTeamStatsHandler(
	statsService services.TeamStatsService,
	teamService services.TeamService,
	tournamentService services.TournamentService,
) *TeamStatsHandler {
	return &TeamStatsHandler{
		statsService:      statsService,
		teamService:       teamService,
		tournamentService: tournamentService,
	}
}

// ListTeamStats filters by team_id and/or tournament_id query
// parameters. Both together narrow to a single record.
func (h *TeamStatsHandler) ListTeamStats(w http.ResponseWriter, r *http.Request) {
	teamID, _ := strconv.Atoi(r.URL.Query().Get("team_id"))
	tournamentID, _ := strconv.Atoi(r.URL.Query().Get("tournament_id"))

	switch {
	case teamID > 0 && tournamentID > 0:
		stats, err := h.statsService.GetByTeamAndTournament(r.Context(), teamID, tournamentID)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"team_stats": stats}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}

	case teamID > 0:
		stats, err := h.statsService.ListByTeam(r.Context(), teamID)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"team_stats": stats}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}

	case tournamentID > 0:
		stats, err := h.statsService.RankTeams(r.Context(), tournamentID)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"team_stats": stats}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}

	default:
		badRequestResponse(w, r, errors.New("team_id or tournament_id query parameter is required"))
	}
}

// RankedByTournament returns every team's season record ordered by
// points, goal difference and goals for, descending.
func (h *TeamStatsHandler) RankedByTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.tournamentService.GetTournamentByID(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	stats, err := h.statsService.RankTeams(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team_stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateFromMatches recomputes the team's record for the tournament
// from its completed matches.
func (h *TeamStatsHandler) UpdateFromMatches(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.teamService.GetTeamByID(r.Context(), teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if _, err := h.tournamentService.GetTournamentByID(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	stats, err := h.statsService.RecomputeFromMatches(r.Context(), teamID, tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team_stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
