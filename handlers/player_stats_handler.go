package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/copaops/copa-system/services"
)

type PlayerStatsHandler struct {
	statsService      services.PlayerStatsService
	playerService     services.PlayerService
	tournamentService services.TournamentService
}

func NewPlayerStatsHandler(
	statsService services.PlayerStatsService,
	playerService services.PlayerService,
	tournamentService services.TournamentService,
) *PlayerStatsHandler {
	return &PlayerStatsHandler{
		statsService:      statsService,
		playerService:     playerService,
		tournamentService: tournamentService,
	}
}

// ListPlayerStats filters by player_id and/or tournament_id query
// parameters. Both together narrow to a single record.
func (h *PlayerStatsHandler) ListPlayerStats(w http.ResponseWriter, r *http.Request) {
	playerID, _ := strconv.Atoi(r.URL.Query().Get("player_id"))
	tournamentID, _ := strconv.Atoi(r.URL.Query().Get("tournament_id"))

	switch {
	case playerID > 0 && tournamentID > 0:
		stats, err := h.statsService.GetByPlayerAndTournament(r.Context(), playerID, tournamentID)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"player_stats": stats}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}

	case tournamentID > 0:
		stats, err := h.statsService.ListByTournament(r.Context(), tournamentID)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"player_stats": stats}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}

	case playerID > 0:
		stats, err := h.statsService.ListByPlayer(r.Context(), playerID)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"player_stats": stats}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}

	default:
		badRequestResponse(w, r, errors.New("player_id or tournament_id query parameter is required"))
	}
}

// UpdateFromGoals recomputes statistics from the goal log. With a
// player_id it refreshes one record; without it, every scorer in the
// tournament.
func (h *PlayerStatsHandler) UpdateFromGoals(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := strconv.Atoi(r.URL.Query().Get("tournament_id"))
	if err != nil || tournamentID <= 0 {
		badRequestResponse(w, r, errors.New("tournament_id query parameter is required"))
		return
	}

	if _, err := h.tournamentService.GetTournamentByID(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if playerParam := r.URL.Query().Get("player_id"); playerParam != "" {
		playerID, err := strconv.Atoi(playerParam)
		if err != nil || playerID <= 0 {
			badRequestResponse(w, r, errors.New("invalid player_id query parameter"))
			return
		}
		if _, err := h.playerService.GetPlayerByID(r.Context(), playerID); err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}

		stats, err := h.statsService.RecomputeFromGoals(r.Context(), playerID, tournamentID)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"player_stats": stats}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	stats, err := h.statsService.RecomputeTournament(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"player_stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerStatsHandler) TopScorers(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.tournamentService.GetTournamentByID(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	scorers, err := h.statsService.TopScorers(r.Context(), tournamentID, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"top_scorers": scorers}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
