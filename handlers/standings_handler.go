package handlers

import (
	"net/http"

	"github.com/copaops/copa-system/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
	groupService     services.GroupService
}

func NewStandingsHandler(standingsService services.StandingsService, groupService services.GroupService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: standingsService,
		groupService:     groupService,
	}
}

// GetGroupStandings computes the group table on demand. Standings are
// never stored, so the response always reflects the current match log.
func (h *StandingsHandler) GetGroupStandings(w http.ResponseWriter, r *http.Request) {
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.groupService.GetGroupByID(r.Context(), groupID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	standings, err := h.standingsService.CalculateGroupStandings(r.Context(), groupID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
