package handlers

import (
	"net/http"

	"github.com/copaops/copa-system/services"
)

type PhaseHandler struct {
	phaseService services.PhaseService
}

func NewPhaseHandler(phaseService services.PhaseService) *PhaseHandler {
	return &PhaseHandler{phaseService: phaseService}
}

func (h *PhaseHandler) CreatePhase(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePhaseInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	phase, err := h.phaseService.CreatePhase(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"phase": phase}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PhaseHandler) GetPhaseByID(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	phase, err := h.phaseService.GetPhaseByID(r.Context(), phaseID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"phase": phase}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PhaseHandler) ListTournamentPhases(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	phases, err := h.phaseService.ListPhasesByTournament(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"phases": phases}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PhaseHandler) UpdatePhase(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreatePhaseInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	phase, err := h.phaseService.UpdatePhase(r.Context(), phaseID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"phase": phase}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PhaseHandler) DeletePhase(w http.ResponseWriter, r *http.Request) {
	phaseID, err := getIDFromURL(r, "phaseID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.phaseService.DeletePhase(r.Context(), phaseID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
