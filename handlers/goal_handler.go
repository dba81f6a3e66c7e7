package handlers

import (
	"net/http"

	"github.com/copaops/copa-system/services"
)

type GoalHandler struct {
	goalService services.GoalService
}

func NewGoalHandler(goalService services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) RecordGoal(w http.ResponseWriter, r *http.Request) {
	var input services.RecordGoalInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	goal, err := h.goalService.RecordGoal(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"goal": goal}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GoalHandler) GetGoalByID(w http.ResponseWriter, r *http.Request) {
	goalID, err := getIDFromURL(r, "goalID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(r.Context(), goalID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"goal": goal}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID, err := getIDFromURL(r, "goalID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.goalService.DeleteGoal(r.Context(), goalID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
