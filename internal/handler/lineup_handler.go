package handler

import (
	"net/http"
)

func (h *Handler) CreateLineup(w http.ResponseWriter, r *http.Request) {
	choreoID, err := pathInt(r, "choreoID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req LineupRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	lineup, err := h.lineupService.CreateLineup(r.Context(), choreoID, httpLineupToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainLineupToHTTP(lineup))
}

func (h *Handler) DeleteLineup(w http.ResponseWriter, r *http.Request) {
	lineupID, err := pathInt(r, "lineupID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.lineupService.DeleteLineup(r.Context(), lineupID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
