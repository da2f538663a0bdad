package handler

import (
	"net/http"
)

func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	choreoID, err := pathInt(r, "choreoID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ParticipantRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	p, err := h.participationService.AddParticipant(r.Context(), choreoID, req.MemberID, req.Color)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainParticipationToHTTP(p))
}

func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	choreoID, err := pathInt(r, "choreoID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	memberID, err := pathInt(r, "memberID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.participationService.RemoveParticipant(r.Context(), choreoID, memberID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
