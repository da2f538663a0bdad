package handler

import (
	"net/http"
)

// UpdatePosition отвечает 409, если изменение старше сохраненного
func (h *Handler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	positionID, err := pathInt(r, "positionID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req PositionUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	pos, err := h.positionService.UpdatePosition(r.Context(), positionID, httpPositionUpdateToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPositionToHTTP(pos))
}
