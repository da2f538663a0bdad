package handler

import (
	"net/http"
)

func (h *Handler) CreateChoreo(w http.ResponseWriter, r *http.Request) {
	var req ChoreoRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	choreo, err := h.choreoService.CreateChoreo(r.Context(), httpChoreoToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainChoreoToHTTP(choreo))
}

func (h *Handler) GetChoreo(w http.ResponseWriter, r *http.Request) {
	choreoID, err := pathInt(r, "choreoID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	choreo, err := h.choreoService.GetChoreo(r.Context(), choreoID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainChoreoToHTTP(choreo))
}

// PositionsAt без параметра count отдает пустой список
func (h *Handler) PositionsAt(w http.ResponseWriter, r *http.Request) {
	choreoID, err := pathInt(r, "choreoID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	count, ok, err := queryInt(r, "count")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, PositionsResponse{Positions: []PlacementResponse{}})
		return
	}

	placements, err := h.choreoService.PositionsAt(r.Context(), choreoID, count)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, PositionsResponse{
		Count:     &count,
		Positions: placementsToHTTP(placements),
	})
}

func (h *Handler) Frames(w http.ResponseWriter, r *http.Request) {
	choreoID, err := pathInt(r, "choreoID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	from, fromOK, err := queryInt(r, "from")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	to, toOK, err := queryInt(r, "to")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !fromOK || !toOK {
		h.handleError(w, r, badRequest("from and to parameters are required"))
		return
	}

	frames, err := h.choreoService.Frames(r.Context(), choreoID, from, to)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := FramesResponse{Frames: make([]FrameResponse, 0, len(frames))}
	for i, placements := range frames {
		resp.Frames = append(resp.Frames, FrameResponse{
			Count:     from + i,
			Positions: placementsToHTTP(placements),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CountSheet(w http.ResponseWriter, r *http.Request) {
	choreoID, err := pathInt(r, "choreoID")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rows, err := h.choreoService.CountSheet(r.Context(), choreoID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CountSheetResponse{
		BeatsPerBar: h.grid.BeatsPerBar(),
		Rows:        gridRowsToHTTP(rows),
	})
}
