package handler

import (
	"net/http"

	"github.com/bagdasarian/choreo-timeline/internal/timeline"
)

// GridCell переводит счёт из пути в такт и долю
func (h *Handler) GridCell(w http.ResponseWriter, r *http.Request) {
	count, err := pathInt(r, "count")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	cell := h.grid.Cell(count)
	writeJSON(w, http.StatusOK, GridCellResponse{
		Count:     count,
		Bar:       cell.Bar,
		BeatInBar: cell.BeatInBar,
	})
}

// GridCount - обратное преобразование: ?bar=&beat= в счёт
func (h *Handler) GridCount(w http.ResponseWriter, r *http.Request) {
	bar, barOK, err := queryInt(r, "bar")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	beat, beatOK, err := queryInt(r, "beat")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if !barOK || !beatOK {
		h.handleError(w, r, badRequest("bar and beat parameters are required"))
		return
	}

	cell := timeline.GridCell{Bar: bar, BeatInBar: beat}
	writeJSON(w, http.StatusOK, GridCellResponse{
		Count:     h.grid.Count(cell),
		Bar:       cell.Bar,
		BeatInBar: cell.BeatInBar,
	})
}
