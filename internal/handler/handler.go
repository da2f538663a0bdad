package handler

import (
	"net/http"

	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/service"
	"github.com/bagdasarian/choreo-timeline/internal/timeline"
)

type Handler struct {
	teamService          service.TeamService
	choreoService        service.ChoreoService
	lineupService        service.LineupService
	positionService      service.PositionService
	participationService service.ParticipationService
	grid                 *timeline.CountGrid
	logger               logging.Logger
}

func NewHandler(
	teamService service.TeamService,
	choreoService service.ChoreoService,
	lineupService service.LineupService,
	positionService service.PositionService,
	participationService service.ParticipationService,
	grid *timeline.CountGrid,
	logger logging.Logger,
) *Handler {
	return &Handler{
		teamService:          teamService,
		choreoService:        choreoService,
		lineupService:        lineupService,
		positionService:      positionService,
		participationService: participationService,
		grid:                 grid,
		logger:               logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
