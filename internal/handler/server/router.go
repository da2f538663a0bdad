package server

import (
	"net/http"

	"github.com/bagdasarian/choreo-timeline/internal/handler"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *handler.Handler, m *metrics.Metrics, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger, m))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Post("/teams", h.CreateTeam)
	r.Get("/teams/{teamID}", h.GetTeam)

	r.Route("/choreos", func(r chi.Router) {
		r.Post("/", h.CreateChoreo)
		r.Route("/{choreoID}", func(r chi.Router) {
			r.Get("/", h.GetChoreo)
			r.Get("/positions", h.PositionsAt)
			r.Get("/frames", h.Frames)
			r.Get("/countsheet", h.CountSheet)
			r.Post("/lineups", h.CreateLineup)
			r.Post("/participants", h.AddParticipant)
			r.Delete("/participants/{memberID}", h.RemoveParticipant)
		})
	})

	r.Get("/grid", h.GridCount)
	r.Get("/grid/{count}", h.GridCell)

	r.Delete("/lineups/{lineupID}", h.DeleteLineup)
	r.Patch("/positions/{positionID}", h.UpdatePosition)

	return r
}
