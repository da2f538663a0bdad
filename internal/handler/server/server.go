package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/handler"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	logger  logging.Logger
}

func NewServer(h *handler.Handler, addr string, m *metrics.Metrics, logger logging.Logger) *Server {
	return &Server{
		handler: h,
		server: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(h, m, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start блокируется до остановки; штатная остановка не считается ошибкой
func (s *Server) Start() error {
	s.logger.Info("server starting", logging.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
