package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// unmatchedRoute - метка для запросов без подходящего маршрута
const unmatchedRoute = "unmatched"

// requestID берет id из заголовка клиента или выдает новый uuid;
// id кладется под ключ chi, поэтому middleware.GetReqID продолжает работать
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accessLog(logger logging.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			m.RecordHTTPRequest(route, r.Method, strconv.Itoa(status), elapsed)

			fields := []logging.Field{
				logging.String("method", r.Method),
				logging.String("route", route),
				logging.String("path", r.URL.Path),
				logging.Int("status", status),
				logging.Duration("elapsed", elapsed),
				logging.String("request_id", middleware.GetReqID(r.Context())),
				logging.String("remote_addr", r.RemoteAddr),
			}
			if status >= http.StatusInternalServerError {
				logger.Warn("http request", fields...)
				return
			}
			logger.Info("http request", fields...)
		})
	}
}
