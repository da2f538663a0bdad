// Package metrics - Prometheus-метрики сервиса.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "choreo"

type Metrics struct {
	registry *prometheus.Registry

	positionWrites      *prometheus.CounterVec
	placementsComputed  prometheus.Counter
	validationFailures  *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New регистрирует метрики в собственном реестре, чтобы не тянуть метрики рантайма
func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

func NewWithRegistry(registry *prometheus.Registry) *Metrics {
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		positionWrites: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "timeline",
			Name:      "position_writes_total",
			Help:      "Position updates by ordering guard result (accepted, unchanged, rejected)",
		}, []string{"result"}),
		placementsComputed: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "timeline",
			Name:      "placements_computed_total",
			Help:      "Member placements computed by the interpolator",
		}),
		validationFailures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "timeline",
			Name:      "validation_failures_total",
			Help:      "Rejected inputs by entity",
		}, []string{"entity"}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status_code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

func (m *Metrics) RecordPositionWrite(result string) {
	m.positionWrites.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordPlacements(n int) {
	m.placementsComputed.Add(float64(n))
}

func (m *Metrics) RecordValidationFailure(entity string) {
	m.validationFailures.WithLabelValues(entity).Inc()
}

func (m *Metrics) RecordHTTPRequest(route, method, statusCode string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
