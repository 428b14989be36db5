package observability

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several instances (tests, multiple apps
// in one process) never collide on collector names.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	writeOps       *prometheus.CounterVec
	writeLatency   *prometheus.HistogramVec
	writeConflicts *prometheus.CounterVec
	writeRetries   *prometheus.CounterVec

	eventsPublished *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	m := &Metrics{
		registry: reg,
		apiRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		apiLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		apiInflight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		}),
		writeOps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_write_operations_total",
			Help: "Transactional writes by operation and outcome code.",
		}, []string{"op", "status"}),
		writeLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_write_duration_seconds",
			Help:    "Transactional write latency including relation sync.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		writeConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_write_conflicts_total",
			Help: "Writes rejected by unique or concurrency conflicts.",
		}, []string{"op"}),
		writeRetries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_write_retryable_total",
			Help: "Writes that failed with a transient error.",
		}, []string{"op"}),
		eventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_events_published_total",
			Help: "Change events handed to the event bus.",
		}, []string{"resource", "action", "status"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveWrite(op, status string, dur time.Duration) {
	if m == nil {
		return
	}
	op = strings.TrimSpace(op)
	m.writeOps.WithLabelValues(op, strings.TrimSpace(status)).Inc()
	m.writeLatency.WithLabelValues(op).Observe(dur.Seconds())
}

func (m *Metrics) IncWriteConflict(op string) {
	if m == nil {
		return
	}
	m.writeConflicts.WithLabelValues(strings.TrimSpace(op)).Inc()
}

func (m *Metrics) IncWriteRetry(op string) {
	if m == nil {
		return
	}
	m.writeRetries.WithLabelValues(strings.TrimSpace(op)).Inc()
}

func (m *Metrics) IncEventPublished(resource, action, status string) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(resource, action, status).Inc()
}
