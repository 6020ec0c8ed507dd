// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"sapphire/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sapphire"

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

// Metrics groups every collector of the service on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	rateLimitHits   *prometheus.CounterVec
	wsClients       prometheus.Gauge
	changeEvents    *prometheus.CounterVec
	cleanupRemovals *prometheus.CounterVec
	eventsPublished *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec
}

// New creates and registers the collectors.
func New(cfg *config.Config) *Metrics {
	subsystem := "api"
	if cfg != nil && cfg.Env.ServiceName != "" {
		subsystem = sanitize(cfg.Env.ServiceName)
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		rateLimitHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rate_limit_hits_total",
			Help:      "Number of rate-limited responses",
		}, []string{"route"}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "websocket_clients",
			Help:      "Currently connected change feed clients",
		}),
		changeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "change_events_total",
			Help:      "Database change events relayed to WebSocket clients",
		}, []string{"collection"}),
		cleanupRemovals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cleanup_removed_total",
			Help:      "Expired records removed by the maintenance job",
		}, []string{"kind"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "admin_events_published_total",
			Help:      "Admin events handed to the message broker",
		}, []string{"type", "result"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "db_connections",
			Help:      "Database pool connections by state",
		}, []string{"state"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestTotal,
		m.requestLatency,
		m.rateLimitHits,
		m.wsClients,
		m.changeEvents,
		m.cleanupRemovals,
		m.eventsPublished,
		m.dbConnections,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one handled HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(duration.Seconds())
}

// RateLimitHit records a rejected request.
func (m *Metrics) RateLimitHit(route string) {
	m.rateLimitHits.WithLabelValues(route).Inc()
}

// WebSocketConnected adjusts the connected client gauge.
func (m *Metrics) WebSocketConnected(delta int) {
	m.wsClients.Add(float64(delta))
}

// ChangeEventRelayed counts a change feed event.
func (m *Metrics) ChangeEventRelayed(collection string) {
	m.changeEvents.WithLabelValues(collection).Inc()
}

// CleanupRemoved counts expired records removed by kind (tokens, otps).
func (m *Metrics) CleanupRemoved(kind string, n int64) {
	if n > 0 {
		m.cleanupRemovals.WithLabelValues(kind).Add(float64(n))
	}
}

// EventPublished counts a publish attempt; result is "ok" or "error".
func (m *Metrics) EventPublished(eventType string, failed bool) {
	result := "ok"
	if failed {
		result = "error"
	}
	m.eventsPublished.WithLabelValues(eventType, result).Inc()
}

// ObserveDBPool records the connection pool state.
func (m *Metrics) ObserveDBPool(open, inUse, idle int) {
	m.dbConnections.WithLabelValues("open").Set(float64(open))
	m.dbConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(idle))
}

func sanitize(name string) string {
	out := []rune(name)
	for i, r := range out {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			out[i] = '_'
		}
	}

	return string(out)
}
