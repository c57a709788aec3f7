package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/database"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "transform_studio"

// Prometheus records application, HTTP, media and database metrics on a private registry
type Prometheus struct {
	registry *prometheus.Registry

	transformationsApplied *prometheus.CounterVec
	creditsSpent           prometheus.Counter
	imagesSaved            *prometheus.CounterVec
	activeSessions         prometheus.Gauge

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	mediaDuration *prometheus.HistogramVec

	dbQueries       *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge
	dbWaitCount     prometheus.Gauge
}

// NewPrometheus creates the collectors and registers them with a fresh registry
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		transformationsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transformations",
			Name:      "applied_total",
			Help:      "Total number of transformations applied, by type.",
		}, []string{"type"}),
		creditsSpent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "credits",
			Name:      "spent_total",
			Help:      "Total credits charged for transformations.",
		}),
		imagesSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "images",
			Name:      "saved_total",
			Help:      "Total images saved from the transformation form, by action.",
		}, []string{"action"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "transformations",
			Name:      "active_sessions",
			Help:      "Current number of live transformation sessions.",
		}),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		mediaDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "request_duration_seconds",
			Help:      "Duration of media service API calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}, []string{"operation", "outcome"}),
		dbQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "queries_total",
			Help:      "Total number of SQL statements executed.",
		}, []string{"operation", "table", "outcome"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of SQL statements.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "open_connections",
			Help:      "Open connections in the database pool.",
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "in_use_connections",
			Help:      "Connections currently checked out of the pool.",
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "idle_connections",
			Help:      "Idle connections in the pool.",
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "wait_count",
			Help:      "Total number of connections waited for.",
		}),
	}

	p.registry.MustRegister(
		p.transformationsApplied,
		p.creditsSpent,
		p.imagesSaved,
		p.activeSessions,
		p.httpInFlight,
		p.httpRequests,
		p.httpDuration,
		p.mediaDuration,
		p.dbQueries,
		p.dbQueryDuration,
		p.dbOpenConns,
		p.dbInUseConns,
		p.dbIdleConns,
		p.dbWaitCount,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return p
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler returns an HTTP handler exposing the registered metrics
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// TransformationApplied implements core.Metrics
func (p *Prometheus) TransformationApplied(transformationType string) {
	p.transformationsApplied.WithLabelValues(transformationType).Inc()
}

// CreditsSpent implements core.Metrics
func (p *Prometheus) CreditsSpent(amount int64) {
	if amount <= 0 {
		return
	}
	p.creditsSpent.Add(float64(amount))
}

// ImageSaved implements core.Metrics
func (p *Prometheus) ImageSaved(action string) {
	p.imagesSaved.WithLabelValues(action).Inc()
}

// ActiveSessions implements core.Metrics
func (p *Prometheus) ActiveSessions(count int) {
	p.activeSessions.Set(float64(count))
}

// HTTPStarted marks a request as in flight
func (p *Prometheus) HTTPStarted() {
	p.httpInFlight.Inc()
}

// HTTPFinished records a completed request
func (p *Prometheus) HTTPFinished(method, route string, status int, elapsed time.Duration) {
	p.httpInFlight.Dec()
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveMediaRequest records one media service call
func (p *Prometheus) ObserveMediaRequest(operation string, err error, elapsed time.Duration) {
	p.mediaDuration.WithLabelValues(operation, outcome(err != nil)).Observe(elapsed.Seconds())
}

// ObserveQuery implements database.Observer
func (p *Prometheus) ObserveQuery(m database.QueryMetrics) {
	operation := m.Operation
	if operation == "" {
		operation = "OTHER"
	}
	p.dbQueries.WithLabelValues(operation, m.Table, outcome(m.Failed)).Inc()
	p.dbQueryDuration.WithLabelValues(operation).Observe(m.Duration.Seconds())
}

// ObservePool implements database.Observer
func (p *Prometheus) ObservePool(stats sql.DBStats) {
	p.dbOpenConns.Set(float64(stats.OpenConnections))
	p.dbInUseConns.Set(float64(stats.InUse))
	p.dbIdleConns.Set(float64(stats.Idle))
	p.dbWaitCount.Set(float64(stats.WaitCount))
}

func outcome(failed bool) string {
	if failed {
		return "error"
	}
	return "ok"
}

var (
	_ coreport.Metrics  = (*Prometheus)(nil)
	_ database.Observer = (*Prometheus)(nil)
)
