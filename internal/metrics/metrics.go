package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Tower
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	TicketsBookedTotal    prometheus.CounterVec
	IncidentsFiledTotal   prometheus.Counter
	LoginAttemptsTotal    prometheus.CounterVec
	FlightSearchesTotal   prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tower_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tower_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		// The route pattern is only known once the mux has dispatched, so
		// the in-flight gauge carries no endpoint label.
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tower_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tower_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tower_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tower_cache_hits_total",
				Help: "Total cache hits by key prefix",
			},
			[]string{"prefix"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tower_cache_misses_total",
				Help: "Total cache misses by key prefix",
			},
			[]string{"prefix"},
		),

		TicketsBookedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tower_tickets_booked_total",
				Help: "Tickets booked, labelled by booking channel",
			},
			[]string{"channel"},
		),
		IncidentsFiledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tower_incidents_filed_total",
				Help: "Incident reports filed by crew",
			},
		),
		LoginAttemptsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tower_login_attempts_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		FlightSearchesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tower_flight_searches_total",
				Help: "Public flight search requests",
			},
		),
	}
}
