// Package metrics provides Prometheus metrics for the YouTube MCP server.
// It tracks tool calls, upstream API latency, cache performance, and
// estimated Data API quota consumption.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "youtube_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures tool call latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Tool call latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing tool calls
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of tool calls currently being processed",
	}, []string{"tool"})

	// CacheHits counts response cache hits
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_hits_total",
		Help:      "Total response cache hit count",
	})

	// CacheMisses counts response cache misses
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_misses_total",
		Help:      "Total response cache miss count",
	})

	// CacheSize tracks current cache entry count
	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "cache_entries",
		Help:      "Current number of cached API responses",
	})

	// APILatency measures Data API call latency by endpoint
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "YouTube Data API call latency by endpoint",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// APIRequestsTotal counts Data API requests by endpoint and status
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total YouTube Data API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	// APIErrors counts Data API failures by endpoint and error code
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "YouTube Data API errors by endpoint and error code",
	}, []string{"endpoint", "error_code"})

	// QuotaUnits counts estimated Data API quota units spent per endpoint.
	// Search requests cost 100 units; list requests cost 1.
	QuotaUnits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "quota_units_total",
		Help:      "Estimated YouTube Data API quota units spent by endpoint",
	}, []string{"endpoint"})

	// QuotaExhaustions counts requests rejected with quotaExceeded
	QuotaExhaustions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "quota_exhaustions_total",
		Help:      "Requests rejected by the API due to exhausted quota",
	})

	// PanicsRecovered counts recovered panics in tool handlers
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed tool call with its duration and status.
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records one Data API round trip.
func RecordAPICall(endpoint string, duration float64, success bool, errorCode string) {
	status := "success"
	if !success {
		status = "error"
	}
	APIRequestsTotal.WithLabelValues(endpoint, status).Inc()
	APILatency.WithLabelValues(endpoint).Observe(duration)
	if errorCode != "" {
		APIErrors.WithLabelValues(endpoint, errorCode).Inc()
	}
}

// AddQuotaUnits accumulates estimated quota spend for an endpoint.
func AddQuotaUnits(endpoint string, units int) {
	QuotaUnits.WithLabelValues(endpoint).Add(float64(units))
}

// RecordCacheAccess records a cache hit or miss.
func RecordCacheAccess(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// SetCacheSize updates the current cache size gauge.
func SetCacheSize(size int64) {
	CacheSize.Set(float64(size))
}
