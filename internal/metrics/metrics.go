// Package metrics exposes the Prometheus instrumentation for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realcare_analyses_total",
			Help: "Total number of feasibility analyses by grade",
		},
		[]string{"grade"},
	)

	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realcare_comparisons_total",
			Help: "Total number of buy-now-vs-wait comparisons by recommendation",
		},
		[]string{"recommendation"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realcare_cache_lookups_total",
			Help: "Total number of response cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "realcare_http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "status"},
	)
)

// CacheHit records a cache lookup outcome.
func CacheHit(hit bool) {
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	CacheLookups.WithLabelValues("miss").Inc()
}
