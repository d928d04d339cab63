// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests.
	// Labels: method, route (ServeMux pattern or "unmatched"), status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptdesk_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by method and route",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// PromptOperationsTotal counts prompt service operations.
	// Labels: operation (list/get/create/update/delete), result (success/error)
	PromptOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptdesk_prompt_operations_total",
			Help: "Total number of prompt operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	// BackfillFailuresTotal counts creates whose location_id backfill failed.
	BackfillFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "promptdesk_prompt_backfill_failures_total",
			Help: "Total number of prompt creates whose location_id backfill failed",
		},
	)
)

// RecordRequest records a finished HTTP request
func RecordRequest(method, route string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordOperation records a prompt service operation
func RecordOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	PromptOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordBackfillFailure records a failed location_id backfill
func RecordBackfillFailure() {
	BackfillFailuresTotal.Inc()
}
