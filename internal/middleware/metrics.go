package middleware

import (
	"net/http"
	"time"

	"promptdesk/internal/metrics"
)

// Metrics records request count and latency per ServeMux route pattern.
// It must wrap the mux directly so r.Pattern is visible after dispatch.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		metrics.RecordRequest(r.Method, r.Pattern, rec.status, time.Since(start).Seconds())
	})
}
