package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"promptdesk/internal/httputil"
)

// Recovery middleware recovers from panics and returns a 500 JSON error.
// The stack goes to the log, never to the client.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("panic recovered",
						"error", err,
						"request_id", RequestIDFromContext(r.Context()),
						"path", r.URL.Path,
						"method", r.Method,
						"stack", string(debug.Stack()),
					)

					httputil.RespondError(w, http.StatusInternalServerError, "Internal server error", "unexpected server failure")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
