package middleware

import "net/http"

// JSONContentType sets Content-Type: application/json on every response,
// including empty 204s and preflight replies
func JSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
