package handler

import "net/http"

// RegisterRoutes wires every endpoint onto mux (Go 1.22+ method patterns).
// The bare "/" pattern catches everything else, so unsupported methods on
// known paths get the JSON 404 rather than a 405.
func RegisterRoutes(mux *http.ServeMux, prompts *PromptHandler, system *SystemHandler, metricsHandler http.Handler) {
	// Health and metrics
	mux.HandleFunc("GET /health", system.Health)
	mux.Handle("GET /metrics", metricsHandler)

	// Prompt routes
	mux.HandleFunc("GET /prompts", prompts.ListPrompts)
	mux.HandleFunc("POST /prompts", prompts.CreatePrompt)
	mux.HandleFunc("GET /prompts/{id}", prompts.GetPrompt)
	mux.HandleFunc("PUT /prompts/{id}", prompts.UpdatePrompt)
	mux.HandleFunc("DELETE /prompts/{id}", prompts.DeletePrompt)

	// CORS preflight on any path
	mux.HandleFunc("OPTIONS /", system.Preflight)

	// Catch-all
	mux.HandleFunc("/", system.NotFound)
}
