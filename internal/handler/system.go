package handler

import (
	"log/slog"
	"net/http"

	"promptdesk/internal/config"
	"promptdesk/internal/httputil"
)

// SystemHandler serves health, preflight and the not-found fallback
type SystemHandler struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(cfg *config.Config, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// HealthEnv reports which settings are present. It never carries values.
type HealthEnv struct {
	Environment      string `json:"environment"`
	Table            string `json:"table"`
	HasSupabaseURL   bool   `json:"has_supabase_url"`
	HasSupabaseKey   bool   `json:"has_supabase_key"`
	HasSupabaseDBURL bool   `json:"has_supabase_db_url"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	OK  bool      `json:"ok"`
	Env HealthEnv `json:"env"`
}

// Health reports configuration presence
// GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, HealthResponse{
		OK: h.cfg.Validate() == nil,
		Env: HealthEnv{
			Environment:      h.cfg.Environment,
			Table:            h.cfg.PromptsTableName(),
			HasSupabaseURL:   h.cfg.SupabaseURL != "",
			HasSupabaseKey:   h.cfg.SupabaseKey != "",
			HasSupabaseDBURL: h.cfg.SupabaseDBURL != "",
		},
	})
}

// Preflight answers any OPTIONS request with an empty 204
// OPTIONS /
func (h *SystemHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	httputil.RespondNoContent(w)
}

// NotFound answers every unrouted method and path
func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("no route", "method", r.Method, "path", r.URL.Path)
	httputil.RespondErrorWithExtras(w, http.StatusNotFound, errNotFound, "", map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
	})
}
