package handler

import (
	"log/slog"
	"net/http"

	"promptdesk/internal/domain/models"
	"promptdesk/internal/domain/services"
	"promptdesk/internal/httputil"
)

// PromptHandler handles prompt HTTP requests
type PromptHandler struct {
	promptService services.PromptService
	logger        *slog.Logger
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(promptService services.PromptService, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
		logger:        logger,
	}
}

// createPromptResponse is the created prompt plus an optional top-level
// warning when the location_id backfill failed
type createPromptResponse struct {
	models.Prompt
	Warning string `json:"warning,omitempty"`
}

// ListPrompts retrieves all prompts, oldest first
// GET /prompts
func (h *PromptHandler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.promptService.ListPrompts(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompts)
}

// GetPrompt retrieves a prompt by ID
// GET /prompts/{id}
func (h *PromptHandler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.promptService.GetPrompt(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompt)
}

// CreatePrompt creates a new prompt
// POST /prompts
// Returns 201 even when the location_id backfill failed; the body then
// carries a "warning"
func (h *PromptHandler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req services.CreatePromptRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, h.logger, badRequest(err))
		return
	}

	result, err := h.promptService.CreatePrompt(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, createPromptResponse{
		Prompt:  *result.Prompt,
		Warning: result.Warning,
	})
}

// UpdatePrompt replaces a prompt's fields
// PUT /prompts/{id}
func (h *PromptHandler) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	var req services.UpdatePromptRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, h.logger, badRequest(err))
		return
	}

	prompt, err := h.promptService.UpdatePrompt(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompt)
}

// DeletePrompt deletes a prompt
// DELETE /prompts/{id}
// Returns 204 whether or not the prompt existed
func (h *PromptHandler) DeletePrompt(w http.ResponseWriter, r *http.Request) {
	if err := h.promptService.DeletePrompt(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}
