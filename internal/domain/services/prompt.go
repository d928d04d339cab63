package services

import (
	"context"
	"encoding/json"

	"promptdesk/internal/domain/models"
)

// CreatePromptRequest represents a request to create a prompt.
// A nil or blank LocationID is backfilled with the generated ID.
type CreatePromptRequest struct {
	Name          string          `json:"name"`
	Prompt        string          `json:"prompt"`
	LocationID    *string         `json:"location_id"`
	BusinessName  *string         `json:"business_name"`
	Knowledgebase *string         `json:"knowledgebase"`
	Inventory     json.RawMessage `json:"inventory"`
}

// UpdatePromptRequest represents a full replacement of a prompt's fields.
// Optional fields left nil are cleared.
type UpdatePromptRequest struct {
	Name          string          `json:"name"`
	Prompt        string          `json:"prompt"`
	LocationID    *string         `json:"location_id"`
	BusinessName  *string         `json:"business_name"`
	Knowledgebase *string         `json:"knowledgebase"`
	Inventory     json.RawMessage `json:"inventory"`
}

// CreateOutcome tags how a create finished.
type CreateOutcome string

const (
	// Created means the insert and any location_id backfill succeeded
	Created CreateOutcome = "created"
	// CreatedWithWarning means the insert succeeded but the backfill failed
	CreatedWithWarning CreateOutcome = "created_with_warning"
)

// CreateResult is the outcome of CreatePrompt.
// When Outcome is CreatedWithWarning, Prompt is the record as inserted
// (location_id not backfilled) and Warning describes the failed write.
type CreateResult struct {
	Prompt  *models.Prompt
	Outcome CreateOutcome
	Warning string
}

// PromptService defines business logic operations for prompts
type PromptService interface {
	// ListPrompts retrieves all prompts ordered by creation time
	ListPrompts(ctx context.Context) ([]models.Prompt, error)

	// GetPrompt retrieves a prompt by ID
	GetPrompt(ctx context.Context, id string) (*models.Prompt, error)

	// CreatePrompt validates and inserts a prompt, backfilling location_id when absent
	CreatePrompt(ctx context.Context, req *CreatePromptRequest) (*CreateResult, error)

	// UpdatePrompt validates and fully replaces a prompt's fields
	UpdatePrompt(ctx context.Context, id string, req *UpdatePromptRequest) (*models.Prompt, error)

	// DeletePrompt removes a prompt. Missing prompts are not an error.
	DeletePrompt(ctx context.Context, id string) error
}
