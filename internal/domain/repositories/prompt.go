package repositories

import (
	"context"

	"promptdesk/internal/domain/models"
)

// PromptRepository defines data access operations for prompts.
// It is the storage collaborator: one named table, no transactions across calls.
type PromptRepository interface {
	// List retrieves every prompt ordered by created_at ASC
	List(ctx context.Context) ([]models.Prompt, error)

	// GetByID retrieves a prompt by ID
	GetByID(ctx context.Context, id string) (*models.Prompt, error)

	// Create inserts a prompt and fills in the generated ID and created_at
	Create(ctx context.Context, prompt *models.Prompt) error

	// Update replaces every mutable field of the prompt matching prompt.ID.
	// The stored row (including created_at) is scanned back into prompt.
	// Returns domain.ErrNotFound if no row matches.
	Update(ctx context.Context, prompt *models.Prompt) error

	// SetLocationID overwrites location_id for a single prompt
	SetLocationID(ctx context.Context, id, locationID string) error

	// Delete removes the prompt if it exists. Deleting a missing prompt is not an error.
	Delete(ctx context.Context, id string) error
}
