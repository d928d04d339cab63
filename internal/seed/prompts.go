package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"promptdesk/internal/domain/services"
)

//go:embed prompts.yaml
var defaultFixture []byte

// PromptFixture is one prompt in a YAML seed file. Inventory may be any
// YAML value; it is stored as the equivalent JSON.
type PromptFixture struct {
	Name          string      `yaml:"name"`
	Prompt        string      `yaml:"prompt"`
	LocationID    *string     `yaml:"location_id"`
	BusinessName  *string     `yaml:"business_name"`
	Knowledgebase *string     `yaml:"knowledgebase"`
	Inventory     interface{} `yaml:"inventory"`
}

// DefaultFixture returns the embedded sample prompts
func DefaultFixture() []byte {
	return defaultFixture
}

// ParseFixture decodes a YAML list of prompts into create requests
func ParseFixture(data []byte) ([]*services.CreatePromptRequest, error) {
	var fixtures []PromptFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse seed fixture: %w", err)
	}

	requests := make([]*services.CreatePromptRequest, 0, len(fixtures))
	for i, f := range fixtures {
		req := &services.CreatePromptRequest{
			Name:          f.Name,
			Prompt:        f.Prompt,
			LocationID:    f.LocationID,
			BusinessName:  f.BusinessName,
			Knowledgebase: f.Knowledgebase,
		}

		if f.Inventory != nil {
			inventory, err := json.Marshal(f.Inventory)
			if err != nil {
				return nil, fmt.Errorf("prompt %d (%s): inventory is not JSON-compatible: %w", i+1, f.Name, err)
			}
			req.Inventory = inventory
		}

		requests = append(requests, req)
	}

	return requests, nil
}

// PromptSeeder creates prompts through the service layer so seeded rows get
// the same validation and location_id backfill as API-created ones
type PromptSeeder struct {
	promptService services.PromptService
	logger        *slog.Logger
}

// NewPromptSeeder creates a new prompt seeder
func NewPromptSeeder(promptService services.PromptService, logger *slog.Logger) *PromptSeeder {
	return &PromptSeeder{
		promptService: promptService,
		logger:        logger,
	}
}

// Seed creates every request, logging and skipping the ones that fail.
// It returns how many were created.
func (s *PromptSeeder) Seed(ctx context.Context, requests []*services.CreatePromptRequest) int {
	created := 0
	for i, req := range requests {
		result, err := s.promptService.CreatePrompt(ctx, req)
		if err != nil {
			s.logger.Error("seed prompt failed", "index", i+1, "name", req.Name, "error", err)
			continue
		}
		if result.Warning != "" {
			s.logger.Warn("seed prompt created with warning", "id", result.Prompt.ID, "warning", result.Warning)
		}

		created++
		s.logger.Info("seeded prompt",
			"index", i+1,
			"total", len(requests),
			"id", result.Prompt.ID,
			"name", result.Prompt.Name,
		)
	}
	return created
}
