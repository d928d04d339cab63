package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"promptdesk/internal/config"
	"promptdesk/internal/domain"
	"promptdesk/internal/domain/models"
	"promptdesk/internal/domain/repositories"
	"promptdesk/internal/domain/services"
	"promptdesk/internal/metrics"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// promptService implements the PromptService interface
type promptService struct {
	promptRepo repositories.PromptRepository
	logger     *slog.Logger
}

// NewPromptService creates a new prompt service
func NewPromptService(
	promptRepo repositories.PromptRepository,
	logger *slog.Logger,
) services.PromptService {
	return &promptService{
		promptRepo: promptRepo,
		logger:     logger,
	}
}

// ListPrompts retrieves all prompts, oldest first
func (s *promptService) ListPrompts(ctx context.Context) (prompts []models.Prompt, err error) {
	defer func() { metrics.RecordOperation("list", err) }()

	prompts, err = s.promptRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return prompts, nil
}

// GetPrompt retrieves a prompt by ID
func (s *promptService) GetPrompt(ctx context.Context, id string) (prompt *models.Prompt, err error) {
	defer func() { metrics.RecordOperation("get", err) }()

	return s.promptRepo.GetByID(ctx, id)
}

// CreatePrompt inserts a prompt. When the caller gave no location_id, a
// second write sets it to the generated ID. That second write is allowed to
// fail: the insert stands and the result carries a warning instead.
func (s *promptService) CreatePrompt(ctx context.Context, req *services.CreatePromptRequest) (result *services.CreateResult, err error) {
	defer func() { metrics.RecordOperation("create", err) }()

	if err := s.validateCreateRequest(req); err != nil {
		return nil, toValidationError(err)
	}

	prompt := &models.Prompt{
		Name:          req.Name,
		Prompt:        req.Prompt,
		LocationID:    blankToNil(req.LocationID),
		BusinessName:  req.BusinessName,
		Knowledgebase: req.Knowledgebase,
		Inventory:     req.Inventory,
	}

	if err := s.promptRepo.Create(ctx, prompt); err != nil {
		return nil, err
	}

	s.logger.Info("prompt created",
		"id", prompt.ID,
		"name", prompt.Name,
		"has_location_id", prompt.LocationID != nil,
	)

	if prompt.LocationID != nil {
		return &services.CreateResult{Prompt: prompt, Outcome: services.Created}, nil
	}

	if err := s.promptRepo.SetLocationID(ctx, prompt.ID, prompt.ID); err != nil {
		metrics.RecordBackfillFailure()
		s.logger.Warn("location_id backfill failed",
			"id", prompt.ID,
			"error", err,
		)
		return &services.CreateResult{
			Prompt:  prompt,
			Outcome: services.CreatedWithWarning,
			Warning: fmt.Sprintf("prompt created but location_id could not be set: %v", err),
		}, nil
	}

	locationID := prompt.ID
	prompt.LocationID = &locationID

	return &services.CreateResult{Prompt: prompt, Outcome: services.Created}, nil
}

// UpdatePrompt replaces every mutable field of a prompt
func (s *promptService) UpdatePrompt(ctx context.Context, id string, req *services.UpdatePromptRequest) (prompt *models.Prompt, err error) {
	defer func() { metrics.RecordOperation("update", err) }()

	if err := s.validateUpdateRequest(req); err != nil {
		return nil, toValidationError(err)
	}

	prompt = &models.Prompt{
		ID:            id,
		Name:          req.Name,
		Prompt:        req.Prompt,
		LocationID:    req.LocationID,
		BusinessName:  req.BusinessName,
		Knowledgebase: req.Knowledgebase,
		Inventory:     req.Inventory,
	}

	if err := s.promptRepo.Update(ctx, prompt); err != nil {
		return nil, err
	}

	s.logger.Info("prompt updated",
		"id", prompt.ID,
		"name", prompt.Name,
	)

	return prompt, nil
}

// DeletePrompt deletes a prompt. There is no existence check: deleting an
// absent prompt succeeds.
func (s *promptService) DeletePrompt(ctx context.Context, id string) (err error) {
	defer func() { metrics.RecordOperation("delete", err) }()

	if err := s.promptRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("prompt deleted", "id", id)
	return nil
}

// validateCreateRequest validates a create prompt request
func (s *promptService) validateCreateRequest(req *services.CreatePromptRequest) error {
	if req == nil {
		return errors.New("request body is required")
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.RuneLength(1, config.MaxPromptNameLength),
			validation.By(notBlank),
		),
		validation.Field(&req.Prompt,
			validation.Required,
			validation.By(notBlank),
		),
		validation.Field(&req.LocationID, validation.RuneLength(0, config.MaxLocationIDLength)),
		validation.Field(&req.BusinessName, validation.RuneLength(0, config.MaxBusinessNameLength)),
		validation.Field(&req.Inventory, validation.By(validJSON)),
	)
}

// validateUpdateRequest validates an update prompt request
func (s *promptService) validateUpdateRequest(req *services.UpdatePromptRequest) error {
	if req == nil {
		return errors.New("request body is required")
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.RuneLength(1, config.MaxPromptNameLength),
			validation.By(notBlank),
		),
		validation.Field(&req.Prompt,
			validation.Required,
			validation.By(notBlank),
		),
		validation.Field(&req.LocationID, validation.RuneLength(0, config.MaxLocationIDLength)),
		validation.Field(&req.BusinessName, validation.RuneLength(0, config.MaxBusinessNameLength)),
		validation.Field(&req.Inventory, validation.By(validJSON)),
	)
}

// notBlank rejects strings that are only whitespace
func notBlank(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// validJSON rejects inventory payloads that are not valid JSON
func validJSON(value interface{}) error {
	raw, ok := value.(json.RawMessage)
	if !ok {
		return errors.New("must be JSON")
	}
	if len(raw) == 0 {
		return nil
	}
	if !json.Valid(raw) {
		return errors.New("must be valid JSON")
	}
	return nil
}

// toValidationError converts ozzo validation output into a domain error,
// keeping the per-field messages
func toValidationError(err error) error {
	verr := &domain.ValidationError{Message: err.Error()}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		verr.Fields = make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			verr.Fields[field] = fieldErr.Error()
		}
	}

	return verr
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
