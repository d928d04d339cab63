// Package repotest provides an in-memory PromptRepository for service and
// handler tests. It is not used by the server.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"promptdesk/internal/domain"
	"promptdesk/internal/domain/models"
	"promptdesk/internal/domain/repositories"
)

var _ repositories.PromptRepository = (*PromptRepository)(nil)

// Operation names accepted by FailOn
const (
	OpList          = "list"
	OpGet           = "get"
	OpCreate        = "create"
	OpUpdate        = "update"
	OpSetLocationID = "set_location_id"
	OpDelete        = "delete"
)

// PromptRepository is a goroutine-safe in-memory PromptRepository.
// created_at comes from a fake clock that advances one millisecond per insert.
type PromptRepository struct {
	mu      sync.Mutex
	prompts map[string]models.Prompt
	clock   time.Time
	failOn  map[string]error
	calls   map[string]int
}

// NewPromptRepository creates an empty repository
func NewPromptRepository() *PromptRepository {
	return &PromptRepository{
		prompts: make(map[string]models.Prompt),
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		failOn:  make(map[string]error),
		calls:   make(map[string]int),
	}
}

// FailOn makes every later call to op fail with err. A nil err clears it.
// Errors are wrapped as domain.StorageError, as the Postgres repository does.
func (r *PromptRepository) FailOn(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.failOn, op)
		return
	}
	r.failOn[op] = &domain.StorageError{Op: op, Err: err}
}

// Calls reports how many times op was invoked
func (r *PromptRepository) Calls(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[op]
}

// Len reports the number of stored prompts
func (r *PromptRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.prompts)
}

// begin records a call and returns the injected failure, if any.
// Callers hold r.mu.
func (r *PromptRepository) begin(op string) error {
	r.calls[op]++
	return r.failOn[op]
}

func (r *PromptRepository) List(ctx context.Context) ([]models.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(OpList); err != nil {
		return nil, err
	}

	prompts := make([]models.Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		prompts = append(prompts, clone(p))
	}
	sort.Slice(prompts, func(i, j int) bool {
		if !prompts[i].CreatedAt.Equal(prompts[j].CreatedAt) {
			return prompts[i].CreatedAt.Before(prompts[j].CreatedAt)
		}
		return prompts[i].ID < prompts[j].ID
	})
	return prompts, nil
}

func (r *PromptRepository) GetByID(ctx context.Context, id string) (*models.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(OpGet); err != nil {
		return nil, err
	}

	p, ok := r.prompts[id]
	if !ok {
		return nil, notFound(id)
	}
	out := clone(p)
	return &out, nil
}

func (r *PromptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(OpCreate); err != nil {
		return err
	}

	r.clock = r.clock.Add(time.Millisecond)
	prompt.ID = uuid.NewString()
	prompt.CreatedAt = r.clock
	r.prompts[prompt.ID] = clone(*prompt)
	return nil
}

func (r *PromptRepository) Update(ctx context.Context, prompt *models.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(OpUpdate); err != nil {
		return err
	}

	existing, ok := r.prompts[prompt.ID]
	if !ok {
		return notFound(prompt.ID)
	}
	prompt.CreatedAt = existing.CreatedAt
	r.prompts[prompt.ID] = clone(*prompt)
	return nil
}

func (r *PromptRepository) SetLocationID(ctx context.Context, id, locationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(OpSetLocationID); err != nil {
		return err
	}

	p, ok := r.prompts[id]
	if !ok {
		return notFound(id)
	}
	p.LocationID = &locationID
	r.prompts[id] = p
	return nil
}

func (r *PromptRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(OpDelete); err != nil {
		return err
	}

	delete(r.prompts, id)
	return nil
}

func notFound(id string) error {
	return &domain.NotFoundError{Message: fmt.Sprintf("prompt %s not found", id)}
}

// clone copies the pointer and slice fields so callers can't alias stored state
func clone(p models.Prompt) models.Prompt {
	out := p
	out.LocationID = copyString(p.LocationID)
	out.BusinessName = copyString(p.BusinessName)
	out.Knowledgebase = copyString(p.Knowledgebase)
	if p.Inventory != nil {
		out.Inventory = append([]byte(nil), p.Inventory...)
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
