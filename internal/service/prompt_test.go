package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdesk/internal/domain"
	"promptdesk/internal/domain/services"
	"promptdesk/internal/repository/repotest"
)

func newTestService() (services.PromptService, *repotest.PromptRepository) {
	repo := repotest.NewPromptRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPromptService(repo, logger), repo
}

func strPtr(s string) *string { return &s }

func TestCreatePrompt_BackfillsLocationID(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	result, err := svc.CreatePrompt(ctx, &services.CreatePromptRequest{
		Name:   "Escalation",
		Prompt: "Ping the agent",
	})
	require.NoError(t, err)

	assert.Equal(t, services.Created, result.Outcome)
	assert.Empty(t, result.Warning)
	require.NotNil(t, result.Prompt.LocationID)
	assert.Equal(t, result.Prompt.ID, *result.Prompt.LocationID)
	assert.Equal(t, 1, repo.Calls(repotest.OpSetLocationID))

	stored, err := svc.GetPrompt(ctx, result.Prompt.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Prompt.ID, *stored.LocationID)
}

func TestCreatePrompt_BlankLocationIDIsBackfilled(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.CreatePrompt(context.Background(), &services.CreatePromptRequest{
		Name:       "Greeting",
		Prompt:     "Say hello",
		LocationID: strPtr("   "),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Prompt.LocationID)
	assert.Equal(t, result.Prompt.ID, *result.Prompt.LocationID)
}

func TestCreatePrompt_KeepsGivenLocationID(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.CreatePrompt(context.Background(), &services.CreatePromptRequest{
		Name:         "Greeting",
		Prompt:       "Say hello",
		LocationID:   strPtr("loc-42"),
		BusinessName: strPtr("Acme"),
		Inventory:    json.RawMessage(`["widget"]`),
	})
	require.NoError(t, err)

	assert.Equal(t, services.Created, result.Outcome)
	assert.Equal(t, "loc-42", *result.Prompt.LocationID)
	assert.Equal(t, "Acme", *result.Prompt.BusinessName)
	assert.JSONEq(t, `["widget"]`, string(result.Prompt.Inventory))
	assert.Equal(t, 0, repo.Calls(repotest.OpSetLocationID))
}

func TestCreatePrompt_BackfillFailureIsWarning(t *testing.T) {
	svc, repo := newTestService()
	repo.FailOn(repotest.OpSetLocationID, errors.New("connection reset"))

	result, err := svc.CreatePrompt(context.Background(), &services.CreatePromptRequest{
		Name:   "Escalation",
		Prompt: "Ping the agent",
	})
	require.NoError(t, err, "the insert stands when only the backfill fails")

	assert.Equal(t, services.CreatedWithWarning, result.Outcome)
	assert.Contains(t, result.Warning, "location_id could not be set")
	assert.Contains(t, result.Warning, "connection reset")
	assert.NotEmpty(t, result.Prompt.ID)
	assert.Nil(t, result.Prompt.LocationID)
	assert.Equal(t, 1, repo.Len())
}

func TestCreatePrompt_Validation(t *testing.T) {
	tests := []struct {
		name      string
		req       *services.CreatePromptRequest
		wantField string
	}{
		{name: "nil request", req: nil},
		{name: "missing name", req: &services.CreatePromptRequest{Prompt: "p"}, wantField: "name"},
		{name: "blank name", req: &services.CreatePromptRequest{Name: "  \t", Prompt: "p"}, wantField: "name"},
		{name: "missing prompt", req: &services.CreatePromptRequest{Name: "n"}, wantField: "prompt"},
		{name: "blank prompt", req: &services.CreatePromptRequest{Name: "n", Prompt: "\n"}, wantField: "prompt"},
		{
			name:      "name too long",
			req:       &services.CreatePromptRequest{Name: strings.Repeat("é", 256), Prompt: "p"},
			wantField: "name",
		},
		{
			name:      "business name too long",
			req:       &services.CreatePromptRequest{Name: "n", Prompt: "p", BusinessName: strPtr(strings.Repeat("b", 256))},
			wantField: "business_name",
		},
		{
			name:      "invalid inventory",
			req:       &services.CreatePromptRequest{Name: "n", Prompt: "p", Inventory: json.RawMessage(`{"a":`)},
			wantField: "inventory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()

			_, err := svc.CreatePrompt(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			if tt.wantField != "" {
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Contains(t, verr.Fields, tt.wantField)
			}

			assert.Equal(t, 0, repo.Calls(repotest.OpCreate), "nothing is written on validation failure")
			assert.Equal(t, 0, repo.Len())
		})
	}
}

func TestCreatePrompt_NameAtLimitIsAccepted(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreatePrompt(context.Background(), &services.CreatePromptRequest{
		Name:   strings.Repeat("é", 255),
		Prompt: "p",
	})
	assert.NoError(t, err)
}

func TestCreatePrompt_StorageFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.FailOn(repotest.OpCreate, errors.New("connection refused"))

	_, err := svc.CreatePrompt(context.Background(), &services.CreatePromptRequest{Name: "n", Prompt: "p"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestListPrompts_AscendingByCreatedAt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	empty, err := svc.ListPrompts(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.CreatePrompt(ctx, &services.CreatePromptRequest{Name: name, Prompt: "p"})
		require.NoError(t, err)
	}

	prompts, err := svc.ListPrompts(ctx)
	require.NoError(t, err)
	require.Len(t, prompts, 3)
	assert.Equal(t, "first", prompts[0].Name)
	assert.Equal(t, "second", prompts[1].Name)
	assert.Equal(t, "third", prompts[2].Name)
	for i := 1; i < len(prompts); i++ {
		assert.True(t, prompts[i-1].CreatedAt.Before(prompts[i].CreatedAt))
	}
}

func TestUpdatePrompt_FullReplaceKeepsCreatedAt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreatePrompt(ctx, &services.CreatePromptRequest{
		Name:          "Greeting",
		Prompt:        "Say hello",
		Knowledgebase: strPtr("hours: 9-5"),
	})
	require.NoError(t, err)
	id := created.Prompt.ID

	updated, err := svc.UpdatePrompt(ctx, id, &services.UpdatePromptRequest{
		Name:         "Greeting",
		Prompt:       "Say hello",
		LocationID:   strPtr(id),
		BusinessName: strPtr("New Co"),
	})
	require.NoError(t, err)

	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "New Co", *updated.BusinessName)
	assert.Nil(t, updated.Knowledgebase, "absent optional fields are cleared")
	assert.Equal(t, created.Prompt.CreatedAt, updated.CreatedAt)

	fetched, err := svc.GetPrompt(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New Co", *fetched.BusinessName)
	assert.Equal(t, created.Prompt.CreatedAt, fetched.CreatedAt)
}

func TestUpdatePrompt_UnknownIDIsNotFound(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.UpdatePrompt(context.Background(), "00000000-0000-0000-0000-000000000000",
		&services.UpdatePromptRequest{Name: "n", Prompt: "p"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, 0, repo.Len(), "update must not create a record")
}

func TestUpdatePrompt_Validation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreatePrompt(ctx, &services.CreatePromptRequest{Name: "n", Prompt: "p"})
	require.NoError(t, err)

	_, err = svc.UpdatePrompt(ctx, created.Prompt.ID, &services.UpdatePromptRequest{Name: "", Prompt: "p"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, 0, repo.Calls(repotest.OpUpdate))

	_, err = svc.UpdatePrompt(ctx, created.Prompt.ID, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestDeletePrompt(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreatePrompt(ctx, &services.CreatePromptRequest{Name: "n", Prompt: "p"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePrompt(ctx, created.Prompt.ID))
	assert.Equal(t, 0, repo.Len())

	_, err = svc.GetPrompt(ctx, created.Prompt.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.NoError(t, svc.DeletePrompt(ctx, created.Prompt.ID), "deleting twice still succeeds")
	assert.NoError(t, svc.DeletePrompt(ctx, "not-a-uuid"))
}
