package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "not found", err: &NotFoundError{Message: "prompt x"}, sentinel: ErrNotFound},
		{name: "validation", err: &ValidationError{Message: "name: cannot be blank"}, sentinel: ErrValidation},
		{name: "configuration", err: &ConfigurationError{Missing: []string{"SUPABASE_DB_URL"}}, sentinel: ErrConfiguration},
		{name: "storage", err: &StorageError{Op: "list prompts", Err: errors.New("boom")}, sentinel: ErrStorage},
		{name: "wrapped not found", err: fmt.Errorf("prompt 1: %w", ErrNotFound), sentinel: ErrNotFound},
		{name: "wrapped storage", err: fmt.Errorf("update: %w", &StorageError{Op: "update prompt", Err: errors.New("x")}), sentinel: ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &StorageError{Op: "list prompts", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "list prompts: connection refused", err.Error())
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{Missing: []string{"SUPABASE_DB_URL", "SUPABASE_KEY"}}
	assert.Equal(t, "missing required configuration: SUPABASE_DB_URL, SUPABASE_KEY", err.Error())
}
