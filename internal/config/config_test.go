package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdesk/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "SUPABASE_URL", "SUPABASE_KEY", "SUPABASE_DB_URL",
		"CORS_ORIGINS", "TABLE_PREFIX", "PROMPTS_TABLE", "LOG_DIR", "LOG_MAX_FILES", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "dev_", cfg.TablePrefix)
	assert.Equal(t, "dev_prompts", cfg.PromptsTableName())
	assert.Equal(t, []string{"*"}, cfg.CORSOriginList())
	assert.Equal(t, 10, cfg.LogMaxFiles)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.LogDir)
}

func TestGetTablePrefix(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override string
		want     string
	}{
		{name: "dev", env: "dev", want: "dev_"},
		{name: "test", env: "test", want: "test_"},
		{name: "prod", env: "prod", want: "prod_"},
		{name: "unknown falls back to dev", env: "staging", want: "dev_"},
		{name: "override wins", env: "prod", override: "demo_", want: "demo_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TABLE_PREFIX", tt.override)
			assert.Equal(t, tt.want, getTablePrefix(tt.env))
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("TABLE_PREFIX", "")
	t.Setenv("PROMPTS_TABLE", "agent_prompts")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://app.example.com,")
	t.Setenv("LOG_MAX_FILES", "3")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg := Load()

	assert.Equal(t, "test_agent_prompts", cfg.PromptsTableName())
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOriginList())
	assert.Equal(t, 3, cfg.LogMaxFiles)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LOG_MAX_FILES", "many")
	t.Setenv("SHUTDOWN_TIMEOUT", "-5s")

	cfg := Load()

	assert.Equal(t, 10, cfg.LogMaxFiles)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{SupabaseURL: "https://x.supabase.co", SupabaseKey: "secret-key"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))

	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"SUPABASE_DB_URL"}, cfgErr.Missing)
	assert.NotContains(t, err.Error(), "secret-key")

	cfg.SupabaseDBURL = "postgres://localhost:5432/postgres"
	assert.NoError(t, cfg.Validate())
}

func TestSetupLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	w, err := SetupLogFile(dir, 2)
	require.NoError(t, err)
	defer w.Close()

	_, err = w.Write([]byte(`{"msg":"hello"}` + "\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
