package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"promptdesk/internal/domain"
)

type Config struct {
	Port          string
	Environment   string
	SupabaseURL   string
	SupabaseKey   string
	SupabaseDBURL string
	CORSOrigins   string
	TablePrefix   string
	PromptsTable  string // Base name; the prefix is prepended
	// Logging
	LogDir      string // Empty disables the file sink
	LogMaxFiles int
	// Server lifecycle
	ShutdownTimeout time.Duration
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     env,
		SupabaseURL:     getEnv("SUPABASE_URL", ""),
		SupabaseKey:     getEnv("SUPABASE_KEY", ""),
		SupabaseDBURL:   getEnv("SUPABASE_DB_URL", ""),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		TablePrefix:     getTablePrefix(env),
		PromptsTable:    getEnv("PROMPTS_TABLE", "prompts"),
		LogDir:          getEnv("LOG_DIR", ""),
		LogMaxFiles:     getEnvInt("LOG_MAX_FILES", 10),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate reports the required settings that are missing.
// Only names are reported, never values.
func (c *Config) Validate() error {
	var missing []string
	if c.SupabaseDBURL == "" {
		missing = append(missing, "SUPABASE_DB_URL")
	}
	if len(missing) > 0 {
		return &domain.ConfigurationError{Missing: missing}
	}
	return nil
}

// PromptsTableName returns the environment-prefixed prompts table name
func (c *Config) PromptsTableName() string {
	return c.TablePrefix + c.PromptsTable
}

// CORSOriginList splits CORS_ORIGINS on commas
func (c *Config) CORSOriginList() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
