package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promptdesk/internal/domain"
)

const (
	maxPoolConns = 25
	minPoolConns = 5

	// Supabase's transaction pooler (PgBouncer) listens on 6543
	pgBouncerPort = 6543
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds the environment-prefixed table names
type TableNames struct {
	Prompts string
}

// NewTableNames creates table names from the environment prefix and the
// base name of the prompts table (e.g. "dev_" + "prompts")
func NewTableNames(prefix, promptsTable string) *TableNames {
	return &TableNames{
		Prompts: fmt.Sprintf("%s%s", prefix, promptsTable),
	}
}

// quoteIdent quotes a table name for safe interpolation into SQL text.
// Table names are configuration, not user input, but they still go through
// fmt.Sprintf so they must be quoted.
func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// CreateConnectionPool creates a pgx connection pool for the Supabase database.
//
// Port 6543 is Supabase's PgBouncer transaction pooler, which does not support
// prepared statements. On that port the pool switches to
// QueryExecModeCacheDescribe: extended protocol (needed for JSONB parameters)
// without server-side prepared statements. An explicit
// default_query_exec_mode in the connection string wins over this.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, &domain.ConfigurationError{Missing: []string{"SUPABASE_DB_URL"}}
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = maxPoolConns
	config.MinConns = minPoolConns

	if config.ConnConfig.Port == pgBouncerPort && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", pgBouncerPort)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
