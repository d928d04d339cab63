package postgres

import (
	"context"
	"fmt"

	"promptdesk/internal/domain/repositories"
)

// EnsureSchema creates the prompts table and its created_at index if they
// don't exist. gen_random_uuid() is built into Postgres 13+.
func EnsureSchema(ctx context.Context, db repositories.DBTX, tables *TableNames) error {
	table := quoteIdent(tables.Prompts)

	createPrompts := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name          TEXT NOT NULL,
			prompt        TEXT NOT NULL,
			location_id   TEXT,
			business_name TEXT,
			knowledgebase TEXT,
			inventory     JSONB,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`, table)
	if _, err := db.Exec(ctx, createPrompts); err != nil {
		return fmt.Errorf("create %s: %w", tables.Prompts, err)
	}

	createIndex := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (created_at)`,
		quoteIdent("idx_"+tables.Prompts+"_created_at"), table)
	if _, err := db.Exec(ctx, createIndex); err != nil {
		return fmt.Errorf("create created_at index: %w", err)
	}

	return nil
}

// DropSchema drops the prompts table
func DropSchema(ctx context.Context, db repositories.DBTX, tables *TableNames) error {
	query := fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, quoteIdent(tables.Prompts))
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("drop %s: %w", tables.Prompts, err)
	}
	return nil
}

// ClearPrompts deletes every prompt but keeps the table
func ClearPrompts(ctx context.Context, db repositories.DBTX, tables *TableNames) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s`, quoteIdent(tables.Prompts))
	result, err := db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("clear %s: %w", tables.Prompts, err)
	}
	return result.RowsAffected(), nil
}
