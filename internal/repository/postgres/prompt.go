package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"promptdesk/internal/domain"
	"promptdesk/internal/domain/models"
	"promptdesk/internal/domain/repositories"
)

const promptColumns = `id::text, name, prompt, location_id, business_name, knowledgebase, inventory::text, created_at`

// PostgresPromptRepository implements the PromptRepository interface
type PostgresPromptRepository struct {
	db     repositories.DBTX
	table  string
	logger *slog.Logger
}

// NewPromptRepository creates a new prompt repository
func NewPromptRepository(config *RepositoryConfig) repositories.PromptRepository {
	return newPromptRepository(config.Pool, config.Tables, config.Logger)
}

func newPromptRepository(db repositories.DBTX, tables *TableNames, logger *slog.Logger) *PostgresPromptRepository {
	return &PostgresPromptRepository{
		db:     db,
		table:  quoteIdent(tables.Prompts),
		logger: logger,
	}
}

// List retrieves every prompt, oldest first
func (r *PostgresPromptRepository) List(ctx context.Context) ([]models.Prompt, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY created_at ASC, id ASC
	`, promptColumns, r.table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.storageError("list prompts", err)
	}
	defer rows.Close()

	prompts := []models.Prompt{}
	for rows.Next() {
		prompt, err := scanPrompt(rows)
		if err != nil {
			return nil, r.storageError("scan prompt", err)
		}
		prompts = append(prompts, *prompt)
	}

	if err := rows.Err(); err != nil {
		return nil, r.storageError("iterate prompts", err)
	}

	return prompts, nil
}

// GetByID retrieves a prompt by ID
func (r *PostgresPromptRepository) GetByID(ctx context.Context, id string) (*models.Prompt, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, promptColumns, r.table)

	prompt, err := scanPrompt(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("prompt %s not found", id)}
		}
		return nil, r.storageError("get prompt", err)
	}

	return prompt, nil
}

// Create inserts a prompt; the database assigns id and created_at
func (r *PostgresPromptRepository) Create(ctx context.Context, prompt *models.Prompt) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, prompt, location_id, business_name, knowledgebase, inventory)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb)
		RETURNING id::text, created_at
	`, r.table)

	err := r.db.QueryRow(ctx, query,
		prompt.Name,
		prompt.Prompt,
		prompt.LocationID,
		prompt.BusinessName,
		prompt.Knowledgebase,
		jsonbParam(prompt.Inventory),
	).Scan(&prompt.ID, &prompt.CreatedAt)

	if err != nil {
		return r.storageError("create prompt", err)
	}

	return nil
}

// Update replaces all mutable fields and scans the stored row back
func (r *PostgresPromptRepository) Update(ctx context.Context, prompt *models.Prompt) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, prompt = $2, location_id = $3, business_name = $4,
			knowledgebase = $5, inventory = $6::jsonb
		WHERE id = $7
		RETURNING %s
	`, r.table, promptColumns)

	updated, err := scanPrompt(r.db.QueryRow(ctx, query,
		prompt.Name,
		prompt.Prompt,
		prompt.LocationID,
		prompt.BusinessName,
		prompt.Knowledgebase,
		jsonbParam(prompt.Inventory),
		prompt.ID,
	))

	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return &domain.NotFoundError{Message: fmt.Sprintf("prompt %s not found", prompt.ID)}
		}
		return r.storageError("update prompt", err)
	}

	*prompt = *updated
	return nil
}

// SetLocationID overwrites location_id for one prompt
func (r *PostgresPromptRepository) SetLocationID(ctx context.Context, id, locationID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET location_id = $1
		WHERE id = $2
	`, r.table)

	result, err := r.db.Exec(ctx, query, locationID, id)
	if err != nil {
		return r.storageError("set location_id", err)
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("prompt %s not found", id)}
	}

	return nil
}

// Delete removes a prompt. A missing row is not an error.
func (r *PostgresPromptRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if IsPgInvalidTextError(err) {
			// Not a uuid, so nothing could have matched
			return nil
		}
		return r.storageError("delete prompt", err)
	}

	r.logger.Debug("prompt delete executed", "id", id, "rows_affected", result.RowsAffected())
	return nil
}

func (r *PostgresPromptRepository) storageError(op string, err error) error {
	if IsPgUndefinedTableError(err) {
		r.logger.Error("prompts table is missing; run cmd/seed -schema-only", "table", r.table)
	}
	return &domain.StorageError{Op: op, Err: err}
}

// scanner is satisfied by pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanPrompt(row scanner) (*models.Prompt, error) {
	var prompt models.Prompt
	var inventory *string

	err := row.Scan(
		&prompt.ID,
		&prompt.Name,
		&prompt.Prompt,
		&prompt.LocationID,
		&prompt.BusinessName,
		&prompt.Knowledgebase,
		&inventory,
		&prompt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if inventory != nil {
		prompt.Inventory = json.RawMessage(*inventory)
	}

	return &prompt, nil
}

// jsonbParam turns a raw JSON value into a text parameter for a ::jsonb
// cast. Absent values and JSON null are stored as SQL NULL.
func jsonbParam(raw json.RawMessage) *string {
	if !models.IsJSONPresent(raw) {
		return nil
	}
	s := string(raw)
	return &s
}
