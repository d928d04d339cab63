package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgInvalidTextRepresentation = "22P02"
	pgUndefinedTable            = "42P01"
)

// IsPgNoRowsError checks if error is a "no rows" error
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsPgInvalidTextError checks if error is an invalid_text_representation,
// which is what Postgres returns when a non-uuid string is compared to a
// uuid column
func IsPgInvalidTextError(err error) bool {
	return pgErrorCode(err) == pgInvalidTextRepresentation
}

// IsPgUndefinedTableError checks if error is an undefined_table error
func IsPgUndefinedTableError(err error) bool {
	return pgErrorCode(err) == pgUndefinedTable
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
