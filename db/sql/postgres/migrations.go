package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrNilDB = errors.New("postgres: db is nil")

// StatusTableSchema creates the reference table mirrored from the status registry.
const StatusTableSchema = `CREATE TABLE IF NOT EXISTS http_status_codes (
	code         INTEGER PRIMARY KEY CHECK (code BETWEEN 100 AND 599),
	message      TEXT    NOT NULL,
	class        TEXT    NOT NULL,
	webdav       BOOLEAN NOT NULL DEFAULT FALSE,
	experimental BOOLEAN NOT NULL DEFAULT FALSE
)`

// ApplyMigrations executes the provided SQL statements in order within the given context.
func ApplyMigrations(ctx context.Context, db *sql.DB, statements ...string) error {
	if db == nil {
		return ErrNilDB
	}
	for _, stmt := range statements {
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: migrate: %w", translateStatusError(err))
		}
	}
	return nil
}
