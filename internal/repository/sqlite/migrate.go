package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS experiences (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		years_of_exp REAL NOT NULL CHECK (years_of_exp >= 0),
		current_salary REAL NOT NULL CHECK (current_salary >= 0),
		expected_salary REAL NOT NULL CHECK (expected_salary >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		age INTEGER NOT NULL CHECK (age >= 0),
		gender TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email TEXT NOT NULL,
		experience_id INTEGER NOT NULL REFERENCES experiences(id) ON DELETE CASCADE,
		status TEXT NOT NULL DEFAULT 'APPLIED',
		reason TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_status ON candidates (status)`,
}

var uniqueContacts = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_candidates_phone_number ON candidates (phone_number)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_candidates_email ON candidates (email)`,
}

// Migrate creates the candidate tables, plus unique contact indexes when
// enforceUniqueContacts is set.
func Migrate(ctx context.Context, db *sql.DB, enforceUniqueContacts bool) error {
	stmts := schema
	if enforceUniqueContacts {
		stmts = append(append([]string{}, schema...), uniqueContacts...)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}
