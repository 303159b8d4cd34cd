package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS experiences (
		id BIGSERIAL PRIMARY KEY,
		years_of_exp DOUBLE PRECISION NOT NULL CHECK (years_of_exp >= 0),
		current_salary NUMERIC(10,2) NOT NULL CHECK (current_salary >= 0),
		expected_salary NUMERIC(10,2) NOT NULL CHECK (expected_salary >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		age INTEGER NOT NULL CHECK (age >= 0),
		gender VARCHAR(10) NOT NULL,
		phone_number VARCHAR(10) NOT NULL,
		email VARCHAR(254) NOT NULL,
		experience_id BIGINT NOT NULL REFERENCES experiences(id) ON DELETE CASCADE,
		status VARCHAR(15) NOT NULL DEFAULT 'APPLIED',
		reason TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_status ON candidates (status)`,
}

var uniqueContacts = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_candidates_phone_number ON candidates (phone_number)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_candidates_email ON candidates (email)`,
}

// Migrate creates the candidate tables. With enforceUniqueContacts set,
// phone numbers and emails also get unique indexes.
func Migrate(ctx context.Context, db *pgxpool.Pool, enforceUniqueContacts bool) error {
	stmts := schema
	if enforceUniqueContacts {
		stmts = append(append([]string{}, schema...), uniqueContacts...)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate postgres: %w", err)
		}
	}
	return nil
}
