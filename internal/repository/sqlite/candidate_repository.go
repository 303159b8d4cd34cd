package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ats-backend/internal/domain"
	"ats-backend/internal/repository/sqlquery"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const selectCandidates = `
	SELECT
		c.id, c.name, c.age, c.gender, c.phone_number, c.email,
		c.status, c.reason, c.created_at, c.updated_at,
		e.id, e.years_of_exp, e.current_salary, e.expected_salary
	FROM candidates c
	LEFT JOIN experiences e ON e.id = c.experience_id`

// Create inserts the experience and the candidate in one transaction.
func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) (int64, error) {
	if candidate.Experience == nil {
		return 0, fmt.Errorf("candidate has no experience")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	exp := candidate.Experience
	res, err := tx.ExecContext(ctx,
		`INSERT INTO experiences (years_of_exp, current_salary, expected_salary) VALUES (?, ?, ?)`,
		exp.YearsOfExp, exp.CurrentSalary, exp.ExpectedSalary,
	)
	if err != nil {
		return 0, fmt.Errorf("insert experience: %w", err)
	}
	if exp.ID, err = res.LastInsertId(); err != nil {
		return 0, fmt.Errorf("experience id: %w", err)
	}

	if candidate.Status == "" {
		candidate.Status = domain.StatusApplied
	}
	now := time.Now().UTC()

	res, err = tx.ExecContext(ctx, `
		INSERT INTO candidates (name, age, gender, phone_number, email, experience_id, status, reason, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		candidate.Name, candidate.Age, string(candidate.Gender), candidate.PhoneNumber, candidate.Email,
		exp.ID, string(candidate.Status), nullString(candidate.Reason),
		formatTime(now), formatTime(now),
	)
	if err != nil {
		return 0, mapInsertError(err)
	}
	if candidate.ID, err = res.LastInsertId(); err != nil {
		return 0, fmt.Errorf("candidate id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit candidate: %w", err)
	}
	committed = true

	candidate.CreatedAt, candidate.UpdatedAt = now, now
	return candidate.ID, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	row := r.db.QueryRowContext(ctx, selectCandidates+` WHERE c.id = ?`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate %d: %w", id, err)
	}
	return c, nil
}

func (r *candidateRepository) Query(ctx context.Context, predicates []domain.Predicate) ([]domain.Candidate, error) {
	where, args, err := sqlquery.Where(sqlquery.SQLite, predicates, 1)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, selectCandidates+" "+where+" ORDER BY c.id", args...)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE candidates SET status = ?, reason = ?, updated_at = ? WHERE id = ?`,
		string(candidate.Status), nullString(candidate.Reason), formatTime(now), candidate.ID,
	)
	if err != nil {
		return fmt.Errorf("update candidate %d: %w", candidate.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update candidate %d: %w", candidate.ID, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	candidate.UpdatedAt = now
	return nil
}

func (r *candidateRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row scanner) (*domain.Candidate, error) {
	var (
		c                        domain.Candidate
		gender, status           string
		reason                   sql.NullString
		createdAt, updatedAt     string
		expID                    sql.NullInt64
		years, current, expected sql.NullFloat64
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Age, &gender, &c.PhoneNumber, &c.Email,
		&status, &reason, &createdAt, &updatedAt,
		&expID, &years, &current, &expected,
	)
	if err != nil {
		return nil, err
	}

	c.Gender = domain.Gender(gender)
	c.Status = domain.JobStatus(status)
	if reason.Valid {
		c.Reason = &reason.String
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if expID.Valid {
		c.Experience = &domain.Experience{
			ID:             expID.Int64,
			YearsOfExp:     years.Float64,
			CurrentSalary:  current.Float64,
			ExpectedSalary: expected.Float64,
		}
	}
	return &c, nil
}

func mapInsertError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && isUniqueViolation(sqliteErr) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateContact, sqliteErr.Error())
	}
	return fmt.Errorf("insert candidate: %w", err)
}

// isUniqueViolation accepts both the extended and the primary result code.
func isUniqueViolation(err *sqlite.Error) bool {
	switch err.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(err.Error(), "UNIQUE constraint failed")
	}
	return false
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
