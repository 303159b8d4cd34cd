package postgres

import (
	"context"
	"errors"
	"fmt"

	"ats-backend/internal/domain"
	"ats-backend/internal/repository/sqlquery"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const selectCandidates = `
	SELECT
		c.id, c.name, c.age, c.gender, c.phone_number, c.email,
		c.status, c.reason, c.created_at, c.updated_at,
		e.id, e.years_of_exp, e.current_salary::float8, e.expected_salary::float8
	FROM candidates c
	LEFT JOIN experiences e ON e.id = c.experience_id`

// Create inserts the experience and the candidate in one transaction so a
// failed candidate insert leaves no orphaned experience row.
func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) (int64, error) {
	if candidate.Experience == nil {
		return 0, fmt.Errorf("candidate has no experience")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	exp := candidate.Experience
	err = tx.QueryRow(ctx, `
		INSERT INTO experiences (years_of_exp, current_salary, expected_salary)
		VALUES ($1, $2, $3)
		RETURNING id`,
		exp.YearsOfExp, exp.CurrentSalary, exp.ExpectedSalary,
	).Scan(&exp.ID)
	if err != nil {
		return 0, fmt.Errorf("insert experience: %w", err)
	}

	if candidate.Status == "" {
		candidate.Status = domain.StatusApplied
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO candidates (name, age, gender, phone_number, email, experience_id, status, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		candidate.Name, candidate.Age, string(candidate.Gender), candidate.PhoneNumber, candidate.Email,
		exp.ID, string(candidate.Status), candidate.Reason,
	).Scan(&candidate.ID, &candidate.CreatedAt, &candidate.UpdatedAt)
	if err != nil {
		return 0, mapInsertError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit candidate: %w", err)
	}
	return candidate.ID, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	row := r.db.QueryRow(ctx, selectCandidates+` WHERE c.id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate %d: %w", id, err)
	}
	return c, nil
}

func (r *candidateRepository) Query(ctx context.Context, predicates []domain.Predicate) ([]domain.Candidate, error) {
	where, args, err := sqlquery.Where(sqlquery.Postgres, predicates, 1)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, selectCandidates+" "+where+" ORDER BY c.id", args...)
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

// Update persists the status decision. Experience is immutable and untouched.
func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	err := r.db.QueryRow(ctx, `
		UPDATE candidates SET status = $1, reason = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at`,
		string(candidate.Status), candidate.Reason, candidate.ID,
	).Scan(&candidate.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update candidate %d: %w", candidate.ID, err)
	}
	return nil
}

func (r *candidateRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var (
		c                        domain.Candidate
		gender, status           string
		expID                    *int64
		years, current, expected *float64
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Age, &gender, &c.PhoneNumber, &c.Email,
		&status, &c.Reason, &c.CreatedAt, &c.UpdatedAt,
		&expID, &years, &current, &expected,
	)
	if err != nil {
		return nil, err
	}

	c.Gender = domain.Gender(gender)
	c.Status = domain.JobStatus(status)
	if expID != nil {
		c.Experience = &domain.Experience{ID: *expID}
		if years != nil {
			c.Experience.YearsOfExp = *years
		}
		if current != nil {
			c.Experience.CurrentSalary = *current
		}
		if expected != nil {
			c.Experience.ExpectedSalary = *expected
		}
	}
	return &c, nil
}

func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w (%s)", domain.ErrDuplicateContact, pgErr.ConstraintName)
	}
	return fmt.Errorf("insert candidate: %w", err)
}
