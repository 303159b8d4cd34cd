package sqlquery_test

import (
	"testing"

	"ats-backend/internal/domain"
	"ats-backend/internal/repository/sqlquery"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereEmpty(t *testing.T) {
	clause, args, err := sqlquery.Where(sqlquery.Postgres, nil, 1)
	require.NoError(t, err)
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestWherePostgres(t *testing.T) {
	preds := []domain.Predicate{
		domain.Between(domain.FieldAge, 20, 30),
		domain.AtLeast(domain.FieldYearsOfExp, 2.5),
		domain.ContainsFold(domain.FieldName, "50%_off"),
		domain.In(domain.FieldStatus, []string{"APPLIED", "REJECTED"}),
	}

	clause, args, err := sqlquery.Where(sqlquery.Postgres, preds, 1)
	require.NoError(t, err)
	assert.Equal(t,
		`WHERE c.age BETWEEN $1 AND $2 AND e.years_of_exp >= $3 AND c.name ILIKE $4 ESCAPE '\' AND c.status = ANY($5)`,
		clause)
	require.Len(t, args, 5)
	assert.Equal(t, 20, args[0])
	assert.Equal(t, `%50\%\_off%`, args[3])
	assert.Equal(t, pq.Array([]string{"APPLIED", "REJECTED"}), args[4])
}

func TestWhereSQLite(t *testing.T) {
	preds := []domain.Predicate{
		domain.Equal(domain.FieldEmail, "a@b.io"),
		domain.ContainsFold(domain.FieldName, "Jan"),
		domain.In(domain.FieldStatus, []string{"APPLIED", "SHORTLISTED"}),
		domain.Between(domain.FieldExpectedSalary, 1000.0, 2000.0),
	}

	clause, args, err := sqlquery.Where(sqlquery.SQLite, preds, 1)
	require.NoError(t, err)
	assert.Equal(t,
		`WHERE c.email = ? AND casefold(c.name) LIKE casefold(?) ESCAPE '\' AND c.status IN (?,?) AND e.expected_salary BETWEEN ? AND ?`,
		clause)
	assert.Equal(t, []any{"a@b.io", "%Jan%", "APPLIED", "SHORTLISTED", 1000.0, 2000.0}, args)
}

func TestWhereEmptyMembership(t *testing.T) {
	clause, args, err := sqlquery.Where(sqlquery.SQLite, []domain.Predicate{domain.In(domain.FieldStatus, nil)}, 1)
	require.NoError(t, err)
	assert.Equal(t, "WHERE 1 = 0", clause)
	assert.Empty(t, args)
}

func TestWhereUnknownField(t *testing.T) {
	_, _, err := sqlquery.Where(sqlquery.Postgres, []domain.Predicate{domain.Equal("nickname", "x")}, 1)
	assert.Error(t, err)
}
