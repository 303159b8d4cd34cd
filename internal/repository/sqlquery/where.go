// Package sqlquery renders domain predicates as SQL WHERE clauses for the
// supported database dialects.
package sqlquery

import (
	"fmt"
	"strings"

	"ats-backend/internal/domain"

	"github.com/lib/pq"
)

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// columns maps predicate fields to the candidate (c) and experience (e) aliases.
var columns = map[domain.Field]string{
	domain.FieldID:             "c.id",
	domain.FieldName:           "c.name",
	domain.FieldAge:            "c.age",
	domain.FieldGender:         "c.gender",
	domain.FieldPhoneNumber:    "c.phone_number",
	domain.FieldEmail:          "c.email",
	domain.FieldStatus:         "c.status",
	domain.FieldYearsOfExp:     "e.years_of_exp",
	domain.FieldCurrentSalary:  "e.current_salary",
	domain.FieldExpectedSalary: "e.expected_salary",
}

// Where renders preds joined by AND. Placeholders are numbered from firstArg
// for Postgres. An empty list yields an empty clause.
func Where(d Dialect, preds []domain.Predicate, firstArg int) (string, []any, error) {
	if len(preds) == 0 {
		return "", nil, nil
	}

	b := &builder{dialect: d, next: firstArg}
	conditions := make([]string, 0, len(preds))
	for _, p := range preds {
		cond, err := b.condition(p)
		if err != nil {
			return "", nil, err
		}
		conditions = append(conditions, cond)
	}
	return "WHERE " + strings.Join(conditions, " AND "), b.args, nil
}

type builder struct {
	dialect Dialect
	next    int
	args    []any
}

func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	if b.dialect == SQLite {
		return "?"
	}
	ph := fmt.Sprintf("$%d", b.next)
	b.next++
	return ph
}

func (b *builder) condition(p domain.Predicate) (string, error) {
	col, ok := columns[p.Field]
	if !ok {
		return "", fmt.Errorf("unsupported filter field %q", p.Field)
	}

	switch p.Op {
	case domain.OpEqual:
		return fmt.Sprintf("%s = %s", col, b.arg(p.Value)), nil

	case domain.OpBetween:
		lo := b.arg(p.Value)
		hi := b.arg(p.Upper)
		return fmt.Sprintf("%s BETWEEN %s AND %s", col, lo, hi), nil

	case domain.OpAtLeast:
		return fmt.Sprintf("%s >= %s", col, b.arg(p.Value)), nil

	case domain.OpContainsFold:
		pattern := "%" + escapeLike(fmt.Sprint(p.Value)) + "%"
		if b.dialect == Postgres {
			return fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, col, b.arg(pattern)), nil
		}
		return fmt.Sprintf(`%s(%s) LIKE %s(%s) ESCAPE '\'`, caseFold, col, caseFold, b.arg(pattern)), nil

	case domain.OpIn:
		if len(p.Values) == 0 {
			return "1 = 0", nil
		}
		if b.dialect == Postgres {
			return fmt.Sprintf("%s = ANY(%s)", col, b.arg(pq.Array(p.Values))), nil
		}
		placeholders := make([]string, len(p.Values))
		for i, v := range p.Values {
			placeholders[i] = b.arg(v)
		}
		return fmt.Sprintf("%s IN (%s)", col, strings.Join(placeholders, ",")), nil
	}

	return "", fmt.Errorf("unsupported filter operator %s", p.Op)
}

// caseFold is registered on every connection opened by database.NewSQLiteConnection.
const caseFold = "casefold"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
