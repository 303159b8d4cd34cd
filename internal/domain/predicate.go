package domain

import (
	"fmt"
	"strings"
)

// Field names a filterable attribute of a candidate or its experience.
type Field string

const (
	FieldID             Field = "id"
	FieldName           Field = "name"
	FieldAge            Field = "age"
	FieldGender         Field = "gender"
	FieldPhoneNumber    Field = "phone_number"
	FieldEmail          Field = "email"
	FieldStatus         Field = "status"
	FieldYearsOfExp     Field = "experience.years_of_exp"
	FieldCurrentSalary  Field = "experience.current_salary"
	FieldExpectedSalary Field = "experience.expected_salary"
)

type Operator int

const (
	OpEqual Operator = iota
	OpBetween
	OpAtLeast
	OpContainsFold
	OpIn
)

func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpBetween:
		return "between"
	case OpAtLeast:
		return "at_least"
	case OpContainsFold:
		return "contains_fold"
	case OpIn:
		return "in"
	}
	return fmt.Sprintf("operator(%d)", int(o))
}

// Predicate is one storage-independent condition. Repositories translate a
// list of predicates into their own query language and AND them together.
type Predicate struct {
	Field  Field
	Op     Operator
	Value  any
	Upper  any
	Values []string
}

func Equal(f Field, v any) Predicate {
	return Predicate{Field: f, Op: OpEqual, Value: v}
}

// Between is inclusive on both ends.
func Between(f Field, lo, hi any) Predicate {
	return Predicate{Field: f, Op: OpBetween, Value: lo, Upper: hi}
}

func AtLeast(f Field, v any) Predicate {
	return Predicate{Field: f, Op: OpAtLeast, Value: v}
}

func ContainsFold(f Field, s string) Predicate {
	return Predicate{Field: f, Op: OpContainsFold, Value: s}
}

func In(f Field, values []string) Predicate {
	return Predicate{Field: f, Op: OpIn, Values: values}
}

func (p Predicate) String() string {
	switch p.Op {
	case OpBetween:
		return fmt.Sprintf("%s between %v and %v", p.Field, p.Value, p.Upper)
	case OpIn:
		return fmt.Sprintf("%s in %v", p.Field, p.Values)
	}
	return fmt.Sprintf("%s %s %v", p.Field, p.Op, p.Value)
}

// Matches evaluates the predicate against c in memory with the same
// semantics the SQL translation has.
func (p Predicate) Matches(c Candidate) bool {
	v, ok := fieldValue(c, p.Field)
	if !ok {
		return false
	}

	switch p.Op {
	case OpEqual:
		if n, isNum := toFloat(v); isNum {
			want, ok := toFloat(p.Value)
			return ok && n == want
		}
		return fmt.Sprint(v) == fmt.Sprint(p.Value)
	case OpBetween:
		n, ok1 := toFloat(v)
		lo, ok2 := toFloat(p.Value)
		hi, ok3 := toFloat(p.Upper)
		return ok1 && ok2 && ok3 && n >= lo && n <= hi
	case OpAtLeast:
		n, ok1 := toFloat(v)
		lo, ok2 := toFloat(p.Value)
		return ok1 && ok2 && n >= lo
	case OpContainsFold:
		return strings.Contains(strings.ToLower(fmt.Sprint(v)), strings.ToLower(fmt.Sprint(p.Value)))
	case OpIn:
		s := fmt.Sprint(v)
		for _, want := range p.Values {
			if s == want {
				return true
			}
		}
	}
	return false
}

func fieldValue(c Candidate, f Field) (any, bool) {
	switch f {
	case FieldID:
		return c.ID, true
	case FieldName:
		return c.Name, true
	case FieldAge:
		return c.Age, true
	case FieldGender:
		return string(c.Gender), true
	case FieldPhoneNumber:
		return c.PhoneNumber, true
	case FieldEmail:
		return c.Email, true
	case FieldStatus:
		return string(c.Status), true
	}

	if c.Experience == nil {
		return nil, false
	}
	switch f {
	case FieldYearsOfExp:
		return c.Experience.YearsOfExp, true
	case FieldCurrentSalary:
		return c.Experience.CurrentSalary, true
	case FieldExpectedSalary:
		return c.Experience.ExpectedSalary, true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
