package usecase

import (
	"fmt"
	"strings"

	"ats-backend/internal/domain"
	"ats-backend/pkg/validation"
)

// BuildFilters turns the optional search parameters into an ordered list of
// predicates. Range filters need both bounds; a lone bound is ignored. Zero
// numbers count as given, empty strings do not.
func BuildFilters(req *domain.CandidateSearchRequest) ([]domain.Predicate, error) {
	filters := []domain.Predicate{}
	if req == nil {
		return filters, nil
	}

	if req.ExpectedSalaryMin != nil && req.ExpectedSalaryMax != nil {
		if *req.ExpectedSalaryMin > *req.ExpectedSalaryMax {
			return nil, fmt.Errorf("expected_salary_min cannot be greater than expected_salary_max")
		}
		filters = append(filters, domain.Between(domain.FieldExpectedSalary, *req.ExpectedSalaryMin, *req.ExpectedSalaryMax))
	}

	if req.AgeMin != nil && req.AgeMax != nil {
		if *req.AgeMin > *req.AgeMax {
			return nil, fmt.Errorf("age_min cannot be greater than age_max")
		}
		filters = append(filters, domain.Between(domain.FieldAge, *req.AgeMin, *req.AgeMax))
	}

	if req.YearsOfExpMin != nil {
		filters = append(filters, domain.AtLeast(domain.FieldYearsOfExp, *req.YearsOfExpMin))
	}

	if phone := strings.TrimSpace(req.PhoneNumber.String()); phone != "" {
		filters = append(filters, domain.Equal(domain.FieldPhoneNumber, phone))
	}

	if email := strings.TrimSpace(req.Email); email != "" {
		filters = append(filters, domain.Equal(domain.FieldEmail, email))
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		filters = append(filters, domain.ContainsFold(domain.FieldName, name))
	}

	if req.Gender != "" {
		gender, err := validation.VerifyGender(req.Gender)
		if err != nil {
			return nil, err
		}
		filters = append(filters, domain.Equal(domain.FieldGender, gender))
	}

	if len(req.Statuses) > 0 {
		statuses := make([]string, 0, len(req.Statuses))
		for _, s := range req.Statuses {
			st, err := domain.ParseJobStatus(s)
			if err != nil {
				return nil, err
			}
			statuses = append(statuses, string(st))
		}
		filters = append(filters, domain.In(domain.FieldStatus, statuses))
	}

	return filters, nil
}
