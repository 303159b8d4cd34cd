package usecase_test

import (
	"errors"
	"testing"

	"ats-backend/internal/domain"
	"ats-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilters(t *testing.T) {
	t.Run("Should return no predicates without params", func(t *testing.T) {
		filters, err := usecase.BuildFilters(&domain.CandidateSearchRequest{})
		require.NoError(t, err)
		assert.Empty(t, filters)

		filters, err = usecase.BuildFilters(nil)
		require.NoError(t, err)
		assert.Empty(t, filters)
	})

	t.Run("Should ignore partial ranges", func(t *testing.T) {
		filters, err := usecase.BuildFilters(&domain.CandidateSearchRequest{
			AgeMin:            ptr(25),
			ExpectedSalaryMax: ptr(90000.0),
		})
		require.NoError(t, err)
		assert.Empty(t, filters)
	})

	t.Run("Should build every predicate in order", func(t *testing.T) {
		filters, err := usecase.BuildFilters(&domain.CandidateSearchRequest{
			ExpectedSalaryMin: ptr(1000.0),
			ExpectedSalaryMax: ptr(2000.0),
			AgeMin:            ptr(20),
			AgeMax:            ptr(30),
			YearsOfExpMin:     ptr(0.0),
			PhoneNumber:       "1234567890",
			Email:             "a@b.io",
			Name:              "jan",
			Gender:            "female",
			Statuses:          []string{"applied", "Shortlisted"},
		})
		require.NoError(t, err)

		assert.Equal(t, []domain.Predicate{
			domain.Between(domain.FieldExpectedSalary, 1000.0, 2000.0),
			domain.Between(domain.FieldAge, 20, 30),
			domain.AtLeast(domain.FieldYearsOfExp, 0.0),
			domain.Equal(domain.FieldPhoneNumber, "1234567890"),
			domain.Equal(domain.FieldEmail, "a@b.io"),
			domain.ContainsFold(domain.FieldName, "jan"),
			domain.Equal(domain.FieldGender, "FEMALE"),
			domain.In(domain.FieldStatus, []string{"APPLIED", "SHORTLISTED"}),
		}, filters)
	})

	t.Run("Should reject unknown statuses", func(t *testing.T) {
		_, err := usecase.BuildFilters(&domain.CandidateSearchRequest{Statuses: []string{"HIRED"}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidStatus))
	})
}

func TestPredicatesMatchInMemory(t *testing.T) {
	pool := []domain.Candidate{
		{ID: 1, Name: "Jane Doe", Age: 25, Gender: domain.GenderFemale, Status: domain.StatusApplied,
			Experience: &domain.Experience{YearsOfExp: 1, ExpectedSalary: 1500}},
		{ID: 2, Name: "John Smith", Age: 35, Gender: domain.GenderMale, Status: domain.StatusRejected,
			Experience: &domain.Experience{YearsOfExp: 6, ExpectedSalary: 4000}},
		{ID: 3, Name: "Janet", Age: 30, Gender: domain.GenderFemale, Status: domain.StatusShortlisted},
	}

	filter := func(req *domain.CandidateSearchRequest) []int64 {
		filters, err := usecase.BuildFilters(req)
		require.NoError(t, err)
		var ids []int64
		for _, c := range pool {
			ok := true
			for _, p := range filters {
				ok = ok && p.Matches(c)
			}
			if ok {
				ids = append(ids, c.ID)
			}
		}
		return ids
	}

	assert.Equal(t, []int64{1, 2, 3}, filter(&domain.CandidateSearchRequest{AgeMin: ptr(26)}))
	assert.Equal(t, []int64{1, 3}, filter(&domain.CandidateSearchRequest{AgeMin: ptr(25), AgeMax: ptr(30)}))
	assert.Equal(t, []int64{1, 3}, filter(&domain.CandidateSearchRequest{Name: "JAN"}))
	assert.Equal(t, []int64{2}, filter(&domain.CandidateSearchRequest{YearsOfExpMin: ptr(5.0)}))
	assert.Equal(t, []int64{1}, filter(&domain.CandidateSearchRequest{ExpectedSalaryMin: ptr(1500.0), ExpectedSalaryMax: ptr(1500.0)}))
	assert.Equal(t, []int64{2, 3}, filter(&domain.CandidateSearchRequest{Statuses: []string{"rejected", "shortlisted"}}))
}
