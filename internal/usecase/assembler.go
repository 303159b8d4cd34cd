package usecase

import "ats-backend/internal/domain"

// ToResponse flattens candidates and their experience into output records.
// A candidate without experience yields null experience fields.
func ToResponse(candidates []domain.Candidate) []domain.CandidateRecord {
	records := make([]domain.CandidateRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, toRecord(c))
	}
	return records
}

func toRecord(c domain.Candidate) domain.CandidateRecord {
	r := domain.CandidateRecord{
		ID:          c.ID,
		Name:        c.Name,
		Age:         c.Age,
		Gender:      c.Gender,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		Status:      c.Status,
		Reason:      c.Reason,
	}
	if exp := c.Experience; exp != nil {
		years, current, expected := exp.YearsOfExp, exp.CurrentSalary, exp.ExpectedSalary
		r.YearsOfExp = &years
		r.CurrentSalary = &current
		r.ExpectedSalary = &expected
	}
	return r
}
