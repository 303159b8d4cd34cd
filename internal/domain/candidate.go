package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Gender is the closed set of genders a candidate may declare.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOthers Gender = "OTHERS"
)

// Genders lists every accepted gender in canonical form.
var Genders = []Gender{GenderMale, GenderFemale, GenderOthers}

// JobStatus is the hiring decision state of a candidate.
type JobStatus string

const (
	StatusApplied     JobStatus = "APPLIED"
	StatusShortlisted JobStatus = "SHORTLISTED"
	StatusRejected    JobStatus = "REJECTED"
)

// JobStatuses lists every status in canonical form.
var JobStatuses = []JobStatus{StatusApplied, StatusShortlisted, StatusRejected}

// ParseJobStatus normalizes s case-insensitively against every known status.
func ParseJobStatus(s string) (JobStatus, error) {
	upper := JobStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range JobStatuses {
		if upper == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q, choose from %v", ErrInvalidStatus, s, JobStatuses)
}

// ParseDecision normalizes s against the statuses a transition may target.
func ParseDecision(s string) (JobStatus, error) {
	switch JobStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusShortlisted:
		return StatusShortlisted, nil
	case StatusRejected:
		return StatusRejected, nil
	}
	return "", fmt.Errorf("%w: %q, choose from [%s %s]", ErrInvalidStatus, s, StatusShortlisted, StatusRejected)
}

// Experience is the salary and tenure profile owned by exactly one candidate.
// It is written together with its candidate and never updated afterwards.
type Experience struct {
	ID             int64   `json:"-"`
	YearsOfExp     float64 `json:"years_of_exp"`
	CurrentSalary  float64 `json:"current_salary"`
	ExpectedSalary float64 `json:"expected_salary"`
}

type Candidate struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Age         int         `json:"age"`
	Gender      Gender      `json:"gender"`
	PhoneNumber string      `json:"phone_number"`
	Email       string      `json:"email"`
	Experience  *Experience `json:"experience"`
	Status      JobStatus   `json:"status"`
	Reason      *string     `json:"reason"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ApplyTransition moves an APPLIED candidate to SHORTLISTED or REJECTED.
// The candidate is left untouched when an error is returned.
func (c *Candidate) ApplyTransition(requested string, reason *string) error {
	if c.Status != StatusApplied {
		return &TransitionError{Current: c.Status, Requested: requested, Err: ErrAlreadyDecided}
	}

	next, err := ParseDecision(requested)
	if err != nil {
		return &TransitionError{Current: c.Status, Requested: requested, Err: ErrInvalidStatus}
	}

	r := ""
	if reason != nil {
		r = *reason
	}
	c.Status = next
	c.Reason = &r
	return nil
}

// CandidateRecord is the flat shape a candidate is returned in.
type CandidateRecord struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Gender         Gender    `json:"gender"`
	PhoneNumber    string    `json:"phone_number"`
	Email          string    `json:"email"`
	YearsOfExp     *float64  `json:"years_of_exp"`
	CurrentSalary  *float64  `json:"current_salary"`
	ExpectedSalary *float64  `json:"expected_salary"`
	Status         JobStatus `json:"status"`
	Reason         *string   `json:"reason"`
}

// ExportableColumns lists the record fields an export may select, in default order.
var ExportableColumns = []string{
	"id",
	"name",
	"age",
	"gender",
	"phone_number",
	"email",
	"years_of_exp",
	"current_salary",
	"expected_salary",
	"status",
	"reason",
}

// CandidateRepository is the storage collaborator. GetByID returns (nil, nil)
// when no candidate has the given id.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) (int64, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Query(ctx context.Context, predicates []Predicate) ([]Candidate, error)
	Update(ctx context.Context, candidate *Candidate) error
	Ping(ctx context.Context) error
}

// CandidateUsecase creates candidates from a raw JSON payload so the whole
// validation pipeline, decoding included, lives behind one call.
type CandidateUsecase interface {
	Create(ctx context.Context, payload []byte) (*Candidate, error)
	GetByID(ctx context.Context, id int64) ([]CandidateRecord, error)
	UpdateStatus(ctx context.Context, req *UpdateStatusRequest) (*Candidate, error)
	Search(ctx context.Context, req *CandidateSearchRequest) ([]CandidateRecord, error)
	SearchByName(ctx context.Context, query string) ([]CandidateRecord, error)
	Export(ctx context.Context, req *CandidateExportRequest) ([]byte, string, error)
}
