package domain

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// PhoneNumber accepts either a JSON string or a JSON number and keeps its
// textual form, so 1234567890 and "1234567890" decode to the same value.
type PhoneNumber string

func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PhoneNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: phoneNumberType}
	}
	*p = PhoneNumber(n.String())
	return nil
}

func (p PhoneNumber) String() string {
	return string(p)
}

// CreateCandidateRequest is the closed creation payload. Every field is a
// pointer so that a missing key can be told apart from a zero value. Salaries
// are bounded by the NUMERIC(10,2) column they are stored in.
type CreateCandidateRequest struct {
	YearsOfExp     *float64     `json:"years_of_exp" validate:"required,gte=0"`
	CurrentSalary  *float64     `json:"current_salary" validate:"required,gte=0,lt=100000000"`
	ExpectedSalary *float64     `json:"expected_salary" validate:"required,gte=0,lt=100000000"`
	Name           *string      `json:"name" validate:"required,min=1,max=100"`
	Age            *int         `json:"age" validate:"required,gte=0"`
	Gender         *string      `json:"gender" validate:"required,ats_gender"`
	PhoneNumber    *PhoneNumber `json:"phone_number" validate:"required,ats_phone"`
	Email          *string      `json:"email" validate:"required,email"`
}

type UpdateStatusRequest struct {
	ID     *int64  `json:"id" validate:"required"`
	Status *string `json:"status" validate:"required"`
	Reason *string `json:"reason"`
}

// CandidateSearchRequest carries the optional filter parameters. Range
// parameters only take effect when both bounds are present.
type CandidateSearchRequest struct {
	ExpectedSalaryMin *float64    `json:"expected_salary_min,omitempty"`
	ExpectedSalaryMax *float64    `json:"expected_salary_max,omitempty"`
	AgeMin            *int        `json:"age_min,omitempty"`
	AgeMax            *int        `json:"age_max,omitempty"`
	YearsOfExpMin     *float64    `json:"years_of_exp_min,omitempty"`
	PhoneNumber       PhoneNumber `json:"phone_number,omitempty"`
	Email             string      `json:"email,omitempty"`
	Name              string      `json:"name,omitempty"`
	Gender            string      `json:"gender,omitempty"`
	Statuses          []string    `json:"statuses,omitempty"`
}

type SearchByNameRequest struct {
	Name string `json:"name"`
}

// CandidateExportRequest selects candidates with the search parameters and
// writes the chosen columns as xlsx or csv.
type CandidateExportRequest struct {
	CandidateSearchRequest
	Columns []string `json:"columns,omitempty"`
	Format  string   `json:"format,omitempty"`
}

var phoneNumberType = reflect.TypeOf(PhoneNumber(""))
