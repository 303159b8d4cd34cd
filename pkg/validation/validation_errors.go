package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PayloadError is the first schema violation found in a payload. Violations
// lists every violation, the first one included.
type PayloadError struct {
	Field      string
	Tag        string
	Message    string
	Violations []string
}

func (e *PayloadError) Error() string {
	return e.Message
}

// Missing reports whether the violation is an absent required key.
func (e *PayloadError) Missing() bool {
	return e.Tag == "required"
}

// ValidatePayload runs the schema layer over payload and returns the first
// violated constraint, or nil when the payload is acceptable.
func ValidatePayload(v *validator.Validate, payload any) *PayloadError {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return &PayloadError{Message: err.Error(), Violations: []string{err.Error()}}
	}

	first := validationErrors[0]
	return &PayloadError{
		Field:      first.Field(),
		Tag:        first.Tag(),
		Message:    formatSingleError(first),
		Violations: FormatValidationErrors(validationErrors),
	}
}

// ValidateCreationPayload is the boolean form of ValidatePayload.
func ValidateCreationPayload(v *validator.Validate, payload any) (bool, string) {
	if perr := ValidatePayload(v, payload); perr != nil {
		return false, perr.Message
	}
	return true, ""
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is a required property", field)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("'%s' must be at least %s character(s) long", field, param)
		}
		return fmt.Sprintf("'%s' must be at least %s", field, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("'%s' must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("'%s' must be at most %s", field, param)

	case "gte":
		return fmt.Sprintf("%v is less than the minimum of %s for '%s'", e.Value(), param, field)

	case "lt":
		return fmt.Sprintf("%v is not less than the maximum of %s for '%s'", e.Value(), param, field)

	case "email":
		return fmt.Sprintf("%v is not a valid email for '%s'", e.Value(), field)

	case "ats_gender":
		return fmt.Sprintf("%v is not one of [%s] for '%s'", e.Value(), strings.Join(GenderChoices, " "), field)

	case "ats_phone":
		return fmt.Sprintf("%v does not match '^\\d{10}$' for '%s'", e.Value(), field)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("'%s' failed validation (%s)", field, e.Tag())
	}
}
