package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Exactly ten ASCII digits, no separators or country code.
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

	// local@domain.tld, the domain may carry several dot segments.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
)

// GenderChoices are the canonical genders VerifyGender accepts.
var GenderChoices = []string{"MALE", "FEMALE", "OTHERS"}

// FieldFormatError is returned by the field verifiers once a value has
// passed the schema layer but cannot be normalized.
type FieldFormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("%s is an invalid %s: %s", e.Value, e.Field, e.Reason)
}

// New returns a validator with the custom tags registered and JSON field
// names used in error reports.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("ats_gender", ValidGender)
	_ = v.RegisterValidation("ats_phone", ValidPhone)
}

// ValidGender is the schema-level gender check.
func ValidGender(fl validator.FieldLevel) bool {
	_, err := VerifyGender(fl.Field().String())
	return err == nil
}

// ValidPhone is the schema-level phone check: ten digits.
func ValidPhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// VerifyGender matches s case-insensitively and returns its canonical form.
func VerifyGender(s string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, g := range GenderChoices {
		if upper == g {
			return g, nil
		}
	}
	return "", &FieldFormatError{
		Field:  "gender",
		Value:  s,
		Reason: "choose from [Male Female Others]",
	}
}

// VerifyPhoneNumber stringifies v and requires exactly ten digits.
func VerifyPhoneNumber(v any) (string, error) {
	s := stringify(v)
	if phoneRegex.MatchString(s) {
		return s, nil
	}
	return "", &FieldFormatError{
		Field:  "phone number",
		Value:  s,
		Reason: "expected exactly 10 digits",
	}
}

// VerifyEmailAddress requires the local@domain.tld shape.
func VerifyEmailAddress(email string) (string, error) {
	if emailRegex.MatchString(email) {
		return email, nil
	}
	return "", &FieldFormatError{
		Field:  "email",
		Value:  email,
		Reason: "expected local@domain.tld",
	}
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
