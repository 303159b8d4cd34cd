package apperror

import "net/http"

// AppError is an error that knows how it should be reported to a client.
// Message is the category message, Err the raw detail shown as "error" and
// Kind an optional sentinel that errors.Is can match.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	Kind    error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Detail returns the raw underlying error text, or the message when there is none.
func (e *AppError) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Invalid builds a 400 error tagged with kind.
func Invalid(kind error, message string, err error) *AppError {
	e := New(http.StatusBadRequest, message, err)
	e.Kind = kind
	return e
}
