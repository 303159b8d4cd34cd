package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrFieldFormat      = errors.New("field format error")
	ErrNotFound         = errors.New("candidate not found")
	ErrAlreadyDecided   = errors.New("candidate status already decided")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrStorage          = errors.New("storage error")
	ErrDuplicateContact = errors.New("phone number or email already registered")
)

// TransitionError reports a rejected status change together with the state it was rejected in.
type TransitionError struct {
	Current   JobStatus
	Requested string
	Err       error
}

func (e *TransitionError) Error() string {
	if errors.Is(e.Err, ErrAlreadyDecided) {
		return fmt.Sprintf("candidate is already %s, no further status change is permitted", e.Current)
	}
	return fmt.Sprintf("status %q is not a valid decision, choose from [%s %s]", e.Requested, StatusShortlisted, StatusRejected)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
