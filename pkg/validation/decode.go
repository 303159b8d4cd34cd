package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DecodeErrorKind classifies why a request body could not be decoded.
type DecodeErrorKind int

const (
	DecodeMalformed DecodeErrorKind = iota
	DecodeUnknownField
	DecodeTypeMismatch
)

// DecodeError wraps a JSON decoding failure with its classification.
type DecodeError struct {
	Kind  DecodeErrorKind
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case DecodeUnknownField:
		return fmt.Sprintf("additional properties are not allowed (%s was unexpected)", e.Field)
	case DecodeTypeMismatch:
		if e.Field != "" {
			return fmt.Sprintf("'%s' has an incorrect data type: %v", e.Field, e.Err)
		}
	}
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeStrict decodes exactly one JSON object into dst. Unknown keys and
// trailing data are rejected.
func DecodeStrict(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &DecodeError{Kind: DecodeMalformed, Err: errors.New("request body is empty")}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	dec.UseNumber()

	if err := dec.Decode(dst); err != nil {
		return classify(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &DecodeError{Kind: DecodeMalformed, Err: errors.New("request body must contain a single JSON object")}
	}
	return nil
}

// Decode is the lenient form used by updates and searches. An empty body
// leaves dst untouched and unknown keys are ignored.
func Decode(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Kind: DecodeTypeMismatch, Field: typeErr.Field, Err: err}
	}

	const unknownPrefix = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, unknownPrefix) {
		return &DecodeError{Kind: DecodeUnknownField, Field: strings.TrimPrefix(msg, unknownPrefix), Err: err}
	}

	return &DecodeError{Kind: DecodeMalformed, Err: err}
}
