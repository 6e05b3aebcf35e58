package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidYear  = errors.New("invalid year")
	ErrUnknownKey   = errors.New("unknown sort key")
)

// MissingFieldError is returned when one or more input fields are empty.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidYearError is returned when the year field is not an integer.
type InvalidYearError struct {
	Err   error
	Value string
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("%s %q: year must be a number", ErrInvalidYear, e.Value)
}

func (e *InvalidYearError) Is(target error) bool {
	return target == ErrInvalidYear
}

func (e *InvalidYearError) Unwrap() error {
	return e.Err
}
