package catalog

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is returned when sorting or saving a catalog that has no
// records.
var ErrEmptyCollection = errors.New("no records")

// ErrNotScalar is returned when a seed field holds a sequence or mapping.
var ErrNotScalar = errors.New("value must be a scalar")

// SaveError is returned when the catalog could not be written to a file.
type SaveError struct {
	Err  error
	Path string
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// EntryError is returned when an entry of a seed document is invalid.
type EntryError struct {
	Err   error
	Index int
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// FieldError is returned when a field of a seed entry cannot be read as text.
type FieldError struct {
	Err   error
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
