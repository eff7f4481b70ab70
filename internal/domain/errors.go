package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError is caller input rejected by validation or by a store
// constraint. Its message is meant to be shown to the operator verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DataFetchError means the store was unreachable or failed a query.
type DataFetchError struct {
	Op  string
	Err error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataFetchError) Unwrap() error { return e.Err }

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDataFetch reports whether err carries a DataFetchError.
func IsDataFetch(err error) bool {
	var de *DataFetchError
	return errors.As(err, &de)
}
