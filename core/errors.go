package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// AsValidationError unwraps err down to its cause and returns it as a
// *ValidationError, or nil if the cause is something else.
func AsValidationError(err error) *ValidationError {
	if verr, ok := errors.Cause(err).(*ValidationError); ok {
		return verr
	}
	return nil
}
