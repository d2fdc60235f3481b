package domain

import "fmt"

// ValidationError is raised only at the record-creation boundary, when the
// supplied value cannot be interpreted as an integer. Everything else in the
// system fails soft (see the engine and store contracts).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a named input field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
