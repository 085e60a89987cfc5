package domain

import "fmt"

// ValidationError reports a record that cannot become a valid entity: a
// required field is missing or a field fails coercion to its semantic type.
// Callers distinguish it from I/O errors with errors.As and decide whether
// to skip the record or abort the load.
type ValidationError struct {
	Entity string // "neo" or "approach"
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s record: field %q: %s", e.Entity, e.Field, e.Reason)
}

func validationErr(entity, field, format string, args ...any) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Reason: fmt.Sprintf(format, args...)}
}
