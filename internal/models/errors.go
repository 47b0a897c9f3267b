package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already registered")

	ErrEventNotFound    = fmt.Errorf("event %w", ErrNotFound)
	ErrAttendeeNotFound = fmt.Errorf("attendee %w", ErrNotFound)
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field failure found in one payload.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError returns a ValidationError holding one failure.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

func (v *ValidationError) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

// Merge appends the failures of err when it is a *ValidationError and
// reports whether it was.
func (v *ValidationError) Merge(err error) bool {
	var other *ValidationError
	if !errors.As(err, &other) {
		return false
	}
	v.Fields = append(v.Fields, other.Fields...)
	return true
}

// OrNil returns v when it holds failures and nil otherwise.
func (v *ValidationError) OrNil() error {
	if v == nil || len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	msgs := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// BackendError wraps any failure returned by the datastore.
type BackendError struct {
	Statement string
	Err       error
}

func (e *BackendError) Error() string {
	return "backend: " + e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
