package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNoPublishedVersion = errors.New("no published version")
	ErrBadQuery           = errors.New("bad query")
	ErrValidation         = errors.New("validation failed")
)

type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field. errors.Is(err, ErrValidation)
// holds for it.
type ValidationError struct {
	Violations []FieldViolation
}

func NewValidationError(field, rule, message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Rule: rule, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
