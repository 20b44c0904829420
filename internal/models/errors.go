package models

import (
	"errors"
	"fmt"
)

// Error constants for CNH operations
var (
	ErrValidation       = errors.New("invalid CNH data")
	ErrCNHNotFound      = errors.New("CNH não encontrada")
	ErrCNHAlreadyExists = errors.New("CNH já cadastrada")
)

// ValidationError reports a missing, empty or unknown field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewRequiredFieldError reports a missing mandatory field.
func NewRequiredFieldError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("O campo '%s' é obrigatório", field),
	}
}

// NewUnknownFieldError reports a field outside the CNH column set.
func NewUnknownFieldError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("O campo '%s' não existe", field),
	}
}

// NewImmutableFieldError reports an attempt to change a field fixed at creation.
func NewImmutableFieldError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("O campo '%s' não pode ser alterado", field),
	}
}

// FormatError reports a value that does not match the expected layout.
// It is a kind of validation failure and matches ErrValidation.
type FormatError struct {
	Field  string
	Value  string
	Layout string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("O campo '%s' deve estar no formato %s: %q", e.Field, e.Layout, e.Value)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes every FormatError match ErrValidation.
func (e *FormatError) Is(target error) bool {
	return target == ErrValidation
}

// NotFound wraps ErrCNHNotFound with the missing registro.
func NotFound(registro string) error {
	return fmt.Errorf("%w: registro %s", ErrCNHNotFound, registro)
}

// AlreadyExists wraps ErrCNHAlreadyExists with the duplicated registro.
func AlreadyExists(registro string) error {
	return fmt.Errorf("%w: registro %s", ErrCNHAlreadyExists, registro)
}
