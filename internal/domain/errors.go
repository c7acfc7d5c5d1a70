package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failure")

	ErrEmployeeNotFound = fmt.Errorf("employee %w", ErrNotFound)
	ErrProjectNotFound  = fmt.Errorf("project %w", ErrNotFound)
	ErrSkillNotFound    = fmt.Errorf("skill %w", ErrNotFound)
)

type ValidationError struct {
	Field   string
	Message string
}

func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PersistenceError reports a snapshot document that could not be read,
// decoded or written. It is fatal to the operation that triggered it.
type PersistenceError struct {
	Op       string
	Document string
	Err      error
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ""
	}
	msg := "persistence: " + e.Op
	if e.Document != "" {
		msg += " " + e.Document
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PersistenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
