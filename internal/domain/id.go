package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ID is a UUID tagged with the record kind it identifies. The type parameter
// is never stored; it only keeps a skill id from being passed as a project id.
type ID[T any] struct {
	uuid.UUID
}

func NewID[T any]() ID[T] {
	return ID[T]{UUID: uuid.New()}
}

func ParseID[T any](field, raw string) (ID[T], error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ID[T]{}, Invalid(field, "is required")
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return ID[T]{}, Invalid(field, "must be a valid UUID")
	}
	return ID[T]{UUID: u}, nil
}

func (id ID[T]) IsZero() bool {
	return id.UUID == uuid.Nil
}
