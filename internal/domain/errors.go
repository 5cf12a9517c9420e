package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrRecordNotFound signals a land record id absent from the store.
	ErrRecordNotFound = fmt.Errorf("land record %w", ErrNotFound)
	// ErrInvalidRecord signals a record that violates the land model invariants.
	ErrInvalidRecord = errors.New("invalid land record")
	// ErrDuplicateRecord signals two records sharing one id.
	ErrDuplicateRecord = errors.New("duplicate land record")
	// ErrInvalidQuery signals a malformed query parameter (bad score, bad limit).
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidFixture signals a fixture that cannot be decoded.
	ErrInvalidFixture = errors.New("invalid fixture")
)

// RecordError wraps ErrInvalidRecord with the offending record id.
type RecordError struct {
	ID     string
	Reason string
}

func (e *RecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidRecord.Error(), e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidRecord.Error(), e.ID, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrInvalidRecord }

// NewRecordError creates an invalid record error.
func NewRecordError(id, reason string) error {
	return &RecordError{ID: id, Reason: reason}
}
