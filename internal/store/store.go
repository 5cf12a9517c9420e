// Package store holds the Record Store: the fixed, read-only collection of
// land records built once at startup and shared by reference.
package store

import (
	"fmt"

	"github.com/landsecure/landsecure/internal/domain"
	"github.com/landsecure/landsecure/internal/domain/land"
)

// Store is an immutable, ordered collection of land records.
// It is safe for concurrent readers because nothing mutates it after New.
type Store struct {
	records []land.Record
	byID    map[string]int
}

// New builds a Store preserving the order of records. Duplicate ids are rejected.
func New(records []land.Record) (*Store, error) {
	s := &Store{
		records: make([]land.Record, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for i, r := range records {
		if _, dup := s.byID[r.ID()]; dup {
			return nil, fmt.Errorf("%w: id %q", domain.ErrDuplicateRecord, r.ID())
		}
		s.byID[r.ID()] = i
		s.records[i] = r
	}
	return s, nil
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Each calls fn for every record in store order until fn returns false.
func (s *Store) Each(fn func(land.Record) bool) {
	for _, r := range s.records {
		if !fn(r) {
			return
		}
	}
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (land.Record, bool) {
	i, ok := s.byID[id]
	if !ok {
		return land.Record{}, false
	}
	return s.records[i], true
}
