// Package snapshot persists the land-record fixture as a single JSON value
// in Redis or Valkey so that several API replicas can share one dataset.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/landsecure/landsecure/internal/db"
	"github.com/landsecure/landsecure/internal/domain"
	"github.com/landsecure/landsecure/internal/fixture"
)

// DefaultKey is the key the snapshot lives under when none is configured.
const DefaultKey = "landsecure:snapshot"

// store is the consumer interface for snapshot operations (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Repo reads and writes the snapshot.
type Repo struct {
	store store
	key   string
}

// New creates a snapshot repository. An empty key falls back to DefaultKey.
func New(s store, key string) *Repo {
	if key == "" {
		key = DefaultKey
	}
	return &Repo{store: s, key: key}
}

// Key returns the key the snapshot is stored under.
func (r *Repo) Key() string { return r.key }

// Load fetches and validates the snapshot.
// Returns domain.ErrNotFound when nothing has been seeded yet.
func (r *Repo) Load(ctx context.Context) (fixture.Fixture, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return fixture.Fixture{}, fmt.Errorf("snapshot %s: %w", r.key, domain.ErrNotFound)
		}
		return fixture.Fixture{}, fmt.Errorf("snapshot GET %s: %w", r.key, err)
	}

	f, err := fixture.Parse(data)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("snapshot %s: %w", r.key, err)
	}
	return f, nil
}

// Save overwrites the snapshot with f.
func (r *Repo) Save(ctx context.Context, f *fixture.Fixture) error {
	data, err := fixture.Encode(f)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", r.key, err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("snapshot SET %s: %w", r.key, err)
	}
	return nil
}

// Exists reports whether a snapshot has been seeded.
func (r *Repo) Exists(ctx context.Context) (bool, error) {
	ok, err := r.store.Exists(ctx, r.key)
	if err != nil {
		return false, fmt.Errorf("snapshot EXISTS %s: %w", r.key, err)
	}
	return ok, nil
}
