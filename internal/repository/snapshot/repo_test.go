package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/landsecure/landsecure/internal/db"
	"github.com/landsecure/landsecure/internal/domain"
	"github.com/landsecure/landsecure/internal/fixture"
)

// mockStore is an in-memory implementation of the consumer interface.
type mockStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setKeys = append(m.setKeys, key)
	m.data[key] = value
	return nil
}

func (m *mockStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func TestNew_DefaultKey(t *testing.T) {
	r := New(newMockStore(), "")
	if r.Key() != DefaultKey {
		t.Errorf("Key() = %q, want %q", r.Key(), DefaultKey)
	}
	if New(newMockStore(), "custom").Key() != "custom" {
		t.Error("explicit key ignored")
	}
}

func TestSaveLoad(t *testing.T) {
	f, err := fixture.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}

	ms := newMockStore()
	r := New(ms, "")
	ctx := context.Background()

	if err := r.Save(ctx, &f); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(ms.setKeys) != 1 || ms.setKeys[0] != DefaultKey {
		t.Errorf("SET keys = %v", ms.setKeys)
	}

	ok, err := r.Exists(ctx)
	if err != nil || !ok {
		t.Fatalf("Exists() = %v, %v", ok, err)
	}

	got, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Records) != len(f.Records) {
		t.Errorf("loaded %d records, want %d", len(got.Records), len(f.Records))
	}
	if got.Records[3].ID() != "GJ2023004" || len(got.Records[3].Disputes()) != 2 {
		t.Errorf("record 3 = %q with %d disputes", got.Records[3].ID(), len(got.Records[3].Disputes()))
	}
}

func TestLoad_NotSeeded(t *testing.T) {
	r := New(newMockStore(), "")
	_, err := r.Load(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_StoreError(t *testing.T) {
	ms := newMockStore()
	ms.getErr = &db.Error{Op: db.OpGet, Err: context.DeadlineExceeded}

	_, err := New(ms, "").Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Error("store error reported as not found")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected wrapped deadline error, got %v", err)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	ms := newMockStore()
	ms.data[DefaultKey] = []byte(`{"records":[{"id":"X","risk_score":-1}]}`)

	_, err := New(ms, "").Load(context.Background())
	if !errors.Is(err, domain.ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestSave_StoreError(t *testing.T) {
	ms := newMockStore()
	ms.setErr = errors.New("READONLY")

	f := fixture.Fixture{}
	if err := New(ms, "").Save(context.Background(), &f); err == nil {
		t.Fatal("expected error")
	}
}
