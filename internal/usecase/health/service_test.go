package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockCounter int

func (m mockCounter) Len() int { return int(m) }

// --- Tests ---

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		records  int
		db       DBPinger
		status   Status
		recordsC CheckResult
		dbC      CheckResult // empty when the check must be absent
	}{
		{"records only", 10, nil, Healthy, CheckOK, ""},
		{"records and db", 10, &mockDBPinger{}, Healthy, CheckOK, CheckOK},
		{"db down", 10, &mockDBPinger{err: errors.New("conn refused")}, Degraded, CheckOK, CheckError},
		{"empty store", 0, nil, Unhealthy, CheckError, ""},
		{"empty store and db down", 0, &mockDBPinger{err: errors.New("down")}, Unhealthy, CheckError, CheckError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(mockCounter(tc.records), tc.db).Check(context.Background())

			if r.Status != tc.status {
				t.Errorf("status = %q, want %q", r.Status, tc.status)
			}
			if r.Records != tc.records {
				t.Errorf("records = %d, want %d", r.Records, tc.records)
			}
			if r.Checks["records"] != tc.recordsC {
				t.Errorf("records check = %q, want %q", r.Checks["records"], tc.recordsC)
			}
			got, ok := r.Checks["database"]
			if tc.dbC == "" {
				if ok {
					t.Error("database check should be absent without a database")
				}
			} else if got != tc.dbC {
				t.Errorf("database check = %q, want %q", got, tc.dbC)
			}
		})
	}
}
