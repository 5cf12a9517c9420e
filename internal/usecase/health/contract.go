package health

import "context"

// DBPinger checks snapshot database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// RecordCounter reports how many records the store holds.
type RecordCounter interface {
	Len() int
}
