package search

import "github.com/landsecure/landsecure/internal/domain/land"

// RecordSource is the read-only view of the record store the service scans.
type RecordSource interface {
	Each(fn func(land.Record) bool)
	Get(id string) (land.Record, bool)
}
