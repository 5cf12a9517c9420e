package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/landsecure/landsecure/internal/domain"
	"github.com/landsecure/landsecure/internal/domain/geo"
	"github.com/landsecure/landsecure/internal/domain/land"
	"github.com/landsecure/landsecure/internal/domain/risk"
	"github.com/landsecure/landsecure/internal/domain/search/filter"
	"github.com/landsecure/landsecure/internal/logger"
	"github.com/landsecure/landsecure/internal/metrics"
)

// Default result sizes for the detail-page side panels.
const (
	DefaultNearbyLimit   = 3
	DefaultFeaturedLimit = 3
)

// Neighbor is a record in the same district as a subject record.
type Neighbor struct {
	Record     land.Record
	DistanceKm float64
}

// Marker is the projection of a record a map widget needs to plot it.
type Marker struct {
	ID         string
	Lat        float64
	Lng        float64
	Status     land.Status
	RiskLevel  risk.Level
	PlotNumber string
	Owner      string
}

// Service answers queries against the record store. All methods are safe for
// concurrent use; the store is never mutated.
type Service struct {
	records       RecordSource
	nearbyLimit   int
	featuredLimit int
}

// New creates a search service.
func New(records RecordSource) *Service {
	return &Service{
		records:       records,
		nearbyLimit:   DefaultNearbyLimit,
		featuredLimit: DefaultFeaturedLimit,
	}
}

// WithLimits overrides the default nearby and featured result sizes.
// Non-positive values keep the current setting.
func (s *Service) WithLimits(nearby, featured int) *Service {
	if nearby > 0 {
		s.nearbyLimit = nearby
	}
	if featured > 0 {
		s.featuredLimit = featured
	}
	return s
}

// Search returns every record that matches the free-text query and all
// present filters, in store order. The result is freshly allocated and may be
// empty; unknown filter values match nothing.
func (s *Service) Search(ctx context.Context, query string, f filter.Filters) []land.Record {
	results := s.scan(query, f)

	metrics.SearchesTotal.WithLabelValues("search", metrics.FilterLabel(f.Present())).Inc()
	metrics.SearchResults.WithLabelValues("search").Observe(float64(len(results)))
	logger.FromContext(ctx).Debug("land records searched",
		zap.String("query", query),
		zap.Strings("filters", f.Present()),
		zap.Int("count", len(results)),
	)
	return results
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, id string) (land.Record, error) {
	r, ok := s.records.Get(id)
	if !ok {
		metrics.LookupsTotal.WithLabelValues("get", "miss").Inc()
		logger.FromContext(ctx).Debug("land record not found", zap.String("id", id))
		return land.Record{}, fmt.Errorf("get %q: %w", id, domain.ErrRecordNotFound)
	}
	metrics.LookupsTotal.WithLabelValues("get", "hit").Inc()
	return r, nil
}

// Nearby returns up to limit other records in the subject's district, in store
// order, each with its great-circle distance from the subject.
// A non-positive limit uses the configured default.
func (s *Service) Nearby(ctx context.Context, id string, limit int) ([]Neighbor, error) {
	subject, ok := s.records.Get(id)
	if !ok {
		metrics.LookupsTotal.WithLabelValues("nearby", "miss").Inc()
		return nil, fmt.Errorf("nearby %q: %w", id, domain.ErrRecordNotFound)
	}
	metrics.LookupsTotal.WithLabelValues("nearby", "hit").Inc()

	if limit <= 0 {
		limit = s.nearbyLimit
	}

	district := subject.Location().District
	origin := subject.Point()
	out := make([]Neighbor, 0, limit)
	s.records.Each(func(r land.Record) bool {
		if r.ID() == subject.ID() || r.Location().District != district {
			return true
		}
		out = append(out, Neighbor{Record: r, DistanceKm: geo.DistanceKm(origin, r.Point())})
		return len(out) < limit
	})

	logger.FromContext(ctx).Debug("nearby land records",
		zap.String("id", id),
		zap.String("district", district),
		zap.Int("count", len(out)),
	)
	return out, nil
}

// Featured returns up to limit low-risk records without disputes, in store
// order. A non-positive limit uses the configured default.
func (s *Service) Featured(ctx context.Context, limit int) []land.Record {
	if limit <= 0 {
		limit = s.featuredLimit
	}

	out := make([]land.Record, 0, limit)
	s.records.Each(func(r land.Record) bool {
		if r.HasDisputes() || r.RiskLevel() != risk.Low {
			return true
		}
		out = append(out, r)
		return len(out) < limit
	})

	logger.FromContext(ctx).Debug("featured land records", zap.Int("count", len(out)))
	return out
}

// Markers runs Search and projects the result for map rendering.
func (s *Service) Markers(ctx context.Context, query string, f filter.Filters) []Marker {
	results := s.scan(query, f)

	out := make([]Marker, 0, len(results))
	for _, r := range results {
		loc := r.Location()
		out = append(out, Marker{
			ID:         r.ID(),
			Lat:        loc.Lat,
			Lng:        loc.Lng,
			Status:     r.Status(),
			RiskLevel:  r.RiskLevel(),
			PlotNumber: r.PlotNumber(),
			Owner:      r.Owner().Name,
		})
	}

	metrics.SearchesTotal.WithLabelValues("markers", metrics.FilterLabel(f.Present())).Inc()
	metrics.SearchResults.WithLabelValues("markers").Observe(float64(len(out)))
	logger.FromContext(ctx).Debug("map markers built", zap.Int("count", len(out)))
	return out
}

// scan is the single linear pass shared by Search and Markers.
func (s *Service) scan(query string, f filter.Filters) []land.Record {
	results := []land.Record{}
	if !f.Satisfiable() {
		return results
	}

	q := filter.NewTextQuery(query)
	s.records.Each(func(r land.Record) bool {
		if f.Matches(r) && q.Matches(r) {
			results = append(results, r)
		}
		return true
	})
	return results
}
