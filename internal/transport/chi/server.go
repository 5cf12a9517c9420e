// Package chi is the JSON HTTP API over the land-record services.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	gochi "github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"

	"github.com/landsecure/landsecure/internal/domain"
	"github.com/landsecure/landsecure/internal/logger"
	"github.com/landsecure/landsecure/internal/metrics"
	cataloguc "github.com/landsecure/landsecure/internal/usecase/catalog"
	healthuc "github.com/landsecure/landsecure/internal/usecase/health"
	searchuc "github.com/landsecure/landsecure/internal/usecase/search"
)

const (
	// DefaultMaxLimit caps the limit query parameter when no other cap is configured.
	DefaultMaxLimit = 50
	// MaxQueryLength is the longest free-text q accepted, in bytes.
	MaxQueryLength = 256
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the land-record API.
type Server struct {
	search        *searchuc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	maxLimit      int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:   search,
		catalog:  catalog,
		health:   health,
		logger:   logger,
		maxLimit: DefaultMaxLimit,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrRecordNotFound, http.StatusNotFound, ErrorCodeRecordNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorCodeInvalidQuery),
	}
	return s
}

// WithMaxLimit overrides the upper bound of the limit query parameter.
func (s *Server) WithMaxLimit(n int) *Server {
	if n > 0 {
		s.maxLimit = n
	}
	return s
}

// Register mounts every route on r.
func (s *Server) Register(r gochi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r gochi.Router) {
		r.Get("/records", s.SearchRecords)
		r.Get("/records/{id}", s.GetRecord)
		r.Get("/records/{id}/nearby", s.NearbyRecords)
		r.Get("/records/{id}/verifications", s.RecordVerifications)
		r.Get("/featured", s.FeaturedRecords)
		r.Get("/markers", s.Markers)
		r.Get("/regions", s.ListRegions)
		r.Get("/regions/{state}/districts", s.ListDistricts)
		r.Get("/auctions", s.ListAuctions)
		r.Get("/risk", s.ClassifyRisk)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})
}

// SearchRecords handles GET /api/v1/records.
func (s *Server) SearchRecords(w http.ResponseWriter, r *http.Request) {
	var params SearchParams
	if err := bindSearchParams(r, &params); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}
	if err := checkQueryLength(&params); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	query, filters := filtersFromParams(&params)
	records := s.search.Search(r.Context(), query, filters)

	writeJSON(w, http.StatusOK, RecordListResponse{
		Items:   recordsToAPI(records),
		Count:   len(records),
		Message: resultMessage(len(records)),
	})
}

// GetRecord handles GET /api/v1/records/{id}.
func (s *Server) GetRecord(w http.ResponseWriter, r *http.Request) {
	ctx := recordContext(r)
	rec, err := s.search.Get(ctx, pathParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToAPI(&rec))
}

// NearbyRecords handles GET /api/v1/records/{id}/nearby.
func (s *Server) NearbyRecords(w http.ResponseWriter, r *http.Request) {
	limit, err := s.bindLimit(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	neighbors, err := s.search.Nearby(recordContext(r), pathParam(r, "id"), limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NeighborListResponse{Items: neighborsToAPI(neighbors), Count: len(neighbors)})
}

// RecordVerifications handles GET /api/v1/records/{id}/verifications.
func (s *Server) RecordVerifications(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	ctx := recordContext(r)
	if _, err := s.search.Get(ctx, id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, VerificationListResponse{
		Items: verificationsToAPI(s.catalog.Verifications(ctx, id)),
	})
}

// FeaturedRecords handles GET /api/v1/featured.
func (s *Server) FeaturedRecords(w http.ResponseWriter, r *http.Request) {
	limit, err := s.bindLimit(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	records := s.search.Featured(r.Context(), limit)
	writeJSON(w, http.StatusOK, RecordListResponse{
		Items:   recordsToAPI(records),
		Count:   len(records),
		Message: resultMessage(len(records)),
	})
}

// Markers handles GET /api/v1/markers.
func (s *Server) Markers(w http.ResponseWriter, r *http.Request) {
	var params SearchParams
	if err := bindSearchParams(r, &params); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}
	if err := checkQueryLength(&params); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	query, filters := filtersFromParams(&params)
	markers := s.search.Markers(r.Context(), query, filters)
	writeJSON(w, http.StatusOK, MarkerListResponse{Items: markersToAPI(markers), Count: len(markers)})
}

// ListRegions handles GET /api/v1/regions.
func (s *Server) ListRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StateListResponse{Items: statesToAPI(s.catalog.States(r.Context()))})
}

// ListDistricts handles GET /api/v1/regions/{state}/districts.
func (s *Server) ListDistricts(w http.ResponseWriter, r *http.Request) {
	state := pathParam(r, "state")
	writeJSON(w, http.StatusOK, DistrictListResponse{
		State: state,
		Items: s.catalog.Districts(r.Context(), state),
	})
}

// ListAuctions handles GET /api/v1/auctions.
func (s *Server) ListAuctions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AuctionListResponse{Items: auctionsToAPI(s.catalog.Auctions(r.Context()))})
}

// ClassifyRisk handles GET /api/v1/risk.
func (s *Server) ClassifyRisk(w http.ResponseWriter, r *http.Request) {
	var params RiskParams
	if err := runtime.BindQueryParameter("form", true, true, "score", r.URL.Query(), &params.Score); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, riskToAPI(params.Score))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Records: report.Records,
		Checks:  checks,
	})
}

func bindSearchParams(r *http.Request, p *SearchParams) error {
	q := r.URL.Query()
	for _, b := range []struct {
		name string
		dest **string
	}{
		{"q", &p.Q},
		{"state", &p.State},
		{"district", &p.District},
		{"status", &p.Status},
		{"risk_level", &p.RiskLevel},
	} {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			return fmt.Errorf("invalid query parameter %s: %w", b.name, err)
		}
	}
	return nil
}

func checkQueryLength(p *SearchParams) error {
	if p.Q != nil && len(*p.Q) > MaxQueryLength {
		return fmt.Errorf("%w: q must be at most %d bytes", domain.ErrInvalidQuery, MaxQueryLength)
	}
	return nil
}

// bindLimit returns the requested limit, or 0 for the service default.
func (s *Server) bindLimit(r *http.Request) (int, error) {
	var params LimitParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", domain.ErrInvalidQuery)
	}
	if params.Limit == nil {
		return 0, nil
	}
	if *params.Limit < 1 || *params.Limit > s.maxLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidQuery, s.maxLimit)
	}
	return *params.Limit, nil
}

// pathParam returns a decoded chi URL parameter.
func pathParam(r *http.Request, name string) string {
	raw := gochi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// recordContext tags the request logger with the {id} path parameter.
func recordContext(r *http.Request) context.Context {
	return logger.WithFields(r.Context(), zap.String("record_id", pathParam(r, "id")))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-safe message without exposing internals.
// Invalid-query errors are built by this package and returned verbatim.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidQuery) {
		return err.Error()
	}
	for _, sentinel := range []error{domain.ErrRecordNotFound, domain.ErrNotFound} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Debug("domain error", zap.Error(err))

	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
