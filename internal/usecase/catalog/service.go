// Package catalog serves the reference data shipped with the record fixture.
package catalog

import (
	"context"
	"slices"

	"go.uber.org/zap"

	domcat "github.com/landsecure/landsecure/internal/domain/catalog"
	"github.com/landsecure/landsecure/internal/logger"
)

// Service exposes states, verifications and auctions. The data is fixed at
// construction; every accessor returns copies.
type Service struct {
	states        []domcat.State
	verifications []domcat.Verification
	auctions      []domcat.Auction
}

// New creates a catalog service over the given reference data.
func New(states []domcat.State, verifications []domcat.Verification, auctions []domcat.Auction) *Service {
	s := &Service{
		states:        make([]domcat.State, 0, len(states)),
		verifications: slices.Clone(verifications),
		auctions:      slices.Clone(auctions),
	}
	for _, st := range states {
		s.states = append(s.states, domcat.State{Name: st.Name, Districts: slices.Clone(st.Districts)})
	}
	return s
}

// States returns every state with its districts.
func (s *Service) States(_ context.Context) []domcat.State {
	out := make([]domcat.State, 0, len(s.states))
	for _, st := range s.states {
		out = append(out, domcat.State{Name: st.Name, Districts: slices.Clone(st.Districts)})
	}
	return out
}

// Districts returns the districts of state, or an empty list if the state is unknown.
func (s *Service) Districts(ctx context.Context, state string) []string {
	for _, st := range s.states {
		if st.Name == state {
			return slices.Clone(st.Districts)
		}
	}
	logger.FromContext(ctx).Debug("unknown state", zap.String("state", state))
	return []string{}
}

// Verifications returns recent verifications in catalog order. A non-empty
// landID keeps only the verifications of that record.
func (s *Service) Verifications(_ context.Context, landID string) []domcat.Verification {
	out := make([]domcat.Verification, 0, len(s.verifications))
	for _, v := range s.verifications {
		if landID == "" || v.LandID == landID {
			out = append(out, v)
		}
	}
	return out
}

// Auctions returns the upcoming auctions.
func (s *Service) Auctions(_ context.Context) []domcat.Auction {
	return append([]domcat.Auction{}, s.auctions...)
}
