// Package catalog holds the reference data served next to land records:
// the state/district catalog, recent verifications and upcoming auctions.
package catalog

import "github.com/landsecure/landsecure/internal/domain/land"

// State is an Indian state with the districts covered by the product.
type State struct {
	Name      string
	Districts []string
}

// Verification is a completed verification of a land record by an institution.
type Verification struct {
	ID         string
	LandID     string
	VerifiedBy string
	VerifiedAt string
	Purpose    string
}

// Auction is an upcoming land auction.
type Auction struct {
	ID          string
	PlotNumber  string
	Location    string
	AuctionDate string
	BasePrice   int64
	AuctionType string
	Description string
	Area        land.Area
}
