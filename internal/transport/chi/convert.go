package chi

import (
	"fmt"

	domcat "github.com/landsecure/landsecure/internal/domain/catalog"
	"github.com/landsecure/landsecure/internal/domain/currency"
	"github.com/landsecure/landsecure/internal/domain/display"
	"github.com/landsecure/landsecure/internal/domain/land"
	"github.com/landsecure/landsecure/internal/domain/risk"
	"github.com/landsecure/landsecure/internal/domain/search/filter"
	searchuc "github.com/landsecure/landsecure/internal/usecase/search"
)

// resultMessage is the toast text shown after a search.
func resultMessage(n int) string {
	return fmt.Sprintf("Found %d properties matching your criteria", n)
}

func filtersFromParams(p *SearchParams) (string, filter.Filters) {
	var f filter.Filters
	if p.State != nil {
		f.State = *p.State
	}
	if p.District != nil {
		f.District = *p.District
	}
	if p.Status != nil {
		f.Status = land.Status(*p.Status)
	}
	if p.RiskLevel != nil {
		f.RiskLevel = risk.Level(*p.RiskLevel)
	}
	query := ""
	if p.Q != nil {
		query = *p.Q
	}
	return query, f
}

func recordToAPI(r *land.Record) Record {
	loc := r.Location()
	owner := r.Owner()
	hist := r.History()
	status := display.ForStatus(r.Status())
	level := r.RiskLevel()
	riskBadge := display.ForRisk(level)

	out := Record{
		ID:         r.ID(),
		PlotNumber: r.PlotNumber(),
		Location: Location{
			State: loc.State, District: loc.District, Village: loc.Village, Lat: loc.Lat, Lng: loc.Lng,
		},
		Area:                 areaToAPI(r.Area()),
		Owner:                Owner{Name: owner.Name, AadhaarLinked: owner.AadhaarLinked, ContactNumber: owner.Contact},
		Status:               string(r.Status()),
		StatusLabel:          status.Label,
		StatusTone:           string(status.Tone),
		RiskScore:            r.RiskScore(),
		RiskLevel:            string(level),
		RiskLabel:            riskBadge.Label,
		RiskTone:             string(riskBadge.Tone),
		RiskDescription:      risk.Describe(r.RiskScore()),
		History:              History{PreviousOwners: nonNil(hist.PreviousOwners), TransferDates: nonNil(hist.TransferDates)},
		Documents:            []Document{},
		MarketValue:          r.MarketValue(),
		MarketValueFormatted: currency.FormatINR(r.MarketValue()),
		LastUpdated:          r.LastUpdated(),
	}

	for _, d := range r.Documents() {
		out.Documents = append(out.Documents, Document{Type: d.Type, Verified: d.Verified, UploadDate: d.UploadDate})
	}
	for _, d := range r.Disputes() {
		out.Disputes = append(out.Disputes, Dispute{
			Type: d.Type, FiledBy: d.FiledBy, FiledDate: d.FiledDate,
			Status: string(d.Status), Description: d.Description,
		})
	}
	for _, e := range r.Encumbrances() {
		enc := Encumbrance{
			Type: string(e.Type), Institution: e.Institution, Amount: e.Amount,
			StartDate: e.StartDate, EndDate: e.EndDate,
		}
		if e.Amount != nil {
			enc.AmountFormatted = currency.FormatINR(*e.Amount)
		}
		out.Encumbrances = append(out.Encumbrances, enc)
	}
	return out
}

func recordsToAPI(records []land.Record) []Record {
	out := make([]Record, 0, len(records))
	for i := range records {
		out = append(out, recordToAPI(&records[i]))
	}
	return out
}

func neighborsToAPI(neighbors []searchuc.Neighbor) []Neighbor {
	out := make([]Neighbor, 0, len(neighbors))
	for i := range neighbors {
		out = append(out, Neighbor{
			Record:     recordToAPI(&neighbors[i].Record),
			DistanceKm: neighbors[i].DistanceKm,
		})
	}
	return out
}

func markersToAPI(markers []searchuc.Marker) []Marker {
	out := make([]Marker, 0, len(markers))
	for _, m := range markers {
		badge := display.ForStatus(m.Status)
		out = append(out, Marker{
			ID:          m.ID,
			Lat:         m.Lat,
			Lng:         m.Lng,
			Status:      string(m.Status),
			StatusLabel: badge.Label,
			StatusTone:  string(badge.Tone),
			RiskLevel:   string(m.RiskLevel),
			PlotNumber:  m.PlotNumber,
			Owner:       m.Owner,
		})
	}
	return out
}

func statesToAPI(states []domcat.State) []State {
	out := make([]State, 0, len(states))
	for _, s := range states {
		out = append(out, State{Name: s.Name, Districts: nonNil(s.Districts)})
	}
	return out
}

func verificationsToAPI(vs []domcat.Verification) []Verification {
	out := make([]Verification, 0, len(vs))
	for _, v := range vs {
		out = append(out, Verification{
			ID: v.ID, LandID: v.LandID, VerifiedBy: v.VerifiedBy, VerifiedAt: v.VerifiedAt, Purpose: v.Purpose,
		})
	}
	return out
}

func auctionsToAPI(as []domcat.Auction) []Auction {
	out := make([]Auction, 0, len(as))
	for _, a := range as {
		out = append(out, Auction{
			ID:                 a.ID,
			PlotNumber:         a.PlotNumber,
			Location:           a.Location,
			AuctionDate:        a.AuctionDate,
			BasePrice:          a.BasePrice,
			BasePriceFormatted: currency.FormatINR(a.BasePrice),
			AuctionType:        a.AuctionType,
			Description:        a.Description,
			Area:               areaToAPI(a.Area),
		})
	}
	return out
}

func riskToAPI(score int) RiskResponse {
	level := risk.Classify(score)
	badge := display.ForRisk(level)
	return RiskResponse{
		Score:       score,
		Level:       string(level),
		Label:       badge.Label,
		Tone:        string(badge.Tone),
		Description: risk.Describe(score),
	}
}

func areaToAPI(a land.Area) Area {
	return Area{Value: a.Value, Unit: string(a.Unit)}
}

// nonNil keeps empty lists as [] rather than null on the wire.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
