package land

import (
	"fmt"
	"strings"

	"github.com/landsecure/landsecure/internal/domain"
	"github.com/landsecure/landsecure/internal/domain/geo"
	"github.com/landsecure/landsecure/internal/domain/risk"
)

// Risk score bounds.
const (
	MinRiskScore = 0
	MaxRiskScore = 100
)

// Location is where a parcel sits.
type Location struct {
	State    string
	District string
	Village  string
	Lat      float64
	Lng      float64
}

// Area is the parcel size with its unit.
type Area struct {
	Value float64
	Unit  AreaUnit
}

// Owner is the current title holder.
type Owner struct {
	Name string
	// AadhaarLinked reports whether the owner identity is linked to Aadhaar.
	AadhaarLinked bool
	Contact       string
}

// History holds prior owners and transfer dates as two independent lists.
// Their lengths may differ; no index correspondence is implied.
type History struct {
	PreviousOwners []string
	TransferDates  []string
}

// Document is an uploaded supporting document.
type Document struct {
	Type       string
	Verified   bool
	UploadDate string
}

// Dispute is a legal dispute filed against a parcel.
type Dispute struct {
	Type        string
	FiledBy     string
	FiledDate   string
	Status      DisputeStatus
	Description string
}

// Encumbrance is a financial claim registered against a parcel.
type Encumbrance struct {
	Type        EncumbranceType
	Institution string
	Amount      *int64
	StartDate   string
	EndDate     string
}

// Params carries the raw fields of a record before validation.
type Params struct {
	ID           string
	PlotNumber   string
	Location     Location
	Area         Area
	Owner        Owner
	Status       Status
	RiskScore    int
	History      History
	Documents    []Document
	Disputes     []Dispute
	Encumbrances []Encumbrance
	MarketValue  int64
	LastUpdated  string
}

// Record is a land parcel (immutable value object).
type Record struct {
	id           string
	plotNumber   string
	location     Location
	area         Area
	owner        Owner
	status       Status
	riskScore    int
	history      History
	documents    []Document
	disputes     []Dispute
	encumbrances []Encumbrance
	marketValue  int64
	lastUpdated  string
}

// New validates p and creates a Record owning private copies of every slice.
func New(p Params) (Record, error) {
	if err := validate(&p); err != nil {
		return Record{}, err
	}
	return Record{
		id:           p.ID,
		plotNumber:   p.PlotNumber,
		location:     p.Location,
		area:         p.Area,
		owner:        p.Owner,
		status:       p.Status,
		riskScore:    p.RiskScore,
		history:      cloneHistory(p.History),
		documents:    cloneSlice(p.Documents),
		disputes:     cloneSlice(p.Disputes),
		encumbrances: cloneEncumbrances(p.Encumbrances),
		marketValue:  p.MarketValue,
		lastUpdated:  p.LastUpdated,
	}, nil
}

func validate(p *Params) error {
	if strings.TrimSpace(p.ID) == "" {
		return domain.NewRecordError("", "id is required")
	}
	if p.RiskScore < MinRiskScore || p.RiskScore > MaxRiskScore {
		return domain.NewRecordError(p.ID,
			fmt.Sprintf("risk score must be between %d and %d, got %d", MinRiskScore, MaxRiskScore, p.RiskScore))
	}
	if !p.Status.IsValid() {
		return domain.NewRecordError(p.ID, fmt.Sprintf("unknown status %q", p.Status))
	}
	if !p.Area.Unit.IsValid() {
		return domain.NewRecordError(p.ID, fmt.Sprintf("unknown area unit %q", p.Area.Unit))
	}
	if p.Area.Value < 0 {
		return domain.NewRecordError(p.ID, "area must not be negative")
	}
	if !geo.ValidateCoordinates(p.Location.Lat, p.Location.Lng) {
		return domain.NewRecordError(p.ID,
			fmt.Sprintf("coordinates out of range: %v,%v", p.Location.Lat, p.Location.Lng))
	}
	for i, d := range p.Disputes {
		if !d.Status.IsValid() {
			return domain.NewRecordError(p.ID, fmt.Sprintf("dispute %d: unknown status %q", i, d.Status))
		}
	}
	for i, e := range p.Encumbrances {
		if !e.Type.IsValid() {
			return domain.NewRecordError(p.ID, fmt.Sprintf("encumbrance %d: unknown type %q", i, e.Type))
		}
	}
	return nil
}

// ID returns the record identifier.
func (r Record) ID() string { return r.id }

// PlotNumber returns the human-facing plot number.
func (r Record) PlotNumber() string { return r.plotNumber }

// Location returns the parcel location.
func (r Record) Location() Location { return r.location }

// Point returns the parcel coordinates.
func (r Record) Point() geo.Point { return geo.Point{Lat: r.location.Lat, Lng: r.location.Lng} }

// Area returns the parcel area.
func (r Record) Area() Area { return r.area }

// Owner returns the current owner.
func (r Record) Owner() Owner { return r.owner }

// Status returns the legal status tag.
func (r Record) Status() Status { return r.status }

// RiskScore returns the 0-100 risk score.
func (r Record) RiskScore() int { return r.riskScore }

// RiskLevel returns the bucket derived from the risk score.
func (r Record) RiskLevel() risk.Level { return risk.Classify(r.riskScore) }

// History returns a copy of the ownership history.
func (r Record) History() History { return cloneHistory(r.history) }

// Documents returns a copy of the supporting documents.
func (r Record) Documents() []Document { return cloneSlice(r.documents) }

// Disputes returns a copy of the disputes, nil when none were filed.
func (r Record) Disputes() []Dispute { return cloneSlice(r.disputes) }

// HasDisputes reports whether any dispute was filed. An empty list counts as
// none, the same as an absent one.
func (r Record) HasDisputes() bool { return len(r.disputes) > 0 }

// Encumbrances returns a copy of the encumbrances, nil when none exist.
func (r Record) Encumbrances() []Encumbrance { return cloneEncumbrances(r.encumbrances) }

// MarketValue returns the market value in whole rupees.
func (r Record) MarketValue() int64 { return r.marketValue }

// LastUpdated returns the last update date.
func (r Record) LastUpdated() string { return r.lastUpdated }

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	c := make([]T, len(s))
	copy(c, s)
	return c
}

func cloneHistory(h History) History {
	return History{
		PreviousOwners: cloneSlice(h.PreviousOwners),
		TransferDates:  cloneSlice(h.TransferDates),
	}
}

func cloneEncumbrances(s []Encumbrance) []Encumbrance {
	c := cloneSlice(s)
	for i := range c {
		if c[i].Amount != nil {
			v := *c[i].Amount
			c[i].Amount = &v
		}
	}
	return c
}
