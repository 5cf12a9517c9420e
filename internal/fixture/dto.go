package fixture

import (
	"github.com/landsecure/landsecure/internal/domain/catalog"
	"github.com/landsecure/landsecure/internal/domain/land"
)

// The yaml and json tags carry identical names: snapshots are written as
// JSON and read back through the YAML decoder.

type fileDTO struct {
	States        []stateDTO        `yaml:"states" json:"states"`
	Records       []recordDTO       `yaml:"records" json:"records"`
	Verifications []verificationDTO `yaml:"verifications" json:"verifications"`
	Auctions      []auctionDTO      `yaml:"auctions" json:"auctions"`
}

type stateDTO struct {
	Name      string   `yaml:"name" json:"name"`
	Districts []string `yaml:"districts" json:"districts"`
}

type locationDTO struct {
	State    string  `yaml:"state" json:"state"`
	District string  `yaml:"district" json:"district"`
	Village  string  `yaml:"village" json:"village"`
	Lat      float64 `yaml:"lat" json:"lat"`
	Lng      float64 `yaml:"lng" json:"lng"`
}

type areaDTO struct {
	Value float64 `yaml:"value" json:"value"`
	Unit  string  `yaml:"unit" json:"unit"`
}

type ownerDTO struct {
	Name          string `yaml:"name" json:"name"`
	AadhaarLinked bool   `yaml:"aadhaar_linked" json:"aadhaar_linked"`
	Contact       string `yaml:"contact_number,omitempty" json:"contact_number,omitempty"`
}

type historyDTO struct {
	PreviousOwners []string `yaml:"previous_owners" json:"previous_owners"`
	TransferDates  []string `yaml:"transfer_dates" json:"transfer_dates"`
}

type documentDTO struct {
	Type       string `yaml:"type" json:"type"`
	Verified   bool   `yaml:"verified" json:"verified"`
	UploadDate string `yaml:"upload_date" json:"upload_date"`
}

type disputeDTO struct {
	Type        string `yaml:"type" json:"type"`
	FiledBy     string `yaml:"filed_by" json:"filed_by"`
	FiledDate   string `yaml:"filed_date" json:"filed_date"`
	Status      string `yaml:"status" json:"status"`
	Description string `yaml:"description" json:"description"`
}

type encumbranceDTO struct {
	Type        string `yaml:"type" json:"type"`
	Institution string `yaml:"institution,omitempty" json:"institution,omitempty"`
	Amount      *int64 `yaml:"amount,omitempty" json:"amount,omitempty"`
	StartDate   string `yaml:"start_date" json:"start_date"`
	EndDate     string `yaml:"end_date,omitempty" json:"end_date,omitempty"`
}

type recordDTO struct {
	ID           string           `yaml:"id" json:"id"`
	PlotNumber   string           `yaml:"plot_number" json:"plot_number"`
	Location     locationDTO      `yaml:"location" json:"location"`
	Area         areaDTO          `yaml:"area" json:"area"`
	Owner        ownerDTO         `yaml:"owner" json:"owner"`
	Status       string           `yaml:"status" json:"status"`
	RiskScore    int              `yaml:"risk_score" json:"risk_score"`
	History      historyDTO       `yaml:"history" json:"history"`
	Documents    []documentDTO    `yaml:"documents" json:"documents"`
	Disputes     []disputeDTO     `yaml:"disputes,omitempty" json:"disputes,omitempty"`
	Encumbrances []encumbranceDTO `yaml:"encumbrances,omitempty" json:"encumbrances,omitempty"`
	MarketValue  int64            `yaml:"market_value" json:"market_value"`
	LastUpdated  string           `yaml:"last_updated" json:"last_updated"`
}

type verificationDTO struct {
	ID         string `yaml:"id" json:"id"`
	LandID     string `yaml:"land_id" json:"land_id"`
	VerifiedBy string `yaml:"verified_by" json:"verified_by"`
	VerifiedAt string `yaml:"verified_at" json:"verified_at"`
	Purpose    string `yaml:"purpose" json:"purpose"`
}

type auctionDTO struct {
	ID          string  `yaml:"id" json:"id"`
	PlotNumber  string  `yaml:"plot_number" json:"plot_number"`
	Location    string  `yaml:"location" json:"location"`
	AuctionDate string  `yaml:"auction_date" json:"auction_date"`
	BasePrice   int64   `yaml:"base_price" json:"base_price"`
	AuctionType string  `yaml:"auction_type" json:"auction_type"`
	Description string  `yaml:"description" json:"description"`
	Area        areaDTO `yaml:"area" json:"area"`
}

// paramsFromDTO converts a decoded record into land.Params.
func paramsFromDTO(d *recordDTO) land.Params {
	p := land.Params{
		ID:         d.ID,
		PlotNumber: d.PlotNumber,
		Location: land.Location{
			State: d.Location.State, District: d.Location.District, Village: d.Location.Village,
			Lat: d.Location.Lat, Lng: d.Location.Lng,
		},
		Area: land.Area{Value: d.Area.Value, Unit: land.AreaUnit(d.Area.Unit)},
		Owner: land.Owner{
			Name: d.Owner.Name, AadhaarLinked: d.Owner.AadhaarLinked, Contact: d.Owner.Contact,
		},
		Status:    land.Status(d.Status),
		RiskScore: d.RiskScore,
		History: land.History{
			PreviousOwners: d.History.PreviousOwners,
			TransferDates:  d.History.TransferDates,
		},
		MarketValue: d.MarketValue,
		LastUpdated: d.LastUpdated,
	}

	for _, doc := range d.Documents {
		p.Documents = append(p.Documents, land.Document{
			Type: doc.Type, Verified: doc.Verified, UploadDate: doc.UploadDate,
		})
	}
	for _, ds := range d.Disputes {
		p.Disputes = append(p.Disputes, land.Dispute{
			Type: ds.Type, FiledBy: ds.FiledBy, FiledDate: ds.FiledDate,
			Status: land.DisputeStatus(ds.Status), Description: ds.Description,
		})
	}
	for _, e := range d.Encumbrances {
		p.Encumbrances = append(p.Encumbrances, land.Encumbrance{
			Type: land.EncumbranceType(e.Type), Institution: e.Institution, Amount: e.Amount,
			StartDate: e.StartDate, EndDate: e.EndDate,
		})
	}
	return p
}

// recordToDTO converts a domain record back into its fixture form.
func recordToDTO(r *land.Record) recordDTO {
	loc := r.Location()
	owner := r.Owner()
	hist := r.History()
	d := recordDTO{
		ID:         r.ID(),
		PlotNumber: r.PlotNumber(),
		Location: locationDTO{
			State: loc.State, District: loc.District, Village: loc.Village, Lat: loc.Lat, Lng: loc.Lng,
		},
		Area:        areaDTO{Value: r.Area().Value, Unit: string(r.Area().Unit)},
		Owner:       ownerDTO{Name: owner.Name, AadhaarLinked: owner.AadhaarLinked, Contact: owner.Contact},
		Status:      string(r.Status()),
		RiskScore:   r.RiskScore(),
		History:     historyDTO{PreviousOwners: hist.PreviousOwners, TransferDates: hist.TransferDates},
		MarketValue: r.MarketValue(),
		LastUpdated: r.LastUpdated(),
	}

	for _, doc := range r.Documents() {
		d.Documents = append(d.Documents, documentDTO{
			Type: doc.Type, Verified: doc.Verified, UploadDate: doc.UploadDate,
		})
	}
	for _, ds := range r.Disputes() {
		d.Disputes = append(d.Disputes, disputeDTO{
			Type: ds.Type, FiledBy: ds.FiledBy, FiledDate: ds.FiledDate,
			Status: string(ds.Status), Description: ds.Description,
		})
	}
	for _, e := range r.Encumbrances() {
		d.Encumbrances = append(d.Encumbrances, encumbranceDTO{
			Type: string(e.Type), Institution: e.Institution, Amount: e.Amount,
			StartDate: e.StartDate, EndDate: e.EndDate,
		})
	}
	return d
}

func stateFromDTO(d stateDTO) catalog.State {
	return catalog.State{Name: d.Name, Districts: d.Districts}
}

func verificationFromDTO(d verificationDTO) catalog.Verification {
	return catalog.Verification{
		ID: d.ID, LandID: d.LandID, VerifiedBy: d.VerifiedBy, VerifiedAt: d.VerifiedAt, Purpose: d.Purpose,
	}
}

func auctionFromDTO(d auctionDTO) catalog.Auction {
	return catalog.Auction{
		ID: d.ID, PlotNumber: d.PlotNumber, Location: d.Location, AuctionDate: d.AuctionDate,
		BasePrice: d.BasePrice, AuctionType: d.AuctionType, Description: d.Description,
		Area: land.Area{Value: d.Area.Value, Unit: land.AreaUnit(d.Area.Unit)},
	}
}

func stateToDTO(s catalog.State) stateDTO {
	return stateDTO{Name: s.Name, Districts: s.Districts}
}

func verificationToDTO(v catalog.Verification) verificationDTO {
	return verificationDTO{
		ID: v.ID, LandID: v.LandID, VerifiedBy: v.VerifiedBy, VerifiedAt: v.VerifiedAt, Purpose: v.Purpose,
	}
}

func auctionToDTO(a catalog.Auction) auctionDTO {
	return auctionDTO{
		ID: a.ID, PlotNumber: a.PlotNumber, Location: a.Location, AuctionDate: a.AuctionDate,
		BasePrice: a.BasePrice, AuctionType: a.AuctionType, Description: a.Description,
		Area: areaDTO{Value: a.Area.Value, Unit: string(a.Area.Unit)},
	}
}
