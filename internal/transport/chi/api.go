package chi

// ErrorCode is a machine-readable error code in ErrorResponse.
type ErrorCode string

// Error codes returned by the API.
const (
	ErrorCodeBadRequest     ErrorCode = "bad_request"
	ErrorCodeInvalidQuery   ErrorCode = "invalid_query"
	ErrorCodeUnauthorized   ErrorCode = "unauthorized"
	ErrorCodeRecordNotFound ErrorCode = "record_not_found"
	ErrorCodeNotFound       ErrorCode = "not_found"
	ErrorCodeInternalError  ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchParams are the query parameters of the record search and marker routes.
type SearchParams struct {
	Q         *string `json:"q,omitempty"`
	State     *string `json:"state,omitempty"`
	District  *string `json:"district,omitempty"`
	Status    *string `json:"status,omitempty"`
	RiskLevel *string `json:"risk_level,omitempty"`
}

// LimitParams carries the optional result size of the side-panel routes.
type LimitParams struct {
	Limit *int `json:"limit,omitempty"`
}

// RiskParams are the query parameters of GET /api/v1/risk.
type RiskParams struct {
	Score int `json:"score"`
}

// Location is a record's administrative location and coordinates.
type Location struct {
	State    string  `json:"state"`
	District string  `json:"district"`
	Village  string  `json:"village"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// Area is a parcel size with its unit.
type Area struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Owner is the current registered owner.
type Owner struct {
	Name          string `json:"name"`
	AadhaarLinked bool   `json:"aadhaar_linked"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// History lists previous owners and transfer dates as recorded.
type History struct {
	PreviousOwners []string `json:"previous_owners"`
	TransferDates  []string `json:"transfer_dates"`
}

// Document is a supporting document attached to a record.
type Document struct {
	Type       string `json:"type"`
	Verified   bool   `json:"verified"`
	UploadDate string `json:"upload_date"`
}

// Dispute is a legal dispute filed against a parcel.
type Dispute struct {
	Type        string `json:"type"`
	FiledBy     string `json:"filed_by"`
	FiledDate   string `json:"filed_date"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// Encumbrance is a charge on a parcel.
type Encumbrance struct {
	Type            string `json:"type"`
	Institution     string `json:"institution,omitempty"`
	Amount          *int64 `json:"amount,omitempty"`
	AmountFormatted string `json:"amount_formatted,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date,omitempty"`
}

// Record is a land record with its derived display fields.
type Record struct {
	ID                   string        `json:"id"`
	PlotNumber           string        `json:"plot_number"`
	Location             Location      `json:"location"`
	Area                 Area          `json:"area"`
	Owner                Owner         `json:"owner"`
	Status               string        `json:"status"`
	StatusLabel          string        `json:"status_label"`
	StatusTone           string        `json:"status_tone"`
	RiskScore            int           `json:"risk_score"`
	RiskLevel            string        `json:"risk_level"`
	RiskLabel            string        `json:"risk_label"`
	RiskTone             string        `json:"risk_tone"`
	RiskDescription      string        `json:"risk_description"`
	History              History       `json:"history"`
	Documents            []Document    `json:"documents"`
	Disputes             []Dispute     `json:"disputes,omitempty"`
	Encumbrances         []Encumbrance `json:"encumbrances,omitempty"`
	MarketValue          int64         `json:"market_value"`
	MarketValueFormatted string        `json:"market_value_formatted"`
	LastUpdated          string        `json:"last_updated"`
}

// RecordListResponse is the search result with the toast summary.
type RecordListResponse struct {
	Items   []Record `json:"items"`
	Count   int      `json:"count"`
	Message string   `json:"message"`
}

// Neighbor is a record in the same district with its distance.
type Neighbor struct {
	Record
	DistanceKm float64 `json:"distance_km"`
}

// NeighborListResponse lists nearby records.
type NeighborListResponse struct {
	Items []Neighbor `json:"items"`
	Count int        `json:"count"`
}

// Marker is the minimal projection a map widget needs.
type Marker struct {
	ID          string  `json:"id"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"status_label"`
	StatusTone  string  `json:"status_tone"`
	RiskLevel   string  `json:"risk_level"`
	PlotNumber  string  `json:"plot_number"`
	Owner       string  `json:"owner"`
}

// MarkerListResponse lists map markers.
type MarkerListResponse struct {
	Items []Marker `json:"items"`
	Count int      `json:"count"`
}

// State is a state with its districts.
type State struct {
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}

// StateListResponse lists the state catalog.
type StateListResponse struct {
	Items []State `json:"items"`
}

// DistrictListResponse lists the districts of one state.
type DistrictListResponse struct {
	State string   `json:"state"`
	Items []string `json:"items"`
}

// Verification is a completed verification of a record.
type Verification struct {
	ID         string `json:"id"`
	LandID     string `json:"land_id"`
	VerifiedBy string `json:"verified_by"`
	VerifiedAt string `json:"verified_at"`
	Purpose    string `json:"purpose"`
}

// VerificationListResponse lists verifications.
type VerificationListResponse struct {
	Items []Verification `json:"items"`
}

// Auction is an upcoming auction.
type Auction struct {
	ID                 string `json:"id"`
	PlotNumber         string `json:"plot_number"`
	Location           string `json:"location"`
	AuctionDate        string `json:"auction_date"`
	BasePrice          int64  `json:"base_price"`
	BasePriceFormatted string `json:"base_price_formatted"`
	AuctionType        string `json:"auction_type"`
	Description        string `json:"description"`
	Area               Area   `json:"area"`
}

// AuctionListResponse lists auctions.
type AuctionListResponse struct {
	Items []Auction `json:"items"`
}

// RiskResponse is the risk bucket of a score.
type RiskResponse struct {
	Score       int    `json:"score"`
	Level       string `json:"level"`
	Label       string `json:"label"`
	Tone        string `json:"tone"`
	Description string `json:"description"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Records int               `json:"records"`
	Checks  map[string]string `json:"checks"`
}
