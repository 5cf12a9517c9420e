package land

// Status is the exclusive legal-state classification of a parcel.
type Status string

// Status tags as they appear in land registry data.
const (
	StatusLegal        Status = "legal"
	StatusIllegal      Status = "illegal"
	StatusGovernment   Status = "govt"
	StatusUnregistered Status = "no-registry"
)

// Statuses lists every status tag in display order.
var Statuses = []Status{StatusLegal, StatusIllegal, StatusGovernment, StatusUnregistered}

// IsValid checks if the status is one of the supported values.
func (s Status) IsValid() bool {
	return s == StatusLegal || s == StatusIllegal || s == StatusGovernment || s == StatusUnregistered
}

// AreaUnit is the unit of a parcel area.
type AreaUnit string

// Area units.
const (
	Acres        AreaUnit = "acres"
	Hectares     AreaUnit = "hectares"
	SquareFeet   AreaUnit = "sqft"
	SquareMeters AreaUnit = "sqm"
)

// IsValid checks if the unit is one of the supported values.
func (u AreaUnit) IsValid() bool {
	return u == Acres || u == Hectares || u == SquareFeet || u == SquareMeters
}

// DisputeStatus is the lifecycle state of a dispute.
type DisputeStatus string

// Dispute states.
const (
	DisputeActive   DisputeStatus = "active"
	DisputeResolved DisputeStatus = "resolved"
	DisputePending  DisputeStatus = "pending"
)

// IsValid checks if the dispute status is one of the supported values.
func (s DisputeStatus) IsValid() bool {
	return s == DisputeActive || s == DisputeResolved || s == DisputePending
}

// EncumbranceType is the kind of financial claim.
type EncumbranceType string

// Encumbrance kinds.
const (
	Mortgage EncumbranceType = "mortgage"
	Lien     EncumbranceType = "lien"
	Easement EncumbranceType = "easement"
)

// IsValid checks if the encumbrance type is one of the supported values.
func (t EncumbranceType) IsValid() bool {
	return t == Mortgage || t == Lien || t == Easement
}
