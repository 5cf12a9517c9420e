// Package risk derives the ordinal risk bucket of a land parcel from its 0-100 score.
package risk

// Level is the risk bucket of a land parcel.
type Level string

// Risk level constants.
const (
	Low    Level = "Low"
	Medium Level = "Medium"
	High   Level = "High"
)

// Bucket boundaries, lower bound inclusive.
const (
	MediumFrom = 30
	HighFrom   = 70
)

// Classify maps a score to its bucket: <30 Low, [30,70) Medium, >=70 High.
// Total over all ints; callers keep scores in [0,100].
func Classify(score int) Level {
	switch {
	case score < MediumFrom:
		return Low
	case score < HighFrom:
		return Medium
	default:
		return High
	}
}

// IsValid checks if the level is one of the supported values.
func (l Level) IsValid() bool {
	return l == Low || l == Medium || l == High
}

var descriptions = map[Level]string{
	Low:    "Low risk properties have clear legal titles, proper registration, and no history of disputes.",
	Medium: "Medium risk properties may have minor documentation issues, pending registry status, or past disputes that have been resolved.",
	High:   "High risk properties have serious legal issues, unclear ownership, active disputes, or illegal construction status.",
}

// Describe returns the explanatory sentence for the bucket of score.
func Describe(score int) string {
	return descriptions[Classify(score)]
}
