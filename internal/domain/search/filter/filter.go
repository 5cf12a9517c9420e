package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/landsecure/landsecure/internal/domain/land"
	"github.com/landsecure/landsecure/internal/domain/risk"
)

// Filters is a conjunction of optional structured constraints.
// A zero-valued field imposes no constraint. Values are compared exactly,
// so an unknown value matches nothing rather than failing.
type Filters struct {
	State     string
	District  string
	Status    land.Status
	RiskLevel risk.Level
}

// Present returns the names of the constraints that are set, in a fixed order.
func (f Filters) Present() []string {
	var names []string
	if f.State != "" {
		names = append(names, "state")
	}
	if f.District != "" {
		names = append(names, "district")
	}
	if f.Status != "" {
		names = append(names, "status")
	}
	if f.RiskLevel != "" {
		names = append(names, "risk_level")
	}
	return names
}

// Matches reports whether r satisfies every present constraint.
// RiskLevel is compared against the bucket derived from the risk score.
func (f Filters) Matches(r land.Record) bool {
	loc := r.Location()
	if f.State != "" && loc.State != f.State {
		return false
	}
	if f.District != "" && loc.District != f.District {
		return false
	}
	if f.Status != "" && r.Status() != f.Status {
		return false
	}
	if f.RiskLevel != "" && r.RiskLevel() != f.RiskLevel {
		return false
	}
	return true
}

// Satisfiable reports whether some record could match. A status or risk
// level outside the known tags can never match.
func (f Filters) Satisfiable() bool {
	if f.Status != "" && !f.Status.IsValid() {
		return false
	}
	if f.RiskLevel != "" && !f.RiskLevel.IsValid() {
		return false
	}
	return true
}

// TextQuery is a case-insensitive substring matcher over plot number,
// owner name, village and id. Not safe for concurrent use: build one per search.
type TextQuery struct {
	needle string
	caser  cases.Caser
}

// NewTextQuery trims and lower-cases raw.
func NewTextQuery(raw string) TextQuery {
	caser := cases.Lower(language.Und)
	return TextQuery{needle: caser.String(strings.TrimSpace(raw)), caser: caser}
}

// Matches reports whether the query is a substring of any searchable field of r.
func (q TextQuery) Matches(r land.Record) bool {
	if q.needle == "" {
		return true
	}
	for _, field := range [...]string{r.PlotNumber(), r.Owner().Name, r.Location().Village, r.ID()} {
		if strings.Contains(q.caser.String(field), q.needle) {
			return true
		}
	}
	return false
}
