package filter

import (
	"strings"
	"testing"

	"github.com/landsecure/landsecure/internal/domain/land"
	"github.com/landsecure/landsecure/internal/domain/risk"
)

func mustRecord(t *testing.T, p land.Params) land.Record {
	t.Helper()
	r, err := land.New(p)
	if err != nil {
		t.Fatalf("land.New: %v", err)
	}
	return r
}

func whitefield(t *testing.T) land.Record {
	t.Helper()
	return mustRecord(t, land.Params{
		ID:         "KA2023001",
		PlotNumber: "BLR-1234-5678",
		Location: land.Location{
			State: "Karnataka", District: "Bangalore", Village: "Whitefield",
			Lat: 12.9716, Lng: 77.5946,
		},
		Area:      land.Area{Value: 2.5, Unit: land.Acres},
		Owner:     land.Owner{Name: "Rajesh Kumar", AadhaarLinked: true},
		Status:    land.StatusLegal,
		RiskScore: 15,
	})
}

// --- Filters tests ---

func TestFilters_EmptyMatchesAll(t *testing.T) {
	var f Filters
	if len(f.Present()) != 0 {
		t.Errorf("Present() = %v", f.Present())
	}
	if !f.Matches(whitefield(t)) {
		t.Error("empty filters must match")
	}
}

func TestFilters_Matches(t *testing.T) {
	r := whitefield(t)

	tests := []struct {
		name string
		f    Filters
		want bool
	}{
		{"state match", Filters{State: "Karnataka"}, true},
		{"state mismatch", Filters{State: "Gujarat"}, false},
		{"state is exact", Filters{State: "karnataka"}, false},
		{"district match", Filters{District: "Bangalore"}, true},
		{"district mismatch", Filters{District: "Mysore"}, false},
		{"status match", Filters{Status: land.StatusLegal}, true},
		{"status mismatch", Filters{Status: land.StatusIllegal}, false},
		{"unknown status", Filters{Status: "whatever"}, false},
		{"risk level derived", Filters{RiskLevel: risk.Low}, true},
		{"risk level mismatch", Filters{RiskLevel: risk.High}, false},
		{"conjunction", Filters{State: "Karnataka", Status: land.StatusLegal, RiskLevel: risk.Low}, true},
		{"conjunction one fails", Filters{State: "Karnataka", Status: land.StatusGovernment}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Matches(r); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilters_Present(t *testing.T) {
	f := Filters{State: "Karnataka", RiskLevel: risk.High}
	got := strings.Join(f.Present(), ",")
	if got != "state,risk_level" {
		t.Errorf("Present() = %q", got)
	}
}

func TestFilters_Satisfiable(t *testing.T) {
	tests := []struct {
		name string
		f    Filters
		want bool
	}{
		{"empty", Filters{}, true},
		{"known status", Filters{Status: land.StatusUnregistered}, true},
		{"known risk level", Filters{RiskLevel: risk.Medium}, true},
		{"unknown status", Filters{Status: "leased"}, false},
		{"unknown risk level", Filters{RiskLevel: "Extreme"}, false},
		{"lower-case risk level", Filters{RiskLevel: "low"}, false},
		{"free-form state", Filters{State: "Atlantis"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Satisfiable(); got != tt.want {
				t.Errorf("Satisfiable() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- TextQuery tests ---

func TestTextQuery_Matches(t *testing.T) {
	r := whitefield(t)

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"whitefield", true},
		{"WHITE", true},
		{"blr-1234", true},
		{"rajesh", true},
		{"kumar", true},
		{"ka2023", true},
		{"karnataka", false}, // state is not a text field
		{"bangalore", false}, // district is not a text field
		{"mysore", false},
	}

	for _, tt := range tests {
		if got := NewTextQuery(tt.query).Matches(r); got != tt.want {
			t.Errorf("query %q: Matches() = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestTextQuery_TrimsQuery(t *testing.T) {
	r := whitefield(t)
	if !NewTextQuery("  WhiteField \t").Matches(r) {
		t.Error("surrounding whitespace should be ignored")
	}
	if !NewTextQuery("   ").Matches(r) {
		t.Error("blank query should match everything")
	}
}

func TestTextQuery_LongQueryIsNotShortened(t *testing.T) {
	r := mustRecord(t, land.Params{
		ID:       "X1",
		Location: land.Location{Village: strings.Repeat("a", 300)},
		Area:     land.Area{Value: 1, Unit: land.Acres},
		Status:   land.StatusLegal,
	})

	if !NewTextQuery(strings.Repeat("a", 300)).Matches(r) {
		t.Error("whole village should match")
	}
	if NewTextQuery(strings.Repeat("a", 256) + "zzz").Matches(r) {
		t.Error("query that is not a substring of any field matched")
	}
}

func TestTextQuery_DecomposedAccent(t *testing.T) {
	r := mustRecord(t, land.Params{
		ID:       "X2",
		Location: land.Location{Village: "Cafe\u0301 Nagar"},
		Area:     land.Area{Value: 1, Unit: land.Acres},
		Status:   land.StatusLegal,
	})

	for _, q := range []string{"cafe", "CAFE", "Cafe\u0301", "nagar"} {
		if !NewTextQuery(q).Matches(r) {
			t.Errorf("query %q should match village %q", q, r.Location().Village)
		}
	}
}
