// Package display holds the single mapping from status and risk enums to
// presentation labels and tones, so consumers never re-derive them.
package display

import (
	"github.com/landsecure/landsecure/internal/domain/land"
	"github.com/landsecure/landsecure/internal/domain/risk"
)

// Tone is a presentation-neutral color intent.
type Tone string

// Tones understood by presentation layers.
const (
	Success Tone = "success"
	Warning Tone = "warning"
	Danger  Tone = "danger"
	Info    Tone = "info"
	Neutral Tone = "neutral"
)

// Badge is a label with its tone.
type Badge struct {
	Label string
	Tone  Tone
}

var unknown = Badge{Label: "Unknown", Tone: Neutral}

var statusBadges = map[land.Status]Badge{
	land.StatusLegal:        {Label: "Legal", Tone: Success},
	land.StatusIllegal:      {Label: "Illegal", Tone: Danger},
	land.StatusGovernment:   {Label: "Government", Tone: Info},
	land.StatusUnregistered: {Label: "No Registry", Tone: Warning},
}

var riskBadges = map[risk.Level]Badge{
	risk.Low:    {Label: "Low Risk", Tone: Success},
	risk.Medium: {Label: "Medium Risk", Tone: Warning},
	risk.High:   {Label: "High Risk", Tone: Danger},
}

// ForStatus returns the badge of a status tag.
func ForStatus(s land.Status) Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return unknown
}

// ForRisk returns the badge of a risk level.
func ForRisk(l risk.Level) Badge {
	if b, ok := riskBadges[l]; ok {
		return b
	}
	return unknown
}
