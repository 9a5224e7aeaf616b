package domain

import "strings"

type CongestionLevel string

const (
	CongestionModerate CongestionLevel = "moderate"
	CongestionHeavy    CongestionLevel = "heavy"
	CongestionSevere   CongestionLevel = "severe"
)

func (l CongestionLevel) Valid() bool {
	switch l {
	case CongestionModerate, CongestionHeavy, CongestionSevere:
		return true
	}
	return false
}

// Static advisory region. Only read by scoring and narrative heuristics.
type CongestionZone struct {
	Center       LatLng
	RadiusMeters float64
	Level        CongestionLevel
	Label        string
	Permanent    bool
}

const zoneLabelDelimiter = "—"

// ShortLabel is the label up to the first delimiter, trimmed.
func (z CongestionZone) ShortLabel() string {
	label, _, _ := strings.Cut(z.Label, zoneLabelDelimiter)
	return strings.TrimSpace(label)
}

// Contains reports whether p lies within the zone radius.
func (z CongestionZone) Contains(p LatLng) bool {
	return DistanceKm(p, z.Center) < z.RadiusMeters/1000
}

// Candidate location used when simulating caller-location detection.
type AccidentZone struct {
	Center LatLng
	City   string
}
