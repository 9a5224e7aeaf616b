package domain

type TrafficLevel string

const (
	TrafficClear    TrafficLevel = "Clear"
	TrafficModerate TrafficLevel = "Moderate"
	TrafficHeavy    TrafficLevel = "Heavy"
)

// Leg identifies which half of a dispatch a route explanation covers.
type Leg string

const (
	LegScene    Leg = "scene"
	LegHospital Leg = "hospital"
)

// RouteKey returns the explanation map key for an ambulance leg.
func RouteKey(ambulanceID string, leg Leg) string {
	if leg == LegHospital {
		return ambulanceID + "_hospital"
	}
	return ambulanceID
}

// Represents the narrated estimate for one leg of a dispatch.
// It is derived data: regenerated on dispatch and hospital confirmation,
// dropped when the call completes.
type RouteExplanation struct {
	Leg          Leg
	DistanceKm   float64
	DurationMin  int
	Distance     string
	Duration     string
	Reason       string
	Waypoints    []LatLng
	AvoidedZones []string
	TrafficLevel TrafficLevel
}
