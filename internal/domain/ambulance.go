package domain

type AmbulanceType string

const (
	AmbulanceBasic    AmbulanceType = "basic"
	AmbulanceAdvanced AmbulanceType = "advanced"
	AmbulanceICU      AmbulanceType = "icu"
)

func (t AmbulanceType) Valid() bool {
	switch t {
	case AmbulanceBasic, AmbulanceAdvanced, AmbulanceICU:
		return true
	}
	return false
}

// Label is the dispatcher-facing description of the capability class.
func (t AmbulanceType) Label() string {
	switch t {
	case AmbulanceICU:
		return "ICU Ambulance (5+ patients)"
	case AmbulanceAdvanced:
		return "Advanced Life Support (3-4 patients)"
	default:
		return "Basic Life Support (1-2 patients)"
	}
}

// NeededType derives the required capability class from the patient count.
// Every place that displays or reasons about a needed type goes through here.
func NeededType(patientCount int) AmbulanceType {
	switch {
	case patientCount >= 5:
		return AmbulanceICU
	case patientCount >= 3:
		return AmbulanceAdvanced
	default:
		return AmbulanceBasic
	}
}

type AmbulanceStatus string

const (
	AmbulanceAvailable   AmbulanceStatus = "available"
	AmbulanceDispatched  AmbulanceStatus = "dispatched"
	AmbulanceEnRoute     AmbulanceStatus = "en_route"
	AmbulanceAtScene     AmbulanceStatus = "at_scene"
	AmbulanceToHospital  AmbulanceStatus = "to_hospital"
	AmbulanceReturning   AmbulanceStatus = "returning"
	AmbulanceMaintenance AmbulanceStatus = "maintenance"
)

func (s AmbulanceStatus) Valid() bool {
	switch s {
	case AmbulanceAvailable, AmbulanceDispatched, AmbulanceEnRoute, AmbulanceAtScene,
		AmbulanceToHospital, AmbulanceReturning, AmbulanceMaintenance:
		return true
	}
	return false
}

// HoldsCall reports whether a unit in this status must reference a call.
func (s AmbulanceStatus) HoldsCall() bool {
	switch s {
	case AmbulanceAvailable, AmbulanceMaintenance, AmbulanceReturning:
		return false
	}
	return s.Valid()
}

// Moving reports whether the position simulator advances units in this status.
func (s AmbulanceStatus) Moving() bool {
	return s == AmbulanceDispatched || s == AmbulanceEnRoute || s == AmbulanceToHospital
}

// MaxRouteHistory caps the trailing position history kept per unit.
const MaxRouteHistory = 60

// Represents one vehicle in the fleet.
type Ambulance struct {
	ID            string
	DriverName    string
	VehicleNumber string
	Location      LatLng
	Status        AmbulanceStatus
	CurrentCallID string
	Type          AmbulanceType
	RouteHistory  []LatLng
}

// AppendHistory records p and drops the oldest points beyond MaxRouteHistory.
func (a *Ambulance) AppendHistory(p LatLng) {
	a.RouteHistory = append(a.RouteHistory, p)
	if over := len(a.RouteHistory) - MaxRouteHistory; over > 0 {
		a.RouteHistory = append([]LatLng(nil), a.RouteHistory[over:]...)
	}
}

// Heading derives the icon rotation from the last two history points.
// Units with fewer than two points face north.
func (a *Ambulance) Heading() float64 {
	n := len(a.RouteHistory)
	if n < 2 {
		return 0
	}
	return HeadingDegrees(a.RouteHistory[n-2], a.RouteHistory[n-1])
}
