package domain

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// CallStatus is a call's position in the linear dispatch lifecycle.
type CallStatus string

const (
	CallPending    CallStatus = "pending"
	CallDispatched CallStatus = "dispatched"
	CallEnRoute    CallStatus = "en_route"
	CallAtScene    CallStatus = "at_scene"
	CallToHospital CallStatus = "to_hospital"
	CallCompleted  CallStatus = "completed"
)

func (s CallStatus) Valid() bool {
	switch s {
	case CallPending, CallDispatched, CallEnRoute, CallAtScene, CallToHospital, CallCompleted:
		return true
	}
	return false
}

// HasAmbulance reports whether a call in this status must carry an assigned ambulance.
func (s CallStatus) HasAmbulance() bool {
	return s != CallPending && s.Valid()
}

// Represents one reported incident.
// Calls are never deleted; completed calls stay in the list as history and
// keep their assigned ambulance and hospital.
type EmergencyCall struct {
	ID           string
	CallerName   string
	CallerNumber string
	Location     LatLng
	Address      string
	Timestamp    time.Time
	Severity     Severity
	Description  string
	PatientCount int
	Status       CallStatus

	AssignedAmbulance  string
	AssignedHospital   string // hospital name, for display
	AssignedHospitalID string
	HospitalLocation   *LatLng
}

// Active reports whether the call still needs attention.
func (c *EmergencyCall) Active() bool { return c.Status != CallCompleted }
