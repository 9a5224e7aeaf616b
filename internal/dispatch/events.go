package dispatch

import (
	"ambulance-dispatch-service/internal/domain"
)

// Event is a message applied to the state by Reduce.
type Event interface {
	eventName() string
}

// Caller-supplied fields for a new call.
type CallDetails struct {
	CallerName   string
	CallerNumber string
	Location     domain.LatLng
	Address      string
	Severity     domain.Severity
	Description  string
	PatientCount int
}

type RegisterCall struct{ Details CallDetails }

type Dispatch struct {
	CallID      string
	AmbulanceID string
}

type ConfirmHospital struct {
	CallID     string
	HospitalID string
}

type CompleteCall struct{ CallID string }

// Tick advances the position simulation by one step.
type Tick struct{}

func (RegisterCall) eventName() string    { return "register_call" }
func (Dispatch) eventName() string        { return "dispatch" }
func (ConfirmHospital) eventName() string { return "confirm_hospital" }
func (CompleteCall) eventName() string    { return "complete_call" }
func (Tick) eventName() string            { return "tick" }

// One applied change of a call's lifecycle status.
type Transition struct {
	Type        string
	CallID      string
	AmbulanceID string
	HospitalID  string
	From        domain.CallStatus
	To          domain.CallStatus
}

// What an applied event did.
type Outcome struct {
	// Changed is false when the event applied cleanly but touched nothing,
	// such as a tick with no moving units.
	Changed     bool
	CallID      string
	Transitions []Transition
}
