package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lifecycle event types.
const (
	EventCallRegistered = "call.registered"
	EventCallDispatched = "call.dispatched"
	EventCallEnRoute    = "call.en_route"
	EventCallAtScene    = "call.at_scene"
	EventCallToHospital = "call.to_hospital"
	EventCallCompleted  = "call.completed"
)

// One applied lifecycle transition.
type LifecycleEvent struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	CallID      string    `json:"call_id"`
	AmbulanceID string    `json:"ambulance_id,omitempty"`
	HospitalID  string    `json:"hospital_id,omitempty"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to"`
	At          time.Time `json:"at"`
}

// Contract for fanning lifecycle events out of the process. Best effort.
type EventPublisher interface {
	Publish(ctx context.Context, ev LifecycleEvent) error
	Close() error
}
