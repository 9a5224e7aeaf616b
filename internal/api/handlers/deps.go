package handlers

import (
	"ambulance-dispatch-service/internal/dispatch"
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/intake"
	"context"
	"time"

	"github.com/google/uuid"
)

// DispatchStore is the slice of *dispatch.Store the handlers use.
type DispatchStore interface {
	Snapshot(ctx context.Context) (dispatch.State, error)
	Subscribe(ctx context.Context) (<-chan dispatch.State, func(), error)
	RegisterCall(ctx context.Context, details dispatch.CallDetails) (domain.EmergencyCall, error)
	Dispatch(ctx context.Context, callID, ambulanceID string) (dispatch.State, error)
	ConfirmHospital(ctx context.Context, callID, hospitalID string) (dispatch.State, error)
	CompleteCall(ctx context.Context, callID string) (dispatch.State, error)
}

type LocationDetector interface {
	Open(device *domain.LatLng) (intake.Session, error)
	Get(id uuid.UUID) (intake.Session, error)
	Close(id uuid.UUID) error
}

type ClockFeed interface {
	Subscribe() (<-chan time.Time, func())
}
