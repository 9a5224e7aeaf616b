package dispatch

import (
	"errors"
	"fmt"
)

// ErrRejected is wrapped by every guard failure. A rejected intent leaves the
// state exactly as it was.
var ErrRejected = errors.New("intent rejected")

var (
	ErrCallNotFound         = fmt.Errorf("%w: call not found", ErrRejected)
	ErrAmbulanceNotFound    = fmt.Errorf("%w: ambulance not found", ErrRejected)
	ErrHospitalNotFound     = fmt.Errorf("%w: hospital not found", ErrRejected)
	ErrInvalidTransition    = fmt.Errorf("%w: invalid lifecycle transition", ErrRejected)
	ErrAmbulanceUnavailable = fmt.Errorf("%w: ambulance not available", ErrRejected)
	ErrNoBeds               = fmt.Errorf("%w: hospital has no free beds", ErrRejected)
	ErrLocationUnresolved   = fmt.Errorf("%w: caller location not resolved", ErrRejected)
	ErrInvalidSeverity      = fmt.Errorf("%w: unknown severity", ErrRejected)
)

var ErrStoreClosed = errors.New("dispatch store is not running")
