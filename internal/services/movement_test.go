package services

import (
	"ambulance-dispatch-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestStepTowardMovesOneStep(t *testing.T) {
	from := domain.LatLng{Lat: 13.0, Lng: 80.0}
	target := domain.LatLng{Lat: 13.01, Lng: 80.0}

	step := StepToward(from, target, nil, fixedRand(0.5))

	assert.False(t, step.Arrived)
	assert.InDelta(t, 13.001, step.Position.Lat, 1e-12)
	assert.InDelta(t, 80.0, step.Position.Lng, 1e-12)
}

func TestStepTowardHalvesInsidePermanentZone(t *testing.T) {
	from := domain.LatLng{Lat: 13.0, Lng: 80.0}
	target := domain.LatLng{Lat: 13.01, Lng: 80.0}
	zones := []domain.CongestionZone{
		{Center: from, RadiusMeters: 700, Permanent: true},
	}

	step := StepToward(from, target, zones, fixedRand(0.5))
	assert.InDelta(t, 13.0005, step.Position.Lat, 1e-12)

	zones[0].Permanent = false
	step = StepToward(from, target, zones, fixedRand(0.5))
	assert.InDelta(t, 13.001, step.Position.Lat, 1e-12)
}

func TestStepTowardArrivalSnaps(t *testing.T) {
	target := domain.LatLng{Lat: 13.05, Lng: 80.20}
	from := domain.LatLng{Lat: 13.0503, Lng: 80.2003}

	step := StepToward(from, target, nil, fixedRand(0.9))

	assert.True(t, step.Arrived)
	assert.Equal(t, target, step.Position)
}

func TestStepTowardJitter(t *testing.T) {
	from := domain.LatLng{Lat: 13.0, Lng: 80.0}
	target := domain.LatLng{Lat: 13.01, Lng: 80.0}

	step := StepToward(from, target, nil, fixedRand(0.75))

	assert.InDelta(t, 13.001+0.25*JitterDeg, step.Position.Lat, 1e-12)
	assert.InDelta(t, 80.0+0.25*JitterDeg, step.Position.Lng, 1e-12)
}
