package services

import (
	"ambulance-dispatch-service/internal/domain"
)

const (
	// Raw-degree distance under which a unit counts as arrived.
	ArrivalThresholdDeg = 0.0006
	// Raw-degree step per simulation tick.
	StepDeg = 0.0010
	// Jitter amplitude per axis; actual jitter is (r-0.5)*JitterDeg.
	JitterDeg = 0.00012
)

// Source of uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Result of moving a unit for one tick.
type Step struct {
	Position domain.LatLng
	Arrived  bool
}

// StepToward advances from toward target by one tick.
//
// Arrival snaps to the target without moving further. Otherwise the step is
// the fixed degree step, halved inside a permanent congestion zone, plus a
// small random jitter on both axes.
func StepToward(from, target domain.LatLng, zones []domain.CongestionZone, rng RandomSource) Step {
	dist := domain.DegreeDistance(from, target)
	if dist < ArrivalThresholdDeg {
		return Step{Position: target, Arrived: true}
	}

	speed := StepDeg
	for _, z := range zones {
		if z.Permanent && z.Contains(from) {
			speed = StepDeg / 2
		}
	}

	ratio := speed / dist
	next := domain.LatLng{
		Lat: from.Lat + (target.Lat-from.Lat)*ratio,
		Lng: from.Lng + (target.Lng-from.Lng)*ratio,
	}
	next.Lat += (rng.Float64() - 0.5) * JitterDeg
	next.Lng += (rng.Float64() - 0.5) * JitterDeg

	return Step{Position: next}
}
