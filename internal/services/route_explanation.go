package services

import (
	"ambulance-dispatch-service/internal/domain"
	"fmt"
	"math"
	"strings"
)

const (
	// Zones whose center lies within this distance of the leg midpoint count as on-path.
	zoneProximityKm = 5.0
	// Cosmetic offset applied to the middle waypoint.
	waypointJitterDeg = 0.002
	routeETAFloorMin  = 3
	// Extra minutes claimed per avoided zone in the scene narrative.
	detourMinPerZone = 0.7
)

// Inputs for narrating one leg.
type LegRequest struct {
	Leg          domain.Leg
	From         domain.LatLng
	To           domain.LatLng
	HospitalName string
	PatientCount int
	Severity     domain.Severity
}

// ExplainRoute fabricates a distance, duration and justification for a leg.
//
// No path is planned. Congestion zones near the straight-line midpoint are
// reported as avoided (permanent zones) or as moderate traffic (the rest),
// and the waypoints are origin, a nudged midpoint and destination.
func ExplainRoute(req LegRequest, zones []domain.CongestionZone) domain.RouteExplanation {
	dist := domain.DistanceKm(req.From, req.To)
	durationMin := ETAMinutes(dist, routeETAFloorMin)

	mid := domain.Midpoint(req.From, req.To)
	avoided := make([]string, 0)
	traffic := domain.TrafficClear

	for _, z := range zones {
		if domain.DistanceKm(mid, z.Center) >= zoneProximityKm {
			continue
		}
		if z.Permanent {
			avoided = append(avoided, z.ShortLabel())
			traffic = domain.TrafficHeavy
		} else if traffic == domain.TrafficClear {
			traffic = domain.TrafficModerate
		}
	}

	var reason string
	if req.Leg == domain.LegHospital {
		reason = hospitalNarrative(req, avoided, durationMin)
	} else {
		reason = sceneNarrative(req, avoided, dist, durationMin)
	}

	return domain.RouteExplanation{
		Leg:         req.Leg,
		DistanceKm:  dist,
		DurationMin: durationMin,
		Distance:    fmt.Sprintf("%.1f km", dist),
		Duration:    fmt.Sprintf("%d min", durationMin),
		Reason:      reason,
		Waypoints: []domain.LatLng{
			req.From,
			{Lat: mid.Lat + waypointJitterDeg, Lng: mid.Lng - waypointJitterDeg},
			req.To,
		},
		AvoidedZones: avoided,
		TrafficLevel: traffic,
	}
}

func sceneNarrative(req LegRequest, avoided []string, dist float64, durationMin int) string {
	parts := []string{
		fmt.Sprintf("Shortest safe path from ambulance position to accident scene (%.1f km).", dist),
	}

	if len(avoided) > 0 {
		extra := int(math.Ceil(float64(len(avoided)) * detourMinPerZone))
		parts = append(parts, fmt.Sprintf(
			"Route deviates around %s, permanently congested. Adds only ~%d min.",
			strings.Join(avoided, ", "), extra,
		))
	} else {
		parts = append(parts, "No permanent congestion zones on this path, direct route taken.")
	}

	if req.Severity == domain.SeverityCritical {
		parts = append(parts, fmt.Sprintf("CRITICAL severity: emergency siren corridor activated. Estimated arrival: %d min.", durationMin))
	} else {
		parts = append(parts, fmt.Sprintf("High priority corridor active. ETA: %d min.", durationMin))
	}

	return strings.Join(parts, " ")
}

func hospitalNarrative(req LegRequest, avoided []string, durationMin int) string {
	plural := ""
	if req.PatientCount > 1 {
		plural = "s"
	}
	care := "emergency treatment"
	if req.Severity == domain.SeverityCritical {
		care = "critical ICU care"
	}

	parts := []string{
		fmt.Sprintf("%s selected as nearest hospital with ER active and %d patient%s requiring %s.",
			req.HospitalName, req.PatientCount, plural, care),
	}

	if len(avoided) > 0 {
		parts = append(parts, fmt.Sprintf(
			"Route recalculated to bypass %s, permanently congested zones adding minimal extra distance.",
			strings.Join(avoided, ", "),
		))
	} else {
		parts = append(parts, "Direct corridor selected, no permanent congestion zones detected on this path.")
	}

	parts = append(parts, fmt.Sprintf("Priority green signal corridor requested for this vehicle. ETA: %d min.", durationMin))

	return strings.Join(parts, " ")
}
