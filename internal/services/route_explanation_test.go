package services

import (
	"ambulance-dispatch-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testZones = []domain.CongestionZone{
	{Center: domain.LatLng{Lat: 13.0827, Lng: 80.2707}, RadiusMeters: 700, Level: domain.CongestionSevere, Label: "Chennai Central — Always Congested", Permanent: true},
	{Center: domain.LatLng{Lat: 19.0760, Lng: 72.8777}, RadiusMeters: 500, Level: domain.CongestionModerate, Label: "Mumbai CST — Peak Hours", Permanent: false},
}

func TestExplainRoutePermanentZoneIsAvoided(t *testing.T) {
	exp := ExplainRoute(LegRequest{
		Leg:          domain.LegScene,
		From:         domain.LatLng{Lat: 13.08, Lng: 80.27},
		To:           domain.LatLng{Lat: 13.09, Lng: 80.28},
		PatientCount: 2,
		Severity:     domain.SeverityCritical,
	}, testZones)

	assert.Equal(t, domain.TrafficHeavy, exp.TrafficLevel)
	assert.Equal(t, []string{"Chennai Central"}, exp.AvoidedZones)
	assert.Contains(t, exp.Reason, "Chennai Central")
	assert.Contains(t, exp.Reason, "Adds only ~1 min.")
	assert.Contains(t, exp.Reason, "Estimated arrival: 3 min.")
	assert.Equal(t, "3 min", exp.Duration)
}

func TestExplainRouteTransientZoneIsModerate(t *testing.T) {
	exp := ExplainRoute(LegRequest{
		Leg:      domain.LegScene,
		From:     domain.LatLng{Lat: 19.07, Lng: 72.87},
		To:       domain.LatLng{Lat: 19.08, Lng: 72.88},
		Severity: domain.SeverityHigh,
	}, testZones)

	assert.Equal(t, domain.TrafficModerate, exp.TrafficLevel)
	assert.Empty(t, exp.AvoidedZones)
	assert.Contains(t, exp.Reason, "direct route taken")
	assert.Contains(t, exp.Reason, "ETA: 3 min.")
}

func TestExplainRouteClearLegAndWaypoints(t *testing.T) {
	from := domain.LatLng{Lat: 10, Lng: 78}
	to := domain.LatLng{Lat: 11, Lng: 78}

	exp := ExplainRoute(LegRequest{Leg: domain.LegScene, From: from, To: to, Severity: domain.SeverityLow}, testZones)

	assert.Equal(t, domain.TrafficClear, exp.TrafficLevel)
	assert.Equal(t, "111.2 km", exp.Distance)
	assert.Equal(t, 112, exp.DurationMin)
	assert.Equal(t, "112 min", exp.Duration)

	require.Len(t, exp.Waypoints, 3)
	assert.Equal(t, from, exp.Waypoints[0])
	assert.InDelta(t, 10.502, exp.Waypoints[1].Lat, 1e-9)
	assert.InDelta(t, 77.998, exp.Waypoints[1].Lng, 1e-9)
	assert.Equal(t, to, exp.Waypoints[2])
}

func TestExplainRouteHospitalLeg(t *testing.T) {
	exp := ExplainRoute(LegRequest{
		Leg:          domain.LegHospital,
		From:         domain.LatLng{Lat: 13.08, Lng: 80.27},
		To:           domain.LatLng{Lat: 13.09, Lng: 80.28},
		HospitalName: "Apollo Hospitals Chennai",
		PatientCount: 6,
		Severity:     domain.SeverityCritical,
	}, testZones)

	assert.Equal(t, domain.LegHospital, exp.Leg)
	assert.Contains(t, exp.Reason, "Apollo Hospitals Chennai selected")
	assert.Contains(t, exp.Reason, "6 patients requiring critical ICU care")
	assert.Contains(t, exp.Reason, "bypass Chennai Central")
	assert.Contains(t, exp.Reason, "ETA: 3 min.")

	direct := ExplainRoute(LegRequest{
		Leg:          domain.LegHospital,
		From:         domain.LatLng{Lat: 10, Lng: 78},
		To:           domain.LatLng{Lat: 10.01, Lng: 78},
		HospitalName: "Rural Clinic",
		PatientCount: 1,
		Severity:     domain.SeverityMedium,
	}, testZones)
	assert.Contains(t, direct.Reason, "1 patient requiring emergency treatment")
	assert.Contains(t, direct.Reason, "Direct corridor selected")
}
