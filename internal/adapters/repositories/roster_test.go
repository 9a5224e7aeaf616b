package repositories

import (
	"ambulance-dispatch-service/internal/domain"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loadTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func TestLoadEmbeddedRoster(t *testing.T) {
	r, err := LoadRoster("", loadTime)
	require.NoError(t, err)

	assert.Len(t, r.Hospitals, 20)
	assert.Len(t, r.Ambulances, 8)
	assert.Len(t, r.Calls, 3)
	assert.Len(t, r.CongestionZones, 8)
	assert.Len(t, r.AccidentZones, 12)

	first := r.Calls[0]
	assert.Equal(t, "EMR-2024-0001", first.ID)
	assert.Equal(t, domain.CallEnRoute, first.Status)
	assert.Equal(t, loadTime.Add(-5*time.Minute), first.Timestamp)

	completed := r.Calls[2]
	assert.Equal(t, domain.CallCompleted, completed.Status)
	assert.Equal(t, "KEM Hospital Mumbai", completed.AssignedHospital)
	assert.Equal(t, "H011", completed.AssignedHospitalID)
	require.NotNil(t, completed.HospitalLocation)
	assert.Equal(t, domain.LatLng{Lat: 19.0005, Lng: 72.8416}, *completed.HospitalLocation)

	permanent := 0
	for _, z := range r.CongestionZones {
		if z.Permanent {
			permanent++
		}
	}
	assert.Equal(t, 4, permanent)
	assert.Equal(t, "Chennai Central", r.CongestionZones[0].ShortLabel())

	tn01 := r.Ambulances[0]
	assert.Equal(t, "AMB-TN01", tn01.ID)
	assert.Len(t, tn01.RouteHistory, 3)
	assert.Equal(t, domain.AmbulanceAdvanced, tn01.Type)
}

func TestLoadRosterFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"hospitals": [{"id": "H1", "name": "City", "location": {"lat": 10, "lng": 78}, "beds_available": 2}],
		"ambulances": [{"id": "A1", "location": {"lat": 10, "lng": 78}, "status": "available", "type": "basic"}],
		"accident_zones": [{"center": {"lat": 10.1, "lng": 78.1}, "city": "Somewhere"}]
	}`), 0o600))

	r, err := LoadRoster(path, loadTime)
	require.NoError(t, err)
	assert.Len(t, r.Hospitals, 1)
	assert.Len(t, r.Ambulances, 1)
	assert.Empty(t, r.Calls)

	_, err = LoadRoster(filepath.Join(t.TempDir(), "missing.json"), loadTime)
	require.Error(t, err)
}

func TestParseRosterRejectsInvalidSeeds(t *testing.T) {
	cases := map[string]string{
		"bad json":          `{"hospitals": [`,
		"empty hospital":    `{"hospitals": [{"id": " ", "location": {"lat": 1, "lng": 1}}]}`,
		"duplicate unit":    `{"ambulances": [{"id": "A", "location": {"lat": 1, "lng": 1}, "status": "available", "type": "basic"}, {"id": "A", "location": {"lat": 1, "lng": 1}, "status": "available", "type": "basic"}]}`,
		"unknown type":      `{"ambulances": [{"id": "A", "location": {"lat": 1, "lng": 1}, "status": "available", "type": "hover"}]}`,
		"busy without call": `{"ambulances": [{"id": "A", "location": {"lat": 1, "lng": 1}, "status": "en_route", "type": "icu"}]}`,
		"dangling call ref": `{"ambulances": [{"id": "A", "location": {"lat": 1, "lng": 1}, "status": "en_route", "type": "icu", "current_call_id": "C9"}]}`,
		"call without unit": `{"calls": [{"id": "C1", "location": {"lat": 1, "lng": 1}, "severity": "high", "status": "dispatched", "patient_count": 1}]}`,
		"unknown hospital":  `{"ambulances": [{"id": "A", "location": {"lat": 1, "lng": 1}, "status": "available", "type": "icu"}], "calls": [{"id": "C1", "location": {"lat": 1, "lng": 1}, "severity": "high", "status": "completed", "assigned_ambulance": "A", "assigned_hospital_id": "H9", "patient_count": 1}]}`,
		"bad zone level":    `{"congestion_zones": [{"center": {"lat": 1, "lng": 1}, "radius_meters": 100, "level": "gridlock"}]}`,
		"unnamed accident":  `{"accident_zones": [{"center": {"lat": 1, "lng": 1}}]}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRoster([]byte(data), loadTime)
			require.Error(t, err)
		})
	}
}
