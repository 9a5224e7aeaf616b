package services

import (
	"ambulance-dispatch-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	calls := []domain.EmergencyCall{
		{ID: "1", Severity: domain.SeverityCritical, Status: domain.CallEnRoute},
		{ID: "2", Severity: domain.SeverityHigh, Status: domain.CallPending},
		{ID: "3", Severity: domain.SeverityCritical, Status: domain.CallCompleted},
	}
	fleet := []domain.Ambulance{
		{ID: "a", Status: domain.AmbulanceAvailable},
		{ID: "b", Status: domain.AmbulanceEnRoute},
		{ID: "c", Status: domain.AmbulanceMaintenance},
		{ID: "d", Status: domain.AmbulanceToHospital},
	}
	hospitals := []domain.Hospital{
		{ID: "H1", BedsAvailable: 10, ICUBeds: 2},
		{ID: "H2", BedsAvailable: 3, ICUBeds: 1},
	}
	live := map[string]domain.BedCount{"H2": {Beds: 0, ICU: 1}}

	got := Summarize(calls, fleet, hospitals, live)

	assert.Equal(t, 2, got.ActiveCalls)
	assert.Equal(t, 1, got.CriticalActiveCalls)
	assert.Equal(t, 1, got.CompletedCalls)
	assert.Equal(t, 1, got.AvailableAmbulances)
	assert.Equal(t, 2, got.ActiveAmbulances)
	assert.Equal(t, 4, got.FleetSize)
	assert.InDelta(t, 0.5, got.FleetUtilization, 1e-9)
	assert.Equal(t, 2, got.Hospitals)
	assert.Equal(t, 1, got.HospitalsWithBeds)
	assert.Equal(t, 10, got.TotalLiveBeds)
	assert.Equal(t, 3, got.TotalLiveICUBeds)
}
