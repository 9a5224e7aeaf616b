package services

import "ambulance-dispatch-service/internal/domain"

// Headline counters for the dashboard.
type DashboardStats struct {
	ActiveCalls         int
	CriticalActiveCalls int
	CompletedCalls      int
	AvailableAmbulances int
	ActiveAmbulances    int
	FleetSize           int
	// Share of the fleet currently on a call, in [0, 1].
	FleetUtilization  float64
	Hospitals         int
	HospitalsWithBeds int
	TotalLiveBeds     int
	TotalLiveICUBeds  int
}

func Summarize(
	calls []domain.EmergencyCall,
	fleet []domain.Ambulance,
	hospitals []domain.Hospital,
	live map[string]domain.BedCount,
) DashboardStats {
	var s DashboardStats

	for _, c := range calls {
		if !c.Active() {
			s.CompletedCalls++
			continue
		}
		s.ActiveCalls++
		if c.Severity == domain.SeverityCritical {
			s.CriticalActiveCalls++
		}
	}

	s.FleetSize = len(fleet)
	for _, a := range fleet {
		switch a.Status {
		case domain.AmbulanceAvailable:
			s.AvailableAmbulances++
		case domain.AmbulanceMaintenance:
		default:
			s.ActiveAmbulances++
		}
	}
	if s.FleetSize > 0 {
		s.FleetUtilization = float64(s.ActiveAmbulances) / float64(s.FleetSize)
	}

	s.Hospitals = len(hospitals)
	for _, h := range hospitals {
		counts, ok := live[h.ID]
		if !ok {
			counts = h.SeedBeds()
		}
		if counts.Beds > 0 {
			s.HospitalsWithBeds++
		}
		s.TotalLiveBeds += counts.Beds
		s.TotalLiveICUBeds += counts.ICU
	}

	return s
}
