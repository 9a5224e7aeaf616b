package handlers

import (
	"ambulance-dispatch-service/internal/api/dto"
	"ambulance-dispatch-service/internal/dispatch"
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/intake"
	"ambulance-dispatch-service/internal/services"
)

func toLatLng(p domain.LatLng) dto.LatLng { return dto.LatLng{Lat: p.Lat, Lng: p.Lng} }

func toLatLngs(ps []domain.LatLng) []dto.LatLng {
	out := make([]dto.LatLng, 0, len(ps))
	for _, p := range ps {
		out = append(out, toLatLng(p))
	}
	return out
}

func toCall(c domain.EmergencyCall) dto.CallResponse {
	needed := domain.NeededType(c.PatientCount)
	res := dto.CallResponse{
		ID:                 c.ID,
		CallerName:         c.CallerName,
		CallerNumber:       c.CallerNumber,
		Location:           toLatLng(c.Location),
		Address:            c.Address,
		Timestamp:          c.Timestamp,
		Severity:           string(c.Severity),
		Description:        c.Description,
		PatientCount:       c.PatientCount,
		NeededType:         string(needed),
		NeededTypeLabel:    needed.Label(),
		Status:             string(c.Status),
		AssignedAmbulance:  c.AssignedAmbulance,
		AssignedHospital:   c.AssignedHospital,
		AssignedHospitalID: c.AssignedHospitalID,
	}
	if c.HospitalLocation != nil {
		loc := toLatLng(*c.HospitalLocation)
		res.HospitalLocation = &loc
	}
	return res
}

func toAmbulance(a domain.Ambulance) dto.AmbulanceResponse {
	return dto.AmbulanceResponse{
		ID:            a.ID,
		DriverName:    a.DriverName,
		VehicleNumber: a.VehicleNumber,
		Location:      toLatLng(a.Location),
		Status:        string(a.Status),
		CurrentCallID: a.CurrentCallID,
		Type:          string(a.Type),
		HeadingDeg:    a.Heading(),
		RouteHistory:  toLatLngs(a.RouteHistory),
	}
}

func toHospital(h domain.Hospital, live domain.BedCount) dto.HospitalResponse {
	return dto.HospitalResponse{
		ID:            h.ID,
		Name:          h.Name,
		Location:      toLatLng(h.Location),
		Address:       h.Address,
		BedsAvailable: h.BedsAvailable,
		ICUBeds:       h.ICUBeds,
		LiveBeds:      live.Beds,
		LiveICUBeds:   live.ICU,
		EmergencyRoom: h.EmergencyRoom,
		Specialties:   h.Specialties,
		Phone:         h.Phone,
	}
}

func toRoute(r domain.RouteExplanation) dto.RouteResponse {
	return dto.RouteResponse{
		Leg:          string(r.Leg),
		DistanceKm:   r.DistanceKm,
		DurationMin:  r.DurationMin,
		Distance:     r.Distance,
		Duration:     r.Duration,
		Reason:       r.Reason,
		Waypoints:    toLatLngs(r.Waypoints),
		AvoidedZones: r.AvoidedZones,
		TrafficLevel: string(r.TrafficLevel),
	}
}

func toState(st dispatch.State) dto.StateResponse {
	res := dto.StateResponse{
		Version:    st.Version,
		Calls:      make([]dto.CallResponse, 0, len(st.Calls)),
		Ambulances: make([]dto.AmbulanceResponse, 0, len(st.Ambulances)),
		Hospitals:  make([]dto.HospitalResponse, 0, len(st.Hospitals)),
		Zones:      make([]dto.ZoneResponse, 0, len(st.Zones)),
		Routes:     make(map[string]dto.RouteResponse, len(st.Routes)),
		Steps:      make(map[string]string, len(st.Steps)),
	}
	for _, c := range st.Calls {
		res.Calls = append(res.Calls, toCall(c))
	}
	for _, a := range st.Ambulances {
		res.Ambulances = append(res.Ambulances, toAmbulance(a))
	}
	for _, h := range st.Hospitals {
		live, _ := st.LiveBeds(h.ID)
		res.Hospitals = append(res.Hospitals, toHospital(h, live))
	}
	for _, z := range st.Zones {
		res.Zones = append(res.Zones, dto.ZoneResponse{
			Center:       toLatLng(z.Center),
			RadiusMeters: z.RadiusMeters,
			Level:        string(z.Level),
			Label:        z.Label,
			Permanent:    z.Permanent,
		})
	}
	for k, r := range st.Routes {
		res.Routes[k] = toRoute(r)
	}
	for k, s := range st.Steps {
		res.Steps[k] = string(s)
	}
	return res
}

func toStats(s services.DashboardStats) dto.StatsResponse {
	return dto.StatsResponse{
		ActiveCalls:         s.ActiveCalls,
		CriticalActiveCalls: s.CriticalActiveCalls,
		CompletedCalls:      s.CompletedCalls,
		AvailableAmbulances: s.AvailableAmbulances,
		ActiveAmbulances:    s.ActiveAmbulances,
		FleetSize:           s.FleetSize,
		FleetUtilization:    s.FleetUtilization,
		Hospitals:           s.Hospitals,
		HospitalsWithBeds:   s.HospitalsWithBeds,
		TotalLiveBeds:       s.TotalLiveBeds,
		TotalLiveICUBeds:    s.TotalLiveICUBeds,
	}
}

func toIntake(s intake.Session) dto.IntakeResponse {
	res := dto.IntakeResponse{
		ID:       s.ID.String(),
		Status:   string(s.Status),
		Source:   string(s.Source),
		Address:  s.Address,
		Fallback: s.Fallback,
		OpenedAt: s.OpenedAt,
	}
	if s.Status == intake.StatusLocated {
		loc := toLatLng(s.Location)
		at := s.LocatedAt
		res.Location = &loc
		res.LocatedAt = &at
	}
	return res
}
