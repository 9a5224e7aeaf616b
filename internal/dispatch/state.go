package dispatch

import (
	"ambulance-dispatch-service/internal/domain"
	"maps"
	"slices"
)

// State is one immutable snapshot of the whole dispatch console.
// Reduce never modifies a State in place; it clones before writing, so a
// published snapshot can be read freely but must not be modified.
type State struct {
	Version    uint64
	Calls      []domain.EmergencyCall
	Ambulances []domain.Ambulance
	Hospitals  []domain.Hospital
	Zones      []domain.CongestionZone
	// Live bed counters keyed by hospital ID.
	Beds map[string]domain.BedCount
	// Route explanations keyed by domain.RouteKey.
	Routes map[string]domain.RouteExplanation
	// Last simulation step label per ambulance ID.
	Steps map[string]domain.AmbulanceStatus
}

// NewState seeds a snapshot from a roster. Live bed counters start at the
// hospitals' seed values.
func NewState(
	calls []domain.EmergencyCall,
	ambulances []domain.Ambulance,
	hospitals []domain.Hospital,
	zones []domain.CongestionZone,
) State {
	s := State{
		Calls:      slices.Clone(calls),
		Ambulances: slices.Clone(ambulances),
		Hospitals:  slices.Clone(hospitals),
		Zones:      slices.Clone(zones),
		Beds:       make(map[string]domain.BedCount, len(hospitals)),
		Routes:     make(map[string]domain.RouteExplanation),
		Steps:      make(map[string]domain.AmbulanceStatus),
	}
	for _, h := range hospitals {
		s.Beds[h.ID] = h.SeedBeds()
	}
	return s.Clone()
}

// Clone returns a copy that shares no mutable memory with s.
// Hospitals and zones are never written after seeding and are shared.
func (s State) Clone() State {
	out := State{
		Version:    s.Version,
		Calls:      make([]domain.EmergencyCall, len(s.Calls)),
		Ambulances: make([]domain.Ambulance, len(s.Ambulances)),
		Hospitals:  s.Hospitals,
		Zones:      s.Zones,
		Beds:       maps.Clone(s.Beds),
		Routes:     maps.Clone(s.Routes),
		Steps:      maps.Clone(s.Steps),
	}

	for i, c := range s.Calls {
		if c.HospitalLocation != nil {
			loc := *c.HospitalLocation
			c.HospitalLocation = &loc
		}
		out.Calls[i] = c
	}
	for i, a := range s.Ambulances {
		a.RouteHistory = slices.Clone(a.RouteHistory)
		out.Ambulances[i] = a
	}

	if out.Beds == nil {
		out.Beds = make(map[string]domain.BedCount)
	}
	if out.Routes == nil {
		out.Routes = make(map[string]domain.RouteExplanation)
	}
	if out.Steps == nil {
		out.Steps = make(map[string]domain.AmbulanceStatus)
	}
	return out
}

func (s State) callIndex(id string) int {
	return slices.IndexFunc(s.Calls, func(c domain.EmergencyCall) bool { return c.ID == id })
}

func (s State) ambulanceIndex(id string) int {
	return slices.IndexFunc(s.Ambulances, func(a domain.Ambulance) bool { return a.ID == id })
}

// ambulanceForCall finds the unit currently holding callID.
func (s State) ambulanceForCall(callID string) int {
	return slices.IndexFunc(s.Ambulances, func(a domain.Ambulance) bool { return a.CurrentCallID == callID })
}

func (s State) hospitalIndex(id string) int {
	return slices.IndexFunc(s.Hospitals, func(h domain.Hospital) bool { return h.ID == id })
}

// Call looks up a call by ID.
func (s State) Call(id string) (domain.EmergencyCall, bool) {
	i := s.callIndex(id)
	if i < 0 {
		return domain.EmergencyCall{}, false
	}
	return s.Calls[i], true
}

// Ambulance looks up a unit by ID.
func (s State) Ambulance(id string) (domain.Ambulance, bool) {
	i := s.ambulanceIndex(id)
	if i < 0 {
		return domain.Ambulance{}, false
	}
	return s.Ambulances[i], true
}

// LiveBeds returns the live counter for a hospital, falling back to its seed.
func (s State) LiveBeds(hospitalID string) (domain.BedCount, bool) {
	if b, ok := s.Beds[hospitalID]; ok {
		return b, true
	}
	i := s.hospitalIndex(hospitalID)
	if i < 0 {
		return domain.BedCount{}, false
	}
	return s.Hospitals[i].SeedBeds(), true
}
