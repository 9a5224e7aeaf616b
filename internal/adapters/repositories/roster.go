package repositories

import (
	"ambulance-dispatch-service/internal/domain"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

//go:embed seed/roster.json
var embeddedRoster []byte

// Roster is the validated starting data for the dispatch console.
type Roster struct {
	Hospitals       []domain.Hospital
	Ambulances      []domain.Ambulance
	Calls           []domain.EmergencyCall
	CongestionZones []domain.CongestionZone
	AccidentZones   []domain.AccidentZone
}

type latLngSeed struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p latLngSeed) toDomain() domain.LatLng { return domain.LatLng{Lat: p.Lat, Lng: p.Lng} }

type HospitalSeed struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Location      latLngSeed `json:"location"`
	Address       string     `json:"address"`
	BedsAvailable int        `json:"beds_available"`
	ICUBeds       int        `json:"icu_beds"`
	EmergencyRoom bool       `json:"emergency_room"`
	Specialties   []string   `json:"specialties"`
	Phone         string     `json:"phone"`
}

type AmbulanceSeed struct {
	ID            string       `json:"id"`
	DriverName    string       `json:"driver_name"`
	VehicleNumber string       `json:"vehicle_number"`
	Location      latLngSeed   `json:"location"`
	Status        string       `json:"status"`
	CurrentCallID string       `json:"current_call_id"`
	Type          string       `json:"type"`
	RouteHistory  []latLngSeed `json:"route_history"`
}

type CallSeed struct {
	ID                 string     `json:"id"`
	CallerName         string     `json:"caller_name"`
	CallerNumber       string     `json:"caller_number"`
	Location           latLngSeed `json:"location"`
	Address            string     `json:"address"`
	AgeSeconds         int        `json:"age_seconds"`
	Severity           string     `json:"severity"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	AssignedAmbulance  string     `json:"assigned_ambulance"`
	AssignedHospitalID string     `json:"assigned_hospital_id"`
	PatientCount       int        `json:"patient_count"`
}

type CongestionZoneSeed struct {
	Center       latLngSeed `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
	Level        string     `json:"level"`
	Label        string     `json:"label"`
	Permanent    bool       `json:"permanent"`
}

type AccidentZoneSeed struct {
	Center latLngSeed `json:"center"`
	City   string     `json:"city"`
}

type rosterSeed struct {
	Hospitals       []HospitalSeed       `json:"hospitals"`
	Ambulances      []AmbulanceSeed      `json:"ambulances"`
	Calls           []CallSeed           `json:"calls"`
	CongestionZones []CongestionZoneSeed `json:"congestion_zones"`
	AccidentZones   []AccidentZoneSeed   `json:"accident_zones"`
}

// LoadRoster reads the roster at path, or the embedded one when path is
// empty. Call timestamps are placed relative to now.
func LoadRoster(path string, now time.Time) (Roster, error) {
	data := embeddedRoster
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Roster{}, fmt.Errorf("load roster: read %q: %w", path, err)
		}
		data = b
	}
	return ParseRoster(data, now)
}

// ParseRoster decodes and validates a JSON roster.
func ParseRoster(data []byte, now time.Time) (Roster, error) {
	var seed rosterSeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return Roster{}, fmt.Errorf("load roster: parse json: %w", err)
	}

	var r Roster
	hospitals := make(map[string]domain.Hospital, len(seed.Hospitals))
	for i, h := range seed.Hospitals {
		id := strings.TrimSpace(h.ID)
		if id == "" {
			return Roster{}, fmt.Errorf("load roster: hospital at index %d: id cannot be empty", i+1)
		}
		if _, dup := hospitals[id]; dup {
			return Roster{}, fmt.Errorf("load roster: duplicate hospital id %q", id)
		}
		if !h.Location.toDomain().Resolved() {
			return Roster{}, fmt.Errorf("load roster: hospital %q: location is not set", id)
		}
		if h.BedsAvailable < 0 || h.ICUBeds < 0 {
			return Roster{}, fmt.Errorf("load roster: hospital %q: negative bed count", id)
		}
		hospital := domain.Hospital{
			ID:            id,
			Name:          h.Name,
			Location:      h.Location.toDomain(),
			Address:       h.Address,
			BedsAvailable: h.BedsAvailable,
			ICUBeds:       h.ICUBeds,
			EmergencyRoom: h.EmergencyRoom,
			Specialties:   h.Specialties,
			Phone:         h.Phone,
		}
		hospitals[id] = hospital
		r.Hospitals = append(r.Hospitals, hospital)
	}

	ambulances := make(map[string]domain.Ambulance, len(seed.Ambulances))
	for i, a := range seed.Ambulances {
		id := strings.TrimSpace(a.ID)
		if id == "" {
			return Roster{}, fmt.Errorf("load roster: ambulance at index %d: id cannot be empty", i+1)
		}
		if _, dup := ambulances[id]; dup {
			return Roster{}, fmt.Errorf("load roster: duplicate ambulance id %q", id)
		}
		status := domain.AmbulanceStatus(a.Status)
		if !status.Valid() {
			return Roster{}, fmt.Errorf("load roster: ambulance %q: unknown status %q", id, a.Status)
		}
		kind := domain.AmbulanceType(a.Type)
		if !kind.Valid() {
			return Roster{}, fmt.Errorf("load roster: ambulance %q: unknown type %q", id, a.Type)
		}
		if status.HoldsCall() != (a.CurrentCallID != "") {
			return Roster{}, fmt.Errorf("load roster: ambulance %q: status %s does not match call %q", id, status, a.CurrentCallID)
		}

		amb := domain.Ambulance{
			ID:            id,
			DriverName:    a.DriverName,
			VehicleNumber: a.VehicleNumber,
			Location:      a.Location.toDomain(),
			Status:        status,
			CurrentCallID: a.CurrentCallID,
			Type:          kind,
		}
		for _, p := range a.RouteHistory {
			amb.AppendHistory(p.toDomain())
		}
		ambulances[id] = amb
		r.Ambulances = append(r.Ambulances, amb)
	}

	calls := make(map[string]struct{}, len(seed.Calls))
	for i, c := range seed.Calls {
		call, err := c.toDomain(now, ambulances, hospitals)
		if err != nil {
			return Roster{}, fmt.Errorf("load roster: call at index %d: %w", i+1, err)
		}
		if _, dup := calls[call.ID]; dup {
			return Roster{}, fmt.Errorf("load roster: duplicate call id %q", call.ID)
		}
		calls[call.ID] = struct{}{}
		r.Calls = append(r.Calls, call)
	}
	for _, a := range r.Ambulances {
		if _, ok := calls[a.CurrentCallID]; a.CurrentCallID != "" && !ok {
			return Roster{}, fmt.Errorf("load roster: ambulance %q holds unknown call %q", a.ID, a.CurrentCallID)
		}
	}

	for i, z := range seed.CongestionZones {
		level := domain.CongestionLevel(z.Level)
		if !level.Valid() {
			return Roster{}, fmt.Errorf("load roster: congestion zone at index %d: unknown level %q", i+1, z.Level)
		}
		if z.RadiusMeters <= 0 {
			return Roster{}, fmt.Errorf("load roster: congestion zone at index %d: radius must be positive", i+1)
		}
		r.CongestionZones = append(r.CongestionZones, domain.CongestionZone{
			Center:       z.Center.toDomain(),
			RadiusMeters: z.RadiusMeters,
			Level:        level,
			Label:        z.Label,
			Permanent:    z.Permanent,
		})
	}

	for i, z := range seed.AccidentZones {
		if strings.TrimSpace(z.City) == "" || !z.Center.toDomain().Resolved() {
			return Roster{}, fmt.Errorf("load roster: accident zone at index %d: city and center are required", i+1)
		}
		r.AccidentZones = append(r.AccidentZones, domain.AccidentZone{Center: z.Center.toDomain(), City: z.City})
	}

	return r, nil
}

func (c CallSeed) toDomain(
	now time.Time,
	ambulances map[string]domain.Ambulance,
	hospitals map[string]domain.Hospital,
) (domain.EmergencyCall, error) {
	id := strings.TrimSpace(c.ID)
	if id == "" {
		return domain.EmergencyCall{}, fmt.Errorf("id cannot be empty")
	}
	status := domain.CallStatus(c.Status)
	if !status.Valid() {
		return domain.EmergencyCall{}, fmt.Errorf("call %q: unknown status %q", id, c.Status)
	}
	severity := domain.Severity(c.Severity)
	if !severity.Valid() {
		return domain.EmergencyCall{}, fmt.Errorf("call %q: unknown severity %q", id, c.Severity)
	}
	if !c.Location.toDomain().Resolved() {
		return domain.EmergencyCall{}, fmt.Errorf("call %q: location is not set", id)
	}
	if c.PatientCount < 1 {
		return domain.EmergencyCall{}, fmt.Errorf("call %q: patient count must be at least 1", id)
	}
	if status.HasAmbulance() {
		if _, ok := ambulances[c.AssignedAmbulance]; !ok {
			return domain.EmergencyCall{}, fmt.Errorf("call %q: status %s needs a known ambulance, got %q", id, status, c.AssignedAmbulance)
		}
	}

	call := domain.EmergencyCall{
		ID:                id,
		CallerName:        c.CallerName,
		CallerNumber:      c.CallerNumber,
		Location:          c.Location.toDomain(),
		Address:           c.Address,
		Timestamp:         now.Add(-time.Duration(c.AgeSeconds) * time.Second),
		Severity:          severity,
		Description:       c.Description,
		PatientCount:      c.PatientCount,
		Status:            status,
		AssignedAmbulance: c.AssignedAmbulance,
	}
	if c.AssignedHospitalID != "" {
		h, ok := hospitals[c.AssignedHospitalID]
		if !ok {
			return domain.EmergencyCall{}, fmt.Errorf("call %q: unknown hospital %q", id, c.AssignedHospitalID)
		}
		loc := h.Location
		call.AssignedHospital = h.Name
		call.AssignedHospitalID = h.ID
		call.HospitalLocation = &loc
	}
	return call, nil
}
