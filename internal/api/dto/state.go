package dto

import "time"

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CallResponse struct {
	ID                 string    `json:"id"`
	CallerName         string    `json:"caller_name"`
	CallerNumber       string    `json:"caller_number"`
	Location           LatLng    `json:"location"`
	Address            string    `json:"address"`
	Timestamp          time.Time `json:"timestamp"`
	Severity           string    `json:"severity"`
	Description        string    `json:"description"`
	PatientCount       int       `json:"patient_count"`
	NeededType         string    `json:"needed_type"`
	NeededTypeLabel    string    `json:"needed_type_label"`
	Status             string    `json:"status"`
	AssignedAmbulance  string    `json:"assigned_ambulance,omitempty"`
	AssignedHospital   string    `json:"assigned_hospital,omitempty"`
	AssignedHospitalID string    `json:"assigned_hospital_id,omitempty"`
	HospitalLocation   *LatLng   `json:"hospital_location,omitempty"`
}

type AmbulanceResponse struct {
	ID            string   `json:"id"`
	DriverName    string   `json:"driver_name"`
	VehicleNumber string   `json:"vehicle_number"`
	Location      LatLng   `json:"location"`
	Status        string   `json:"status"`
	CurrentCallID string   `json:"current_call_id,omitempty"`
	Type          string   `json:"type"`
	HeadingDeg    float64  `json:"heading_deg"`
	RouteHistory  []LatLng `json:"route_history"`
}

type HospitalResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      LatLng   `json:"location"`
	Address       string   `json:"address"`
	BedsAvailable int      `json:"beds_available"`
	ICUBeds       int      `json:"icu_beds"`
	LiveBeds      int      `json:"live_beds"`
	LiveICUBeds   int      `json:"live_icu_beds"`
	EmergencyRoom bool     `json:"emergency_room"`
	Specialties   []string `json:"specialties"`
	Phone         string   `json:"phone"`
}

type RouteResponse struct {
	Leg          string   `json:"leg"`
	DistanceKm   float64  `json:"distance_km"`
	DurationMin  int      `json:"duration_min"`
	Distance     string   `json:"distance"`
	Duration     string   `json:"duration"`
	Reason       string   `json:"reason"`
	Waypoints    []LatLng `json:"waypoints"`
	AvoidedZones []string `json:"avoided_zones"`
	TrafficLevel string   `json:"traffic_level"`
}

type ZoneResponse struct {
	Center       LatLng  `json:"center"`
	RadiusMeters float64 `json:"radius_meters"`
	Level        string  `json:"level"`
	Label        string  `json:"label"`
	Permanent    bool    `json:"permanent"`
}

type StateResponse struct {
	Version    uint64                   `json:"version"`
	Calls      []CallResponse           `json:"calls"`
	Ambulances []AmbulanceResponse      `json:"ambulances"`
	Hospitals  []HospitalResponse       `json:"hospitals"`
	Zones      []ZoneResponse           `json:"congestion_zones"`
	Routes     map[string]RouteResponse `json:"routes"`
	Steps      map[string]string        `json:"steps"`
}

type StatsResponse struct {
	ActiveCalls         int     `json:"active_calls"`
	CriticalActiveCalls int     `json:"critical_active_calls"`
	CompletedCalls      int     `json:"completed_calls"`
	AvailableAmbulances int     `json:"available_ambulances"`
	ActiveAmbulances    int     `json:"active_ambulances"`
	FleetSize           int     `json:"fleet_size"`
	FleetUtilization    float64 `json:"fleet_utilization"`
	Hospitals           int     `json:"hospitals"`
	HospitalsWithBeds   int     `json:"hospitals_with_beds"`
	TotalLiveBeds       int     `json:"total_live_beds"`
	TotalLiveICUBeds    int     `json:"total_live_icu_beds"`
}

type ClockEvent struct {
	Now time.Time `json:"now"`
}
