package dto

type RegisterCallRequest struct {
	CallerName   string  `json:"caller_name"`
	CallerNumber string  `json:"caller_number"`
	Location     *LatLng `json:"location"`
	Address      string  `json:"address"`
	Severity     string  `json:"severity"`
	Description  string  `json:"description"`
	PatientCount int     `json:"patient_count"`
}

type DispatchRequest struct {
	AmbulanceID string `json:"ambulance_id"`
}

type ConfirmHospitalRequest struct {
	HospitalID string `json:"hospital_id"`
}

type AmbulanceSuggestionResponse struct {
	Ambulance  AmbulanceResponse `json:"ambulance"`
	DistanceKm float64           `json:"distance_km"`
	ETAMinutes int               `json:"eta_minutes"`
	Score      float64           `json:"score"`
	Reason     string            `json:"reason"`
}

type HospitalSuggestionResponse struct {
	Hospital   HospitalResponse `json:"hospital"`
	DistanceKm float64          `json:"distance_km"`
	ETAMinutes int              `json:"eta_minutes"`
	Score      float64          `json:"score"`
	Reason     string           `json:"reason"`
	Admittable bool             `json:"admittable"`
}

type SuggestionsResponse struct {
	CallID          string                        `json:"call_id"`
	NeededType      string                        `json:"needed_type"`
	NeededTypeLabel string                        `json:"needed_type_label"`
	Ambulances      []AmbulanceSuggestionResponse `json:"ambulances"`
	Hospitals       []HospitalSuggestionResponse  `json:"hospitals"`
}
