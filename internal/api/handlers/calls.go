package handlers

import (
	"ambulance-dispatch-service/internal/api/dto"
	"ambulance-dispatch-service/internal/dispatch"
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/services"
	"net/http"
	"strings"
)

// CallHandler turns HTTP requests into lifecycle intents.
type CallHandler struct {
	Store DispatchStore
}

func (h *CallHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RegisterCallRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	if req.PatientCount < 0 {
		writeError(w, r, http.StatusBadRequest, "patient_count cannot be negative")
		return
	}

	details := dispatch.CallDetails{
		CallerName:   strings.TrimSpace(req.CallerName),
		CallerNumber: strings.TrimSpace(req.CallerNumber),
		Address:      strings.TrimSpace(req.Address),
		Severity:     domain.Severity(strings.ToLower(strings.TrimSpace(req.Severity))),
		Description:  strings.TrimSpace(req.Description),
		PatientCount: req.PatientCount,
	}
	if req.Location != nil {
		details.Location = domain.LatLng{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	call, err := h.Store.RegisterCall(r.Context(), details)
	if err != nil {
		writeIntentError(w, r, "register call", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toCall(call))
}

func (h *CallHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	st, err := h.Store.Snapshot(r.Context())
	if err != nil {
		writeIntentError(w, r, "suggestions", err)
		return
	}
	call, ok := st.Call(r.PathValue("id"))
	if !ok {
		writeIntentError(w, r, "suggestions", dispatch.ErrCallNotFound)
		return
	}

	needed := domain.NeededType(call.PatientCount)
	res := dto.SuggestionsResponse{
		CallID:          call.ID,
		NeededType:      string(needed),
		NeededTypeLabel: needed.Label(),
		Ambulances:      []dto.AmbulanceSuggestionResponse{},
		Hospitals:       []dto.HospitalSuggestionResponse{},
	}
	for _, s := range services.RankAmbulances(call, st.Ambulances) {
		res.Ambulances = append(res.Ambulances, dto.AmbulanceSuggestionResponse{
			Ambulance:  toAmbulance(s.Ambulance),
			DistanceKm: s.DistanceKm,
			ETAMinutes: s.ETAMinutes,
			Score:      s.Score,
			Reason:     s.Reason,
		})
	}
	for _, s := range services.RankHospitals(call, st.Hospitals, st.Beds) {
		res.Hospitals = append(res.Hospitals, dto.HospitalSuggestionResponse{
			Hospital:   toHospital(s.Hospital, s.Live),
			DistanceKm: s.DistanceKm,
			ETAMinutes: s.ETAMinutes,
			Score:      s.Score,
			Reason:     s.Reason,
			Admittable: s.Admittable(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CallHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.DispatchRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	ambulanceID := strings.TrimSpace(req.AmbulanceID)
	if ambulanceID == "" {
		writeError(w, r, http.StatusBadRequest, "ambulance_id is required")
		return
	}

	h.respond(w, r, "dispatch", func() (dispatch.State, error) {
		return h.Store.Dispatch(r.Context(), r.PathValue("id"), ambulanceID)
	})
}

func (h *CallHandler) ConfirmHospital(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ConfirmHospitalRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	hospitalID := strings.TrimSpace(req.HospitalID)
	if hospitalID == "" {
		writeError(w, r, http.StatusBadRequest, "hospital_id is required")
		return
	}

	h.respond(w, r, "confirm hospital", func() (dispatch.State, error) {
		return h.Store.ConfirmHospital(r.Context(), r.PathValue("id"), hospitalID)
	})
}

func (h *CallHandler) Complete(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	h.respond(w, r, "complete call", func() (dispatch.State, error) {
		return h.Store.CompleteCall(r.Context(), r.PathValue("id"))
	})
}

// respond runs an intent and replies with the affected call.
func (h *CallHandler) respond(w http.ResponseWriter, r *http.Request, op string, intent func() (dispatch.State, error)) {
	st, err := intent()
	if err != nil {
		writeIntentError(w, r, op, err)
		return
	}
	call, ok := st.Call(r.PathValue("id"))
	if !ok {
		writeIntentError(w, r, op, dispatch.ErrCallNotFound)
		return
	}
	writeJSON(w, r, http.StatusOK, toCall(call))
}
