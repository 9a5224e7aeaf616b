package handlers

import (
	"ambulance-dispatch-service/internal/api/dto"
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/intake"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
)

// IntakeHandler exposes caller-location detection sessions.
type IntakeHandler struct {
	Detector LocationDetector
}

func (h *IntakeHandler) Open(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.OpenIntakeRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	var device *domain.LatLng
	if req.Device != nil {
		p := domain.LatLng{Lat: req.Device.Lat, Lng: req.Device.Lng}
		if !p.Resolved() {
			writeError(w, r, http.StatusUnprocessableEntity, "device coordinates must be non-zero")
			return
		}
		device = &p
	}

	s, err := h.Detector.Open(device)
	if err != nil {
		if errors.Is(err, intake.ErrNoAccidentZones) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("open intake failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusAccepted, toIntake(s))
}

// Session handles GET and DELETE on a single session.
func (h *IntakeHandler) Session(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid session id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s, err := h.Detector.Get(id)
		if err != nil {
			writeError(w, r, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, toIntake(s))

	case http.MethodDelete:
		if err := h.Detector.Close(id); err != nil {
			writeError(w, r, http.StatusNotFound, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "GET, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}
