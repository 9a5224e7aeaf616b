package handlers

import (
	"ambulance-dispatch-service/internal/dispatch"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// allowMethod rejects requests whose method is not m.
func allowMethod(w http.ResponseWriter, r *http.Request, m string) bool {
	if r.Method == m {
		return true
	}
	w.Header().Set("Allow", m)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON reads exactly one JSON object and rejects unknown fields.
// An empty body is allowed when emptyOK is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, emptyOK bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if emptyOK && errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeIntentError maps a store failure to a status code. Rejections carry
// their reason; internal failures do not.
func writeIntentError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, dispatch.ErrCallNotFound),
		errors.Is(err, dispatch.ErrAmbulanceNotFound),
		errors.Is(err, dispatch.ErrHospitalNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, dispatch.ErrLocationUnresolved),
		errors.Is(err, dispatch.ErrInvalidSeverity):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, dispatch.ErrRejected):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, dispatch.ErrStoreClosed),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusServiceUnavailable, "service unavailable")
	default:
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
