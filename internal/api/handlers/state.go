package handlers

import (
	"ambulance-dispatch-service/internal/services"
	"net/http"
)

// StateHandler serves read-only views of the current snapshot.
type StateHandler struct {
	Store DispatchStore
}

func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	st, err := h.Store.Snapshot(r.Context())
	if err != nil {
		writeIntentError(w, r, "snapshot", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toState(st))
}

func (h *StateHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	st, err := h.Store.Snapshot(r.Context())
	if err != nil {
		writeIntentError(w, r, "stats", err)
		return
	}

	stats := services.Summarize(st.Calls, st.Ambulances, st.Hospitals, st.Beds)
	writeJSON(w, r, http.StatusOK, toStats(stats))
}
