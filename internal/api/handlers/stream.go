package handlers

import (
	"ambulance-dispatch-service/internal/api/dto"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// StreamHandler pushes snapshots and clock ticks as Server-Sent Events.
type StreamHandler struct {
	Store DispatchStore
	Clock ClockFeed
}

func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	ctx := r.Context()
	states, cancelStates, err := h.Store.Subscribe(ctx)
	if err != nil {
		writeIntentError(w, r, "subscribe", err)
		return
	}
	defer cancelStates()

	var ticks <-chan time.Time
	if h.Clock != nil {
		var cancelTicks func()
		ticks, cancelTicks = h.Clock.Subscribe()
		defer cancelTicks()
	}

	rc := http.NewResponseController(w)
	// The server write timeout would otherwise cut long-lived streams.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func(event string, v any) bool {
		b, err := json.Marshal(v)
		if err != nil {
			log.Printf("stream encode failed: event=%s err=%v", event, err)
			return false
		}
		fmt.Fprintf(w, "event: %s\n", event)
		fmt.Fprintf(w, "data: %s\n\n", b)
		if err := rc.Flush(); err != nil {
			return false
		}
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-states:
			if !ok || !send("state", toState(st)) {
				return
			}
		case now, ok := <-ticks:
			if !ok {
				ticks = nil
				continue
			}
			if !send("clock", dto.ClockEvent{Now: now}) {
				return
			}
		}
	}
}
