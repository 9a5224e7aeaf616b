package api

import (
	"ambulance-dispatch-service/internal/api/handlers"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see the store, detector and clock through interfaces.
func NewRouter(store handlers.DispatchStore, detector handlers.LocationDetector, clock handlers.ClockFeed) http.Handler {
	mux := http.NewServeMux()

	stateHandler := &handlers.StateHandler{Store: store}
	streamHandler := &handlers.StreamHandler{Store: store, Clock: clock}
	callHandler := &handlers.CallHandler{Store: store}
	intakeHandler := &handlers.IntakeHandler{Detector: detector}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/state", stateHandler.Get)
	mux.HandleFunc("/stats", stateHandler.Stats)
	mux.HandleFunc("/stream", streamHandler.Stream)

	mux.HandleFunc("/calls", callHandler.Register)
	mux.HandleFunc("/calls/{id}/suggestions", callHandler.Suggestions)
	mux.HandleFunc("/calls/{id}/dispatch", callHandler.Dispatch)
	mux.HandleFunc("/calls/{id}/hospital", callHandler.ConfirmHospital)
	mux.HandleFunc("/calls/{id}/complete", callHandler.Complete)

	mux.HandleFunc("/intake", intakeHandler.Open)
	mux.HandleFunc("/intake/{id}", intakeHandler.Session)

	return loggingMiddleware(mux)
}
