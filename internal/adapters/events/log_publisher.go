package events

import (
	"ambulance-dispatch-service/internal/ports"
	"context"
	"log"
)

// LogPublisher writes events to a logger. Used when no broker is configured.
type LogPublisher struct {
	logger *log.Logger
}

// NewLogPublisher writes to the standard logger when logger is nil.
func NewLogPublisher(logger *log.Logger) *LogPublisher {
	if logger == nil {
		logger = log.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev ports.LifecycleEvent) error {
	payload, err := Encode(ev)
	if err != nil {
		return err
	}
	p.logger.Printf("op=event.publish subject=%s payload=%s", Subject(ev.Type), payload)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
