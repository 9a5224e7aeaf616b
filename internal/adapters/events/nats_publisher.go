package events

import (
	"ambulance-dispatch-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const subjectPrefix = "dispatch."

// Subject returns the NATS subject an event type is published on.
func Subject(eventType string) string { return subjectPrefix + eventType }

// Encode renders an event as its wire payload.
func Encode(ev ports.LifecycleEvent) ([]byte, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", ev.Type, err)
	}
	return payload, nil
}

// NATSPublisher fans lifecycle events out over core NATS.
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("ambulance-dispatch-service"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (p *NATSPublisher) Publish(_ context.Context, ev ports.LifecycleEvent) error {
	payload, err := Encode(ev)
	if err != nil {
		return err
	}
	if err := p.conn.Publish(Subject(ev.Type), payload); err != nil {
		return fmt.Errorf("publish %s: %w", Subject(ev.Type), err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
