package dispatch

import (
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/ports"
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Store owns the dispatch state. Every intent is a message handled by the
// single goroutine started with Run, so there is exactly one writer.
type Store struct {
	env       Env
	publisher ports.EventPublisher

	commands    chan command
	subscribe   chan subscription
	unsubscribe chan uuid.UUID

	startOnce sync.Once
	done      chan struct{}

	// Owned by the Run goroutine.
	state       State
	subscribers map[uuid.UUID]chan State
}

type command struct {
	event Event // nil reads the current snapshot
	reply chan result
}

type result struct {
	state   State
	outcome Outcome
	err     error
}

type subscription struct {
	id uuid.UUID
	ch chan State
}

// NewStore creates a store seeded with initial. Publisher may be nil.
func NewStore(initial State, env Env, publisher ports.EventPublisher) *Store {
	return &Store{
		env:         env,
		publisher:   publisher,
		commands:    make(chan command),
		subscribe:   make(chan subscription),
		unsubscribe: make(chan uuid.UUID),
		done:        make(chan struct{}),
		state:       initial,
		subscribers: make(map[uuid.UUID]chan State),
	}
}

// Run processes intents until ctx is canceled. Subscriber channels are
// closed on return.
func (s *Store) Run(ctx context.Context) error {
	started := false
	s.startOnce.Do(func() { started = true })
	if !started {
		return nil
	}
	defer func() {
		for id, ch := range s.subscribers {
			close(ch)
			delete(s.subscribers, id)
		}
		close(s.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case cmd := <-s.commands:
			if cmd.event == nil {
				cmd.reply <- result{state: s.state}
				continue
			}
			cmd.reply <- s.apply(ctx, cmd.event)

		case sub := <-s.subscribe:
			s.subscribers[sub.id] = sub.ch
			sub.ch <- s.state

		case id := <-s.unsubscribe:
			if ch, ok := s.subscribers[id]; ok {
				close(ch)
				delete(s.subscribers, id)
			}
		}
	}
}

func (s *Store) apply(ctx context.Context, ev Event) result {
	next, out, err := Reduce(s.state, ev, s.env)
	if err != nil {
		log.Printf("op=%s outcome=rejected err=%q", ev.eventName(), err)
		return result{state: s.state, err: err}
	}
	if !out.Changed {
		return result{state: s.state, outcome: out}
	}

	s.state = next
	for _, tr := range out.Transitions {
		log.Printf(
			"op=%s event=%s call=%s ambulance=%s hospital=%s from=%s to=%s version=%d",
			ev.eventName(), tr.Type, tr.CallID, tr.AmbulanceID, tr.HospitalID, tr.From, tr.To, next.Version,
		)
		s.publish(ctx, tr)
	}
	for _, ch := range s.subscribers {
		deliverLatest(ch, next)
	}
	return result{state: next, outcome: out}
}

func (s *Store) publish(ctx context.Context, tr Transition) {
	if s.publisher == nil {
		return
	}
	ev := ports.LifecycleEvent{
		ID:          uuid.New(),
		Type:        tr.Type,
		CallID:      tr.CallID,
		AmbulanceID: tr.AmbulanceID,
		HospitalID:  tr.HospitalID,
		From:        string(tr.From),
		To:          string(tr.To),
		At:          s.env.now(),
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		log.Printf("op=publish event=%s call=%s err=%q", ev.Type, ev.CallID, err)
	}
}

// deliverLatest hands st to a subscriber without blocking, replacing any
// snapshot the subscriber has not read yet. Only the Run goroutine sends.
func deliverLatest(ch chan State, st State) {
	select {
	case ch <- st:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- st
}

func (s *Store) send(ctx context.Context, ev Event) (result, error) {
	reply := make(chan result, 1)
	select {
	case s.commands <- command{event: ev, reply: reply}:
	case <-s.done:
		return result{}, ErrStoreClosed
	case <-ctx.Done():
		return result{}, ctx.Err()
	}
	select {
	case r := <-reply:
		return r, r.err
	case <-ctx.Done():
		return result{}, ctx.Err()
	}
}

// Snapshot returns the current state. It must not be modified.
func (s *Store) Snapshot(ctx context.Context) (State, error) {
	r, err := s.send(ctx, nil)
	return r.state, err
}

// Subscribe registers for snapshots. The current snapshot is delivered
// first; slow readers only ever see the most recent one. The channel is
// closed by cancel or when the store stops.
func (s *Store) Subscribe(ctx context.Context) (<-chan State, func(), error) {
	sub := subscription{id: uuid.New(), ch: make(chan State, 1)}
	select {
	case s.subscribe <- sub:
	case <-s.done:
		return nil, nil, ErrStoreClosed
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			select {
			case s.unsubscribe <- sub.id:
			case <-s.done:
			}
		})
	}
	return sub.ch, cancel, nil
}

func (s *Store) RegisterCall(ctx context.Context, details CallDetails) (domain.EmergencyCall, error) {
	r, err := s.send(ctx, RegisterCall{Details: details})
	if err != nil {
		return domain.EmergencyCall{}, err
	}
	call, _ := r.state.Call(r.outcome.CallID)
	return call, nil
}

func (s *Store) Dispatch(ctx context.Context, callID, ambulanceID string) (State, error) {
	r, err := s.send(ctx, Dispatch{CallID: callID, AmbulanceID: ambulanceID})
	return r.state, err
}

func (s *Store) ConfirmHospital(ctx context.Context, callID, hospitalID string) (State, error) {
	r, err := s.send(ctx, ConfirmHospital{CallID: callID, HospitalID: hospitalID})
	return r.state, err
}

func (s *Store) CompleteCall(ctx context.Context, callID string) (State, error) {
	r, err := s.send(ctx, CompleteCall{CallID: callID})
	return r.state, err
}

// Tick advances the position simulation one step and reports whether
// anything moved.
func (s *Store) Tick(ctx context.Context) (bool, error) {
	r, err := s.send(ctx, Tick{})
	return r.outcome.Changed, err
}
