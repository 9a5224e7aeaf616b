package intake

import (
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/ports"
	"ambulance-dispatch-service/internal/services"
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"
)

const (
	// Placement spread around an accident zone when the address is geocoded.
	geocodedSpreadDeg = 0.025
	// Placement spread when geocoding is off and the zone city is used.
	offlineSpreadDeg = 0.02
)

type Status string

const (
	StatusLocating Status = "locating"
	StatusLocated  Status = "located"
)

// Where a detected location came from.
type Source string

const (
	SourceDevice       Source = "device"
	SourceAccidentZone Source = "accident_zone"
)

var (
	ErrSessionNotFound = errors.New("intake session not found")
	ErrNoAccidentZones = errors.New("no accident zones configured")
)

// Session is one location-detection attempt for a call being taken.
type Session struct {
	ID        uuid.UUID
	Status    Status
	Source    Source
	Location  domain.LatLng
	Address   string
	Fallback  bool // Address is the coordinate fallback
	OpenedAt  time.Time
	LocatedAt time.Time
}

type entry struct {
	session Session
	cancel  context.CancelFunc
}

// Detector runs delayed caller-location detection. Closing a session before
// its timer fires cancels it and nothing is recorded afterwards.
type Detector struct {
	delay    time.Duration
	resolver ports.AddressResolver // nil when geocoding is off
	zones    []domain.AccidentZone
	clock    clockz.Clock

	base context.Context
	stop context.CancelFunc

	mu       sync.Mutex
	rng      services.RandomSource
	next     int
	sessions map[uuid.UUID]*entry
}

func NewDetector(
	delay time.Duration,
	resolver ports.AddressResolver,
	zones []domain.AccidentZone,
	rng services.RandomSource,
) *Detector {
	base, stop := context.WithCancel(context.Background())
	return &Detector{
		delay:    delay,
		resolver: resolver,
		zones:    zones,
		clock:    clockz.RealClock,
		base:     base,
		stop:     stop,
		rng:      rng,
		sessions: make(map[uuid.UUID]*entry),
	}
}

func (d *Detector) WithClock(clock clockz.Clock) *Detector {
	d.clock = clock
	return d
}

// Open starts a session. device holds coordinates reported by the caller's
// handset, if any; without them an accident zone is picked.
func (d *Detector) Open(device *domain.LatLng) (Session, error) {
	if device == nil && len(d.zones) == 0 {
		return Session{}, ErrNoAccidentZones
	}

	ctx, cancel := context.WithCancel(d.base)
	s := Session{
		ID:       uuid.New(),
		Status:   StatusLocating,
		OpenedAt: d.clock.Now(),
	}

	d.mu.Lock()
	d.sessions[s.ID] = &entry{session: s, cancel: cancel}
	d.mu.Unlock()

	var at *domain.LatLng
	if device != nil {
		p := *device
		at = &p
	}
	go d.locate(ctx, s.ID, at)

	log.Printf("op=intake.open session=%s device=%t", s.ID, device != nil)
	return s, nil
}

func (d *Detector) Get(id uuid.UUID) (Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return e.session, nil
}

// Close discards a session, canceling detection still in flight.
func (d *Detector) Close(id uuid.UUID) error {
	d.mu.Lock()
	e, ok := d.sessions[id]
	delete(d.sessions, id)
	d.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	e.cancel()
	log.Printf("op=intake.close session=%s status=%s", id, e.session.Status)
	return nil
}

// Shutdown cancels every pending detection.
func (d *Detector) Shutdown() {
	d.stop()
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.sessions)
}

func (d *Detector) locate(ctx context.Context, id uuid.UUID, device *domain.LatLng) {
	select {
	case <-ctx.Done():
		return
	case <-d.clock.After(d.delay):
	}
	if ctx.Err() != nil {
		return
	}

	var (
		at       domain.LatLng
		source   Source
		addr     string
		fallback bool
	)

	if device != nil {
		at, source = *device, SourceDevice
		addr, fallback = d.resolve(ctx, at)
	} else {
		zone, jitter := d.pickZone()
		source = SourceAccidentZone
		if d.resolver == nil {
			at = jitter(offlineSpreadDeg)
			addr = zone.City
		} else {
			at = jitter(geocodedSpreadDeg)
			// A geocoder miss yields the coordinate string, not the city.
			addr, fallback = d.resolve(ctx, at)
		}
	}

	if ctx.Err() != nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.sessions[id]
	if !ok {
		return
	}
	e.session.Status = StatusLocated
	e.session.Source = source
	e.session.Location = at
	e.session.Address = addr
	e.session.Fallback = fallback
	e.session.LocatedAt = d.clock.Now()

	log.Printf("op=intake.located session=%s source=%s coord=%q fallback=%t", id, source, at.String(), fallback)
}

func (d *Detector) resolve(ctx context.Context, at domain.LatLng) (string, bool) {
	if d.resolver == nil {
		return at.String(), true
	}
	res := d.resolver.ResolveAddress(ctx, at)
	if !res.Ok() {
		log.Printf("op=intake.geocode coord=%q err=%q", at.String(), res.Err)
	}
	return res.Address, !res.Ok()
}

// pickZone takes the next accident zone in rotation and returns a function
// that places a point inside it with the given spread.
func (d *Detector) pickZone() (domain.AccidentZone, func(spread float64) domain.LatLng) {
	d.mu.Lock()
	defer d.mu.Unlock()

	zone := d.zones[d.next%len(d.zones)]
	d.next++
	rLat, rLng := d.rng.Float64(), d.rng.Float64()

	return zone, func(spread float64) domain.LatLng {
		return domain.LatLng{
			Lat: zone.Center.Lat + (rLat-0.5)*spread,
			Lng: zone.Center.Lng + (rLng-0.5)*spread,
		}
	}
}
