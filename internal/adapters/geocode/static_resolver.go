package geocode

import (
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/ports"
	"context"
	"fmt"
	"sync/atomic"
)

type StaticPlace struct {
	At      domain.LatLng
	Address string
}

// StaticResolver answers from a fixed table keyed at cache precision.
// Unknown coordinates take the fallback branch.
type StaticResolver struct {
	m     map[string]string
	calls atomic.Int64
}

func NewStaticResolver(places []StaticPlace) *StaticResolver {
	m := make(map[string]string, len(places))
	for _, p := range places {
		m[ports.AddressCacheKey(p.At)] = p.Address
	}
	return &StaticResolver{m: m}
}

func (s *StaticResolver) ResolveAddress(ctx context.Context, c domain.LatLng) ports.AddressResult {
	s.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return ports.FallbackAddress(c, err)
	}
	addr, ok := s.m[ports.AddressCacheKey(c)]
	if !ok {
		return ports.FallbackAddress(c, fmt.Errorf("static lookup %s: %w", c, ErrNoAddress))
	}
	return ports.ResolvedAddress(addr)
}

// Calls reports how many lookups were made.
func (s *StaticResolver) Calls() int64 { return s.calls.Load() }
