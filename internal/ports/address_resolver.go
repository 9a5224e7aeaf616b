package ports

import (
	"ambulance-dispatch-service/internal/domain"
	"context"
)

// Outcome of a reverse-geocoding attempt.
// Address is always populated: on failure it holds the coordinate fallback
// and Err records why the lookup did not succeed.
type AddressResult struct {
	Address string
	Err     error
}

// Ok reports whether Address came from the resolver rather than the fallback.
func (r AddressResult) Ok() bool { return r.Err == nil }

// ResolvedAddress builds a successful result.
func ResolvedAddress(address string) AddressResult {
	return AddressResult{Address: address}
}

// FallbackAddress builds the failure branch carrying the fixed-precision coordinate string.
func FallbackAddress(c domain.LatLng, cause error) AddressResult {
	return AddressResult{Address: c.String(), Err: cause}
}

// Contract for turning a coordinate into a human-readable address.
// Implementations make a single attempt and never fail outright.
type AddressResolver interface {
	ResolveAddress(ctx context.Context, c domain.LatLng) AddressResult
}
