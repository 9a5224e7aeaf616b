package ports

import (
	"ambulance-dispatch-service/internal/domain"
	"context"
	"fmt"
)

// Persistent memo of reverse-geocoding results keyed by rounded coordinates.
type AddressCache interface {
	// Return the cached address and whether it was present.
	GetAddress(ctx context.Context, c domain.LatLng) (string, bool, error)
	// Store a successfully resolved address.
	PutAddress(ctx context.Context, c domain.LatLng, address string) error
}

// AddressCacheKey normalizes a coordinate to the precision of the fallback string
// so nearby lookups share an entry.
func AddressCacheKey(c domain.LatLng) string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lng)
}
