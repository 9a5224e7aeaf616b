package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude) in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Resolved reports whether both components are set.
// A zero component means location detection has not completed yet.
func (c LatLng) Resolved() bool { return c.Lat != 0 && c.Lng != 0 }

// Fixed-precision "lat, lng" string used when no address is available.
func (c LatLng) String() string { return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng) }
