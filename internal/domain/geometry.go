package domain

import "math"

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b using the
// haversine formula on a spherical Earth.
func DistanceKm(a, b LatLng) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Pow(math.Sin(dLng/2), 2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// HeadingDegrees returns a bearing in [0, 360) computed from the planar
// longitude/latitude delta. It is only good enough for icon rotation.
func HeadingDegrees(from, to LatLng) float64 {
	deg := math.Atan2(to.Lng-from.Lng, to.Lat-from.Lat) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// Midpoint of the straight segment between a and b in coordinate space.
func Midpoint(a, b LatLng) LatLng {
	return LatLng{Lat: (a.Lat + b.Lat) / 2, Lng: (a.Lng + b.Lng) / 2}
}

// DegreeDistance is the Euclidean distance in raw coordinate degrees.
// Only meaningful at small scale.
func DegreeDistance(a, b LatLng) float64 {
	dLat := b.Lat - a.Lat
	dLng := b.Lng - a.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
