package domain

import (
	"math"
	"testing"
)

func TestDistanceKmSymmetryAndIdentity(t *testing.T) {
	points := []LatLng{
		{Lat: 13.0550, Lng: 80.2089},
		{Lat: 9.9231, Lng: 78.1198},
		{Lat: 28.5672, Lng: 77.2100},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 0.0001, Lng: -0.0001},
	}

	for _, a := range points {
		if d := DistanceKm(a, a); d != 0 {
			t.Errorf("DistanceKm(%v, %v) = %v, want 0", a, a, d)
		}
		for _, b := range points {
			ab := DistanceKm(a, b)
			ba := DistanceKm(b, a)
			if math.Abs(ab-ba) > 1e-9 {
				t.Errorf("asymmetric distance %v -> %v: %v vs %v", a, b, ab, ba)
			}
			if a != b && ab <= 0 {
				t.Errorf("distance between distinct points %v and %v = %v", a, b, ab)
			}
		}
	}
}

func TestDistanceKmKnownValue(t *testing.T) {
	// One degree of latitude on a 6371 km sphere.
	got := DistanceKm(LatLng{Lat: 10, Lng: 78}, LatLng{Lat: 11, Lng: 78})
	want := 6371 * math.Pi / 180
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("distance = %v, want %v", got, want)
	}
}

func TestHeadingDegrees(t *testing.T) {
	origin := LatLng{Lat: 10, Lng: 10}
	tests := []struct {
		name string
		to   LatLng
		want float64
	}{
		{"north", LatLng{Lat: 11, Lng: 10}, 0},
		{"east", LatLng{Lat: 10, Lng: 11}, 90},
		{"south", LatLng{Lat: 9, Lng: 10}, 180},
		{"west", LatLng{Lat: 10, Lng: 9}, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeadingDegrees(origin, tt.to)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("heading = %v, want %v", got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Fatalf("heading %v out of range", got)
			}
		})
	}
}

func TestNeededType(t *testing.T) {
	tests := []struct {
		patients int
		want     AmbulanceType
	}{
		{1, AmbulanceBasic},
		{2, AmbulanceBasic},
		{3, AmbulanceAdvanced},
		{4, AmbulanceAdvanced},
		{5, AmbulanceICU},
		{10, AmbulanceICU},
	}

	for _, tt := range tests {
		if got := NeededType(tt.patients); got != tt.want {
			t.Errorf("NeededType(%d) = %q, want %q", tt.patients, got, tt.want)
		}
	}
}

func TestAppendHistoryCapsLength(t *testing.T) {
	amb := &Ambulance{ID: "A1"}
	for i := 0; i < MaxRouteHistory+15; i++ {
		amb.AppendHistory(LatLng{Lat: float64(i), Lng: 1})
	}

	if len(amb.RouteHistory) != MaxRouteHistory {
		t.Fatalf("history length = %d, want %d", len(amb.RouteHistory), MaxRouteHistory)
	}
	if amb.RouteHistory[0].Lat != 15 {
		t.Fatalf("oldest point = %v, want lat 15", amb.RouteHistory[0])
	}
	if amb.RouteHistory[MaxRouteHistory-1].Lat != float64(MaxRouteHistory+14) {
		t.Fatalf("newest point = %v", amb.RouteHistory[MaxRouteHistory-1])
	}
}

func TestBedCountAdmitFloorsAtZero(t *testing.T) {
	b := BedCount{Beds: 1, ICU: 3}
	b = b.Admit()
	b = b.Admit()
	b = b.Admit()
	if b.Beds != 0 {
		t.Fatalf("beds = %d, want 0", b.Beds)
	}
	if b.ICU != 3 {
		t.Fatalf("icu = %d, want 3 (admission must not touch ICU)", b.ICU)
	}
}

func TestCongestionZoneShortLabel(t *testing.T) {
	z := CongestionZone{Label: "Chennai Central — Always Congested"}
	if got := z.ShortLabel(); got != "Chennai Central" {
		t.Fatalf("short label = %q", got)
	}

	plain := CongestionZone{Label: " Viruthunagar Town Center "}
	if got := plain.ShortLabel(); got != "Viruthunagar Town Center" {
		t.Fatalf("short label = %q", got)
	}
}
