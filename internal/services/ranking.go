package services

import (
	"ambulance-dispatch-service/internal/domain"
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

const (
	// Constant speed assumption for every naive ETA.
	AssumedSpeedKmh = 60.0

	maxAmbulanceSuggestions = 4
	maxHospitalSuggestions  = 6

	criticalNonICUPenalty = 15.0
	neededTypeBonus       = 3.0
	noERPenalty           = 8.0
	lowICUPenalty         = 6.0
	lowBedsPenalty        = 10.0

	ambulanceETAFloorMin = 2
	hospitalETAFloorMin  = 3
)

// One ranked ambulance candidate for a call.
type AmbulanceSuggestion struct {
	Ambulance  domain.Ambulance
	DistanceKm float64
	ETAMinutes int
	Score      float64
	Reason     string
}

// One ranked hospital candidate for a call, carrying its live bed counts.
type HospitalSuggestion struct {
	Hospital   domain.Hospital
	Live       domain.BedCount
	DistanceKm float64
	ETAMinutes int
	Score      float64
	Reason     string
}

// Admittable reports whether confirming this hospital can succeed.
// Full hospitals stay in the shortlist for visibility only.
func (s HospitalSuggestion) Admittable() bool { return s.Live.Beds > 0 }

// ETAMinutes converts a straight-line distance to whole minutes at the assumed
// speed, rounded up, never below floor.
func ETAMinutes(distanceKm float64, floor int) int {
	eta := int(math.Ceil(distanceKm / AssumedSpeedKmh * 60))
	return max(floor, eta)
}

// RankAmbulances scores every available unit against the call and returns the
// best four, lowest score first.
//
// Score is the distance in km, penalized when a critical call would get a
// non-ICU unit and rewarded when the unit matches the needed type. Ties keep
// roster order. An empty result means nothing is available; it is not an error.
func RankAmbulances(call domain.EmergencyCall, fleet []domain.Ambulance) []AmbulanceSuggestion {
	needed := domain.NeededType(call.PatientCount)
	critical := call.Severity == domain.SeverityCritical

	out := make([]AmbulanceSuggestion, 0, len(fleet))
	for _, a := range fleet {
		if a.Status != domain.AmbulanceAvailable {
			continue
		}

		dist := domain.DistanceKm(call.Location, a.Location)
		eta := ETAMinutes(dist, ambulanceETAFloorMin)

		score := dist
		if critical && a.Type != domain.AmbulanceICU {
			score += criticalNonICUPenalty
		}
		if a.Type == needed {
			score -= neededTypeBonus
		}

		reasons := make([]string, 0, 3)
		if a.Type == needed {
			reasons = append(reasons, fmt.Sprintf("Correct type (%s) for %d patient(s)", strings.ToUpper(string(a.Type)), call.PatientCount))
		}
		if dist < 5 {
			reasons = append(reasons, fmt.Sprintf("Very close, only %.1f km", dist))
		}
		if critical && a.Type == domain.AmbulanceICU {
			reasons = append(reasons, "ICU unit critical for this case")
		}

		reason := fmt.Sprintf("%.1f km away, ETA %d min", dist, eta)
		if len(reasons) > 0 {
			reason = strings.Join(reasons, " | ")
		}

		out = append(out, AmbulanceSuggestion{
			Ambulance:  a,
			DistanceKm: dist,
			ETAMinutes: eta,
			Score:      score,
			Reason:     reason,
		})
	}

	slices.SortStableFunc(out, func(a, b AmbulanceSuggestion) int {
		return cmp.Compare(a.Score, b.Score)
	})

	if len(out) > maxAmbulanceSuggestions {
		out = out[:maxAmbulanceSuggestions]
	}
	return out
}

// RankHospitals scores the whole roster against the call using live bed
// counts and returns the best six, lowest score first. Hospitals missing from
// live fall back to their seed counts.
func RankHospitals(
	call domain.EmergencyCall,
	hospitals []domain.Hospital,
	live map[string]domain.BedCount,
) []HospitalSuggestion {
	critical := call.Severity == domain.SeverityCritical

	out := make([]HospitalSuggestion, 0, len(hospitals))
	for _, h := range hospitals {
		counts, ok := live[h.ID]
		if !ok {
			counts = h.SeedBeds()
		}

		dist := domain.DistanceKm(call.Location, h.Location)
		eta := ETAMinutes(dist, hospitalETAFloorMin)

		score := dist
		if !h.EmergencyRoom {
			score += noERPenalty
		}
		if critical && counts.ICU < 2 {
			score += lowICUPenalty
		}
		if counts.Beds < 2 {
			score += lowBedsPenalty
		}

		reasons := make([]string, 0, 4)
		if h.EmergencyRoom {
			reasons = append(reasons, "Active ER")
		}
		if critical && counts.ICU >= 2 {
			reasons = append(reasons, fmt.Sprintf("%d ICU beds", counts.ICU))
		}
		if dist < 10 {
			reasons = append(reasons, fmt.Sprintf("%.1f km, nearest", dist))
		}
		if counts.Beds > 10 {
			reasons = append(reasons, fmt.Sprintf("%d beds available", counts.Beds))
		}

		reason := fmt.Sprintf("%.1f km, %d beds", dist, counts.Beds)
		if len(reasons) > 0 {
			reason = strings.Join(reasons, " | ")
		}

		out = append(out, HospitalSuggestion{
			Hospital:   h,
			Live:       counts,
			DistanceKm: dist,
			ETAMinutes: eta,
			Score:      score,
			Reason:     reason,
		})
	}

	slices.SortStableFunc(out, func(a, b HospitalSuggestion) int {
		return cmp.Compare(a.Score, b.Score)
	})

	if len(out) > maxHospitalSuggestions {
		out = out[:maxHospitalSuggestions]
	}
	return out
}
