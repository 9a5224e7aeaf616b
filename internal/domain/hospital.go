package domain

// Represents one facility. The roster is static; live bed counts are
// tracked separately in BedCount.
type Hospital struct {
	ID            string
	Name          string
	Location      LatLng
	Address       string
	BedsAvailable int
	ICUBeds       int
	EmergencyRoom bool
	Specialties   []string
	Phone         string
	// Legacy flag, never read after seeding.
	Confirmed bool
}

// Live bed counters for one hospital. Beds drops by one per confirmed
// admission and never goes below zero.
type BedCount struct {
	Beds int
	ICU  int
}

// SeedBeds returns the initial live counter for h.
func (h Hospital) SeedBeds() BedCount {
	return BedCount{Beds: h.BedsAvailable, ICU: h.ICUBeds}
}

// Admit returns the counter after one general-bed admission.
func (b BedCount) Admit() BedCount {
	b.Beds--
	if b.Beds < 0 {
		b.Beds = 0
	}
	return b
}
