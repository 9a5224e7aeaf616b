package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every knob the server reads from the environment.
type Config struct {
	Port       string
	RosterPath string // empty uses the embedded roster
	IDPrefix   string

	SimTick     time.Duration
	ClockTick   time.Duration
	LocateDelay time.Duration

	GeocodeURL       string // empty disables reverse geocoding
	GeocodeTimeout   time.Duration
	GeocodeUserAgent string

	DatabaseURL     string
	RedisURL        string
	AddressCacheTTL time.Duration

	NATSURL string

	// Seed for movement jitter and intake placement; 0 seeds from the clock.
	SimSeed int64
}

const geocodeDisabled = "off"

// Get returns the environment value for key, or fallback when it is unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %s", key, d)
	}
	return d, nil
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:             Get("PORT", "8080"),
		RosterPath:       Get("ROSTER_PATH", ""),
		IDPrefix:         Get("CALL_ID_PREFIX", "EMR-2024"),
		GeocodeURL:       Get("GEOCODE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeUserAgent: Get("GEOCODE_USER_AGENT", "ambulance-dispatch-service"),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:         strings.TrimSpace(os.Getenv("REDIS_URL")),
		NATSURL:          strings.TrimSpace(os.Getenv("NATS_URL")),
	}
	if strings.EqualFold(cfg.GeocodeURL, geocodeDisabled) {
		cfg.GeocodeURL = ""
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"SIM_TICK", 1600 * time.Millisecond, &cfg.SimTick},
		{"CLOCK_TICK", time.Second, &cfg.ClockTick},
		{"LOCATE_DELAY", 1800 * time.Millisecond, &cfg.LocateDelay},
		{"GEOCODE_TIMEOUT", 4 * time.Second, &cfg.GeocodeTimeout},
		{"ADDRESS_CACHE_TTL", 24 * time.Hour, &cfg.AddressCacheTTL},
	}
	for _, d := range durations {
		v, err := getDuration(d.key, d.fallback)
		if err != nil {
			return Config{}, err
		}
		*d.dst = v
	}

	if raw := Get("SIM_SEED", ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse SIM_SEED=%q: %w", raw, err)
		}
		cfg.SimSeed = seed
	}

	return cfg, nil
}
