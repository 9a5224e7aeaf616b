package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ROSTER_PATH", "CALL_ID_PREFIX", "SIM_TICK", "CLOCK_TICK", "LOCATE_DELAY",
		"GEOCODE_URL", "GEOCODE_TIMEOUT", "GEOCODE_USER_AGENT", "DATABASE_URL",
		"REDIS_URL", "ADDRESS_CACHE_TTL", "NATS_URL", "SIM_SEED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "EMR-2024", cfg.IDPrefix)
	assert.Equal(t, 1600*time.Millisecond, cfg.SimTick)
	assert.Equal(t, time.Second, cfg.ClockTick)
	assert.Equal(t, 1800*time.Millisecond, cfg.LocateDelay)
	assert.Equal(t, 4*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, 24*time.Hour, cfg.AddressCacheTTL)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.GeocodeURL)
	assert.Empty(t, cfg.RosterPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Zero(t, cfg.SimSeed)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SIM_TICK", "250ms")
	t.Setenv("GEOCODE_URL", "OFF")
	t.Setenv("SIM_SEED", "42")
	t.Setenv("REDIS_URL", " redis://localhost:6379/0 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.SimTick)
	assert.Empty(t, cfg.GeocodeURL)
	assert.Equal(t, int64(42), cfg.SimSeed)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"CLOCK_TICK":   "soon",
		"LOCATE_DELAY": "-1s",
		"SIM_SEED":     "forty-two",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
