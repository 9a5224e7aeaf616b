package cache

import (
	"ambulance-dispatch-service/internal/adapters/repositories"
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/platform/db"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Postgres when TEST_DATABASE_URL is set.
func TestSQLAddressCacheRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	conn, err := db.Open(context.Background(), url)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, repositories.InitSchema(conn))

	c := NewSQLAddressCache(conn)
	ctx := context.Background()
	p := domain.LatLng{Lat: 22.5726, Lng: 88.3639}
	_, err = conn.ExecContext(ctx, `DELETE FROM address_cache WHERE coord_key = $1`, "22.5726,88.3639")
	require.NoError(t, err)

	_, ok, err := c.GetAddress(ctx, p)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.PutAddress(ctx, p, "Park Street, Kolkata"))
	require.NoError(t, c.PutAddress(ctx, p, "Park Street, Kolkata, West Bengal"))

	addr, ok, err := c.GetAddress(ctx, p)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Park Street, Kolkata, West Bengal", addr)
}

func TestSQLAddressCacheNilDB(t *testing.T) {
	c := NewSQLAddressCache(nil)
	_, _, err := c.GetAddress(context.Background(), domain.LatLng{Lat: 1, Lng: 1})
	require.Error(t, err)
	require.Error(t, c.PutAddress(context.Background(), domain.LatLng{Lat: 1, Lng: 1}, "x"))
}
