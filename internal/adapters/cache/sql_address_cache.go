package cache

import (
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/platform/obs"
	"ambulance-dispatch-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLAddressCache is a Postgres-backed cache mapping rounded coordinates
// to reverse-geocoded addresses.
type SQLAddressCache struct {
	DB *sql.DB
}

func NewSQLAddressCache(db *sql.DB) *SQLAddressCache {
	return &SQLAddressCache{DB: db}
}

func (s *SQLAddressCache) GetAddress(ctx context.Context, c domain.LatLng) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "address.cache.sql.Get")(&err)

	if s.DB == nil {
		return "", false, errors.New("address cache: db is nil")
	}

	var addr string
	err = s.DB.QueryRowContext(ctx, `
	SELECT address
	FROM address_cache
	WHERE coord_key = $1;
	`, ports.AddressCacheKey(c)).Scan(&addr)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get address cache: query address_cache table: %w", err)
	}

	return addr, true, nil
}

func (s *SQLAddressCache) PutAddress(ctx context.Context, c domain.LatLng, address string) error {
	if s.DB == nil {
		return errors.New("address cache: db is nil")
	}
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("insert address cache coord=%q: empty address", ports.AddressCacheKey(c))
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO address_cache (coord_key, address, lat, lng, resolved_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (coord_key) DO UPDATE
	SET address = EXCLUDED.address,
		resolved_at = EXCLUDED.resolved_at;
	`, ports.AddressCacheKey(c), address, c.Lat, c.Lng)
	if err != nil {
		return fmt.Errorf("insert address cache coord=%q: %w", ports.AddressCacheKey(c), err)
	}

	return nil
}
