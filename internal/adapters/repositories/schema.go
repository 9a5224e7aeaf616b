package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the Postgres tables backing the address cache.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAddressCacheQuery := `
	CREATE TABLE IF NOT EXISTS address_cache (
		coord_key TEXT PRIMARY KEY,
		address TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		resolved_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_address_cache_resolved_at
	ON address_cache(resolved_at);
	`

	statements := []string{
		createAddressCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// PruneAddressCache deletes entries resolved before the cutoff age.
func PruneAddressCache(db *sql.DB, olderThanHours int) (int64, error) {
	if db == nil {
		return 0, errors.New("prune address cache: DB is nil")
	}
	res, err := db.Exec(
		`DELETE FROM address_cache WHERE resolved_at < now() - make_interval(hours => $1);`,
		olderThanHours,
	)
	if err != nil {
		return 0, fmt.Errorf("prune address cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune address cache: rows affected: %w", err)
	}
	return n, nil
}
