// Package travelcache is a read-only travel-time memoization cache: it
// snapshots a ports.TravelMatrixProvider into a SQLite-backed store once,
// at initialization, so concurrently-running Driver instances share
// memoized lookups without a mutex — reads only, no writes after Build.
package travelcache

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"tourmovns/internal/domain"
)

// Cache implements ports.TravelMatrixProvider by reading from an
// in-memory SQLite database populated once by Build.
type Cache struct {
	db *sql.DB
}

// Open creates the backing in-memory SQLite database and its schema.
// Call Build once with the real provider's data before any Driver starts;
// no further writes happen afterward.
func Open() (*Cache, error) {
	db, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		return nil, fmt.Errorf("travelcache: open: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS travel_legs (
			from_id INTEGER NOT NULL,
			to_id   INTEGER NOT NULL,
			mode    INTEGER NOT NULL,
			minutes REAL NOT NULL,
			cost    REAL NOT NULL,
			PRIMARY KEY (from_id, to_id, mode)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("travelcache: create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Build bulk-loads every (from, to, mode) leg the provider can resolve
// across the catalog's location space, in a single transaction. Called
// exactly once, before any Driver instance starts reading.
func (c *Cache) Build(provider Lookup, numLocations int) error {
	if c.db == nil {
		return errors.New("travelcache: not open")
	}
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("travelcache: build begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO travel_legs (from_id, to_id, mode, minutes, cost) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("travelcache: build prepare: %w", err)
	}
	defer stmt.Close()

	for from := 0; from < numLocations; from++ {
		for to := 0; to < numLocations; to++ {
			if from == to {
				continue
			}
			for _, mode := range domain.AllModes {
				leg, ok := provider.Lookup(domain.LocationID(from), domain.LocationID(to), mode)
				if !ok {
					continue
				}
				if _, err := stmt.Exec(from, to, int(mode), leg.Minutes, leg.Cost); err != nil {
					return fmt.Errorf("travelcache: build insert from=%d to=%d mode=%d: %w", from, to, mode, err)
				}
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("travelcache: build commit: %w", err)
	}
	return nil
}

// Lookup is the interface Build's source must satisfy — identical in
// shape to ports.TravelMatrixProvider, declared separately here so this
// package does not need to import ports for a single method.
type Lookup interface {
	Lookup(from, to domain.LocationID, mode domain.Mode) (domain.LegCost, bool)
}

// Lookup reads a single memoized leg back from the cache.
func (c *Cache) Lookup(from, to domain.LocationID, mode domain.Mode) (domain.LegCost, bool) {
	row := c.db.QueryRow(
		`SELECT minutes, cost FROM travel_legs WHERE from_id = ? AND to_id = ? AND mode = ?`,
		int(from), int(to), int(mode),
	)
	var leg domain.LegCost
	if err := row.Scan(&leg.Minutes, &leg.Cost); err != nil {
		return domain.LegCost{}, false
	}
	return leg, true
}
