// Package referencefront implements ports.ReferenceFrontProvider against a
// Postgres table of externally computed reference-front objective
// vectors. Read-only: this core never writes to the table, only SELECTs
// it once per monitor tick.
package referencefront

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"tourmovns/internal/domain"
	"tourmovns/internal/platform/db"
)

// Provider reads a run's reference front from a single Postgres table,
// keyed by run_id, one row per front member.
type Provider struct {
	db    *sql.DB
	runID string
}

// Open wraps platform/db.Open's bounded-pool-plus-Ping connection setup
// with the run_id this provider will filter by.
func Open(databaseURL, runID string) (*Provider, error) {
	conn, err := db.Open(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("referencefront: %w", err)
	}
	return &Provider{db: conn, runID: runID}, nil
}

func (p *Provider) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

// EnsureSchema creates the reference_front_points table if it does not
// already exist. Called once by the composition root, not by the core.
func (p *Provider) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS reference_front_points (
			run_id TEXT NOT NULL,
			f1 DOUBLE PRECISION NOT NULL,
			f2 DOUBLE PRECISION NOT NULL,
			f3 DOUBLE PRECISION NOT NULL,
			f4 DOUBLE PRECISION NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("referencefront: ensure schema: %w", err)
	}
	return nil
}

// ReferenceFront satisfies ports.ReferenceFrontProvider. An empty result
// set is not an error: the monitor treats it as "unavailable yet" rather
// than failing the run.
func (p *Provider) ReferenceFront(ctx context.Context) ([]domain.ObjectiveVector, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT f1, f2, f3, f4 FROM reference_front_points WHERE run_id = $1`,
		p.runID,
	)
	if err != nil {
		return nil, fmt.Errorf("referencefront: query run_id=%s: %w", p.runID, err)
	}
	defer rows.Close()

	var front []domain.ObjectiveVector
	for rows.Next() {
		var v domain.ObjectiveVector
		if err := rows.Scan(&v.F1, &v.F2, &v.F3, &v.F4); err != nil {
			return nil, fmt.Errorf("referencefront: scan run_id=%s: %w", p.runID, err)
		}
		front = append(front, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("referencefront: rows run_id=%s: %w", p.runID, err)
	}
	return front, nil
}
