// Package postgres archives simulated games and their per-turn snapshots.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Connect opens the pool backing the game and turn archive. Every simulation
// worker holds at most one connection while it saves a turn, so the pool is
// sized to workers plus one for the read side.
func Connect(ctx context.Context, databaseURL string, workers int) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	conns := max(workers, 1) + 1
	db.SetMaxOpenConns(conns)
	db.SetMaxIdleConns(conns)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping archive: %w", err)
	}
	return db, nil
}
