package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/freeeve/world-conquest/internal/model"
)

// GameRepo handles archived game rows.
type GameRepo struct {
	db *sql.DB
}

// NewGameRepo creates a GameRepo.
func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{db: db}
}

// Create inserts a running game.
func (r *GameRepo) Create(ctx context.Context, seed int64, players int) (*model.Game, error) {
	var g model.Game
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO games (seed, players) VALUES ($1, $2)
		 RETURNING id, seed, players, status, turns, created_at`,
		seed, players,
	).Scan(&g.ID, &g.Seed, &g.Players, &g.Status, &g.Turns, &g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return &g, nil
}

// FindByID returns a game by ID, or nil if it does not exist.
func (r *GameRepo) FindByID(ctx context.Context, id string) (*model.Game, error) {
	var g model.Game
	var winner sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, seed, players, status, winner, turns, created_at, finished_at
		 FROM games WHERE id = $1`, id,
	).Scan(&g.ID, &g.Seed, &g.Players, &g.Status, &winner, &g.Turns, &g.CreatedAt, &g.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find game: %w", err)
	}
	g.Winner = winner.String
	return &g, nil
}

// ListFinished returns the most recently finished games, newest first.
func (r *GameRepo) ListFinished(ctx context.Context, limit int) ([]model.Game, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, seed, players, status, winner, turns, created_at, finished_at
		 FROM games WHERE status = 'finished'
		 ORDER BY finished_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list finished games: %w", err)
	}
	defer rows.Close()

	var games []model.Game
	for rows.Next() {
		var g model.Game
		var winner sql.NullString
		if err := rows.Scan(&g.ID, &g.Seed, &g.Players, &g.Status, &winner, &g.Turns, &g.CreatedAt, &g.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		g.Winner = winner.String
		games = append(games, g)
	}
	return games, rows.Err()
}

// SetFinished marks a game finished. An empty winner is stored as NULL.
func (r *GameRepo) SetFinished(ctx context.Context, gameID, winner string, turns int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE games SET status = 'finished', winner = $1, turns = $2, finished_at = now() WHERE id = $3`,
		nullStr(winner), turns, gameID,
	)
	if err != nil {
		return fmt.Errorf("set game finished: %w", err)
	}
	return nil
}

func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
