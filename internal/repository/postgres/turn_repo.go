package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/freeeve/world-conquest/internal/model"
)

// TurnRepo handles turn snapshot rows.
type TurnRepo struct {
	db *sql.DB
}

// NewTurnRepo creates a TurnRepo.
func NewTurnRepo(db *sql.DB) *TurnRepo {
	return &TurnRepo{db: db}
}

// SaveTurn stores the snapshot taken after a turn. Saving the same turn twice
// replaces the earlier snapshot.
func (r *TurnRepo) SaveTurn(ctx context.Context, gameID string, turn int, state json.RawMessage, battles int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO turns (game_id, turn, state, battles) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (game_id, turn) DO UPDATE SET state = EXCLUDED.state, battles = EXCLUDED.battles`,
		gameID, turn, []byte(state), battles,
	)
	if err != nil {
		return fmt.Errorf("save turn: %w", err)
	}
	return nil
}

// ListTurns returns every snapshot of a game in turn order.
func (r *TurnRepo) ListTurns(ctx context.Context, gameID string) ([]model.Turn, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT game_id, turn, state, battles, created_at
		 FROM turns WHERE game_id = $1 ORDER BY turn`, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var turns []model.Turn
	for rows.Next() {
		var t model.Turn
		var state []byte
		if err := rows.Scan(&t.GameID, &t.Turn, &state, &t.Battles, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		t.State = json.RawMessage(state)
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// LatestTurn returns the newest snapshot of a game, or nil if none exist.
func (r *TurnRepo) LatestTurn(ctx context.Context, gameID string) (*model.Turn, error) {
	var t model.Turn
	var state []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT game_id, turn, state, battles, created_at
		 FROM turns WHERE game_id = $1 ORDER BY turn DESC LIMIT 1`, gameID,
	).Scan(&t.GameID, &t.Turn, &state, &t.Battles, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest turn: %w", err)
	}
	t.State = json.RawMessage(state)
	return &t, nil
}
