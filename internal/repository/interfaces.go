package repository

import (
	"context"
	"encoding/json"

	"github.com/freeeve/world-conquest/internal/model"
)

// GameRepository defines archived game operations.
type GameRepository interface {
	Create(ctx context.Context, seed int64, players int) (*model.Game, error)
	FindByID(ctx context.Context, id string) (*model.Game, error)
	ListFinished(ctx context.Context, limit int) ([]model.Game, error)
	SetFinished(ctx context.Context, gameID, winner string, turns int) error
}

// TurnRepository defines turn snapshot operations.
type TurnRepository interface {
	SaveTurn(ctx context.Context, gameID string, turn int, state json.RawMessage, battles int) error
	ListTurns(ctx context.Context, gameID string) ([]model.Turn, error)
	LatestTurn(ctx context.Context, gameID string) (*model.Turn, error)
}

// GameCache defines live game state operations (Redis).
type GameCache interface {
	SetGameState(ctx context.Context, gameID string, state json.RawMessage) error
	GetGameState(ctx context.Context, gameID string) (json.RawMessage, error)
	DeleteGameState(ctx context.Context, gameID string) error
	RecordWin(ctx context.Context, name string) error
	TopWinners(ctx context.Context, n int) ([]model.WinCount, error)
}
