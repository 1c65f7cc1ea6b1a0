package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freeeve/world-conquest/internal/model"
)

// StateTTL bounds how long an abandoned game's live state lingers.
const StateTTL = 24 * time.Hour

const winsKey = "leaderboard:wins"

func stateKey(gameID string) string { return "game:" + gameID + ":state" }

// SetGameState stores the live game state JSON.
func (c *Client) SetGameState(ctx context.Context, gameID string, state json.RawMessage) error {
	if err := c.rdb.Set(ctx, stateKey(gameID), []byte(state), StateTTL).Err(); err != nil {
		return fmt.Errorf("set game state: %w", err)
	}
	return nil
}

// GetGameState retrieves the live game state JSON, or nil if none is stored.
func (c *Client) GetGameState(ctx context.Context, gameID string) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, stateKey(gameID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get game state: %w", err)
	}
	return json.RawMessage(data), nil
}

// DeleteGameState removes the live game state.
func (c *Client) DeleteGameState(ctx context.Context, gameID string) error {
	if err := c.rdb.Del(ctx, stateKey(gameID)).Err(); err != nil {
		return fmt.Errorf("delete game state: %w", err)
	}
	return nil
}

// RecordWin adds one win for the named player.
func (c *Client) RecordWin(ctx context.Context, name string) error {
	if err := c.rdb.ZIncrBy(ctx, winsKey, 1, name).Err(); err != nil {
		return fmt.Errorf("record win: %w", err)
	}
	return nil
}

// TopWinners returns up to n players with the most wins, best first.
func (c *Client) TopWinners(ctx context.Context, n int) ([]model.WinCount, error) {
	if n <= 0 {
		return nil, nil
	}
	zs, err := c.rdb.ZRevRangeWithScores(ctx, winsKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("top winners: %w", err)
	}
	out := make([]model.WinCount, 0, len(zs))
	for _, z := range zs {
		name, _ := z.Member.(string)
		out = append(out, model.WinCount{Name: name, Wins: int64(z.Score)})
	}
	return out, nil
}
