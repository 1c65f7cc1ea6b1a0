// Package sim plays complete AI-only games on the standard map and optionally
// archives every turn.
package sim

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/freeeve/world-conquest/internal/logger"
	"github.com/freeeve/world-conquest/internal/repository"
	"github.com/freeeve/world-conquest/pkg/conquest"
)

// DefaultMaxTurns caps a game that never produces a sole survivor.
const DefaultMaxTurns = 200

// Config configures a single simulated game.
type Config struct {
	MaxTurns int   // turns to process before calling a draw
	Seed     int64 // 0 = random
	DryRun   bool  // skip archive and cache writes
}

// Stores bundles the optional persistence used by RunGame. Any nil field is
// skipped.
type Stores struct {
	Games repository.GameRepository
	Turns repository.TurnRepository
	Cache repository.GameCache
}

// Result describes the outcome of a completed game.
type Result struct {
	GameID      string         `json:"gameId"`
	Seed        int64          `json:"seed"`
	Winner      string         `json:"winner"` // player name or "" for draw
	FinalTurn   int            `json:"finalTurn"`
	Battles     int            `json:"battles"`
	Captures    int            `json:"captures"`
	Territories map[string]int `json:"territories"` // player name -> territories held at the end
	Units       map[string]int `json:"units"`       // player name -> units alive at the end
}

// RunGame plays one game to a sole survivor or the turn cap.
func RunGame(ctx context.Context, cfg Config, st Stores) (*Result, error) {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.DryRun {
		st = Stores{}
	}
	rng := conquest.NewRand(cfg.Seed)

	gs, err := conquest.StartGame(conquest.NewLobby(conquest.StandardMap()), "", rng)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}

	gameID := fmt.Sprintf("local-%d", cfg.Seed)
	if st.Games != nil {
		g, err := st.Games.Create(ctx, cfg.Seed, len(gs.Players))
		if err != nil {
			return nil, fmt.Errorf("create game: %w", err)
		}
		gameID = g.ID
	}
	ctx = logger.WithGameID(ctx, gameID)
	l := logger.ForGame(ctx)

	result := &Result{GameID: gameID, Seed: cfg.Seed}
	for processed := 0; processed < cfg.MaxTurns && gs.Status == conquest.StatusPlaying; processed++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		gs = conquest.ProcessTurn(gs, rng)

		logs := gs.LogsForTurn(gs.Turn)
		battles := tally(result, logs)
		if err := archive(ctx, st, gameID, gs, logs, battles); err != nil {
			return nil, err
		}
		l.Debug().Int("turn", gs.Turn).Int("battles", battles).Msg("Turn archived")
	}

	result.FinalTurn = gs.Turn
	if p := gs.Player(gs.WinnerID); p != nil {
		result.Winner = p.Name
	}
	result.Territories, result.Units = holdings(gs)

	if err := finish(ctx, st, gameID, result); err != nil {
		return nil, err
	}

	if result.Winner != "" {
		l.Info().Str("winner", result.Winner).Int("turn", result.FinalTurn).Msg("Game won")
	} else {
		l.Info().Int("turn", result.FinalTurn).Msg("Game ended as draw (turn limit)")
	}
	return result, nil
}

// tally counts the turn's fought battles and captures into r and returns the
// battle count.
func tally(r *Result, logs []conquest.CombatLog) int {
	battles := 0
	for i := range logs {
		if !logs[i].Unopposed() {
			battles++
		}
		if b := logs[i].Bombardment; b != nil && b.Invaded {
			r.Captures++
		}
	}
	r.Battles += battles
	return battles
}

// archive stores the turn's snapshot. Only the turn's own combat logs are kept
// in the snapshot; earlier ones live in earlier snapshots.
func archive(ctx context.Context, st Stores, gameID string, gs *conquest.GameState, logs []conquest.CombatLog, battles int) error {
	if st.Turns == nil && st.Cache == nil {
		return nil
	}
	snap := *gs
	snap.CombatLogs = logs
	data, err := json.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshal turn %d: %w", gs.Turn, err)
	}
	if st.Turns != nil {
		if err := st.Turns.SaveTurn(ctx, gameID, gs.Turn, data, battles); err != nil {
			return fmt.Errorf("save turn %d: %w", gs.Turn, err)
		}
	}
	if st.Cache != nil {
		if err := st.Cache.SetGameState(ctx, gameID, data); err != nil {
			return fmt.Errorf("cache turn %d: %w", gs.Turn, err)
		}
	}
	return nil
}

func finish(ctx context.Context, st Stores, gameID string, r *Result) error {
	if st.Games != nil {
		if err := st.Games.SetFinished(ctx, gameID, r.Winner, r.FinalTurn); err != nil {
			return fmt.Errorf("set finished: %w", err)
		}
	}
	if st.Cache != nil {
		if err := st.Cache.DeleteGameState(ctx, gameID); err != nil {
			return fmt.Errorf("drop live state: %w", err)
		}
		if r.Winner != "" {
			if err := st.Cache.RecordWin(ctx, r.Winner); err != nil {
				return fmt.Errorf("record win: %w", err)
			}
		}
	}
	return nil
}

func holdings(gs *conquest.GameState) (territories, units map[string]int) {
	territories = make(map[string]int)
	units = make(map[string]int)
	for _, p := range gs.Players {
		if n := gs.TerritoryCount(p.ID); n > 0 {
			territories[p.Name] = n
		}
		if n := gs.UnitCount(p.ID); n > 0 {
			units[p.Name] = n
		}
	}
	return territories, units
}
