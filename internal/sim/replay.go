package sim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freeeve/world-conquest/internal/model"
	"github.com/freeeve/world-conquest/pkg/conquest"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrNoArchive    = errors.New("no game archive configured")
)

// TurnSummary condenses one archived turn.
type TurnSummary struct {
	Turn              int    `json:"turn"`
	Battles           int    `json:"battles"`
	Captures          int    `json:"captures"`
	Leader            string `json:"leader"`
	LeaderTerritories int    `json:"leaderTerritories"`
}

// Replay is an archived game with its turns. Live holds the current state of a
// game that is still running.
type Replay struct {
	Game  *model.Game         `json:"game"`
	Turns []TurnSummary       `json:"turns"`
	Live  *conquest.GameState `json:"live,omitempty"`
}

// ListFinished returns up to limit finished games, newest first.
func ListFinished(ctx context.Context, st Stores, limit int) ([]model.Game, error) {
	if st.Games == nil {
		return nil, ErrNoArchive
	}
	games, err := st.Games.ListFinished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list finished: %w", err)
	}
	return games, nil
}

// LoadReplay reads a game and every archived turn back from the stores.
func LoadReplay(ctx context.Context, st Stores, gameID string) (*Replay, error) {
	if st.Games == nil || st.Turns == nil {
		return nil, ErrNoArchive
	}
	g, err := st.Games.FindByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	turns, err := st.Turns.ListTurns(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load turns: %w", err)
	}
	r := &Replay{Game: g, Turns: make([]TurnSummary, 0, len(turns))}
	for _, t := range turns {
		gs, err := decode(t.State)
		if err != nil {
			return nil, fmt.Errorf("decode turn %d: %w", t.Turn, err)
		}
		r.Turns = append(r.Turns, summarize(gs, t.Battles))
	}

	if g.Status == model.GameRunning {
		if r.Live, err = liveState(ctx, st, gameID); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// liveState prefers the cached snapshot and falls back to the newest archived
// turn.
func liveState(ctx context.Context, st Stores, gameID string) (*conquest.GameState, error) {
	var data json.RawMessage
	if st.Cache != nil {
		var err error
		if data, err = st.Cache.GetGameState(ctx, gameID); err != nil {
			return nil, fmt.Errorf("load live state: %w", err)
		}
	}
	if data == nil {
		t, err := st.Turns.LatestTurn(ctx, gameID)
		if err != nil {
			return nil, fmt.Errorf("load latest turn: %w", err)
		}
		if t == nil {
			return nil, nil
		}
		data = t.State
	}
	gs, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode live state: %w", err)
	}
	return gs, nil
}

func decode(data json.RawMessage) (*conquest.GameState, error) {
	var gs conquest.GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, err
	}
	return &gs, nil
}

// summarize reads a snapshot that carries only its own turn's combat logs.
// Ties for the lead go to the earlier player.
func summarize(gs *conquest.GameState, battles int) TurnSummary {
	s := TurnSummary{Turn: gs.Turn, Battles: battles}
	for _, l := range gs.CombatLogs {
		if b := l.Bombardment; b != nil && b.Invaded {
			s.Captures++
		}
	}
	for _, p := range gs.Players {
		if n := gs.TerritoryCount(p.ID); n > s.LeaderTerritories {
			s.Leader, s.LeaderTerritories = p.Name, n
		}
	}
	return s
}
