package sim

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freeeve/world-conquest/internal/model"
	"github.com/freeeve/world-conquest/pkg/conquest"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

type memGames struct {
	created  int
	finished map[string]string
	games    map[string]*model.Game
}

func (g *memGames) Create(ctx context.Context, seed int64, players int) (*model.Game, error) {
	g.created++
	game := &model.Game{ID: "game-1", Seed: seed, Players: players, Status: model.GameRunning}
	if g.games == nil {
		g.games = make(map[string]*model.Game)
	}
	g.games[game.ID] = game
	return game, nil
}

func (g *memGames) FindByID(ctx context.Context, id string) (*model.Game, error) {
	if game, ok := g.games[id]; ok {
		cp := *game
		return &cp, nil
	}
	return nil, nil
}

func (g *memGames) ListFinished(ctx context.Context, limit int) ([]model.Game, error) {
	var out []model.Game
	for _, game := range g.games {
		if game.Status == model.GameFinished && len(out) < limit {
			out = append(out, *game)
		}
	}
	return out, nil
}

func (g *memGames) SetFinished(ctx context.Context, gameID, winner string, turns int) error {
	if g.finished == nil {
		g.finished = make(map[string]string)
	}
	g.finished[gameID] = winner
	if game, ok := g.games[gameID]; ok {
		game.Status, game.Winner, game.Turns = model.GameFinished, winner, turns
	}
	return nil
}

type memTurns struct {
	saved []int
	last  json.RawMessage
	turns []model.Turn
	err   error
}

func (m *memTurns) SaveTurn(ctx context.Context, gameID string, turn int, state json.RawMessage, battles int) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, turn)
	m.last = state
	m.turns = append(m.turns, model.Turn{GameID: gameID, Turn: turn, State: state, Battles: battles})
	return nil
}

func (m *memTurns) ListTurns(ctx context.Context, gameID string) ([]model.Turn, error) {
	var out []model.Turn
	for _, t := range m.turns {
		if t.GameID == gameID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTurns) LatestTurn(ctx context.Context, gameID string) (*model.Turn, error) {
	turns, _ := m.ListTurns(ctx, gameID)
	if len(turns) == 0 {
		return nil, nil
	}
	t := turns[len(turns)-1]
	return &t, nil
}

type memCache struct {
	states  map[string]json.RawMessage
	deleted []string
	wins    map[string]int64
}

func newMemCache() *memCache {
	return &memCache{states: make(map[string]json.RawMessage), wins: make(map[string]int64)}
}

func (c *memCache) SetGameState(ctx context.Context, gameID string, state json.RawMessage) error {
	c.states[gameID] = state
	return nil
}

func (c *memCache) GetGameState(ctx context.Context, gameID string) (json.RawMessage, error) {
	return c.states[gameID], nil
}

func (c *memCache) DeleteGameState(ctx context.Context, gameID string) error {
	delete(c.states, gameID)
	c.deleted = append(c.deleted, gameID)
	return nil
}

func (c *memCache) RecordWin(ctx context.Context, name string) error {
	c.wins[name]++
	return nil
}

func (c *memCache) TopWinners(ctx context.Context, n int) ([]model.WinCount, error) {
	return nil, nil
}

func TestRunGameDryRunDeterministic(t *testing.T) {
	cfg := Config{MaxTurns: 30, Seed: 99, DryRun: true}
	a, err := RunGame(context.Background(), cfg, Stores{})
	if err != nil {
		t.Fatalf("RunGame: %v", err)
	}
	b, err := RunGame(context.Background(), cfg, Stores{})
	if err != nil {
		t.Fatalf("RunGame: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different results")
	}
	if a.GameID != "local-99" || a.Seed != 99 {
		t.Errorf("unexpected identity %q seed %d", a.GameID, a.Seed)
	}
	if a.FinalTurn < 2 || a.FinalTurn > 31 {
		t.Errorf("final turn %d outside 2..31", a.FinalTurn)
	}
	total := 0
	for _, n := range a.Territories {
		total += n
	}
	if total > len(conquest.StandardMap().Order) {
		t.Errorf("%d territories held, more than the map has", total)
	}
}

func TestRunGameArchivesEveryTurn(t *testing.T) {
	games := &memGames{}
	turns := &memTurns{}
	cache := newMemCache()

	res, err := RunGame(context.Background(), Config{MaxTurns: 5, Seed: 7}, Stores{Games: games, Turns: turns, Cache: cache})
	if err != nil {
		t.Fatalf("RunGame: %v", err)
	}
	if games.created != 1 || res.GameID != "game-1" {
		t.Fatalf("expected archived game-1, got created=%d id=%q", games.created, res.GameID)
	}
	if len(turns.saved) != res.FinalTurn-1 || turns.saved[0] != 2 {
		t.Errorf("saved turns %v for final turn %d", turns.saved, res.FinalTurn)
	}
	if _, ok := games.finished["game-1"]; !ok {
		t.Error("game should be marked finished")
	}
	if len(cache.deleted) != 1 || len(cache.states) != 0 {
		t.Error("live state should be dropped once the game ends")
	}

	var snap conquest.GameState
	if err := json.Unmarshal(turns.last, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap.Turn != res.FinalTurn {
		t.Errorf("last snapshot turn %d, want %d", snap.Turn, res.FinalTurn)
	}
	for _, l := range snap.CombatLogs {
		if l.Turn != snap.Turn {
			t.Errorf("snapshot carries log from turn %d", l.Turn)
		}
	}
}

func TestRunGameDryRunSkipsStores(t *testing.T) {
	games := &memGames{}
	turns := &memTurns{}
	if _, err := RunGame(context.Background(), Config{MaxTurns: 3, Seed: 1, DryRun: true}, Stores{Games: games, Turns: turns}); err != nil {
		t.Fatalf("RunGame: %v", err)
	}
	if games.created != 0 || len(turns.saved) != 0 {
		t.Error("dry run should not touch the stores")
	}
}

func TestRunGameStoreError(t *testing.T) {
	boom := errors.New("boom")
	_, err := RunGame(context.Background(), Config{MaxTurns: 3, Seed: 1}, Stores{Turns: &memTurns{err: boom}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestRunGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunGame(ctx, Config{MaxTurns: 10, Seed: 1}, Stores{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
