//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/freeeve/world-conquest/internal/model"
	"github.com/freeeve/world-conquest/internal/testutil"
)

var testDB *sql.DB

func setup(t *testing.T) {
	t.Helper()
	if testDB == nil {
		testDB = testutil.SetupDB(t)
	}
	testutil.CleanupDB(t, testDB)
}

func createTestGame(t *testing.T, repo *GameRepo, seed int64) *model.Game {
	t.Helper()
	g, err := repo.Create(context.Background(), seed, 19)
	if err != nil {
		t.Fatalf("create test game: %v", err)
	}
	return g
}

// --- GameRepo Tests ---

func TestGameCreateAndFind(t *testing.T) {
	setup(t)
	repo := NewGameRepo(testDB)

	g := createTestGame(t, repo, 42)
	if g.ID == "" || g.Status != model.GameRunning || g.Seed != 42 || g.Players != 19 {
		t.Fatalf("unexpected game %+v", g)
	}

	found, err := repo.FindByID(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.ID != g.ID || found.FinishedAt != nil {
		t.Fatalf("unexpected found game %+v", found)
	}
}

func TestGameFindMissing(t *testing.T) {
	setup(t)
	repo := NewGameRepo(testDB)

	g, err := repo.FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if g != nil {
		t.Fatalf("expected nil, got %+v", g)
	}
}

func TestGameSetFinished(t *testing.T) {
	setup(t)
	repo := NewGameRepo(testDB)
	ctx := context.Background()

	won := createTestGame(t, repo, 1)
	drawn := createTestGame(t, repo, 2)
	createTestGame(t, repo, 3)

	if err := repo.SetFinished(ctx, won.ID, "AI France", 57); err != nil {
		t.Fatalf("set finished: %v", err)
	}
	if err := repo.SetFinished(ctx, drawn.ID, "", 200); err != nil {
		t.Fatalf("set finished: %v", err)
	}

	g, err := repo.FindByID(ctx, won.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if g.Status != model.GameFinished || g.Winner != "AI France" || g.Turns != 57 || g.FinishedAt == nil {
		t.Fatalf("unexpected finished game %+v", g)
	}

	finished, err := repo.ListFinished(ctx, 10)
	if err != nil {
		t.Fatalf("list finished: %v", err)
	}
	if len(finished) != 2 {
		t.Fatalf("expected 2 finished games, got %d", len(finished))
	}
}

// --- TurnRepo Tests ---

func TestTurnSaveAndList(t *testing.T) {
	setup(t)
	games := NewGameRepo(testDB)
	repo := NewTurnRepo(testDB)
	ctx := context.Background()
	g := createTestGame(t, games, 7)

	for turn := 2; turn <= 4; turn++ {
		state := json.RawMessage(`{"turn":` + string(rune('0'+turn)) + `}`)
		if err := repo.SaveTurn(ctx, g.ID, turn, state, turn-2); err != nil {
			t.Fatalf("save turn %d: %v", turn, err)
		}
	}
	// Re-saving a turn replaces it.
	if err := repo.SaveTurn(ctx, g.ID, 4, json.RawMessage(`{"turn":4,"again":true}`), 9); err != nil {
		t.Fatalf("resave turn: %v", err)
	}

	turns, err := repo.ListTurns(ctx, g.ID)
	if err != nil {
		t.Fatalf("list turns: %v", err)
	}
	if len(turns) != 3 || turns[0].Turn != 2 || turns[2].Turn != 4 {
		t.Fatalf("unexpected turns %+v", turns)
	}
	if turns[2].Battles != 9 {
		t.Errorf("expected replaced battles 9, got %d", turns[2].Battles)
	}

	latest, err := repo.LatestTurn(ctx, g.ID)
	if err != nil {
		t.Fatalf("latest turn: %v", err)
	}
	var state map[string]any
	if err := json.Unmarshal(latest.State, &state); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if latest.Turn != 4 || state["again"] != true {
		t.Errorf("unexpected latest turn %d %s", latest.Turn, string(latest.State))
	}
}

func TestLatestTurnMissing(t *testing.T) {
	setup(t)
	repo := NewTurnRepo(testDB)
	g := createTestGame(t, NewGameRepo(testDB), 8)

	latest, err := repo.LatestTurn(context.Background(), g.ID)
	if err != nil {
		t.Fatalf("latest turn: %v", err)
	}
	if latest != nil {
		t.Fatalf("expected nil, got %+v", latest)
	}
}
