package conquest

import (
	"github.com/rs/zerolog/log"
)

// turn is the working context for one ProcessTurn call. It owns the cloned
// state and nothing outside it.
type turn struct {
	gs      *GameState
	rng     Rand
	designs map[string]Design
	units   map[string]int // unit ID -> index into gs.Units
	dead    map[string]bool
}

// ProcessTurn advances the game by one turn and returns the new state. The
// input is never modified. Phases run in a fixed order: AI orders, movement,
// muster, conflict resolution per territory, production and growth. A nil rng
// uses the math/rand default source.
//
// A finished game is frozen: a GAME_OVER state comes back as an unchanged copy
// with Turn not advanced. A nil state returns nil.
func ProcessTurn(gs *GameState, rng Rand) *GameState {
	if gs == nil {
		return nil
	}
	next := gs.Clone()
	if next.Status == StatusGameOver {
		return next
	}
	next.Turn++

	t := &turn{
		gs:      next,
		rng:     orDefault(rng),
		designs: next.DesignIndex(),
		dead:    make(map[string]bool),
	}
	t.reindexUnits()

	t.runAI()
	t.resolveMovement()
	t.muster()
	t.resolveConflicts()
	t.runProduction()
	t.checkVictory()

	log.Debug().
		Int("turn", next.Turn).
		Int("units", len(next.Units)).
		Int("armies", len(next.Armies)).
		Int("logs", len(next.LogsForTurn(next.Turn))).
		Msg("Turn processed")
	return next
}

func (t *turn) reindexUnits() {
	t.units = make(map[string]int, len(t.gs.Units))
	for i, u := range t.gs.Units {
		t.units[u.ID] = i
	}
}

// unit returns the live working copy of a unit, or nil if it is unknown or
// was destroyed this turn.
func (t *turn) unit(id string) *Unit {
	i, ok := t.units[id]
	if !ok || t.dead[id] {
		return nil
	}
	return &t.gs.Units[i]
}

func (t *turn) isAI(playerID string) bool {
	p := t.gs.Player(playerID)
	return p != nil && p.Type == AI
}

// checkVictory ends the game once at most one player is still alive.
func (t *turn) checkVictory() {
	if t.gs.Status != StatusPlaying {
		return
	}
	var alive []string
	for _, p := range t.gs.Players {
		if t.gs.PlayerIsAlive(p.ID) {
			alive = append(alive, p.ID)
		}
	}
	if len(alive) > 1 {
		return
	}
	t.gs.Status = StatusGameOver
	if len(alive) == 1 {
		t.gs.WinnerID = alive[0]
	}
	log.Debug().Int("turn", t.gs.Turn).Str("winner", t.gs.WinnerID).Msg("Game over")
}
