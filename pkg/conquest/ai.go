package conquest

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// AI tuning.
const (
	AIDesignChance = 0.15 // chance per turn of drafting a new design
	AIMoveChance   = 0.3  // chance per turn that a resting army marches
	MaxTechScale   = 5
)

var (
	aiPrefixes = []string{"Iron", "Steel", "Crimson", "Shadow", "Royal", "Atomic", "Cyber", "Vanguard"}
	aiNouns    = []string{"Fist", "Eagle", "Guard", "Storm", "Blade", "Wall", "Hauler", "Walker"}
)

// TechScale is the size multiplier for AI designs drafted on the given turn.
func TechScale(turn int) int {
	return min(MaxTechScale, 1+turn/10)
}

// runAI issues this turn's orders for every AI player. It never looks at
// enemy strength or beyond one hop.
func (t *turn) runAI() {
	for _, p := range t.gs.Players {
		if p.Type != AI {
			continue
		}
		t.aiDesign(p.ID)
		t.aiProduction(p.ID)
		t.aiEmbark(p.ID)
		t.aiMovement(p.ID)
	}
}

// aiDesign drafts a design when the player has none, or occasionally anyway.
func (t *turn) aiDesign(playerID string) {
	if len(t.gs.DesignsOf(playerID)) > 0 && t.rng.Float64() >= AIDesignChance {
		return
	}
	d := GenerateAIDesign(playerID, t.gs.Turn, t.rng)
	t.gs.Designs = append(t.gs.Designs, d)
	t.designs[d.ID] = d
	log.Debug().Str("player", playerID).Str("design", d.Name).Int("cost", d.Cost).Msg("AI drafted design")
}

// GenerateAIDesign drafts a transport, heavy or scout blueprint sized by the
// turn's tech scale.
func GenerateAIDesign(playerID string, turn int, rng Rand) Design {
	rng = orDefault(rng)
	transport := rng.Float64() > 0.7
	heavy := rng.Float64() > 0.6
	scale := TechScale(turn)

	d := Design{
		ID:          newID(rng),
		PlayerID:    playerID,
		Name:        fmt.Sprintf("%s %s Mk-%d", pick(rng, aiPrefixes), pick(rng, aiNouns), (turn+4)/5),
		EngineCount: 1,
	}

	switch {
	case transport:
		d.CargoCapacity = 20 * scale
		d.EngineCount = 1 + scale/2
		d.Armor = scale / 2
		d.Name += " (T)"
	case heavy:
		d.Armor = 2*scale + rng.Intn(2)
		d.GunCount = 1 + rng.Intn(2)
		d.GunLength = 2*scale + rng.Intn(2)
		d.EngineCount = max(1, scale)
	default:
		d.Armor = scale
		d.GunCount = 1
		d.GunLength = scale
		d.EngineCount = scale + 1
	}

	d.Cost = CalculateDesignCost(d)
	return d
}

// aiProduction puts a random design on every idle factory the player owns.
func (t *turn) aiProduction(playerID string) {
	designs := t.gs.DesignsOf(playerID)
	if len(designs) == 0 {
		return
	}
	for i := range t.gs.Territories {
		terr := &t.gs.Territories[i]
		if terr.OwnerID != playerID || terr.FactoryQueue != nil {
			continue
		}
		d := pick(t.rng, designs)
		terr.FactoryQueue = &FactoryQueueItem{DesignID: d.ID, TotalCost: d.Cost}
	}
}

// aiEmbark loads colonist stock into resting armies standing on the player's
// own territory. Population is never drafted.
func (t *turn) aiEmbark(playerID string) {
	for i := range t.gs.Armies {
		a := &t.gs.Armies[i]
		if a.OwnerID != playerID || a.Moving() {
			continue
		}
		terr := t.gs.Territory(a.LocationID)
		if terr == nil || terr.OwnerID != playerID || terr.Colonists <= 0 {
			continue
		}
		for _, id := range a.UnitIDs {
			u := t.unit(id)
			if u == nil {
				continue
			}
			loadSettlers(u, t.designs[u.DesignID], terr, false)
		}
	}
}

// aiMovement sends some resting armies to a random neighbor.
func (t *turn) aiMovement(playerID string) {
	for i := range t.gs.Armies {
		a := &t.gs.Armies[i]
		if a.OwnerID != playerID || a.Moving() {
			continue
		}
		if t.rng.Float64() >= AIMoveChance {
			continue
		}
		terr := t.gs.Territory(a.LocationID)
		if terr == nil || len(terr.Neighbors) == 0 {
			continue
		}
		a.DestinationID = pick(t.rng, terr.Neighbors)
	}
}

func pick[T any](rng Rand, s []T) T {
	return s[rng.Intn(len(s))]
}
