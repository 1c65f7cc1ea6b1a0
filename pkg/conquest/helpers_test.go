package conquest

import "math/rand"

// Helper to build a small three-territory line A - B - C with human players
// only, so that no AI orders interfere.
func lineState() *GameState {
	return &GameState{
		Turn:   1,
		Status: StatusPlaying,
		Players: []Player{
			{ID: "p1", Name: "One", Type: Human},
			{ID: "p2", Name: "Two", Type: Human},
			{ID: "p3", Name: "Three", Type: Human},
		},
		Territories: []Territory{
			{ID: "A", Name: "Alpha", OwnerID: "p1", Population: 10, MaxPopulation: 300, Neighbors: []string{"B"}},
			{ID: "B", Name: "Beta", OwnerID: "p2", Population: 10, MaxPopulation: 300, Neighbors: []string{"A", "C"}},
			{ID: "C", Name: "Gamma", OwnerID: "p3", Population: 10, MaxPopulation: 300, Neighbors: []string{"B"}},
		},
	}
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

type stats struct {
	engines, armor, cargo, guns, length int
}

func addDesign(gs *GameState, id, owner string, s stats) Design {
	d := Design{
		ID:            id,
		PlayerID:      owner,
		Name:          id,
		EngineCount:   s.engines,
		Armor:         s.armor,
		CargoCapacity: s.cargo,
		GunCount:      s.guns,
		GunLength:     s.length,
	}
	d.Cost = CalculateDesignCost(d)
	gs.Designs = append(gs.Designs, d)
	return d
}

// addArmy places an army with n fresh units of the design at loc.
func addArmy(gs *GameState, id, owner, loc, dest, designID string, n int) *Army {
	a := Army{ID: id, OwnerID: owner, LocationID: loc, DestinationID: dest}
	for i := 0; i < n; i++ {
		u := Unit{
			ID:         id + "-u" + string(rune('0'+i)),
			DesignID:   designID,
			OwnerID:    owner,
			LocationID: loc,
		}
		gs.Units = append(gs.Units, u)
		a.UnitIDs = append(a.UnitIDs, u.ID)
	}
	gs.Armies = append(gs.Armies, a)
	return &gs.Armies[len(gs.Armies)-1]
}

func unitsOf(gs *GameState, owner string) []Unit {
	var out []Unit
	for _, u := range gs.Units {
		if u.OwnerID == owner {
			out = append(out, u)
		}
	}
	return out
}
