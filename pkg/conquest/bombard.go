package conquest

import "github.com/rs/zerolog/log"

// bombard lets the contest's king fire on the territory it holds and, if the
// territory is emptied, land settlers to claim it. The outcome is attached to
// the king's winning log in this territory, or to a new unopposed log.
func (t *turn) bombard(c *contest) {
	terr := c.territory
	priorOwner := terr.OwnerID

	units := make([]*Unit, 0, len(c.king.unitIDs))
	for _, id := range c.king.unitIDs {
		if u := t.unit(id); u != nil {
			units = append(units, u)
		}
	}
	res := bombardTerritory(terr, c.king.owner, units, t.designs)

	if n := len(c.logs); n > 0 && c.logs[n-1].WinnerID == c.king.owner {
		c.logs[n-1].Bombardment = &res
	} else {
		defender := priorOwner
		if defender == "" {
			defender = Neutral
		}
		snap := make([]Unit, len(units))
		for i, u := range units {
			snap[i] = *u
		}
		c.logs = append(c.logs, CombatLog{
			ID:            newID(t.rng),
			LocationID:    terr.ID,
			Turn:          t.gs.Turn,
			AttackerID:    c.king.owner,
			DefenderID:    defender,
			WinnerID:      c.king.owner,
			AttackerUnits: snapshot(snap),
			DefenderUnits: []UnitSnapshot{},
			Rounds:        []CombatRound{},
			Bombardment:   &res,
		})
	}

	if res.Invaded {
		log.Debug().Str("territory", terr.ID).Str("from", priorOwner).Str("to", terr.OwnerID).Msg("Territory captured")
	}
}

// bombardTerritory spends the units' gun power on colonists first, then on
// population. Materials are never hit. When both colonists and population are
// gone, all settler cargo is landed and, if any landed, ownership passes to
// ownerID with the factory queue cleared.
func bombardTerritory(terr *Territory, ownerID string, units []*Unit, designs map[string]Design) BombardmentResult {
	power := 0
	for _, u := range units {
		power += designs[u.DesignID].GunPower()
	}

	var res BombardmentResult
	res.ColonistsKilled = min(max(0, terr.Colonists), power)
	terr.Colonists -= res.ColonistsKilled
	power -= res.ColonistsKilled

	res.PopulationKilled = min(max(0, terr.Population), power)
	terr.Population -= res.PopulationKilled

	if terr.Population > 0 || terr.Colonists > 0 {
		return res
	}

	landed := 0
	for _, u := range units {
		if u.Cargo.Settlers > 0 {
			landed += u.Cargo.Settlers
			u.Cargo.Settlers = 0
		}
	}
	if landed == 0 {
		return res
	}

	terr.OwnerID = ownerID
	terr.FactoryQueue = nil
	terr.Population = min(landed, max(0, terr.MaxPopulation))
	terr.Colonists = landed - terr.Population
	res.Invaded = true
	return res
}
