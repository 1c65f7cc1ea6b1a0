package conquest

import "github.com/rs/zerolog/log"

// resolveMovement carries out every pending move order. Orders are independent
// of each other, so they are applied in slice order. An army containing a unit
// without engines, or ordered to an unknown territory, stays put and has its
// order cancelled.
func (t *turn) resolveMovement() {
	for i := range t.gs.Armies {
		a := &t.gs.Armies[i]
		if !a.Moving() {
			continue
		}
		dest := a.DestinationID
		a.DestinationID = ""

		if t.gs.Territory(dest) == nil || !t.mobile(a) {
			log.Debug().Str("army", a.ID).Str("from", a.LocationID).Str("to", dest).Msg("Move cancelled")
			continue
		}
		a.LocationID = dest
		for _, id := range a.UnitIDs {
			if u := t.unit(id); u != nil {
				u.LocationID = dest
			}
		}
	}
}

// mobile reports whether every unit in the army has at least one engine.
// A unit whose design is missing counts as immobile.
func (t *turn) mobile(a *Army) bool {
	for _, id := range a.UnitIDs {
		u := t.unit(id)
		if u == nil {
			continue
		}
		if t.designs[u.DesignID].EngineCount <= 0 {
			return false
		}
	}
	return true
}

// muster groups AI units that are not in any army into an army at their
// location, reusing one the owner already has there.
func (t *turn) muster() {
	enlisted := make(map[string]bool)
	for _, a := range t.gs.Armies {
		for _, id := range a.UnitIDs {
			enlisted[id] = true
		}
	}

	for i := range t.gs.Units {
		u := t.gs.Units[i]
		if enlisted[u.ID] || !t.isAI(u.OwnerID) {
			continue
		}
		a := t.armyAt(u.OwnerID, u.LocationID)
		if a == nil {
			t.gs.Armies = append(t.gs.Armies, Army{
				ID:         newID(t.rng),
				OwnerID:    u.OwnerID,
				LocationID: u.LocationID,
			})
			a = &t.gs.Armies[len(t.gs.Armies)-1]
		}
		a.UnitIDs = append(a.UnitIDs, u.ID)
		enlisted[u.ID] = true
	}
}

// armyAt returns the first army of the owner at the location, or nil.
func (t *turn) armyAt(ownerID, locationID string) *Army {
	for i := range t.gs.Armies {
		a := &t.gs.Armies[i]
		if a.OwnerID == ownerID && a.LocationID == locationID {
			return a
		}
	}
	return nil
}
