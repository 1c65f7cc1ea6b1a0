package conquest

import (
	"fmt"
	"strings"
)

// Player commands. Each takes a snapshot and returns a new one; the input is
// never modified. On error the returned state is nil.

// DesignSpec holds the player-chosen attributes of a new design.
type DesignSpec struct {
	Name          string
	EngineCount   int
	Armor         int
	CargoCapacity int
	GunCount      int
	GunLength     int
}

func (s DesignSpec) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDesign)
	}
	if s.EngineCount < 0 || s.Armor < 0 || s.CargoCapacity < 0 || s.GunCount < 0 || s.GunLength < 0 {
		return fmt.Errorf("%w: attributes must not be negative", ErrInvalidDesign)
	}
	return nil
}

// AddDesign registers a new design for the player.
func AddDesign(gs *GameState, playerID string, spec DesignSpec, rng Rand) (*GameState, Design, error) {
	if gs.Player(playerID) == nil {
		return nil, Design{}, fmt.Errorf("add design: %w: %s", ErrUnknownPlayer, playerID)
	}
	if err := spec.validate(); err != nil {
		return nil, Design{}, fmt.Errorf("add design: %w", err)
	}
	d := Design{
		ID:            newID(orDefault(rng)),
		PlayerID:      playerID,
		Name:          strings.TrimSpace(spec.Name),
		EngineCount:   spec.EngineCount,
		Armor:         spec.Armor,
		CargoCapacity: spec.CargoCapacity,
		GunCount:      spec.GunCount,
		GunLength:     spec.GunLength,
	}
	d.Cost = CalculateDesignCost(d)

	next := gs.Clone()
	next.Designs = append(next.Designs, d)
	return next, d, nil
}

// DeleteDesign removes one of the player's designs. It is refused while any
// unit is built from it. Factory lines building it are halted.
func DeleteDesign(gs *GameState, playerID, designID string) (*GameState, error) {
	d := gs.Design(designID)
	if d == nil {
		return nil, fmt.Errorf("delete design: %w: %s", ErrUnknownDesign, designID)
	}
	if d.PlayerID != playerID {
		return nil, fmt.Errorf("delete design %s: %w", designID, ErrNotOwner)
	}
	for _, u := range gs.Units {
		if u.DesignID == designID {
			return nil, fmt.Errorf("delete design %s: %w", designID, ErrDesignInUse)
		}
	}

	next := gs.Clone()
	designs := next.Designs[:0]
	for _, d := range next.Designs {
		if d.ID != designID {
			designs = append(designs, d)
		}
	}
	next.Designs = designs
	for i := range next.Territories {
		if q := next.Territories[i].FactoryQueue; q != nil && q.DesignID == designID {
			next.Territories[i].FactoryQueue = nil
		}
	}
	return next, nil
}

// SetFactoryQueue starts a production line for the design in one of the
// player's territories. An empty designID halts production.
func SetFactoryQueue(gs *GameState, playerID, territoryID, designID string) (*GameState, error) {
	terr := gs.Territory(territoryID)
	if terr == nil {
		return nil, fmt.Errorf("set factory queue: %w: %s", ErrUnknownTerritory, territoryID)
	}
	if terr.OwnerID != playerID {
		return nil, fmt.Errorf("set factory queue %s: %w", territoryID, ErrNotOwner)
	}

	var item *FactoryQueueItem
	if designID != "" {
		d := gs.Design(designID)
		if d == nil {
			return nil, fmt.Errorf("set factory queue: %w: %s", ErrUnknownDesign, designID)
		}
		if d.PlayerID != playerID {
			return nil, fmt.Errorf("set factory queue: design %s: %w", designID, ErrNotOwner)
		}
		item = &FactoryQueueItem{DesignID: d.ID, TotalCost: d.Cost}
	}

	next := gs.Clone()
	next.Territory(territoryID).FactoryQueue = item
	return next, nil
}

// CreateArmy adds an empty army for the player at the territory. Armies still
// empty when a turn resolves are disbanded.
func CreateArmy(gs *GameState, playerID, territoryID string, rng Rand) (*GameState, Army, error) {
	if gs.Player(playerID) == nil {
		return nil, Army{}, fmt.Errorf("create army: %w: %s", ErrUnknownPlayer, playerID)
	}
	if gs.Territory(territoryID) == nil {
		return nil, Army{}, fmt.Errorf("create army: %w: %s", ErrUnknownTerritory, territoryID)
	}
	a := Army{ID: newID(orDefault(rng)), OwnerID: playerID, LocationID: territoryID}

	next := gs.Clone()
	next.Armies = append(next.Armies, a)
	return next, a, nil
}

// DisbandArmy removes the army. Its units stay where they are, in reserve.
func DisbandArmy(gs *GameState, playerID, armyID string) (*GameState, error) {
	if _, err := ownedArmy(gs, playerID, armyID); err != nil {
		return nil, fmt.Errorf("disband army: %w", err)
	}
	next := gs.Clone()
	armies := next.Armies[:0]
	for _, a := range next.Armies {
		if a.ID != armyID {
			armies = append(armies, a)
		}
	}
	next.Armies = armies
	return next, nil
}

// TransferUnit moves a unit into the army, taking it out of whatever army held
// it. An empty armyID returns the unit to reserve.
func TransferUnit(gs *GameState, playerID, unitID, armyID string) (*GameState, error) {
	u := gs.Unit(unitID)
	if u == nil {
		return nil, fmt.Errorf("transfer unit: %w: %s", ErrUnknownUnit, unitID)
	}
	if u.OwnerID != playerID {
		return nil, fmt.Errorf("transfer unit %s: %w", unitID, ErrNotOwner)
	}
	if armyID != "" {
		a, err := ownedArmy(gs, playerID, armyID)
		if err != nil {
			return nil, fmt.Errorf("transfer unit: %w", err)
		}
		if a.LocationID != u.LocationID {
			return nil, fmt.Errorf("transfer unit %s: %w", unitID, ErrWrongLocation)
		}
	}

	next := gs.Clone()
	for i := range next.Armies {
		a := &next.Armies[i]
		if !a.Contains(unitID) {
			continue
		}
		ids := a.UnitIDs[:0]
		for _, id := range a.UnitIDs {
			if id != unitID {
				ids = append(ids, id)
			}
		}
		a.UnitIDs = ids
	}
	if armyID != "" {
		a := next.Army(armyID)
		a.UnitIDs = append(a.UnitIDs, unitID)
	}
	return next, nil
}

// OrderMove gives the army a destination, which must neighbor its location.
// An empty destination cancels any pending order.
func OrderMove(gs *GameState, playerID, armyID, destinationID string) (*GameState, error) {
	a, err := ownedArmy(gs, playerID, armyID)
	if err != nil {
		return nil, fmt.Errorf("order move: %w", err)
	}
	if destinationID != "" {
		if gs.Territory(destinationID) == nil {
			return nil, fmt.Errorf("order move: %w: %s", ErrUnknownTerritory, destinationID)
		}
		from := gs.Territory(a.LocationID)
		if from == nil || !contains(from.Neighbors, destinationID) {
			return nil, fmt.Errorf("order move %s -> %s: %w", a.LocationID, destinationID, ErrNotAdjacent)
		}
	}

	next := gs.Clone()
	next.Army(armyID).DestinationID = destinationID
	return next, nil
}

// LoadUnit fills the unit's free cargo with settlers from the territory it
// stands on: colonist stock first, then population.
func LoadUnit(gs *GameState, playerID, unitID string) (*GameState, error) {
	u, terr, err := ownedUnitOnOwnSoil(gs, playerID, unitID)
	if err != nil {
		return nil, fmt.Errorf("load unit: %w", err)
	}
	d := gs.Design(u.DesignID)
	if d == nil || d.CargoCapacity-u.Cargo.Load() <= 0 {
		return nil, fmt.Errorf("load unit %s: %w", unitID, ErrNoCargoSpace)
	}

	next := gs.Clone()
	loadSettlers(next.Unit(unitID), *d, next.Territory(terr.ID), true)
	return next, nil
}

// UnloadUnit lands the unit's settlers in the territory it stands on.
func UnloadUnit(gs *GameState, playerID, unitID string) (*GameState, error) {
	_, terr, err := ownedUnitOnOwnSoil(gs, playerID, unitID)
	if err != nil {
		return nil, fmt.Errorf("unload unit: %w", err)
	}
	next := gs.Clone()
	unloadSettlers(next.Unit(unitID), next.Territory(terr.ID))
	return next, nil
}

// LoadArmy loads settlers into every unit of the army, in roster order.
func LoadArmy(gs *GameState, playerID, armyID string) (*GameState, error) {
	a, terr, err := ownedArmyOnOwnSoil(gs, playerID, armyID)
	if err != nil {
		return nil, fmt.Errorf("load army: %w", err)
	}
	next := gs.Clone()
	nt := next.Territory(terr.ID)
	for _, id := range a.UnitIDs {
		u := next.Unit(id)
		if u == nil {
			continue
		}
		if d := next.Design(u.DesignID); d != nil {
			loadSettlers(u, *d, nt, true)
		}
	}
	return next, nil
}

// UnloadArmy lands the settlers of every unit in the army.
func UnloadArmy(gs *GameState, playerID, armyID string) (*GameState, error) {
	a, terr, err := ownedArmyOnOwnSoil(gs, playerID, armyID)
	if err != nil {
		return nil, fmt.Errorf("unload army: %w", err)
	}
	next := gs.Clone()
	nt := next.Territory(terr.ID)
	for _, id := range a.UnitIDs {
		if u := next.Unit(id); u != nil {
			unloadSettlers(u, nt)
		}
	}
	return next, nil
}

func ownedArmy(gs *GameState, playerID, armyID string) (*Army, error) {
	a := gs.Army(armyID)
	if a == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownArmy, armyID)
	}
	if a.OwnerID != playerID {
		return nil, fmt.Errorf("army %s: %w", armyID, ErrNotOwner)
	}
	return a, nil
}

func ownedArmyOnOwnSoil(gs *GameState, playerID, armyID string) (*Army, *Territory, error) {
	a, err := ownedArmy(gs, playerID, armyID)
	if err != nil {
		return nil, nil, err
	}
	terr := gs.Territory(a.LocationID)
	if terr == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownTerritory, a.LocationID)
	}
	if terr.OwnerID != playerID {
		return nil, nil, fmt.Errorf("territory %s: %w", terr.ID, ErrNotOwner)
	}
	return a, terr, nil
}

func ownedUnitOnOwnSoil(gs *GameState, playerID, unitID string) (*Unit, *Territory, error) {
	u := gs.Unit(unitID)
	if u == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownUnit, unitID)
	}
	if u.OwnerID != playerID {
		return nil, nil, fmt.Errorf("unit %s: %w", unitID, ErrNotOwner)
	}
	terr := gs.Territory(u.LocationID)
	if terr == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownTerritory, u.LocationID)
	}
	if terr.OwnerID != playerID {
		return nil, nil, fmt.Errorf("territory %s: %w", terr.ID, ErrNotOwner)
	}
	return u, terr, nil
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
