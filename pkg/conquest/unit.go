package conquest

// Design is a player-owned unit blueprint. Designs are never edited in place.
type Design struct {
	ID            string `json:"id"`
	PlayerID      string `json:"playerId"`
	Name          string `json:"name"`
	EngineCount   int    `json:"engineCount"`
	Armor         int    `json:"armor"`
	CargoCapacity int    `json:"cargoCapacity"`
	GunCount      int    `json:"gunCount"`
	GunLength     int    `json:"gunLength"` // penetration length, compared against target armor
	Cost          int    `json:"cost"`
}

// Armed reports whether units of this design can shoot.
func (d Design) Armed() bool {
	return d.GunCount > 0
}

// Penetrates reports whether a shot from d destroys a unit of design target.
func (d Design) Penetrates(target Design) bool {
	return d.GunCount > 0 && d.GunLength >= target.Armor
}

// GunPower is the bombardment strength of one unit of this design.
func (d Design) GunPower() int {
	if d.GunCount <= 0 {
		return 0
	}
	return d.GunCount * d.GunLength
}

// Cargo is what a unit carries. Colonists and population in transit are the
// same fungible quantity and are tracked together as Settlers.
type Cargo struct {
	Settlers  int `json:"settlers"`
	Materials int `json:"materials"`
}

// Load returns the total cargo currently aboard.
func (c Cargo) Load() int {
	return c.Settlers + c.Materials
}

// Unit is a single built instance of a design. Units are either alive or gone.
type Unit struct {
	ID         string `json:"id"`
	DesignID   string `json:"designId"`
	OwnerID    string `json:"ownerId"`
	LocationID string `json:"locationId"`
	Cargo      Cargo  `json:"cargo"`
}

// Army is a named group of units belonging to one player at one territory.
// An empty DestinationID means the army is at rest.
type Army struct {
	ID            string   `json:"id"`
	OwnerID       string   `json:"ownerId"`
	LocationID    string   `json:"locationId"`
	DestinationID string   `json:"destinationId,omitempty"`
	UnitIDs       []string `json:"unitIds"`
}

// Moving reports whether the army has a pending move order.
func (a *Army) Moving() bool {
	return a.DestinationID != ""
}

// Contains reports whether unitID belongs to the army.
func (a *Army) Contains(unitID string) bool {
	for _, id := range a.UnitIDs {
		if id == unitID {
			return true
		}
	}
	return false
}
