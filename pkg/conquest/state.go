package conquest

// PlayerType says who issues a player's orders.
type PlayerType string

const (
	Human PlayerType = "human"
	AI    PlayerType = "ai"
)

// GameStatus represents the overall game status.
type GameStatus string

const (
	StatusLobby    GameStatus = "lobby"
	StatusPlaying  GameStatus = "playing"
	StatusGameOver GameStatus = "game_over"
)

// Neutral is recorded as the defender when an unowned territory is taken.
const Neutral = "neutral"

// Player is a participant in the game.
type Player struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Color string     `json:"color"`
	Type  PlayerType `json:"type"`
}

// FactoryQueueItem is the single production line of a territory. Progress is
// the material invested so far toward TotalCost.
type FactoryQueueItem struct {
	DesignID  string `json:"designId"`
	Progress  int    `json:"progress"`
	TotalCost int    `json:"totalCost"`
}

// TurnStats records a territory's economy during the last processed turn.
type TurnStats struct {
	MaterialsProduced int `json:"materialsProduced"`
	MaterialsConsumed int `json:"materialsConsumed"`
	UnitsProduced     int `json:"unitsProduced"`
}

// Territory is the live state of one conquerable region. An empty OwnerID
// means the territory is wild.
type Territory struct {
	ID            string            `json:"id"`
	ISO3          string            `json:"iso3"`
	Name          string            `json:"name"`
	OwnerID       string            `json:"ownerId,omitempty"`
	Population    int               `json:"population"`
	MaxPopulation int               `json:"maxPopulation"`
	Colonists     int               `json:"colonists"`
	Materials     int               `json:"materials"`
	FactoryQueue  *FactoryQueueItem `json:"factoryQueue,omitempty"`
	LastTurnStats TurnStats         `json:"lastTurnStats"`
	Neighbors     []string          `json:"neighbors"`
	Center        LatLng            `json:"center"`
}

// Owned reports whether any player controls the territory.
func (t *Territory) Owned() bool {
	return t.OwnerID != ""
}

// GameState is a complete snapshot of the game between turns.
type GameState struct {
	Turn          int         `json:"turn"`
	Players       []Player    `json:"players"`
	Territories   []Territory `json:"territories"`
	Designs       []Design    `json:"designs"`
	Units         []Unit      `json:"units"`
	Armies        []Army      `json:"armies"`
	CombatLogs    []CombatLog `json:"combatLogs"`
	HumanPlayerID string      `json:"humanPlayerId,omitempty"`
	Status        GameStatus  `json:"status"`
	WinnerID      string      `json:"winnerId,omitempty"`

	// UI scratch, carried through untouched.
	SelectedTerritoryID string `json:"selectedTerritoryId,omitempty"`
}

// Player returns the player with the given ID, or nil if none.
func (gs *GameState) Player(id string) *Player {
	for i := range gs.Players {
		if gs.Players[i].ID == id {
			return &gs.Players[i]
		}
	}
	return nil
}

// Territory returns the territory with the given ID, or nil if none.
func (gs *GameState) Territory(id string) *Territory {
	for i := range gs.Territories {
		if gs.Territories[i].ID == id {
			return &gs.Territories[i]
		}
	}
	return nil
}

// Design returns the design with the given ID, or nil if none.
func (gs *GameState) Design(id string) *Design {
	for i := range gs.Designs {
		if gs.Designs[i].ID == id {
			return &gs.Designs[i]
		}
	}
	return nil
}

// Unit returns the unit with the given ID, or nil if none.
func (gs *GameState) Unit(id string) *Unit {
	for i := range gs.Units {
		if gs.Units[i].ID == id {
			return &gs.Units[i]
		}
	}
	return nil
}

// Army returns the army with the given ID, or nil if none.
func (gs *GameState) Army(id string) *Army {
	for i := range gs.Armies {
		if gs.Armies[i].ID == id {
			return &gs.Armies[i]
		}
	}
	return nil
}

// ArmyOf returns the army containing the given unit, or nil if the unit is
// held in reserve.
func (gs *GameState) ArmyOf(unitID string) *Army {
	for i := range gs.Armies {
		if gs.Armies[i].Contains(unitID) {
			return &gs.Armies[i]
		}
	}
	return nil
}

// DesignsOf returns all designs owned by the given player.
func (gs *GameState) DesignsOf(playerID string) []Design {
	var designs []Design
	for _, d := range gs.Designs {
		if d.PlayerID == playerID {
			designs = append(designs, d)
		}
	}
	return designs
}

// TerritoryCount returns the number of territories owned by the given player.
func (gs *GameState) TerritoryCount(playerID string) int {
	count := 0
	for _, t := range gs.Territories {
		if t.OwnerID == playerID {
			count++
		}
	}
	return count
}

// UnitCount returns the number of units belonging to the given player.
func (gs *GameState) UnitCount(playerID string) int {
	count := 0
	for _, u := range gs.Units {
		if u.OwnerID == playerID {
			count++
		}
	}
	return count
}

// PlayerIsAlive returns true if the player still owns a territory or a unit.
func (gs *GameState) PlayerIsAlive(playerID string) bool {
	return gs.TerritoryCount(playerID) > 0 || gs.UnitCount(playerID) > 0
}

// DesignIndex returns all designs keyed by ID.
func (gs *GameState) DesignIndex() map[string]Design {
	idx := make(map[string]Design, len(gs.Designs))
	for _, d := range gs.Designs {
		idx[d.ID] = d
	}
	return idx
}

// LogsForTurn returns the combat logs recorded during the given turn.
func (gs *GameState) LogsForTurn(turn int) []CombatLog {
	var logs []CombatLog
	for _, l := range gs.CombatLogs {
		if l.Turn == turn {
			logs = append(logs, l)
		}
	}
	return logs
}

// Clone returns a deep copy of the GameState. Combat logs are immutable once
// recorded, so the clone gets its own slice of them but shares their rounds.
// Cloning a nil state returns nil.
func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	c := *gs
	c.Players = cloneSlice(gs.Players)
	c.Designs = cloneSlice(gs.Designs)
	c.Units = cloneSlice(gs.Units)
	c.CombatLogs = cloneSlice(gs.CombatLogs)

	if gs.Territories != nil {
		c.Territories = make([]Territory, len(gs.Territories))
		for i, t := range gs.Territories {
			if t.FactoryQueue != nil {
				q := *t.FactoryQueue
				t.FactoryQueue = &q
			}
			t.Neighbors = cloneSlice(t.Neighbors)
			c.Territories[i] = t
		}
	}
	if gs.Armies != nil {
		c.Armies = make([]Army, len(gs.Armies))
		for i, a := range gs.Armies {
			a.UnitIDs = cloneSlice(a.UnitIDs)
			c.Armies[i] = a
		}
	}
	return &c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	c := make([]T, len(s))
	copy(c, s)
	return c
}
