package conquest

import "fmt"

// StartingPopulation is every territory's population when a game begins.
const StartingPopulation = 100

// HumanColor is the display color of the human player.
const HumanColor = "#3b82f6"

// NewLobby returns the pre-game state for the map: every territory wild, at
// starting population, with empty stock.
func NewLobby(m *WorldMap) *GameState {
	gs := &GameState{
		Turn:   1,
		Status: StatusLobby,
	}
	for _, id := range m.Order {
		info := m.Territories[id]
		gs.Territories = append(gs.Territories, Territory{
			ID:            info.ID,
			ISO3:          info.ISO3,
			Name:          info.Name,
			Population:    StartingPopulation,
			MaxPopulation: info.MaxPopulation,
			Neighbors:     cloneSlice(info.Neighbors),
			Center:        info.Center,
		})
	}
	return gs
}

// StartGame hands the chosen territory to a new human player and every other
// territory to its own AI player. An empty humanTerritoryID starts a game with
// AI players only.
func StartGame(gs *GameState, humanTerritoryID string, rng Rand) (*GameState, error) {
	if gs.Status != StatusLobby {
		return nil, fmt.Errorf("start game: %w", ErrGameStarted)
	}
	if humanTerritoryID != "" && gs.Territory(humanTerritoryID) == nil {
		return nil, fmt.Errorf("start game: %w: %s", ErrUnknownTerritory, humanTerritoryID)
	}
	rng = orDefault(rng)

	next := gs.Clone()
	next.Players = nil
	if humanTerritoryID != "" {
		human := Player{ID: newID(rng), Name: "Human Commander", Color: HumanColor, Type: Human}
		next.Players = append(next.Players, human)
		next.HumanPlayerID = human.ID
	}

	for i := range next.Territories {
		terr := &next.Territories[i]
		if terr.ID == humanTerritoryID {
			terr.OwnerID = next.HumanPlayerID
		} else {
			ai := Player{
				ID:    newID(rng),
				Name:  "AI " + terr.Name,
				Color: fmt.Sprintf("#%06x", rng.Intn(0x1000000)),
				Type:  AI,
			}
			next.Players = append(next.Players, ai)
			terr.OwnerID = ai.ID
		}
		terr.Population = StartingPopulation
		terr.Colonists = 0
		terr.Materials = 0
		terr.FactoryQueue = nil
		terr.LastTurnStats = TurnStats{}
	}

	next.Status = StatusPlaying
	return next, nil
}
