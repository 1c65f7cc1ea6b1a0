package conquest

import "sync"

// LatLng is a geographic anchor point used by map renderers.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TerritoryInfo is the static description of a territory. It is reference
// data loaded at startup and never mutated by the engine.
type TerritoryInfo struct {
	ID            string   // ISO-3166-1 alpha-2
	ISO3          string   // ISO-3166-1 alpha-3
	Name          string
	MaxPopulation int
	Neighbors     []string
	Center        LatLng
}

// WorldMap holds the static territory graph.
type WorldMap struct {
	Territories map[string]*TerritoryInfo
	Order       []string // territory IDs in dataset order
}

// Adjacent returns true if dst is a neighbor of src.
func (m *WorldMap) Adjacent(src, dst string) bool {
	t, ok := m.Territories[src]
	if !ok {
		return false
	}
	for _, n := range t.Neighbors {
		if n == dst {
			return true
		}
	}
	return false
}

// NewWorldMap builds a map from raw territory records. Neighbor references to
// territories missing from the dataset are dropped, and every remaining edge
// is made bidirectional.
func NewWorldMap(infos []TerritoryInfo) *WorldMap {
	m := &WorldMap{
		Territories: make(map[string]*TerritoryInfo, len(infos)),
		Order:       make([]string, 0, len(infos)),
	}
	for i := range infos {
		info := infos[i]
		info.Neighbors = nil
		m.Territories[info.ID] = &info
		m.Order = append(m.Order, info.ID)
	}
	for _, raw := range infos {
		for _, n := range raw.Neighbors {
			if _, ok := m.Territories[n]; !ok || n == raw.ID {
				continue
			}
			m.link(raw.ID, n)
			m.link(n, raw.ID)
		}
	}
	return m
}

func (m *WorldMap) link(src, dst string) {
	if m.Adjacent(src, dst) {
		return
	}
	t := m.Territories[src]
	t.Neighbors = append(t.Neighbors, dst)
}

var (
	standardMapOnce sync.Once
	standardMap     *WorldMap
)

// StandardMap returns the built-in world map. The result is shared and must
// not be modified.
func StandardMap() *WorldMap {
	standardMapOnce.Do(func() {
		standardMap = NewWorldMap(standardTerritories())
	})
	return standardMap
}
