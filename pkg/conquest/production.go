package conquest

import "math"

// PopulationGrowth is the per-turn population multiplier.
const PopulationGrowth = 1.5

// runProduction advances the economy of every owned territory: income, then
// factory work, then population growth.
func (t *turn) runProduction() {
	for i := range t.gs.Territories {
		terr := &t.gs.Territories[i]
		if !terr.Owned() {
			continue
		}
		built := produce(terr, t.designs, t.rng)
		t.gs.Units = append(t.gs.Units, built...)
		grow(terr)
	}
	t.reindexUnits()
}

// produce credits income equal to population and spends up to
// min(population, materials) on the factory queue, completing as many units as
// the budget allows. A completed unit restarts the same line at zero progress.
// A queue whose design no longer exists is left idle.
func produce(terr *Territory, designs map[string]Design, rng Rand) []Unit {
	var stats TurnStats

	income := max(0, terr.Population)
	terr.Materials += income
	stats.MaterialsProduced = income

	var built []Unit
	q := terr.FactoryQueue
	if q != nil {
		if _, ok := designs[q.DesignID]; ok {
			total := max(1, q.TotalCost)
			capacity := min(max(0, terr.Population), terr.Materials)
			for capacity > 0 {
				needed := max(0, total-q.Progress)
				if capacity < needed {
					terr.Materials -= capacity
					stats.MaterialsConsumed += capacity
					q.Progress += capacity
					break
				}
				terr.Materials -= needed
				stats.MaterialsConsumed += needed
				capacity -= needed
				q.Progress = 0
				built = append(built, Unit{
					ID:         newID(rng),
					DesignID:   q.DesignID,
					OwnerID:    terr.OwnerID,
					LocationID: terr.ID,
				})
				stats.UnitsProduced++
			}
		}
	}

	terr.LastTurnStats = stats
	return built
}

// grow multiplies population by PopulationGrowth. Anything above the
// territory's capacity becomes colonists.
func grow(terr *Territory) {
	limit := max(0, terr.MaxPopulation)
	pop := int(math.Floor(float64(max(0, terr.Population)) * PopulationGrowth))
	if pop > limit {
		terr.Colonists += pop - limit
		pop = limit
	}
	terr.Population = pop
}
