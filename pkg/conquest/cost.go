package conquest

// Per-attribute material costs.
const (
	CostPerEngine    = 1
	CostPerArmor     = 1
	CostPerCargo     = 1
	CostPerGunLength = 1 // multiplied by gun count
)

// CalculateDesignCost returns the material cost of building one unit of d.
// The result is never below 1.
func CalculateDesignCost(d Design) int {
	cost := d.EngineCount*CostPerEngine +
		d.Armor*CostPerArmor +
		d.CargoCapacity*CostPerCargo
	if d.GunCount > 0 {
		cost += d.GunCount * d.GunLength * CostPerGunLength
	}
	return max(1, cost)
}
