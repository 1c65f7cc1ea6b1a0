package conquest

// loadSettlers fills the unit's free cargo space from the territory's colonist
// stock and then, when fromPopulation is set, from its population. Returns the
// number of settlers taken aboard.
func loadSettlers(u *Unit, d Design, terr *Territory, fromPopulation bool) int {
	space := d.CargoCapacity - u.Cargo.Load()
	if space <= 0 {
		return 0
	}

	take := min(space, max(0, terr.Colonists))
	terr.Colonists -= take
	u.Cargo.Settlers += take
	loaded := take
	space -= take

	if fromPopulation && space > 0 {
		take = min(space, max(0, terr.Population))
		terr.Population -= take
		u.Cargo.Settlers += take
		loaded += take
	}
	return loaded
}

// unloadSettlers lands all of the unit's settlers: as population up to the
// territory's capacity, the remainder as colonists.
func unloadSettlers(u *Unit, terr *Territory) int {
	amount := u.Cargo.Settlers
	if amount <= 0 {
		return 0
	}
	room := max(0, terr.MaxPopulation-terr.Population)
	toPop := min(amount, room)
	terr.Population += toPop
	terr.Colonists += amount - toPop
	u.Cargo.Settlers = 0
	return amount
}
