package conquest

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// holdState tracks who holds a contested territory during the elimination
// tournament.
type holdState int

const (
	noKing       holdState = iota // nobody has taken the field yet
	kingActive                    // king holds the field with live units
	kingDefeated                  // the last king was wiped out with its challenger
)

// force is one army's live roster during a territory contest.
type force struct {
	owner   string
	armyIdx int // index into gs.Armies of the army carrying the roster
	unitIDs []string
}

// contest is the per-territory tournament.
type contest struct {
	territory *Territory
	state     holdState
	king      *force
	queue     []*force
	logs      []CombatLog
}

func (c *contest) crown(f *force) {
	c.king = f
	c.state = kingActive
}

func (c *contest) pop() *force {
	f := c.queue[0]
	c.queue = c.queue[1:]
	return f
}

// resolveConflicts runs the tournament in every territory with armies present,
// records the combat logs, and removes destroyed units and empty armies.
// Territories never share armies or units, so their order does not matter.
func (t *turn) resolveConflicts() {
	byLocation := make(map[string][]int)
	for i, a := range t.gs.Armies {
		byLocation[a.LocationID] = append(byLocation[a.LocationID], i)
	}

	var logs []CombatLog
	for i := range t.gs.Territories {
		terr := &t.gs.Territories[i]
		if idxs := byLocation[terr.ID]; len(idxs) > 0 {
			logs = append(logs, t.resolveTerritory(terr, idxs)...)
		}
	}
	t.gs.CombatLogs = append(t.gs.CombatLogs, logs...)
	t.removeDead()
}

// resolveTerritory merges the owner's armies into a defending king, queues the
// invaders fastest first, and fights them one at a time against whoever holds
// the field. The final king bombards the territory if it is not the owner.
func (t *turn) resolveTerritory(terr *Territory, armyIdxs []int) []CombatLog {
	c := &contest{territory: terr}

	var defender *force
	var invaders []*force
	for _, ai := range armyIdxs {
		a := &t.gs.Armies[ai]
		a.UnitIDs = t.liveUnits(a)
		f := &force{owner: a.OwnerID, armyIdx: ai, unitIDs: cloneSlice(a.UnitIDs)}

		if terr.Owned() && a.OwnerID == terr.OwnerID {
			if defender == nil {
				defender = f
			} else {
				t.merge(defender, f)
			}
			continue
		}
		if len(f.unitIDs) > 0 {
			invaders = append(invaders, f)
		}
	}

	c.queue = t.bySpeed(invaders)
	if defender != nil && len(defender.unitIDs) > 0 {
		c.crown(defender)
	}

	for len(c.queue) > 0 {
		challenger := c.pop()
		switch {
		case c.state != kingActive:
			c.crown(challenger)
		case challenger.owner == c.king.owner:
			t.merge(c.king, challenger)
		default:
			t.battle(c, challenger)
		}
	}

	if c.state == kingActive && c.king.owner != terr.OwnerID {
		t.bombard(c)
	}
	return c.logs
}

// liveUnits returns the army's unit IDs that still resolve to a living unit of
// the army's owner.
func (t *turn) liveUnits(a *Army) []string {
	var live []string
	for _, id := range a.UnitIDs {
		if u := t.unit(id); u != nil && u.OwnerID == a.OwnerID {
			live = append(live, id)
		}
	}
	return live
}

// merge folds other's units into king and empties other's army.
func (t *turn) merge(king, other *force) {
	king.unitIDs = append(king.unitIDs, other.unitIDs...)
	other.unitIDs = nil
	t.sync(other)
	t.sync(king)
}

// sync writes a force's roster back to its army.
func (t *turn) sync(f *force) {
	t.gs.Armies[f.armyIdx].UnitIDs = cloneSlice(f.unitIDs)
}

// speed is the slowest engine count in the force. An empty force has speed 0.
func (t *turn) speed(f *force) int {
	slowest := -1
	for _, id := range f.unitIDs {
		u := t.unit(id)
		if u == nil {
			continue
		}
		e := t.designs[u.DesignID].EngineCount
		if slowest < 0 || e < slowest {
			slowest = e
		}
	}
	return max(0, slowest)
}

// bySpeed orders forces fastest first. Equal speeds are ordered randomly.
func (t *turn) bySpeed(forces []*force) []*force {
	shuffle(t.rng, forces)
	speeds := make(map[*force]int, len(forces))
	for _, f := range forces {
		speeds[f] = t.speed(f)
	}
	sort.SliceStable(forces, func(i, j int) bool {
		return speeds[forces[i]] > speeds[forces[j]]
	})
	return forces
}

// battle resolves the challenger's attack on the current king.
func (t *turn) battle(c *contest, challenger *force) {
	res := ResolveCombat(t.forceOf(challenger), t.forceOf(c.king), t.designs, c.territory.ID, t.gs.Turn, t.rng)
	c.logs = append(c.logs, res.Log)

	t.bury(challenger.unitIDs, res.SurvivingAttackers)
	t.bury(c.king.unitIDs, res.SurvivingDefenders)
	challenger.unitIDs = res.SurvivingAttackers
	c.king.unitIDs = res.SurvivingDefenders
	t.sync(challenger)
	t.sync(c.king)

	log.Debug().
		Str("territory", c.territory.ID).
		Str("attacker", challenger.owner).
		Str("defender", c.king.owner).
		Str("winner", res.Log.WinnerID).
		Int("rounds", len(res.Log.Rounds)).
		Msg("Battle resolved")

	switch {
	case len(c.king.unitIDs) > 0:
	case len(challenger.unitIDs) > 0:
		c.crown(challenger)
	default:
		// Unreachable with ResolveCombat's rules: a wiped-out defender never fires back.
		c.king = nil
		c.state = kingDefeated
	}
}

// bury marks every unit in roster that is not among survivors as destroyed.
func (t *turn) bury(roster, survivors []string) {
	alive := make(map[string]bool, len(survivors))
	for _, id := range survivors {
		alive[id] = true
	}
	for _, id := range roster {
		if !alive[id] {
			t.dead[id] = true
		}
	}
}

func (t *turn) forceOf(f *force) Force {
	units := make([]Unit, 0, len(f.unitIDs))
	for _, id := range f.unitIDs {
		if u := t.unit(id); u != nil {
			units = append(units, *u)
		}
	}
	return Force{OwnerID: f.owner, Units: units}
}

// removeDead drops destroyed units from the state and prunes empty armies.
func (t *turn) removeDead() {
	if len(t.dead) > 0 {
		units := t.gs.Units[:0]
		for _, u := range t.gs.Units {
			if !t.dead[u.ID] {
				units = append(units, u)
			}
		}
		t.gs.Units = units
		t.dead = make(map[string]bool)
		t.reindexUnits()
	}

	armies := t.gs.Armies[:0]
	for _, a := range t.gs.Armies {
		a.UnitIDs = t.liveUnits(&a)
		if len(a.UnitIDs) > 0 {
			armies = append(armies, a)
		}
	}
	t.gs.Armies = armies
}
