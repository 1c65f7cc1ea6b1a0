package conquest

// MaxCombatRounds bounds a single engagement. A source that keeps drawing
// non-penetrating pairs would otherwise loop forever; reaching the cap ends the
// fight the same way a stalemate does.
const MaxCombatRounds = 10000

// UnitSnapshot identifies a unit that took part in an engagement.
type UnitSnapshot struct {
	ID       string `json:"id"`
	DesignID string `json:"designId"`
}

// Shot is one side's single attack in a round.
type Shot struct {
	UnitID    string `json:"unitId"`
	TargetID  string `json:"targetId"`
	Hit       bool   `json:"hit"`
	Destroyed bool   `json:"destroyed"`
	Damage    int    `json:"damage"`
}

// CombatRound holds at most one shot per side.
type CombatRound struct {
	AttackerShot *Shot `json:"attackerShot,omitempty"`
	DefenderShot *Shot `json:"defenderShot,omitempty"`
}

// BombardmentResult describes what a victorious force did to a territory.
type BombardmentResult struct {
	ColonistsKilled  int  `json:"colonistsKilled"`
	PopulationKilled int  `json:"populationKilled"`
	Invaded          bool `json:"invaded"`
}

// CombatLog is the replayable record of one engagement or unopposed approach.
type CombatLog struct {
	ID            string             `json:"id"`
	LocationID    string             `json:"locationId"`
	Turn          int                `json:"turn"`
	AttackerID    string             `json:"attackerId"`
	DefenderID    string             `json:"defenderId"`
	WinnerID      string             `json:"winnerId"`
	AttackerUnits []UnitSnapshot     `json:"attackerUnits"`
	DefenderUnits []UnitSnapshot     `json:"defenderUnits"`
	Rounds        []CombatRound      `json:"rounds"`
	Bombardment   *BombardmentResult `json:"bombardmentResult,omitempty"`
}

// Unopposed reports whether the log records an approach with no fighting.
func (l *CombatLog) Unopposed() bool {
	return len(l.Rounds) == 0
}

// Force is one side of an engagement.
type Force struct {
	OwnerID string
	Units   []Unit
}

// CombatResult is the outcome of ResolveCombat.
type CombatResult struct {
	Log                CombatLog
	SurvivingAttackers []string
	SurvivingDefenders []string
}

// AttackerWon reports whether the attacker took the field.
func (r *CombatResult) AttackerWon() bool {
	return r.Log.WinnerID == r.Log.AttackerID && r.Log.AttackerID != r.Log.DefenderID
}

// combatant is a unit in the fight with its resolved stats.
type combatant struct {
	id     string
	design Design
}

// ResolveCombat fights attacker against defender round by round until one side
// is wiped out or neither side can hurt the other. Units whose design is
// missing from designs fight as unarmed and unarmored. The defender wins ties.
func ResolveCombat(attacker, defender Force, designs map[string]Design, locationID string, turn int, rng Rand) CombatResult {
	rng = orDefault(rng)
	log := CombatLog{
		ID:            newID(rng),
		LocationID:    locationID,
		Turn:          turn,
		AttackerID:    attacker.OwnerID,
		DefenderID:    defender.OwnerID,
		AttackerUnits: snapshot(attacker.Units),
		DefenderUnits: snapshot(defender.Units),
	}

	atk := combatants(attacker.Units, designs)
	def := combatants(defender.Units, designs)

	for len(atk) > 0 && len(def) > 0 && len(log.Rounds) < MaxCombatRounds {
		var round CombatRound

		shot, hit := fire(atk, def, rng)
		round.AttackerShot = &shot
		if shot.Destroyed {
			def = remove(def, hit)
		}

		if len(def) > 0 {
			shot, hit := fire(def, atk, rng)
			round.DefenderShot = &shot
			if shot.Destroyed {
				atk = remove(atk, hit)
			}
		}

		log.Rounds = append(log.Rounds, round)

		if !canHurt(atk, def) && !canHurt(def, atk) {
			break
		}
	}

	switch {
	case len(def) > 0:
		log.WinnerID = defender.OwnerID
	case len(atk) > 0:
		log.WinnerID = attacker.OwnerID
	default:
		log.WinnerID = defender.OwnerID
	}

	return CombatResult{
		Log:                log,
		SurvivingAttackers: ids(atk),
		SurvivingDefenders: ids(def),
	}
}

// fire picks a random shooter and a random target and resolves the shot.
// Returns the shot and the index of the target in targets.
func fire(shooters, targets []combatant, rng Rand) (Shot, int) {
	shooter := shooters[rng.Intn(len(shooters))]
	ti := rng.Intn(len(targets))
	target := targets[ti]

	destroyed := shooter.design.Penetrates(target.design)
	damage := 0
	if destroyed {
		damage = 1
	}
	return Shot{
		UnitID:    shooter.id,
		TargetID:  target.id,
		Hit:       true,
		Destroyed: destroyed,
		Damage:    damage,
	}, ti
}

// canHurt reports whether any armed shooter can penetrate any target.
func canHurt(shooters, targets []combatant) bool {
	for _, s := range shooters {
		if !s.design.Armed() {
			continue
		}
		for _, t := range targets {
			if s.design.Penetrates(t.design) {
				return true
			}
		}
	}
	return false
}

func combatants(units []Unit, designs map[string]Design) []combatant {
	out := make([]combatant, len(units))
	for i, u := range units {
		out[i] = combatant{id: u.ID, design: designs[u.DesignID]}
	}
	return out
}

func remove(cs []combatant, i int) []combatant {
	out := make([]combatant, 0, len(cs)-1)
	out = append(out, cs[:i]...)
	return append(out, cs[i+1:]...)
}

func ids(cs []combatant) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.id
	}
	return out
}

func snapshot(units []Unit) []UnitSnapshot {
	out := make([]UnitSnapshot, len(units))
	for i, u := range units {
		out[i] = UnitSnapshot{ID: u.ID, DesignID: u.DesignID}
	}
	return out
}
